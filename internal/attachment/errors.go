// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package attachment

import "errors"

var (
	// ErrImageTooLarge is returned when the file exceeds the size limit.
	ErrImageTooLarge = errors.New("image is too large")

	// ErrNotAnImage is returned when the file content is not a recognised image format.
	ErrNotAnImage = errors.New("file is not an image")

	// ErrNotAFile is returned for directories and other non-regular files.
	ErrNotAFile = errors.New("path is not a regular file")
)
