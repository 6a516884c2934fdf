// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyContent     = errors.New("entry content is required")
	ErrUnknownMood      = errors.New("unknown mood")
	ErrInvalidImage     = errors.New("image must be a data URI")
	ErrInvalidEntryID   = errors.New("invalid entry ID")
	ErrInvalidTimestamp = errors.New("entry timestamps are inconsistent")
)
