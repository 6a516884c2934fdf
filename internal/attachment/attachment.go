// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package attachment turns image files into data URIs that can be stored
// inside a diary entry, and tracks the single image staged in the entry form.
package attachment

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// MaxImageSize is the largest accepted image: 5 MiB inclusive.
const MaxImageSize int64 = 5 * 1024 * 1024

// CheckSize returns [ErrImageTooLarge] when size exceeds limit.
// A non-positive limit means [MaxImageSize].
func CheckSize(size, limit int64) error {
	if limit <= 0 {
		limit = MaxImageSize
	}
	if size > limit {
		return fmt.Errorf("%w: %d bytes, limit is %d bytes", ErrImageTooLarge, size, limit)
	}
	return nil
}

// Load reads the image at path and returns it as
// "data:<mime>;base64,<payload>". The size is checked before the file is
// read, and the content type is sniffed from the bytes rather than taken
// from the file name.
func Load(ctx context.Context, path string, limit int64) (string, error) {
	if limit <= 0 {
		limit = MaxImageSize
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat image: %w", err)
	}
	if !info.Mode().IsRegular() {
		return "", ErrNotAFile
	}
	if err = CheckSize(info.Size(), limit); err != nil {
		return "", err
	}

	if err = ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	// the file may have grown since Stat
	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if err = CheckSize(int64(len(data)), limit); err != nil {
		return "", err
	}

	return Encode(data)
}

// Encode sniffs data and returns it as a data URI, or [ErrNotAnImage].
func Encode(data []byte) (string, error) {
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%w: detected %s", ErrNotAnImage, contentType)
	}

	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
