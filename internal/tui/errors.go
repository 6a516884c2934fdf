// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"io/fs"

	"github.com/MKhiriev/go-diary/internal/app"
	"github.com/MKhiriev/go-diary/internal/attachment"
	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/internal/validators"
)

// humanizeError maps an error to the wording shown to the user.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrEmptyPassphrase):
		return app.MsgEnterPassphrase
	case errors.Is(err, service.ErrWrongPassphrase):
		return app.MsgWrongPassphrase
	case errors.Is(err, validators.ErrEmptyContent):
		return app.MsgWriteSomething
	case errors.Is(err, validators.ErrUnknownMood):
		return app.MsgUnknownMood
	case errors.Is(err, service.ErrEntryNotFound):
		return app.MsgEntryMissing
	case errors.Is(err, service.ErrCorruptEntries):
		return app.MsgStorageCorrupt
	case errors.Is(err, service.ErrStorageUnavailable):
		return app.MsgStorageUnavailable
	case errors.Is(err, attachment.ErrImageTooLarge):
		return app.MsgImageTooLarge
	case errors.Is(err, attachment.ErrNotAnImage):
		return app.MsgNotAnImage
	case errors.Is(err, attachment.ErrNotAFile), errors.Is(err, fs.ErrNotExist):
		return app.MsgImageUnreadable
	}
	return app.MsgUnexpected
}
