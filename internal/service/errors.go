// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-diary/internal/store"
)

// Error categories. Every error below wraps exactly one of them so callers
// can react to the category with [errors.Is].
var (
	// ErrValidation marks input rejected before anything was written.
	ErrValidation = errors.New("validation failed")

	// ErrAuth marks a passphrase that does not match the enrolled one.
	ErrAuth = errors.New("authentication failed")

	// ErrStorageUnavailable marks a failed read or write of the backing store.
	// It is the same value as [store.ErrStorageUnavailable].
	ErrStorageUnavailable = store.ErrStorageUnavailable
)

var (
	ErrEmptyPassphrase = fmt.Errorf("%w: passphrase is empty", ErrValidation)
	ErrWrongPassphrase = fmt.Errorf("%w: wrong passphrase", ErrAuth)

	ErrEntryNotFound   = errors.New("entry not found")
	ErrCorruptEntries  = errors.New("stored entries cannot be decoded")
	ErrGateLocked      = errors.New("diary is locked")
	ErrAlreadyEnrolled = errors.New("a passphrase is already enrolled")
	ErrNotEnrolled     = errors.New("no passphrase is enrolled")
)
