// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// GateState is the lock state of the diary.
type GateState int

const (
	Locked GateState = iota
	Unlocked
)

func (s GateState) String() string {
	if s == Unlocked {
		return "unlocked"
	}
	return "locked"
}

// UnlockOutcome tells how a successful [ClientGateService.Unlock] got there.
type UnlockOutcome int

const (
	// NotUnlocked is returned together with an error.
	NotUnlocked UnlockOutcome = iota
	// Enrolled means no passphrase existed and the given one was stored.
	Enrolled
	// Verified means the given passphrase matched the stored one.
	Verified
)

// ClientGateService guards access to the diary behind a passphrase.
//
// The gate is a privacy lock, not a security boundary: the stored record is
// a 32-bit checksum with no salt.
type ClientGateService interface {
	// IsEnrolled reports whether a passphrase record exists.
	IsEnrolled(ctx context.Context) (bool, error)

	// Enroll stores the checksum of passphrase. If a record already exists
	// it is left untouched and nil is returned.
	Enroll(ctx context.Context, passphrase string) error

	// Verify reports whether passphrase matches the stored record.
	Verify(ctx context.Context, passphrase string) (bool, error)

	// Unlock runs the login flow: trims passphrase, enrolls it when nothing
	// is enrolled yet, otherwise verifies it. On success the gate becomes
	// [Unlocked]. Returns [ErrEmptyPassphrase] or [ErrWrongPassphrase] and
	// leaves the gate [Locked] otherwise.
	Unlock(ctx context.Context, passphrase string) (UnlockOutcome, error)

	// Lock returns the gate to [Locked].
	Lock()

	// State returns the current lock state.
	State() GateState
}

// EntryStore owns the in-memory entry collection of one unlocked session
// and is the only writer of [models.EntriesKey].
//
// Every mutation persists the whole collection before it becomes visible.
// If the write fails the collection stays as it was and the error wraps
// [ErrStorageUnavailable].
type EntryStore interface {
	// Load replaces the in-memory collection with the persisted one.
	// A missing key is an empty collection.
	Load(ctx context.Context) error

	// List returns a copy of the collection, newest first.
	List() []models.DiaryEntry

	// Get returns the entry with the given id or [ErrEntryNotFound].
	Get(id int64) (models.DiaryEntry, error)

	// Count returns the number of entries.
	Count() int

	// Create validates draft, stores it as the newest entry and returns it.
	Create(ctx context.Context, draft models.EntryDraft) (models.DiaryEntry, error)

	// Update replaces the mutable fields of entry id, keeping its position.
	Update(ctx context.Context, id int64, draft models.EntryDraft) (models.DiaryEntry, error)

	// Delete removes entry id and reports whether it existed.
	Delete(ctx context.Context, id int64) (bool, error)
}

// ClientTransferService moves diary data in and out of the local store.
type ClientTransferService interface {
	// Export verifies passphrase and returns every stored entry, newest first.
	Export(ctx context.Context, passphrase string) ([]models.DiaryEntry, error)

	// Import copies the credential and entry keys from src. An existing
	// credential is only replaced when force is set.
	Import(ctx context.Context, src store.KeyValueStorage, force bool) (ImportSummary, error)
}

// ImportSummary describes what [ClientTransferService.Import] copied.
type ImportSummary struct {
	CredentialImported bool
	Entries            int
}
