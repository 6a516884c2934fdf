// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/internal/validators"
	"github.com/MKhiriev/go-diary/models"
)

const browserEntries = `[{"id":1710408413589,"title":"Pi day","content":"pie","mood":"😍","image":null,` +
	`"createdAt":"2024-03-14T09:26:53.589Z","updatedAt":"2024-03-14T09:26:53.589Z"}]`

func newTransfer(storage store.KeyValueStorage) ClientTransferService {
	return NewClientTransferService(storage, NewClientGateService(storage), validators.NewEntryValidator())
}

func browserDump(t *testing.T) store.KeyValueStorage {
	t.Helper()

	src := newMemoryStorage(t)
	seed(t, src, models.CredentialKey, "99162322")
	seed(t, src, models.EntriesKey, browserEntries)
	seed(t, src, "theme", "dark")
	return src
}

func TestClientTransferService_Import_CopiesBothKeys(t *testing.T) {
	dst := newMemoryStorage(t)

	summary, err := newTransfer(dst).Import(context.Background(), browserDump(t), false)
	require.NoError(t, err)

	assert.Equal(t, ImportSummary{CredentialImported: true, Entries: 1}, summary)
	assert.Equal(t, "99162322", storedValue(t, dst, models.CredentialKey))

	keys, err := dst.Keys(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{models.EntriesKey, models.CredentialKey}, keys)

	gate := NewClientGateService(dst)
	outcome, err := gate.Unlock(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, Verified, outcome)
}

func TestClientTransferService_Import_RefusesToOverwriteCredential(t *testing.T) {
	dst := newMemoryStorage(t)
	seed(t, dst, models.CredentialKey, "3105")
	seed(t, dst, models.EntriesKey, "[]")

	_, err := newTransfer(dst).Import(context.Background(), browserDump(t), false)
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)
	assert.Equal(t, "3105", storedValue(t, dst, models.CredentialKey))
	assert.Equal(t, "[]", storedValue(t, dst, models.EntriesKey))

	summary, err := newTransfer(dst).Import(context.Background(), browserDump(t), true)
	require.NoError(t, err)
	assert.True(t, summary.CredentialImported)
	assert.Equal(t, "99162322", storedValue(t, dst, models.CredentialKey))
}

func TestClientTransferService_Import_RejectsBadEntries(t *testing.T) {
	dst := newMemoryStorage(t)

	corrupt := newMemoryStorage(t)
	seed(t, corrupt, models.EntriesKey, `{"id":1}`)
	_, err := newTransfer(dst).Import(context.Background(), corrupt, false)
	assert.ErrorIs(t, err, ErrCorruptEntries)

	empty := newMemoryStorage(t)
	seed(t, empty, models.EntriesKey, `[{"id":5,"content":"   ","mood":"😊"}]`)
	_, err = newTransfer(dst).Import(context.Background(), empty, false)
	assert.ErrorIs(t, err, ErrValidation)

	keys, err := dst.Keys(context.Background())
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestClientTransferService_Export(t *testing.T) {
	storage := newMemoryStorage(t)
	transfer := newTransfer(storage)

	_, err := transfer.Export(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrNotEnrolled)
	enrolled, err := NewClientGateService(storage).IsEnrolled(context.Background())
	require.NoError(t, err)
	assert.False(t, enrolled)

	seed(t, storage, models.CredentialKey, "99162322")
	seed(t, storage, models.EntriesKey, browserEntries)

	_, err = transfer.Export(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyPassphrase)

	_, err = transfer.Export(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrWrongPassphrase)

	entries, err := transfer.Export(context.Background(), " hello ")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Pi day", entries[0].Title)
}
