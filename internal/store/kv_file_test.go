// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileKeyValueStorage_ReadsBrowserDump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"diaryPassword":"99162322","diaryEntries":"[]","theme":"dark"}`), 0o600))

	s, err := NewFileKeyValueStorage(path)
	require.NoError(t, err)

	value, err := s.GetItem(context.Background(), "diaryPassword")
	require.NoError(t, err)
	assert.Equal(t, "99162322", value)

	keys, err := s.Keys(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"diaryEntries", "diaryPassword", "theme"}, keys)
}

func TestFileKeyValueStorage_PersistsWrites(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sub", "dump.json")

	s, err := NewFileKeyValueStorage(path)
	require.NoError(t, err)
	_, err = s.GetItem(ctx, "missing")
	require.ErrorIs(t, err, ErrItemNotFound)

	require.NoError(t, s.SetItem(ctx, "a", "1"))
	require.NoError(t, s.SetItem(ctx, "b", "2"))
	require.NoError(t, s.RemoveItem(ctx, "a"))
	require.NoError(t, s.RemoveItem(ctx, "never-there"))

	reopened, err := NewFileKeyValueStorage(path)
	require.NoError(t, err)
	keys, err := reopened.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, keys)
}

func TestFileKeyValueStorage_InMemory(t *testing.T) {
	s, err := NewFileKeyValueStorage("")
	require.NoError(t, err)

	require.NoError(t, s.SetItem(context.Background(), "k", "v"))
	value, err := s.GetItem(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "v", value)
}

func TestFileKeyValueStorage_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"diaryEntries": [1,2]}`), 0o600))

	_, err := NewFileKeyValueStorage(path)
	assert.Error(t, err)
}
