// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/models"
)

func newMemoryStorage(t *testing.T) store.KeyValueStorage {
	t.Helper()

	s, err := store.NewFileKeyValueStorage(":memory:")
	require.NoError(t, err)
	return s
}

func seed(t *testing.T, s store.KeyValueStorage, key, value string) {
	t.Helper()
	require.NoError(t, s.SetItem(context.Background(), key, value))
}

func storedValue(t *testing.T, s store.KeyValueStorage, key string) string {
	t.Helper()

	v, err := s.GetItem(context.Background(), key)
	require.NoError(t, err)
	return v
}

// fakeClock returns a fixed instant until moved.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(t time.Time) *fakeClock { return &fakeClock{now: t} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func draft(content string) models.EntryDraft {
	return models.EntryDraft{Content: content}
}

func ptr(s string) *string { return &s }
