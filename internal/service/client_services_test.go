// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/models"
)

func TestClientServices_OpenEntryStore(t *testing.T) {
	storage := newMemoryStorage(t)
	seed(t, storage, models.EntriesKey, browserEntries)
	services := NewClientServices(storage, logger.Nop())

	_, err := services.OpenEntryStore(context.Background())
	assert.ErrorIs(t, err, ErrGateLocked)

	_, err = services.GateService.Unlock(context.Background(), "hello")
	require.NoError(t, err)

	entries, err := services.OpenEntryStore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, entries.Count())

	services.GateService.Lock()
	_, err = services.OpenEntryStore(context.Background())
	assert.ErrorIs(t, err, ErrGateLocked)
}
