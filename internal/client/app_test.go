// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-diary/internal/config"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/service"
)

func TestNewApp(t *testing.T) {
	ctx := logger.Nop().WithContext(context.Background())
	cfg := &config.ClientConfig{
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "diary.db")}},
	}

	app, err := NewApp(ctx, cfg, logger.Nop())
	require.NoError(t, err)

	outcome, err := app.Services().GateService.Unlock(ctx, "hello")
	require.NoError(t, err)
	assert.Equal(t, service.Enrolled, outcome)

	require.NoError(t, app.Close())
	assert.Equal(t, service.Locked, app.Services().GateService.State())

	reopened, err := NewApp(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	enrolled, err := reopened.Services().GateService.IsEnrolled(ctx)
	require.NoError(t, err)
	assert.True(t, enrolled)
}

func TestNewApp_BadPath(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))
	cfg := &config.ClientConfig{
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(blocker, "diary.db")}},
	}

	_, err := NewApp(context.Background(), cfg, logger.Nop())
	assert.Error(t, err)
}
