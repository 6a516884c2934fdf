// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-diary/internal/config"
	"github.com/MKhiriev/go-diary/internal/logger"
)

// ClientStorages groups the storage the diary runs on.
type ClientStorages struct {
	// KeyValueStorage holds the credential record and the entry collection.
	KeyValueStorage KeyValueStorage

	db *DB
}

// NewClientStorages opens the SQLite database named by cfg.DB.DSN, runs
// pending migrations and wires a [KeyValueStorage] on top of it.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		KeyValueStorage: NewSQLiteKeyValueStorage(db, logger),
		db:              db,
	}, nil
}

// Close releases the underlying database connection.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
