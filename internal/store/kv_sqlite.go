// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-diary/internal/logger"
)

// maxBusyRetries bounds the attempts made after SQLite reports the database
// as busy or locked.
const maxBusyRetries = 3

// busyBackoff waits 50ms, 100ms and 200ms between attempts.
func busyBackoff() retry.Backoff {
	return retry.WithMaxRetries(maxBusyRetries, retry.NewExponential(50*time.Millisecond))
}

// sqliteKeyValueStorage is the SQLite-backed implementation of
// [KeyValueStorage]. Every key is one row of the kv_items table.
type sqliteKeyValueStorage struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLiteKeyValueStorage constructs a [KeyValueStorage] on top of an
// already migrated database.
func NewSQLiteKeyValueStorage(db *DB, logger *logger.Logger) KeyValueStorage {
	logger.Debug().Msg("creating sqlite key-value storage")
	return &sqliteKeyValueStorage{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (s *sqliteKeyValueStorage) GetItem(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectItemQuery(key)
	if err != nil {
		log.Err(err).Str("func", "*sqliteKeyValueStorage.GetItem").Msg("error building query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.withRetry(ctx, func() error {
		return s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrItemNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sqliteKeyValueStorage.GetItem").Str("key", key).Msg("error reading item")
		return "", s.wrap(ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *sqliteKeyValueStorage) SetItem(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertItemQuery(key, value, s.now())
	if err != nil {
		log.Err(err).Str("func", "*sqliteKeyValueStorage.SetItem").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = s.withRetry(ctx, func() error {
		_, execErr := s.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*sqliteKeyValueStorage.SetItem").Str("key", key).Msg("error writing item")
		return s.wrap(ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "*sqliteKeyValueStorage.SetItem").Str("key", key).Int("size", len(value)).Msg("item saved")
	return nil
}

func (s *sqliteKeyValueStorage) RemoveItem(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteItemQuery(key)
	if err != nil {
		log.Err(err).Str("func", "*sqliteKeyValueStorage.RemoveItem").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = s.withRetry(ctx, func() error {
		_, execErr := s.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*sqliteKeyValueStorage.RemoveItem").Str("key", key).Msg("error removing item")
		return s.wrap(ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteKeyValueStorage) Keys(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectKeysQuery()
	if err != nil {
		log.Err(err).Str("func", "*sqliteKeyValueStorage.Keys").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqliteKeyValueStorage.Keys").Msg("error listing keys")
		return nil, s.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err = rows.Scan(&key); err != nil {
			log.Err(err).Str("func", "*sqliteKeyValueStorage.Keys").Msg("error scanning key")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		keys = append(keys, key)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*sqliteKeyValueStorage.Keys").Msg("error iterating keys")
		return nil, s.wrap(ErrExecutingQuery, err)
	}

	return keys, nil
}

// withRetry runs op and repeats it while the classifier reports the failure
// as retryable. The last error is returned once the backoff is exhausted.
func (s *sqliteKeyValueStorage) withRetry(ctx context.Context, op func() error) error {
	return retry.Do(ctx, busyBackoff(), func(ctx context.Context) error {
		err := op()
		if err != nil && s.db.errorClassificator.Classify(err) == Retryable {
			s.logger.Warn().Err(err).Msg("database is busy, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}

// wrap tags err with kind and, for storage medium failures, with
// [ErrStorageUnavailable].
func (s *sqliteKeyValueStorage) wrap(kind, err error) error {
	if s.db.errorClassificator.Classify(err) == Unavailable {
		return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, kind, err)
	}
	return fmt.Errorf("%w: %w", kind, err)
}
