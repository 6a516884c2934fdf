// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It says whether a failed database operation should be retried, abandoned,
// or reported as an unavailable storage medium.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	// This is the default classification for unrecognised errors.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the operation may succeed if attempted again
	// (another process holds the database lock).
	Retryable

	// Unavailable indicates that the storage medium itself cannot serve the
	// request: disk full, read-only file, corrupt or unopenable database.
	Unavailable
)

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// SQLiteErrorClassifier implements [ErrorClassificator] for mattn/go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Errors that are not
// [sqlite3.Error] values are classified as [NonRetryable].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return ClassifySQLiteError(sqliteErr)
	}

	return NonRetryable
}

// ClassifySQLiteError maps a primary SQLite result code to an [ErrorClassification].
//
// Retryable codes: SQLITE_BUSY, SQLITE_LOCKED.
// Unavailable codes: SQLITE_FULL, SQLITE_READONLY, SQLITE_IOERR,
// SQLITE_CANTOPEN, SQLITE_CORRUPT, SQLITE_NOTADB, SQLITE_PERM.
func ClassifySQLiteError(sqliteErr sqlite3.Error) ErrorClassification {
	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	case sqlite3.ErrFull,
		sqlite3.ErrReadonly,
		sqlite3.ErrIoErr,
		sqlite3.ErrCantOpen,
		sqlite3.ErrCorrupt,
		sqlite3.ErrNotADB,
		sqlite3.ErrPerm:
		return Unavailable
	}

	return NonRetryable
}
