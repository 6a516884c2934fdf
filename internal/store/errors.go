// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by storage methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrItemNotFound is returned when the requested key is not stored.
	ErrItemNotFound = errors.New("item was not found")

	// ErrStorageUnavailable marks failures of the storage medium itself
	// (disk full, read-only file, corrupt or unreadable database) as opposed
	// to programming errors such as malformed SQL.
	ErrStorageUnavailable = errors.New("storage is unavailable")
)

// Low-level database operation errors. These are wrapped by storage methods
// when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
