// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStorage is the persistent string-keyed store backing the diary.
// Keys and values are plain strings, mirroring the browser local storage
// the diary was first written against.
type KeyValueStorage interface {
	// GetItem returns the value stored under key or [ErrItemNotFound].
	GetItem(ctx context.Context, key string) (string, error)
	// SetItem creates or replaces the value stored under key.
	SetItem(ctx context.Context, key, value string) error
	// RemoveItem deletes key. Removing a missing key is not an error.
	RemoveItem(ctx context.Context, key string) error
	// Keys lists every stored key in lexical order.
	Keys(ctx context.Context) ([]string, error)
}
