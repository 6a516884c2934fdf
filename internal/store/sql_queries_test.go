// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildUpsertItemQuery(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	query, args, err := buildUpsertItemQuery("diaryEntries", "[]", at)
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO kv_items (item_key,item_value,updated_at) VALUES (?,?,?) "+
			"ON CONFLICT(item_key) DO UPDATE SET item_value = excluded.item_value, updated_at = excluded.updated_at",
		query)
	assert.Equal(t, []any{"diaryEntries", "[]", "2026-03-01T10:00:00Z"}, args)
}

func Test_buildSelectItemQuery(t *testing.T) {
	query, args, err := buildSelectItemQuery("diaryPassword")
	require.NoError(t, err)

	assert.Equal(t, "SELECT item_value FROM kv_items WHERE item_key = ?", query)
	assert.Equal(t, []any{"diaryPassword"}, args)
}

func Test_buildDeleteItemQuery(t *testing.T) {
	query, args, err := buildDeleteItemQuery("diaryPassword")
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM kv_items WHERE item_key = ?", query)
	assert.Equal(t, []any{"diaryPassword"}, args)
}

func Test_buildSelectKeysQuery(t *testing.T) {
	query, args, err := buildSelectKeysQuery()
	require.NoError(t, err)

	assert.Equal(t, "SELECT item_key FROM kv_items ORDER BY item_key", query)
	assert.Empty(t, args)
}
