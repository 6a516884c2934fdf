// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable       = "kv_items"
	kvColumnKey   = "item_key"
	kvColumnValue = "item_value"
	kvColumnAt    = "updated_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildUpsertItemQuery(key, value string, at time.Time) (string, []any, error) {
	return psql.
		Insert(kvTable).
		Columns(kvColumnKey, kvColumnValue, kvColumnAt).
		Values(key, value, at.UTC().Format(time.RFC3339Nano)).
		Suffix("ON CONFLICT(" + kvColumnKey + ") DO UPDATE SET " +
			kvColumnValue + " = excluded." + kvColumnValue + ", " +
			kvColumnAt + " = excluded." + kvColumnAt).
		ToSql()
}

func buildSelectItemQuery(key string) (string, []any, error) {
	return psql.
		Select(kvColumnValue).
		From(kvTable).
		Where(sq.Eq{kvColumnKey: key}).
		ToSql()
}

func buildDeleteItemQuery(key string) (string, []any, error) {
	return psql.
		Delete(kvTable).
		Where(sq.Eq{kvColumnKey: key}).
		ToSql()
}

func buildSelectKeysQuery() (string, []any, error) {
	return psql.
		Select(kvColumnKey).
		From(kvTable).
		OrderBy(kvColumnKey).
		ToSql()
}
