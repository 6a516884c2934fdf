// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "busy", err: sqlite3.Error{Code: sqlite3.ErrBusy}, want: Retryable},
		{name: "locked", err: sqlite3.Error{Code: sqlite3.ErrLocked}, want: Retryable},
		{name: "wrapped busy", err: fmt.Errorf("exec: %w", sqlite3.Error{Code: sqlite3.ErrBusy}), want: Retryable},
		{name: "disk full", err: sqlite3.Error{Code: sqlite3.ErrFull}, want: Unavailable},
		{name: "read only", err: sqlite3.Error{Code: sqlite3.ErrReadonly}, want: Unavailable},
		{name: "io error", err: sqlite3.Error{Code: sqlite3.ErrIoErr}, want: Unavailable},
		{name: "not a database", err: sqlite3.Error{Code: sqlite3.ErrNotADB}, want: Unavailable},
		{name: "constraint", err: sqlite3.Error{Code: sqlite3.ErrConstraint}, want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}
