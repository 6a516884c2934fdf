// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package attachment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStager_OnlyLatestReadStages(t *testing.T) {
	var s Stager

	first := s.Begin()
	second := s.Begin()

	assert.True(t, s.Complete(second, Result{DataURI: "data:image/png;base64,B"}))
	assert.False(t, s.Complete(first, Result{DataURI: "data:image/png;base64,A"}))

	require.NotNil(t, s.Staged())
	assert.Equal(t, "data:image/png;base64,B", *s.Staged())
}

func TestStager_FailedReadDiscards(t *testing.T) {
	var s Stager

	ok := s.Begin()
	s.Complete(ok, Result{DataURI: "data:image/gif;base64,R0lG"})
	require.NotNil(t, s.Staged())

	failed := s.Begin()
	assert.True(t, s.Complete(failed, Result{Err: errors.New("too large")}))
	assert.Nil(t, s.Staged())
}

func TestStager_ClearInvalidatesPendingRead(t *testing.T) {
	var s Stager

	pending := s.Begin()
	s.Clear()

	assert.False(t, s.Complete(pending, Result{DataURI: "data:image/png;base64,A"}))
	assert.Nil(t, s.Staged())
}

func TestStager_SetCopiesValue(t *testing.T) {
	var s Stager

	uri := "data:image/png;base64,A"
	s.Set(&uri)
	uri = "changed"

	require.NotNil(t, s.Staged())
	assert.Equal(t, "data:image/png;base64,A", *s.Staged())

	s.Set(nil)
	assert.Nil(t, s.Staged())
}
