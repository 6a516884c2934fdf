// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_Defaults(t *testing.T) {
	info := NewAppBuildInfo("", "", "")
	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}

func TestAppBuildInfo_String(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "2026-10-15", "abc123")
	assert.Equal(t, "Build version: 1.0.0\nBuild date: 2026-10-15\nBuild commit: abc123", info.String())

	var zero AppBuildInfo
	assert.Contains(t, zero.String(), "Build version: N/A")
}
