// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-diary/internal/service"
)

const browserDump = "testdata/browser_dump.json"

func TestImportThenExport(t *testing.T) {
	dir := t.TempDir()

	out, _, err := run(t, dir, "", "import", browserDump)
	require.NoError(t, err)
	assert.Equal(t, "Imported 2 entries, password imported.\n", out)

	out, prompt, err := run(t, dir, "hello\n", "export")
	require.NoError(t, err)
	assert.Equal(t, "Password: ", prompt)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "export_json", []byte(out))
}

func TestExport_YAML(t *testing.T) {
	dir := t.TempDir()
	_, _, err := run(t, dir, "", "import", browserDump)
	require.NoError(t, err)

	out, _, err := run(t, dir, "  hello  \n", "export", "--format", "yaml")
	require.NoError(t, err)

	var views []entryView
	require.NoError(t, yaml.Unmarshal([]byte(out), &views))
	require.Len(t, views, 2)

	assert.Equal(t, int64(1710410400000), views[0].ID)
	assert.Equal(t, "😴", views[0].Mood)
	assert.Nil(t, views[0].Image)
	assert.Equal(t, "2024-03-14T10:05:30.250Z", views[0].UpdatedAt)

	assert.Equal(t, "Untitled Entry", views[1].Title)
	require.NotNil(t, views[1].Image)
	assert.Equal(t, "data:image/png;base64,iVBORw0KGgo=", *views[1].Image)
}

func TestExport_Refused(t *testing.T) {
	dir := t.TempDir()

	_, _, err := run(t, dir, "hello\n", "export")
	assert.ErrorIs(t, err, service.ErrNotEnrolled)

	_, _, err = run(t, dir, "", "import", browserDump)
	require.NoError(t, err)

	out, _, err := run(t, dir, "wrong\n", "export")
	assert.ErrorIs(t, err, service.ErrWrongPassphrase)
	assert.Empty(t, out)

	_, _, err = run(t, dir, "\n", "export")
	assert.ErrorIs(t, err, service.ErrEmptyPassphrase)

	_, _, err = run(t, dir, "hello\n", "export", "--format", "xml")
	assert.ErrorContains(t, err, `invalid format "xml"`)
}

func TestImport_KeepsExistingPassword(t *testing.T) {
	dir := t.TempDir()
	_, _, err := run(t, dir, "", "import", browserDump)
	require.NoError(t, err)

	_, _, err = run(t, dir, "", "import", browserDump)
	assert.ErrorIs(t, err, service.ErrAlreadyEnrolled)

	out, _, err := run(t, dir, "", "import", "--force", browserDump)
	require.NoError(t, err)
	assert.Equal(t, "Imported 2 entries, password imported.\n", out)
}

func TestImport_MissingDump(t *testing.T) {
	dir := t.TempDir()

	_, _, err := run(t, dir, "", "import", filepath.Join(dir, "nope.json"))
	assert.ErrorContains(t, err, "open dump")

	_, _, err = run(t, dir, "", "import", dir)
	assert.ErrorContains(t, err, "is not a file")

	_, _, err = run(t, dir, "", "import")
	assert.Error(t, err)
}
