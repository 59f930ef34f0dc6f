package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	prerrors "github.com/mrz1836/go-preen/internal/errors"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o600))
}

func writeGoMod(t *testing.T, dir, modulePath string) {
	t.Helper()
	content := "module " + modulePath + "\n\ngo 1.24\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte(content), 0o600))
}

func TestLoadFullManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `name: widget
version: 1.2.3
description: A widget maker
license: MIT
repository: https://github.com/acme/widget
authors:
  - name: Ada Lovelace
    email: ada@example.com
ci_go_versions: ["1.23", "1.24"]
ci_os: [ubuntu-latest, macos-latest]
release_branch: trunk
tag_prefix: widget-v
skip_checks: [deps]
`)

	m, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "widget", m.Name)
	assert.Equal(t, "1.2.3", m.Version)
	assert.Equal(t, "MIT", m.License)
	assert.Equal(t, "https://github.com/acme/widget", m.Repository)
	require.Len(t, m.Authors, 1)
	assert.Equal(t, "Ada Lovelace", m.Authors[0].Name)
	assert.Equal(t, []string{"1.23", "1.24"}, m.CIGoVersions)
	assert.Equal(t, []string{"ubuntu-latest", "macos-latest"}, m.CIOS)
	assert.Equal(t, "trunk", m.ReleaseBranch)
	assert.Equal(t, "widget-v", m.TagPrefix)
	assert.Equal(t, []string{"deps"}, m.SkipChecks)
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "{}\n")

	m, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Base(dir), m.Name)
	assert.Equal(t, "0.0.0", m.Version)
	assert.Equal(t, "Unknown", m.License)
	assert.Empty(t, m.Repository)
	assert.Equal(t, []string{"oldstable", "stable"}, m.CIGoVersions)
	assert.Equal(t, []string{"ubuntu-latest"}, m.CIOS)
	assert.Equal(t, "main", m.ReleaseBranch)
	assert.Equal(t, "v", m.TagPrefix)
}

func TestLoadNameAndRepositoryFromGoMod(t *testing.T) {
	dir := t.TempDir()
	writeGoMod(t, dir, "github.com/acme/widget")
	writeManifest(t, dir, "version: 0.1.0\n")

	m, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "widget", m.Name)
	assert.Equal(t, "https://github.com/acme/widget", m.Repository)
}

func TestLoadBareModulePathHasNoRepository(t *testing.T) {
	dir := t.TempDir()
	writeGoMod(t, dir, "mymodule")
	writeManifest(t, dir, "{}\n")

	m, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "mymodule", m.Name)
	assert.Empty(t, m.Repository)
}

func TestLoadMissingManifest(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, prerrors.ErrManifestNotFound)
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "name: [unclosed\n")

	_, err := Load(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, prerrors.ErrManifestInvalid)
}

func TestLooksLikeURL(t *testing.T) {
	assert.True(t, looksLikeURL("github.com/acme/widget"))
	assert.True(t, looksLikeURL("example.com/pkg"))
	assert.False(t, looksLikeURL("mymodule"))
	assert.False(t, looksLikeURL("internal/tools"))
}
