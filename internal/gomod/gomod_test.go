package gomod

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	prerrors "github.com/mrz1836/go-preen/internal/errors"
)

func TestModulePath(t *testing.T) {
	dir := t.TempDir()
	content := "// a comment\nmodule github.com/acme/widget\n\ngo 1.24\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte(content), 0o600))

	modulePath, err := ModulePath(dir)
	require.NoError(t, err)
	assert.Equal(t, "github.com/acme/widget", modulePath)
}

func TestModulePathIndented(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("  module  example.com/pkg  \n"), 0o600))

	modulePath, err := ModulePath(dir)
	require.NoError(t, err)
	assert.Equal(t, "example.com/pkg", modulePath)
}

func TestModulePathMissingFile(t *testing.T) {
	_, err := ModulePath(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "go.mod")
}

func TestModulePathNoModuleDirective(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("go 1.24\n"), 0o600))

	_, err := ModulePath(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, prerrors.ErrModuleDirectiveNotFound)
}
