package builtin

import (
	"os"
	"path/filepath"
	"testing"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/go-preen/internal/checks"
	"github.com/mrz1836/go-preen/internal/manifest"
)

func taggedProject(t *testing.T, manifestVersion, tag string) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	content := "name: widget\nversion: " + manifestVersion + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, manifest.FileName), []byte(content), 0o600))

	worktree, err := repo.Worktree()
	require.NoError(t, err)
	_, err = worktree.Add(manifest.FileName)
	require.NoError(t, err)

	commit, err := worktree.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com"},
	})
	require.NoError(t, err)

	if tag != "" {
		_, err = repo.CreateTag(tag, commit, nil)
		require.NoError(t, err)
	}

	return dir
}

func TestVersionCheckMetadata(t *testing.T) {
	check := NewVersionCheck(t.TempDir())
	assert.Equal(t, "version", check.Name())
	assert.False(t, check.CanFix())
}

func TestVersionCheckNoTagsPasses(t *testing.T) {
	dir := projectWithManifest(t, "name: widget\nversion: 1.0.0\n")

	result, err := NewVersionCheck(dir).Run()
	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.Empty(t, result.Issues)
}

func TestVersionCheckTagMatchesManifest(t *testing.T) {
	dir := taggedProject(t, "1.0.0", "v1.0.0")

	result, err := NewVersionCheck(dir).Run()
	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.Empty(t, result.Issues)
}

func TestVersionCheckManifestAheadOfTag(t *testing.T) {
	// Unreleased work in progress: informational only, the check still passes
	dir := taggedProject(t, "1.1.0", "v1.0.0")

	result, err := NewVersionCheck(dir).Run()
	require.NoError(t, err)

	assert.True(t, result.Passed)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, checks.SeverityInfo, result.Issues[0].Severity)
	assert.Contains(t, result.Issues[0].Description, "ahead of latest git tag")
}

func TestVersionCheckPreReleaseTagAheadOfManifest(t *testing.T) {
	// A pre-release tag is a real release event; the manifest must keep up
	dir := taggedProject(t, "1.0.0", "v1.0.1-rc1")

	result, err := NewVersionCheck(dir).Run()
	require.NoError(t, err)

	assert.False(t, result.Passed)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, checks.SeverityError, result.Issues[0].Severity)
	assert.Contains(t, result.Issues[0].Description, "v1.0.1-rc1")
}

func TestVersionCheckTagAheadOfManifest(t *testing.T) {
	dir := taggedProject(t, "1.0.0", "v1.1.0")

	result, err := NewVersionCheck(dir).Run()
	require.NoError(t, err)

	assert.False(t, result.Passed)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, checks.SeverityError, result.Issues[0].Severity)
	assert.Contains(t, result.Issues[0].Description, "v1.1.0")
}

func TestVersionCheckCitationMismatch(t *testing.T) {
	dir := projectWithManifest(t, "name: widget\nversion: 2.0.0\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "CITATION.cff"),
		[]byte("cff-version: 1.2.0\ntitle: widget\nversion: 1.0.0\n"), 0o600))

	result, err := NewVersionCheck(dir).Run()
	require.NoError(t, err)

	assert.False(t, result.Passed)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, checks.SeverityError, result.Issues[0].Severity)
	// This check reports only; the citation check owns the fix
	assert.Nil(t, result.Issues[0].Fix)
}

func TestVersionCheckMissingManifest(t *testing.T) {
	result, err := NewVersionCheck(t.TempDir()).Run()
	require.NoError(t, err)

	assert.False(t, result.Passed)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, checks.SeverityError, result.Issues[0].Severity)
}
