// Package syncer regenerates derived project files from the .preen.yml
// manifest. The manifest is the single source of truth; generated files
// are always safe to overwrite.
package syncer

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mrz1836/go-preen/internal/manifest"
)

// Banner opens every generated file so readers know not to edit by hand
const Banner = "# Synced from .preen.yml by go-preen\n# Regenerate with: go-preen sync\n\n"

// Output is one rendered file, relative to the project root
type Output struct {
	Path    string
	Content string
}

// SyncedFile records the write decision for one output
type SyncedFile struct {
	Path    string
	Changed bool
}

// Render produces every derived file for the given manifest
func Render(m *manifest.Manifest) []Output {
	return []Output{
		{Path: "CITATION.cff", Content: RenderCitation(m)},
		{Path: filepath.Join(".github", "workflows", "ci.yml"), Content: RenderCI(m)},
		{Path: filepath.Join(".github", "workflows", "release.yml"), Content: RenderRelease(m)},
		{Path: ".golangci.yml", Content: RenderLintConfig()},
	}
}

// Sync writes every rendered file beneath projectRoot, creating parent
// directories and touching only files whose content actually changed.
func Sync(projectRoot string, m *manifest.Manifest) ([]SyncedFile, error) {
	var synced []SyncedFile

	for _, out := range Render(m) {
		target := filepath.Join(projectRoot, out.Path)

		existing, err := os.ReadFile(target) // #nosec G304 - target is rooted in the project directory
		if err == nil && bytes.Equal(existing, []byte(out.Content)) {
			synced = append(synced, SyncedFile{Path: out.Path})
			continue
		}

		if dir := filepath.Dir(target); dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return synced, fmt.Errorf("failed to create %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(target, []byte(out.Content), 0o600); err != nil {
			return synced, fmt.Errorf("failed to write %s: %w", target, err)
		}
		synced = append(synced, SyncedFile{Path: out.Path, Changed: true})
	}

	return synced, nil
}

type citationAuthor struct {
	FamilyNames string `yaml:"family-names,omitempty"`
	GivenNames  string `yaml:"given-names,omitempty"`
	Email       string `yaml:"email,omitempty"`
}

type citationFile struct {
	CFFVersion     string           `yaml:"cff-version"`
	Message        string           `yaml:"message"`
	Title          string           `yaml:"title"`
	Version        string           `yaml:"version"`
	DateReleased   string           `yaml:"date-released"`
	URL            string           `yaml:"url,omitempty"`
	RepositoryCode string           `yaml:"repository-code,omitempty"`
	License        string           `yaml:"license,omitempty"`
	Authors        []citationAuthor `yaml:"authors,omitempty"`
}

// RenderCitation renders CITATION.cff from the manifest metadata
func RenderCitation(m *manifest.Manifest) string {
	cff := citationFile{
		CFFVersion:     "1.2.0",
		Message:        "If you use this software, please cite it as below.",
		Title:          m.Name,
		Version:        m.Version,
		DateReleased:   time.Now().UTC().Format("2006-01-02"),
		URL:            m.Repository,
		RepositoryCode: m.Repository,
		License:        m.License,
	}

	for _, author := range m.Authors {
		given, family := splitAuthorName(author.Name)
		cff.Authors = append(cff.Authors, citationAuthor{
			FamilyNames: family,
			GivenNames:  given,
			Email:       author.Email,
		})
	}

	data, err := yaml.Marshal(&cff)
	if err != nil {
		// Marshaling a plain struct cannot fail; keep the banner anyway
		return Banner
	}
	return Banner + string(data)
}

// splitAuthorName splits a display name into given and family parts. A
// single token is treated as a family name.
func splitAuthorName(name string) (given, family string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return "", parts[0]
	default:
		return strings.Join(parts[:len(parts)-1], " "), parts[len(parts)-1]
	}
}

// RenderCI renders the GitHub Actions CI workflow with the manifest's
// go-version and OS matrix
func RenderCI(m *manifest.Manifest) string {
	return Banner + fmt.Sprintf(`name: CI

on:
  push:
    branches: [%[1]s]
  pull_request:
    branches: [%[1]s]

jobs:
  test:
    runs-on: ${{ matrix.os }}
    strategy:
      fail-fast: false
      matrix:
        go-version: [%[2]s]
        os: [%[3]s]
    steps:
      - uses: actions/checkout@v4
      - uses: actions/setup-go@v5
        with:
          go-version: ${{ matrix.go-version }}
      - run: go build ./...
      - run: go test ./...

  lint:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v4
      - uses: actions/setup-go@v5
        with:
          go-version: stable
      - uses: golangci/golangci-lint-action@v8
`, m.ReleaseBranch, quoteList(m.CIGoVersions), strings.Join(m.CIOS, ", "))
}

// RenderRelease renders the tag-driven release workflow with a
// version-match guard against the manifest
func RenderRelease(m *manifest.Manifest) string {
	return Banner + fmt.Sprintf(`name: Release

on:
  workflow_dispatch:
    inputs:
      version:
        description: 'Version to release (must match .preen.yml)'
        required: true

jobs:
  release:
    runs-on: ubuntu-latest
    permissions:
      contents: write
    steps:
      - uses: actions/checkout@v4
      - uses: actions/setup-go@v5
        with:
          go-version: stable
      - name: Verify version matches
        run: |
          MANIFEST_VERSION=$(grep '^version:' .preen.yml | awk '{print $2}')
          if [ "$MANIFEST_VERSION" != "${{ inputs.version }}" ]; then
            echo "Version mismatch: .preen.yml has $MANIFEST_VERSION, input has ${{ inputs.version }}"
            exit 1
          fi
      - name: Build
        run: go build ./...
      - name: Create Git tag
        run: |
          git tag %[1]s${{ inputs.version }}
          git push origin %[1]s${{ inputs.version }}
`, m.TagPrefix)
}

// RenderLintConfig renders the golangci-lint configuration
func RenderLintConfig() string {
	return Banner + `version: "2"

run:
  timeout: 5m

linters:
  enable:
    - errcheck
    - govet
    - ineffassign
    - staticcheck
    - unused
`
}

// quoteList renders a YAML flow list body with each item quoted
func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = `"` + item + `"`
	}
	return strings.Join(quoted, ", ")
}
