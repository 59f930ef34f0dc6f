// Package manifest loads the .preen.yml project manifest, the single
// source of truth for derived files and metadata checks
package manifest

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	prerrors "github.com/mrz1836/go-preen/internal/errors"
	"github.com/mrz1836/go-preen/internal/gomod"
)

// FileName is the manifest file expected at the project root
const FileName = ".preen.yml"

// Author identifies one package author
type Author struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email,omitempty"`
}

// Manifest is the declarative project description
type Manifest struct {
	Name          string   `yaml:"name"`
	Version       string   `yaml:"version"`
	Description   string   `yaml:"description,omitempty"`
	License       string   `yaml:"license,omitempty"`
	Repository    string   `yaml:"repository,omitempty"`
	Authors       []Author `yaml:"authors,omitempty"`
	CIGoVersions  []string `yaml:"ci_go_versions,omitempty"`
	CIOS          []string `yaml:"ci_os,omitempty"`
	ReleaseBranch string   `yaml:"release_branch,omitempty"`
	TagPrefix     string   `yaml:"tag_prefix,omitempty"`
	SkipChecks    []string `yaml:"skip_checks,omitempty"`
}

// Load reads and parses the manifest at projectRoot, applying defaults for
// absent fields. Name and Repository fall back to the go.mod module path
// when available.
func Load(projectRoot string) (*Manifest, error) {
	manifestPath := filepath.Join(projectRoot, FileName)

	data, err := os.ReadFile(manifestPath) // #nosec G304 - path is rooted in the project directory
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w at %s", prerrors.ErrManifestNotFound, manifestPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", manifestPath, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %s", prerrors.ErrManifestInvalid, err)
	}

	m.applyDefaults(projectRoot)
	return &m, nil
}

func (m *Manifest) applyDefaults(projectRoot string) {
	modulePath, modErr := gomod.ModulePath(projectRoot)

	if m.Name == "" {
		if modErr == nil {
			m.Name = path.Base(modulePath)
		} else {
			m.Name = filepath.Base(projectRoot)
		}
	}
	if m.Repository == "" && modErr == nil && looksLikeURL(modulePath) {
		m.Repository = "https://" + modulePath
	}
	if m.Version == "" {
		m.Version = "0.0.0"
	}
	if m.License == "" {
		m.License = "Unknown"
	}
	if len(m.CIGoVersions) == 0 {
		m.CIGoVersions = []string{"oldstable", "stable"}
	}
	if len(m.CIOS) == 0 {
		m.CIOS = []string{"ubuntu-latest"}
	}
	if m.ReleaseBranch == "" {
		m.ReleaseBranch = "main"
	}
	if m.TagPrefix == "" {
		m.TagPrefix = "v"
	}
}

// looksLikeURL reports whether a module path starts with a real host
// (vanity paths like "example.com/pkg" qualify, "mymodule" does not)
func looksLikeURL(modulePath string) bool {
	host, _, found := strings.Cut(modulePath, "/")
	return found && strings.Contains(host, ".")
}
