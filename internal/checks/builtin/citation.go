// Package builtin provides the filesystem-level hygiene checks
package builtin

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mrz1836/go-preen/internal/checks"
	"github.com/mrz1836/go-preen/internal/manifest"
	"github.com/mrz1836/go-preen/internal/syncer"
)

// CitationCheck verifies that CITATION.cff exists and carries the
// manifest's version
type CitationCheck struct {
	projectRoot string
}

// NewCitationCheck creates a new citation check
func NewCitationCheck(projectRoot string) checks.Check {
	return &CitationCheck{projectRoot: projectRoot}
}

// Name returns the name of the check
func (c *CitationCheck) Name() string {
	return "citation"
}

// Description returns a brief description of the check
func (c *CitationCheck) Description() string {
	return "Ensure CITATION.cff exists and matches the manifest"
}

// CanFix reports that this check proposes fixes
func (c *CitationCheck) CanFix() bool {
	return true
}

// Run executes the citation check
func (c *CitationCheck) Run() (*checks.CheckResult, error) {
	result := &checks.CheckResult{Check: c.Name(), Passed: true}

	m, err := manifest.Load(c.projectRoot)
	if err != nil {
		result.Passed = false
		result.Issues = append(result.Issues, checks.Issue{
			Check:       c.Name(),
			Severity:    checks.SeverityError,
			Description: err.Error(),
			File:        manifest.FileName,
		})
		return result, nil
	}

	citationPath := filepath.Join(c.projectRoot, "CITATION.cff")
	rendered := syncer.RenderCitation(m)

	data, err := os.ReadFile(citationPath) // #nosec G304 - path is rooted in the project directory
	if os.IsNotExist(err) {
		result.Passed = false
		result.Issues = append(result.Issues, checks.Issue{
			Check:       c.Name(),
			Severity:    checks.SeverityWarning,
			Description: "CITATION.cff is missing",
			File:        "CITATION.cff",
			Fix:         checks.NewFileWriteFix("create CITATION.cff from .preen.yml", citationPath, []byte(rendered)),
		})
		return result, nil
	}
	if err != nil {
		result.Passed = false
		result.Issues = append(result.Issues, checks.Issue{
			Check:       c.Name(),
			Severity:    checks.SeverityError,
			Description: "CITATION.cff is unreadable: " + err.Error(),
			File:        "CITATION.cff",
		})
		return result, nil
	}

	var cff struct {
		Version string `yaml:"version"`
	}
	if err := yaml.Unmarshal(data, &cff); err != nil {
		result.Passed = false
		result.Issues = append(result.Issues, checks.Issue{
			Check:       c.Name(),
			Severity:    checks.SeverityError,
			Description: "CITATION.cff is not valid YAML",
			File:        "CITATION.cff",
			Fix:         checks.NewFileWriteFix("regenerate CITATION.cff from .preen.yml", citationPath, []byte(rendered)),
		})
		return result, nil
	}

	if cff.Version != m.Version {
		result.Passed = false
		result.Issues = append(result.Issues, checks.Issue{
			Check:       c.Name(),
			Severity:    checks.SeverityError,
			Description: "CITATION.cff version " + cff.Version + " does not match manifest version " + m.Version,
			File:        "CITATION.cff",
			Fix:         checks.NewFileWriteFix("regenerate CITATION.cff from .preen.yml", citationPath, []byte(rendered)),
		})
	}

	return result, nil
}
