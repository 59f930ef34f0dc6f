package builtin

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mrz1836/go-preen/internal/checks"
	"github.com/mrz1836/go-preen/internal/gitmeta"
	"github.com/mrz1836/go-preen/internal/manifest"
)

// VersionCheck verifies that the manifest version agrees with
// CITATION.cff and the latest git tag
type VersionCheck struct {
	projectRoot string
}

// NewVersionCheck creates a new version consistency check
func NewVersionCheck(projectRoot string) checks.Check {
	return &VersionCheck{projectRoot: projectRoot}
}

// Name returns the name of the check
func (c *VersionCheck) Name() string {
	return "version"
}

// Description returns a brief description of the check
func (c *VersionCheck) Description() string {
	return "Ensure manifest, citation and git tag versions agree"
}

// CanFix reports that this check is report-only
func (c *VersionCheck) CanFix() bool {
	return false
}

// Run executes the version consistency check
func (c *VersionCheck) Run() (*checks.CheckResult, error) {
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

	// CITATION.cff disagreement is an error; the citation check owns the fix
	if cffVersion, ok := c.citationVersion(); ok && cffVersion != m.Version {
		result.Passed = false
		result.Issues = append(result.Issues, checks.Issue{
			Check:    c.Name(),
			Severity: checks.SeverityError,
			Description: fmt.Sprintf("CITATION.cff version %s does not match manifest version %s",
				cffVersion, m.Version),
			File: "CITATION.cff",
		})
	}

	// A manifest version ahead of the latest tag is normal unreleased
	// state and only worth an informational notice. A tag ahead of the
	// manifest means a release happened without bumping the manifest.
	if tag := gitmeta.LatestTag(c.projectRoot, m.TagPrefix); tag != "" {
		tagVersion := strings.TrimPrefix(tag, m.TagPrefix)
		if tagVersion != m.Version {
			if cmp, ok := gitmeta.CompareVersions(m.Version, tagVersion); ok && cmp < 0 {
				result.Passed = false
				result.Issues = append(result.Issues, checks.Issue{
					Check:    c.Name(),
					Severity: checks.SeverityError,
					Description: fmt.Sprintf("latest git tag %s is ahead of manifest version %s",
						tag, m.Version),
					File: manifest.FileName,
				})
			} else {
				result.Issues = append(result.Issues, checks.Issue{
					Check:    c.Name(),
					Severity: checks.SeverityInfo,
					Description: fmt.Sprintf("manifest version %s is ahead of latest git tag %s",
						m.Version, tag),
					File: manifest.FileName,
				})
			}
		}
	}

	return result, nil
}

// citationVersion reads the version field from CITATION.cff when present
func (c *VersionCheck) citationVersion() (string, bool) {
	data, err := os.ReadFile(filepath.Join(c.projectRoot, "CITATION.cff")) // #nosec G304 - path is rooted in the project directory
	if err != nil {
		return "", false
	}

	var cff struct {
		Version string `yaml:"version"`
	}
	if err := yaml.Unmarshal(data, &cff); err != nil || cff.Version == "" {
		return "", false
	}
	return cff.Version, true
}
