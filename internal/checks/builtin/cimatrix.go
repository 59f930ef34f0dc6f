package builtin

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mrz1836/go-preen/internal/checks"
	"github.com/mrz1836/go-preen/internal/manifest"
	"github.com/mrz1836/go-preen/internal/syncer"
)

// ciWorkflowPath is relative to the project root
var ciWorkflowPath = filepath.Join(".github", "workflows", "ci.yml")

// CIMatrixCheck verifies that the CI workflow's go-version matrix matches
// the manifest's ci_go_versions
type CIMatrixCheck struct {
	projectRoot string
}

// NewCIMatrixCheck creates a new CI matrix check
func NewCIMatrixCheck(projectRoot string) checks.Check {
	return &CIMatrixCheck{projectRoot: projectRoot}
}

// Name returns the name of the check
func (c *CIMatrixCheck) Name() string {
	return "ci-matrix"
}

// Description returns a brief description of the check
func (c *CIMatrixCheck) Description() string {
	return "Ensure the CI go-version matrix matches the manifest"
}

// CanFix reports that this check proposes fixes
func (c *CIMatrixCheck) CanFix() bool {
	return true
}

// Run executes the CI matrix check
func (c *CIMatrixCheck) Run() (*checks.CheckResult, error) {
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

	workflowPath := filepath.Join(c.projectRoot, ciWorkflowPath)
	rendered := syncer.RenderCI(m)

	data, err := os.ReadFile(workflowPath) // #nosec G304 - path is rooted in the project directory
	if os.IsNotExist(err) {
		result.Passed = false
		result.Issues = append(result.Issues, checks.Issue{
			Check:       c.Name(),
			Severity:    checks.SeverityWarning,
			Description: "CI workflow is missing",
			File:        ciWorkflowPath,
			Fix:         checks.NewFileWriteFix("create CI workflow from .preen.yml", workflowPath, []byte(rendered)),
		})
		return result, nil
	}
	if err != nil {
		result.Passed = false
		result.Issues = append(result.Issues, checks.Issue{
			Check:       c.Name(),
			Severity:    checks.SeverityError,
			Description: "CI workflow is unreadable: " + err.Error(),
			File:        ciWorkflowPath,
		})
		return result, nil
	}

	versions, err := goVersionMatrix(data)
	if err != nil {
		result.Passed = false
		result.Issues = append(result.Issues, checks.Issue{
			Check:       c.Name(),
			Severity:    checks.SeverityError,
			Description: "CI workflow is malformed: " + err.Error(),
			File:        ciWorkflowPath,
			Fix:         checks.NewFileWriteFix("regenerate CI workflow from .preen.yml", workflowPath, []byte(rendered)),
		})
		return result, nil
	}

	if !equalStrings(versions, m.CIGoVersions) {
		result.Passed = false
		result.Issues = append(result.Issues, checks.Issue{
			Check:    c.Name(),
			Severity: checks.SeverityError,
			Description: fmt.Sprintf("CI go-version matrix %v does not match manifest ci_go_versions %v",
				versions, m.CIGoVersions),
			File: ciWorkflowPath,
			Fix:  checks.NewFileWriteFix("regenerate CI workflow from .preen.yml", workflowPath, []byte(rendered)),
		})
	}

	return result, nil
}

// goVersionMatrix extracts jobs.test.strategy.matrix.go-version from a
// workflow document
func goVersionMatrix(data []byte) ([]string, error) {
	var workflow struct {
		Jobs struct {
			Test struct {
				Strategy struct {
					Matrix struct {
						GoVersion []interface{} `yaml:"go-version"`
					} `yaml:"matrix"`
				} `yaml:"strategy"`
			} `yaml:"test"`
		} `yaml:"jobs"`
	}

	if err := yaml.Unmarshal(data, &workflow); err != nil {
		return nil, err
	}

	raw := workflow.Jobs.Test.Strategy.Matrix.GoVersion
	versions := make([]string, 0, len(raw))
	for _, entry := range raw {
		versions = append(versions, fmt.Sprint(entry))
	}
	return versions, nil
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
