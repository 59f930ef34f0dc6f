package builtin

import (
	"os"
	"path/filepath"

	"github.com/mrz1836/go-preen/internal/checks"
	"github.com/mrz1836/go-preen/internal/manifest"
)

// StructureCheck verifies that the standard project files are present
type StructureCheck struct {
	projectRoot string
}

// NewStructureCheck creates a new structure check
func NewStructureCheck(projectRoot string) checks.Check {
	return &StructureCheck{projectRoot: projectRoot}
}

// Name returns the name of the check
func (c *StructureCheck) Name() string {
	return "structure"
}

// Description returns a brief description of the check
func (c *StructureCheck) Description() string {
	return "Ensure standard project files exist"
}

// CanFix reports that this check proposes fixes
func (c *StructureCheck) CanFix() bool {
	return true
}

// Run executes the structure check
func (c *StructureCheck) Run() (*checks.CheckResult, error) {
	result := &checks.CheckResult{Check: c.Name(), Passed: true}

	// go.mod and LICENSE cannot be synthesized; README and .gitignore
	// get stub-creating fixes.
	if !c.exists("go.mod") {
		result.Issues = append(result.Issues, checks.Issue{
			Check:       c.Name(),
			Severity:    checks.SeverityError,
			Description: "go.mod is missing",
			File:        "go.mod",
		})
	}
	if !c.exists("LICENSE") && !c.exists("LICENSE.md") {
		result.Issues = append(result.Issues, checks.Issue{
			Check:       c.Name(),
			Severity:    checks.SeverityError,
			Description: "LICENSE is missing",
			File:        "LICENSE",
		})
	}
	if !c.exists("README.md") {
		result.Issues = append(result.Issues, checks.Issue{
			Check:       c.Name(),
			Severity:    checks.SeverityWarning,
			Description: "README.md is missing",
			File:        "README.md",
			Fix: checks.NewFileWriteFix("create a README.md stub",
				filepath.Join(c.projectRoot, "README.md"), c.readmeStub()),
		})
	}
	if !c.exists(".gitignore") {
		result.Issues = append(result.Issues, checks.Issue{
			Check:       c.Name(),
			Severity:    checks.SeverityWarning,
			Description: ".gitignore is missing",
			File:        ".gitignore",
			Fix: checks.NewFileWriteFix("create a .gitignore for Go projects",
				filepath.Join(c.projectRoot, ".gitignore"), []byte(gitignoreStub)),
		})
	}

	result.Passed = len(result.Issues) == 0
	return result, nil
}

func (c *StructureCheck) exists(name string) bool {
	_, err := os.Stat(filepath.Join(c.projectRoot, name))
	return err == nil
}

func (c *StructureCheck) readmeStub() []byte {
	name := filepath.Base(c.projectRoot)
	description := ""
	if m, err := manifest.Load(c.projectRoot); err == nil {
		name = m.Name
		description = m.Description
	}

	stub := "# " + name + "\n"
	if description != "" {
		stub += "\n" + description + "\n"
	}
	return []byte(stub)
}

const gitignoreStub = `# Binaries and test artifacts
*.exe
*.test
*.out
cover.out

# Editor directories
.idea/
.vscode/
`
