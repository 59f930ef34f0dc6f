package gotools

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/mrz1836/go-preen/internal/checks"
	"github.com/mrz1836/go-preen/internal/config"
)

// TestsCheck runs the project's test suite
type TestsCheck struct {
	projectRoot string
	timeout     time.Duration
}

// NewTestsCheck creates a new test suite check
func NewTestsCheck(projectRoot string) checks.Check {
	return &TestsCheck{
		projectRoot: projectRoot,
		timeout:     time.Duration(config.IntEnv("PREEN_TESTS_TIMEOUT", 120)) * time.Second,
	}
}

// Name returns the name of the check
func (c *TestsCheck) Name() string {
	return "tests"
}

// Description returns a brief description of the check
func (c *TestsCheck) Description() string {
	return "Run go test ./..."
}

// CanFix reports that this check is report-only
func (c *TestsCheck) CanFix() bool {
	return false
}

// Run executes the test suite check. A project with no Go packages passes.
func (c *TestsCheck) Run() (*checks.CheckResult, error) {
	result := &checks.CheckResult{Check: c.Name(), Passed: true}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "go", "test", "./...")
	cmd.Dir = c.projectRoot

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	if err == nil {
		return result, nil
	}

	if errors.Is(err, exec.ErrNotFound) {
		result.Passed = false
		result.Issues = append(result.Issues, checks.Issue{
			Check:       c.Name(),
			Severity:    checks.SeverityWarning,
			Description: "go toolchain is not installed",
		})
		return result, nil
	}
	if ctx.Err() != nil {
		result.Passed = false
		result.Issues = append(result.Issues, checks.Issue{
			Check:       c.Name(),
			Severity:    checks.SeverityError,
			Description: "go test timed out after " + c.timeout.String(),
		})
		return result, nil
	}

	output := out.String()
	if strings.Contains(output, "matched no packages") {
		// Nothing to test
		return result, nil
	}

	result.Passed = false
	result.Issues = append(result.Issues, parseTestOutput(c.Name(), output)...)
	return result, nil
}

// parseTestOutput extracts one issue per failing package from go test
// output ("FAIL\t<pkg>" lines)
func parseTestOutput(checkName, output string) []checks.Issue {
	var issues []checks.Issue

	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[0] != "FAIL" {
			continue
		}
		issues = append(issues, checks.Issue{
			Check:       checkName,
			Severity:    checks.SeverityError,
			Description: "package " + fields[1] + " has failing tests",
		})
	}

	if len(issues) == 0 {
		issues = append(issues, checks.Issue{
			Check:       checkName,
			Severity:    checks.SeverityError,
			Description: "go test failed: " + strings.TrimSpace(output),
		})
	}
	return issues
}
