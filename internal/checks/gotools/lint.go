// Package gotools provides hygiene checks that wrap the Go toolchain and
// related external tools
package gotools

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mrz1836/go-preen/internal/checks"
	"github.com/mrz1836/go-preen/internal/config"
)

// issueLineRe matches golangci-lint's "file.go:line:col: message" output
var issueLineRe = regexp.MustCompile(`^(\S+\.go):(\d+):(?:\d+:)?\s*(.+)$`)

// LintCheck runs golangci-lint against the project
type LintCheck struct {
	projectRoot string
	timeout     time.Duration
}

// NewLintCheck creates a new lint check
func NewLintCheck(projectRoot string) checks.Check {
	return &LintCheck{
		projectRoot: projectRoot,
		timeout:     time.Duration(config.IntEnv("PREEN_LINT_TIMEOUT", 60)) * time.Second,
	}
}

// Name returns the name of the check
func (c *LintCheck) Name() string {
	return "lint"
}

// Description returns a brief description of the check
func (c *LintCheck) Description() string {
	return "Run golangci-lint"
}

// CanFix reports that this check is report-only
func (c *LintCheck) CanFix() bool {
	return false
}

// Run executes the lint check. A missing golangci-lint binary is reported
// as a warning issue rather than failing the whole run.
func (c *LintCheck) Run() (*checks.CheckResult, error) {
	result := &checks.CheckResult{Check: c.Name(), Passed: true}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "golangci-lint", "run")
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
			Description: "golangci-lint is not installed (go install github.com/golangci/golangci-lint/v2/cmd/golangci-lint@latest)",
		})
		return result, nil
	}
	if ctx.Err() != nil {
		result.Passed = false
		result.Issues = append(result.Issues, checks.Issue{
			Check:       c.Name(),
			Severity:    checks.SeverityError,
			Description: "golangci-lint timed out after " + c.timeout.String(),
		})
		return result, nil
	}

	result.Passed = false
	result.Issues = append(result.Issues, parseLintOutput(c.Name(), out.String())...)
	return result, nil
}

// parseLintOutput turns golangci-lint output lines into issues. Output
// that matches no known pattern becomes a single issue so nothing is
// silently dropped.
func parseLintOutput(checkName, output string) []checks.Issue {
	var issues []checks.Issue

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		match := issueLineRe.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		lineNum, _ := strconv.Atoi(match[2])
		issues = append(issues, checks.Issue{
			Check:       checkName,
			Severity:    checks.SeverityError,
			Description: match[3],
			File:        match[1],
			Line:        lineNum,
		})
	}

	if len(issues) == 0 {
		issues = append(issues, checks.Issue{
			Check:       checkName,
			Severity:    checks.SeverityError,
			Description: "golangci-lint failed: " + strings.TrimSpace(output),
		})
	}
	return issues
}
