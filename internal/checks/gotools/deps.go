package gotools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"time"

	"github.com/mrz1836/go-preen/internal/checks"
	"github.com/mrz1836/go-preen/internal/config"
)

// DepsCheck reports direct dependencies with newer versions available
type DepsCheck struct {
	projectRoot string
	timeout     time.Duration
}

// NewDepsCheck creates a new dependency freshness check
func NewDepsCheck(projectRoot string) checks.Check {
	return &DepsCheck{
		projectRoot: projectRoot,
		timeout:     time.Duration(config.IntEnv("PREEN_DEPS_TIMEOUT", 30)) * time.Second,
	}
}

// Name returns the name of the check
func (c *DepsCheck) Name() string {
	return "deps"
}

// Description returns a brief description of the check
func (c *DepsCheck) Description() string {
	return "Report outdated direct dependencies"
}

// CanFix reports that this check is report-only; updating dependencies is
// a human decision
func (c *DepsCheck) CanFix() bool {
	return false
}

// listedModule is the subset of go list -m -json output we consume
type listedModule struct {
	Path     string
	Version  string
	Main     bool
	Indirect bool
	Update   *struct {
		Version string
	}
}

// Run executes the dependency freshness check
func (c *DepsCheck) Run() (*checks.CheckResult, error) {
	result := &checks.CheckResult{Check: c.Name(), Passed: true}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "go", "list", "-m", "-u", "-json", "all")
	cmd.Dir = c.projectRoot

	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			result.Passed = false
			result.Issues = append(result.Issues, checks.Issue{
				Check:       c.Name(),
				Severity:    checks.SeverityWarning,
				Description: "go toolchain is not installed",
			})
			return result, nil
		}
		result.Passed = false
		result.Issues = append(result.Issues, checks.Issue{
			Check:       c.Name(),
			Severity:    checks.SeverityWarning,
			Description: "go list -m -u failed: " + firstLine(errOut.String()),
			File:        "go.mod",
		})
		return result, nil
	}

	decoder := json.NewDecoder(&out)
	for {
		var mod listedModule
		if err := decoder.Decode(&mod); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			result.Passed = false
			result.Issues = append(result.Issues, checks.Issue{
				Check:       c.Name(),
				Severity:    checks.SeverityWarning,
				Description: "unable to parse go list output: " + err.Error(),
				File:        "go.mod",
			})
			return result, nil
		}

		if mod.Main || mod.Indirect || mod.Update == nil {
			continue
		}
		result.Issues = append(result.Issues, checks.Issue{
			Check:    c.Name(),
			Severity: checks.SeverityWarning,
			Description: fmt.Sprintf("dependency %s %s has update %s available",
				mod.Path, mod.Version, mod.Update.Version),
			File: "go.mod",
		})
	}

	result.Passed = len(result.Issues) == 0
	return result, nil
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
