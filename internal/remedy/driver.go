// Package remedy turns a completed check run into fix application and an
// exit decision
package remedy

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/mrz1836/go-preen/internal/checks"
	prerrors "github.com/mrz1836/go-preen/internal/errors"
	"github.com/mrz1836/go-preen/internal/output"
	"github.com/mrz1836/go-preen/internal/runner"
)

// Options configures the remediation behavior for one run
type Options struct {
	// ApplyAll applies every collected fix without confirmation
	ApplyAll bool

	// Strict applies no fixes and demands a clean run: any issue at all
	// yields a failure outcome
	Strict bool
}

// Driver walks a run's results, reports issues, applies fixes per the run
// mode and computes the overall outcome
type Driver struct {
	formatter *output.Formatter
	in        io.Reader
	opts      Options
}

// New creates a driver. The reader feeds interactive confirmations; pass
// os.Stdin for terminal use.
func New(formatter *output.Formatter, in io.Reader, opts Options) *Driver {
	if in == nil {
		in = os.Stdin
	}
	return &Driver{formatter: formatter, in: in, opts: opts}
}

// Resolve reports every issue of every failed result, drives fix
// application and returns true when the invocation should exit
// successfully. Applying a fix never changes this run's outcome: strict
// mode fails on the issues that were found, not on what remains.
//
// A fix application error is fatal; remaining fixes are not attempted and
// there is no rollback of fixes already applied.
func (d *Driver) Resolve(results *runner.Results) (bool, error) {
	var fixable []checks.Issue
	totalIssues := 0
	hasErrors := false

	for pair := results.Oldest(); pair != nil; pair = pair.Next() {
		result := pair.Value
		totalIssues += len(result.Issues)
		if result.HasErrors() {
			hasErrors = true
		}
		for _, issue := range result.Issues {
			if issue.Fix != nil {
				fixable = append(fixable, issue)
			}
		}
	}

	// Issues on a passed result are counted but never displayed
	for pair := results.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.Passed {
			continue
		}
		for _, issue := range pair.Value.Issues {
			d.formatter.Issue(string(issue.Severity), issue.String())
		}
	}

	if len(fixable) > 0 {
		var err error
		switch {
		case d.opts.ApplyAll:
			err = d.applyAll(fixable)
		case d.opts.Strict:
			// No fixes in strict mode
		default:
			err = d.interactive(fixable)
		}
		if err != nil {
			return false, err
		}
	}

	if totalIssues > 0 {
		d.formatter.Warning("%d issue(s) found", totalIssues)
	}

	if d.opts.Strict && (totalIssues > 0 || hasErrors) {
		return false, nil
	}
	return true, nil
}

// applyAll applies every fix in collection order without confirmation
func (d *Driver) applyAll(fixable []checks.Issue) error {
	for _, issue := range fixable {
		if err := applyFix(issue); err != nil {
			return err
		}
		d.formatter.Success("Fixed: %s", issue.Fix.Description)
	}
	return nil
}

// interactive prompts once to enter remediation, then confirms each fix
// individually. Declining an individual fix skips it and moves on; there
// is no early exit.
func (d *Driver) interactive(fixable []checks.Issue) error {
	reader := bufio.NewReader(d.in)

	d.formatter.Info("%d fixable issue(s) found", len(fixable))
	if !d.confirm(reader, "Apply fixes interactively? [y/N] ") {
		return nil
	}

	fixed, skipped := 0, 0
	for _, issue := range fixable {
		d.formatter.Issue(string(issue.Severity), issue.String())
		d.formatter.Detail("Fix: %s", issue.Fix.Description)
		if preview := issue.Fix.Preview(); preview != "" {
			d.formatter.CodeBlock(preview)
		}

		if d.confirm(reader, "Apply this fix? [y/N] ") {
			if err := applyFix(issue); err != nil {
				return err
			}
			d.formatter.Success("Fixed: %s", issue.Fix.Description)
			fixed++
		} else {
			skipped++
		}
	}

	d.formatter.Detail("%d fixed, %d skipped", fixed, skipped)
	return nil
}

func (d *Driver) confirm(reader *bufio.Reader, prompt string) bool {
	d.formatter.Detail("%s", prompt)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func applyFix(issue checks.Issue) error {
	if err := issue.Fix.Apply(); err != nil {
		return prerrors.NewFixError(issue.Check, issue.Fix.Description, err)
	}
	return nil
}
