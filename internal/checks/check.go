// Package checks provides the check contract and result model for go-preen
package checks

import (
	"fmt"
	"strconv"
	"time"
)

// Severity classifies an issue found by a check
type Severity string

// Severity levels for issues
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Fix is a proposed remediation for a single issue. Apply is the only
// state-mutating operation in the check engine and must be safe to call
// once per accepted confirmation.
type Fix struct {
	// Description explains what applying the fix will do
	Description string

	// Diff is a unified-diff preview of the change
	Diff string

	// Apply performs the change against the project
	Apply func() error
}

// Preview returns the diff for this fix without applying it
func (f *Fix) Preview() string {
	return f.Diff
}

// Issue is one problem detected by a check
type Issue struct {
	// Check is the name of the check that produced this issue
	Check string

	// Severity classifies the issue
	Severity Severity

	// Description is a human-readable explanation
	Description string

	// File is the affected file, if any
	File string

	// Line is the affected line; meaningful only when File is set
	Line int

	// Fix is the proposed remediation, nil for report-only issues
	Fix *Fix
}

// String renders the issue as "[severity] check: description in file:line"
func (i Issue) String() string {
	s := fmt.Sprintf("[%s] %s: %s", i.Severity, i.Check, i.Description)
	if i.File != "" {
		s += " in " + i.File
		if i.Line > 0 {
			s += ":" + strconv.Itoa(i.Line)
		}
	}
	return s
}

// CheckResult is the outcome of one check execution. Passed and Issues are
// tracked independently; callers must not assume a passed result carries no
// issues.
type CheckResult struct {
	Check    string
	Passed   bool
	Issues   []Issue
	Duration time.Duration
}

// HasErrors reports whether any issue has error severity
func (r *CheckResult) HasErrors() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any issue has warning severity
func (r *CheckResult) HasWarnings() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityWarning {
			return true
		}
	}
	return false
}

// Check is the interface all hygiene checks implement
type Check interface {
	// Name returns the unique, stable identifier of the check
	Name() string

	// Description returns a brief summary of what the check validates
	Description() string

	// Run executes the check against the project root it was constructed
	// with. Validation failures are represented as issues on a result with
	// Passed=false; a non-nil error is reserved for unrecoverable setup
	// failures and aborts the whole run.
	Run() (*CheckResult, error)

	// CanFix reports whether this check is capable of producing issues
	// with attached fixes. Advisory only; fixability is determined
	// per-issue from the presence of a Fix.
	CanFix() bool
}

// Factory constructs a check against a project root
type Factory func(projectRoot string) Check
