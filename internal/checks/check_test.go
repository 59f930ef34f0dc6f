package checks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIssueString(t *testing.T) {
	tests := []struct {
		name     string
		issue    Issue
		expected string
	}{
		{
			name: "full location",
			issue: Issue{
				Check:       "lint",
				Severity:    SeverityWarning,
				Description: "line too long",
				File:        "a.go",
				Line:        10,
			},
			expected: "[warning] lint: line too long in a.go:10",
		},
		{
			name: "file without line",
			issue: Issue{
				Check:       "lint",
				Severity:    SeverityWarning,
				Description: "line too long",
				File:        "a.go",
			},
			expected: "[warning] lint: line too long in a.go",
		},
		{
			name: "no location",
			issue: Issue{
				Check:       "lint",
				Severity:    SeverityWarning,
				Description: "line too long",
			},
			expected: "[warning] lint: line too long",
		},
		{
			name: "line without file is ignored",
			issue: Issue{
				Check:       "tests",
				Severity:    SeverityError,
				Description: "boom",
				Line:        42,
			},
			expected: "[error] tests: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.issue.String())
		})
	}
}

func TestCheckResultPredicates(t *testing.T) {
	empty := &CheckResult{Check: "empty", Passed: true}
	assert.False(t, empty.HasErrors())
	assert.False(t, empty.HasWarnings())

	mixed := &CheckResult{
		Check: "mixed",
		Issues: []Issue{
			{Check: "mixed", Severity: SeverityInfo, Description: "notice"},
			{Check: "mixed", Severity: SeverityWarning, Description: "heads up"},
		},
	}
	assert.False(t, mixed.HasErrors())
	assert.True(t, mixed.HasWarnings())

	failing := &CheckResult{
		Check: "failing",
		Issues: []Issue{
			{Check: "failing", Severity: SeverityError, Description: "broken"},
		},
	}
	assert.True(t, failing.HasErrors())
	assert.False(t, failing.HasWarnings())
}

func TestFixPreview(t *testing.T) {
	applied := false
	fix := &Fix{
		Description: "do the thing",
		Diff:        "--- a\n+++ b\n",
		Apply: func() error {
			applied = true
			return nil
		},
	}

	assert.Equal(t, "--- a\n+++ b\n", fix.Preview())
	assert.False(t, applied, "preview must not apply the fix")

	assert.NoError(t, fix.Apply())
	assert.True(t, applied)
}

func TestCheckResultDurationStamping(t *testing.T) {
	result := &CheckResult{Check: "timed", Passed: true}
	assert.Zero(t, result.Duration)

	result.Duration = 5 * time.Millisecond
	assert.Equal(t, 5*time.Millisecond, result.Duration)
}
