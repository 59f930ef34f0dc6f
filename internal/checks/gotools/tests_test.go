package gotools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/go-preen/internal/checks"
)

func TestTestsCheckMetadata(t *testing.T) {
	check := NewTestsCheck(t.TempDir())
	assert.Equal(t, "tests", check.Name())
	assert.False(t, check.CanFix())
}

func TestParseTestOutput(t *testing.T) {
	output := `ok  	github.com/acme/widget	0.012s
--- FAIL: TestSomething (0.00s)
    widget_test.go:10: expected 2, got 3
FAIL
FAIL	github.com/acme/widget/internal/core	0.034s
FAIL	github.com/acme/widget/internal/util	0.002s
`
	issues := parseTestOutput("tests", output)
	require.Len(t, issues, 2)

	assert.Equal(t, checks.SeverityError, issues[0].Severity)
	assert.Equal(t, "package github.com/acme/widget/internal/core has failing tests", issues[0].Description)
	assert.Equal(t, "package github.com/acme/widget/internal/util has failing tests", issues[1].Description)
}

func TestParseTestOutputFallback(t *testing.T) {
	issues := parseTestOutput("tests", "build constraints exclude all Go files\n")
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Description, "go test failed")
}
