package gotools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/go-preen/internal/checks"
)

func TestLintCheckMetadata(t *testing.T) {
	check := NewLintCheck(t.TempDir())
	assert.Equal(t, "lint", check.Name())
	assert.NotEmpty(t, check.Description())
	assert.False(t, check.CanFix())
}

func TestLintCheckTimeoutFromEnv(t *testing.T) {
	t.Setenv("PREEN_LINT_TIMEOUT", "5")

	check, ok := NewLintCheck(t.TempDir()).(*LintCheck)
	require.True(t, ok)
	assert.Equal(t, "5s", check.timeout.String())
}

func TestParseLintOutput(t *testing.T) {
	output := `main.go:10:2: undefined: foo
pkg/util.go:33: exported function Bar should have comment
some unrelated noise
`
	issues := parseLintOutput("lint", output)
	require.Len(t, issues, 2)

	assert.Equal(t, "lint", issues[0].Check)
	assert.Equal(t, checks.SeverityError, issues[0].Severity)
	assert.Equal(t, "undefined: foo", issues[0].Description)
	assert.Equal(t, "main.go", issues[0].File)
	assert.Equal(t, 10, issues[0].Line)

	assert.Equal(t, "pkg/util.go", issues[1].File)
	assert.Equal(t, 33, issues[1].Line)
	assert.Equal(t, "exported function Bar should have comment", issues[1].Description)
}

func TestParseLintOutputFallback(t *testing.T) {
	issues := parseLintOutput("lint", "level=error msg=\"config file is broken\"\n")
	require.Len(t, issues, 1)
	assert.Equal(t, checks.SeverityError, issues[0].Severity)
	assert.Contains(t, issues[0].Description, "golangci-lint failed")
	assert.Empty(t, issues[0].File)
}
