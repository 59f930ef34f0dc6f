package main

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	prerrors "github.com/mrz1836/go-preen/internal/errors"
)

func TestReportError(t *testing.T) {
	var buf bytes.Buffer
	reportError(&buf, errors.New("unknown flag: --bogus"))
	assert.Equal(t, "Error: unknown flag: --bogus\n", buf.String())
}

func TestReportErrorWrapped(t *testing.T) {
	var buf bytes.Buffer
	reportError(&buf, fmt.Errorf("loading config: %w", errors.New("permission denied")))
	assert.Contains(t, buf.String(), "permission denied")
}

func TestReportErrorChecksFailedIsSilent(t *testing.T) {
	// The check command already printed every issue; only the exit code
	// carries the failure
	var buf bytes.Buffer
	reportError(&buf, prerrors.ErrChecksFailed)
	assert.Empty(t, buf.String())
}
