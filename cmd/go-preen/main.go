// main is the entry point for the go-preen CLI
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mrz1836/go-preen/cmd/go-preen/cmd"
	prerrors "github.com/mrz1836/go-preen/internal/errors"
)

// Version information set by build flags
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	if err := cmd.Execute(version, commit, buildDate); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints err to w. ErrChecksFailed is excluded: the check
// command has already reported every issue and only the exit code remains.
func reportError(w io.Writer, err error) {
	if errors.Is(err, prerrors.ErrChecksFailed) {
		return
	}
	_, _ = fmt.Fprintf(w, "Error: %v\n", err)
}
