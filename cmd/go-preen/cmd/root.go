// Package cmd implements the go-preen command tree
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrz1836/go-preen/internal/output"
)

//nolint:gochecknoglobals // Required by cobra
var (
	verbose   bool
	noColor   bool
	colorMode string
)

// Execute builds the root command and runs it
func Execute(version, commit, buildDate string) error {
	rootCmd := &cobra.Command{
		Use:   "go-preen",
		Short: "Opinionated CLI for Go package hygiene and release",
		Long: `go-preen keeps a Go package's ancillary files and release hygiene in
shape. It derives CITATION.cff, CI workflows and lint configuration from
a single .preen.yml manifest, and runs a set of independent hygiene
checks with optional automatic or interactive remediation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate)
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
`)

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output (same as --color=never)")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "Control color output: auto, always, never")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newSyncCmd())

	return rootCmd.Execute()
}

// newFormatter resolves the effective color mode from the persistent
// flags and the project configuration
func newFormatter(configColor bool) *output.Formatter {
	switch {
	case noColor || colorMode == "never" || !configColor:
		return output.NewWithColorMode(output.ColorNever)
	case colorMode == "always":
		return output.NewWithColorMode(output.ColorAlways)
	default:
		return output.NewWithColorMode(output.ColorAuto)
	}
}
