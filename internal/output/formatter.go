// Package output provides utilities for formatting user-facing output
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Formatter handles all terminal output for go-preen
type Formatter struct {
	colorEnabled bool
	out          io.Writer
	err          io.Writer
}

// Options for configuring the formatter
type Options struct {
	ColorEnabled bool
	Out          io.Writer
	Err          io.Writer
}

// New creates a new formatter with the given options
func New(opts Options) *Formatter {
	f := &Formatter{
		colorEnabled: opts.ColorEnabled,
		out:          opts.Out,
		err:          opts.Err,
	}

	if f.out == nil {
		f.out = os.Stdout
	}
	if f.err == nil {
		f.err = os.Stderr
	}

	return f
}

// ColorMode represents the color output mode
type ColorMode int

const (
	// ColorAuto automatically detects the best color setting
	ColorAuto ColorMode = iota
	// ColorAlways always enables color output
	ColorAlways
	// ColorNever never enables color output
	ColorNever
)

// NewDefault creates a formatter with default settings, respecting environment variables
func NewDefault() *Formatter {
	return NewWithColorMode(ColorAuto)
}

// NewWithColorMode creates a formatter with the specified color mode
func NewWithColorMode(mode ColorMode) *Formatter {
	return New(Options{
		ColorEnabled: shouldUseColor(mode),
		Out:          os.Stdout,
		Err:          os.Stderr,
	})
}

// shouldUseColor determines if color output should be enabled based on the mode
func shouldUseColor(mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	case ColorAuto:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if os.Getenv("PREEN_COLOR_OUTPUT") == "false" {
			return false
		}
		if os.Getenv("TERM") == "dumb" {
			return false
		}
		if isCI() {
			return false
		}
		return isatty.IsTerminal(os.Stdout.Fd())
	default:
		return false
	}
}

// isCI detects if we're running in a CI environment
func isCI() bool {
	ciEnvVars := []string{
		"CI",
		"GITHUB_ACTIONS",
		"GITLAB_CI",
		"JENKINS_URL",
		"CIRCLECI",
		"BUILDKITE",
	}

	for _, envVar := range ciEnvVars {
		if value := os.Getenv(envVar); value == "true" || value == "1" || (envVar != "CI" && value != "") {
			return true
		}
	}
	return false
}

// Success prints a success message with green checkmark
func (f *Formatter) Success(format string, args ...interface{}) {
	f.print(f.out, color.FgGreen, "✓ ", format, args...)
}

// Error prints an error message with red X
func (f *Formatter) Error(format string, args ...interface{}) {
	f.print(f.err, color.FgRed, "✗ ", format, args...)
}

// Warning prints a warning message with yellow warning symbol
func (f *Formatter) Warning(format string, args ...interface{}) {
	f.print(f.err, color.FgYellow, "⚠ ", format, args...)
}

// Info prints an info message with blue info symbol
func (f *Formatter) Info(format string, args ...interface{}) {
	f.print(f.out, color.FgBlue, "ℹ ", format, args...)
}

// Issue prints a detected issue, colored by its severity string
func (f *Formatter) Issue(severity, text string) {
	switch severity {
	case "error":
		f.print(f.out, color.FgRed, "  ", "%s", text)
	case "warning":
		f.print(f.out, color.FgYellow, "  ", "%s", text)
	default:
		f.print(f.out, color.FgBlue, "  ", "%s", text)
	}
}

// Detail prints detailed information with indentation
func (f *Formatter) Detail(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(f.out, "  "+format+"\n", args...)
}

// Header prints a section header
func (f *Formatter) Header(text string) {
	if f.colorEnabled {
		c := color.New(color.FgCyan, color.Bold)
		c.SetWriter(f.out)
		_, _ = c.Fprintf(f.out, "\n%s\n", text)
		c2 := color.New(color.FgCyan)
		c2.SetWriter(f.out)
		_, _ = c2.Fprintf(f.out, "%s\n", strings.Repeat("─", len([]rune(text))))
	} else {
		_, _ = fmt.Fprintf(f.out, "\n%s\n%s\n", text, strings.Repeat("─", len([]rune(text))))
	}
}

// Subheader prints a subsection header
func (f *Formatter) Subheader(text string) {
	if f.colorEnabled {
		c := color.New(color.FgWhite, color.Bold)
		c.SetWriter(f.out)
		_, _ = c.Fprintf(f.out, "\n%s:\n", text)
	} else {
		_, _ = fmt.Fprintf(f.out, "\n%s:\n", text)
	}
}

// CodeBlock prints text indented as a code block
func (f *Formatter) CodeBlock(text string) {
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		if f.colorEnabled {
			c := color.New(color.FgWhite, color.Faint)
			c.SetWriter(f.out)
			_, _ = c.Fprintf(f.out, "    %s\n", line)
		} else {
			_, _ = fmt.Fprintf(f.out, "    %s\n", line)
		}
	}
}

// SuggestAction prints an actionable suggestion
func (f *Formatter) SuggestAction(action string) {
	f.print(f.out, color.FgMagenta, "💡 ", "%s", action)
}

// Duration formats a duration for display
func (f *Formatter) Duration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dμs", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%.1fm", d.Minutes())
}

func (f *Formatter) print(w io.Writer, attr color.Attribute, prefix, format string, args ...interface{}) {
	if f.colorEnabled {
		c := color.New(attr)
		c.SetWriter(w)
		_, _ = c.Fprintf(w, prefix+format+"\n", args...)
	} else {
		_, _ = fmt.Fprintf(w, prefix+format+"\n", args...)
	}
}
