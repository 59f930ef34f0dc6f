package checks

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pmezard/go-difflib/difflib"
)

// NewFileWriteFix returns a fix that writes content to the file at path,
// creating parent directories as needed. The diff preview is computed
// against the current file content at construction time; a missing file
// diffs against empty content.
func NewFileWriteFix(description, path string, content []byte) *Fix {
	current, err := os.ReadFile(path) // #nosec G304 - path is chosen by the owning check
	if err != nil {
		current = nil
	}

	return &Fix{
		Description: description,
		Diff:        unifiedDiff(path, string(current), string(content)),
		Apply: func() error {
			if dir := filepath.Dir(path); dir != "." {
				if err := os.MkdirAll(dir, 0o750); err != nil {
					return fmt.Errorf("failed to create %s: %w", dir, err)
				}
			}
			if err := os.WriteFile(path, content, 0o600); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			return nil
		},
	}
}

// unifiedDiff renders a unified diff between old and new file content
func unifiedDiff(path, oldContent, newContent string) string {
	fromFile := path
	if oldContent == "" {
		fromFile = "/dev/null"
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(oldContent),
		B:        difflib.SplitLines(newContent),
		FromFile: fromFile,
		ToFile:   path,
		Context:  3,
	})
	if err != nil {
		return ""
	}
	return diff
}
