// Package gomod reads module metadata from go.mod files
package gomod

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	prerrors "github.com/mrz1836/go-preen/internal/errors"
)

// ModulePath reads the module path from the go.mod in projectRoot.
// The module path is declared as "module <path>".
func ModulePath(projectRoot string) (string, error) {
	path := filepath.Join(projectRoot, "go.mod")
	data, err := os.ReadFile(path) // #nosec G304 - path is rooted in the project directory
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "module ") {
			modulePath := strings.TrimSpace(strings.TrimPrefix(line, "module "))
			if modulePath != "" {
				return modulePath, nil
			}
		}
	}

	return "", fmt.Errorf("%w in %s", prerrors.ErrModuleDirectiveNotFound, path)
}
