// Package config provides environment-driven settings for go-preen
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EnvFileName is the optional per-project environment file loaded before
// reading PREEN_* variables. Real environment variables win over file
// entries.
const EnvFileName = ".preen.env"

// Config holds the environment-driven settings for go-preen
type Config struct {
	// UI settings
	ColorOutput bool // PREEN_COLOR_OUTPUT (default: true)

	// Strict turns any found issue into a failure exit code
	Strict bool // PREEN_STRICT (default: false)

	// SkipChecks lists check names excluded by default
	SkipChecks []string // PREEN_SKIP_CHECKS (comma-separated)

	// Check timeouts (in seconds)
	CheckTimeouts struct {
		Lint  int // PREEN_LINT_TIMEOUT (default: 60)
		Tests int // PREEN_TESTS_TIMEOUT (default: 120)
		Deps  int // PREEN_DEPS_TIMEOUT (default: 30)
	}
}

// Load reads configuration for the given project root. A missing
// .preen.env is not an error.
func Load(projectRoot string) (*Config, error) {
	envPath := filepath.Join(projectRoot, EnvFileName)
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", envPath, err)
		}
	}

	cfg := &Config{}
	cfg.ColorOutput = BoolEnv("PREEN_COLOR_OUTPUT", true)
	cfg.Strict = BoolEnv("PREEN_STRICT", false)
	cfg.SkipChecks = ListEnv("PREEN_SKIP_CHECKS")
	cfg.CheckTimeouts.Lint = IntEnv("PREEN_LINT_TIMEOUT", 60)
	cfg.CheckTimeouts.Tests = IntEnv("PREEN_TESTS_TIMEOUT", 120)
	cfg.CheckTimeouts.Deps = IntEnv("PREEN_DEPS_TIMEOUT", 30)

	return cfg, nil
}

// CombineSkips merges skip lists from multiple sources (CLI, environment,
// manifest), trimming whitespace and removing duplicates while keeping
// first-seen order.
func CombineSkips(sources ...[]string) []string {
	seen := make(map[string]bool)
	var combined []string

	for _, source := range sources {
		for _, name := range source {
			name = strings.TrimSpace(name)
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			combined = append(combined, name)
		}
	}

	return combined
}

// BoolEnv reads a boolean environment variable, falling back to
// defaultValue when unset or unparsable
func BoolEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// IntEnv reads an integer environment variable, falling back to
// defaultValue when unset or unparsable
func IntEnv(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// StringEnv reads a string environment variable with a default
func StringEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// ListEnv reads a comma-separated environment variable as a slice,
// dropping empty entries
func ListEnv(key string) []string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return nil
	}

	var items []string
	for _, part := range strings.Split(value, ",") {
		if cleaned := strings.TrimSpace(part); cleaned != "" {
			items = append(items, cleaned)
		}
	}
	return items
}
