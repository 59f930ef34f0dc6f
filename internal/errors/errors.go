// Package errors defines common errors for go-preen
package errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrChecksFailed is returned when strict mode finds issues
	ErrChecksFailed = errors.New("checks failed")

	// ErrManifestNotFound is returned when .preen.yml is missing
	ErrManifestNotFound = errors.New(".preen.yml not found")

	// ErrManifestInvalid is returned when .preen.yml cannot be parsed
	ErrManifestInvalid = errors.New("invalid .preen.yml")

	// ErrProjectRootNotFound is returned when the project root cannot be determined
	ErrProjectRootNotFound = errors.New("unable to determine project root")

	// ErrModuleDirectiveNotFound is returned when go.mod has no module directive
	ErrModuleDirectiveNotFound = errors.New("module directive not found in go.mod")
)

// FixError wraps a failure to apply a fix, identifying the issue whose
// remediation failed. Fix application is not transactional; a FixError
// means earlier fixes in the same run may already be applied.
type FixError struct {
	// Check is the name of the check that proposed the fix
	Check string

	// Description is the fix's own description
	Description string

	// Err is the underlying failure
	Err error
}

// Error implements the error interface
func (e *FixError) Error() string {
	return fmt.Sprintf("fix for check %q failed (%s): %v", e.Check, e.Description, e.Err)
}

// Unwrap implements the error unwrapping interface
func (e *FixError) Unwrap() error {
	return e.Err
}

// NewFixError creates a new FixError
func NewFixError(check, description string, err error) *FixError {
	return &FixError{Check: check, Description: description, Err: err}
}
