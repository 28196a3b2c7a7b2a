// Package options turns raw generator input (CLI flags, interactive answers,
// preset files) into one consistent Configuration.
package options

import (
	"errors"
	"fmt"
)

// Sentinel errors for option normalization.
var (
	// ErrInvalidConfiguration indicates a value that cannot be auto-corrected.
	ErrInvalidConfiguration = errors.New("options: invalid configuration")

	// ErrMissingProjectName indicates no source supplied a project name.
	ErrMissingProjectName = errors.New("options: project name is required")

	// ErrInvalidPort indicates a port that is not a number in 1-65535.
	ErrInvalidPort = errors.New("options: port must be a number between 1 and 65535")
)

// ValidationError represents a single invalid field.
type ValidationError struct {
	Field   string
	Message string
	Value   any
	Wrapped error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation error: field %q: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("validation error: field %q: %s", e.Field, e.Message)
}

// Unwrap returns the underlying sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}

// Is lets errors.Is match ErrInvalidConfiguration for every validation error.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}
