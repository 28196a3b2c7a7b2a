// Package config loads preset-answer files: JSON (or YAML) documents that
// pre-fill the generator's options so a run can proceed without prompts.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for preset loading.
var (
	// ErrPresetNotFound indicates the preset file does not exist.
	ErrPresetNotFound = errors.New("config: preset file not found")

	// ErrInvalidPreset indicates the preset is syntactically valid but holds
	// unusable values.
	ErrInvalidPreset = errors.New("config: invalid preset")

	// ErrInvalidYAML indicates the preset could not be parsed as JSON or YAML.
	ErrInvalidYAML = errors.New("config: invalid JSON/YAML syntax")
)

// ValidationError represents a single validation error with field context.
type ValidationError struct {
	Field   string
	Message string
	Value   any
	Wrapped error // underlying sentinel error for errors.Is support
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

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []ValidationError
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "validation: no errors"
	}
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("preset validation failed with %d error(s): %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Is supports errors.Is by checking contained validation errors against the target.
func (e *ValidationErrors) Is(target error) bool {
	if target == ErrInvalidPreset {
		return true
	}
	for _, ve := range e.Errors {
		if ve.Wrapped != nil && errors.Is(ve.Wrapped, target) {
			return true
		}
	}
	return false
}
