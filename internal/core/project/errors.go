// Package project executes generation plans against a target directory:
// template rendering and copying, package.json patching, and the npm and
// git collaborators.
package project

import (
	"errors"
	"fmt"

	"github.com/RisingFlamesUK/kickstart-node-app/internal/plan"
)

// Sentinel errors for the project package.
var (
	// ErrTargetNotEmpty indicates the target directory already has content.
	ErrTargetNotEmpty = errors.New("target directory exists and is not empty")

	// ErrInvalidRoot indicates the project name cannot be used as a directory.
	ErrInvalidRoot = errors.New("invalid project root path")

	// ErrInvalidEnv indicates the rendered .env file does not parse.
	ErrInvalidEnv = errors.New("rendered .env is not valid")

	// ErrInvalidManifest indicates package.json could not be read as a JSON object.
	ErrInvalidManifest = errors.New("package.json is not a JSON object")
)

// ActionError reports the plan action that failed.
type ActionError struct {
	Action plan.Action
	Err    error
}

// Error implements the error interface.
func (e *ActionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Action, e.Err)
}

// Unwrap returns the underlying error.
func (e *ActionError) Unwrap() error {
	return e.Err
}
