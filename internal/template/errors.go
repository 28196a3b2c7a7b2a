// Package template holds the embedded project templates and the two ways
// they reach disk: strict text/template rendering and verbatim tree copies.
package template

import "errors"

// Sentinel errors for template operations.
var (
	// ErrTemplateNotFound indicates a template source is missing from the filesystem.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrMissingTemplateKey indicates the data lacked a key the template referenced.
	ErrMissingTemplateKey = errors.New("template: missing key")

	// ErrUnexpandedToken indicates a template action survived rendering.
	ErrUnexpandedToken = errors.New("template: unexpanded token in output")

	// ErrPathTraversal indicates a destination that escapes the project root.
	ErrPathTraversal = errors.New("template: path escapes project root")
)
