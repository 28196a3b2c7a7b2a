// Package git wraps the system git binary for the few operations a freshly
// generated project needs.
package git

import "errors"

// Sentinel errors for git operations.
var (
	// ErrSystemGitNotFound indicates git is not on PATH.
	ErrSystemGitNotFound = errors.New("git: executable not found in PATH")
)
