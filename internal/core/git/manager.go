package git

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// DefaultCommitMessage is used for the commit recorded after generation.
const DefaultCommitMessage = "Initial commit"

// Identity used when git has none configured.
const (
	FallbackName  = "kickstart-node"
	FallbackEmail = "kickstart-node@localhost"
)

// Compile-time interface compliance check.
var _ Repository = (*gitManager)(nil)

// Repository initializes version control for a generated project.
type Repository interface {
	// Init creates an empty repository in dir.
	Init(ctx context.Context, dir string) error

	// AddAll stages every file in dir.
	AddAll(ctx context.Context, dir string) error

	// Commit records the staged files with message.
	Commit(ctx context.Context, dir, message string) error
}

// gitManager implements Repository using the system git binary.
type gitManager struct {
	logger *slog.Logger
}

// NewManager creates a Repository. A nil logger discards output.
func NewManager(logger *slog.Logger) Repository {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &gitManager{logger: logger.With("module", "git")}
}

// Init runs "git init" in dir.
func (m *gitManager) Init(ctx context.Context, dir string) error {
	m.logger.Debug("initializing repository", "dir", dir)
	if _, err := execGit(ctx, filepath.Clean(dir), "init"); err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	return nil
}

// AddAll runs "git add -A" in dir.
func (m *gitManager) AddAll(ctx context.Context, dir string) error {
	m.logger.Debug("staging files", "dir", dir)
	if _, err := execGit(ctx, filepath.Clean(dir), "add", "-A"); err != nil {
		return fmt.Errorf("stage files: %w", err)
	}
	return nil
}

// Commit runs "git commit -m message" in dir. When git has no user.name or
// user.email configured, FallbackName and FallbackEmail fill the gap;
// GIT_AUTHOR_* and GIT_COMMITTER_* still take precedence.
func (m *gitManager) Commit(ctx context.Context, dir, message string) error {
	if message == "" {
		message = DefaultCommitMessage
	}
	dir = filepath.Clean(dir)

	args := m.identityArgs(ctx, dir)
	args = append(args, "commit", "-m", message)

	m.logger.Debug("committing", "dir", dir, "message", message)
	if _, err := execGit(ctx, dir, args...); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (m *gitManager) identityArgs(ctx context.Context, dir string) []string {
	var args []string
	for _, kv := range [][2]string{{"user.name", FallbackName}, {"user.email", FallbackEmail}} {
		if v, err := execGit(ctx, dir, "config", "--get", kv[0]); err == nil && strings.TrimSpace(v) != "" {
			continue
		}
		m.logger.Debug("git identity not configured, using fallback", "key", kv[0], "value", kv[1])
		args = append(args, "-c", kv[0]+"="+kv[1])
	}
	return args
}

// execGit runs a git command in dir and returns trimmed stdout.
func execGit(ctx context.Context, dir string, args ...string) (string, error) {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		return "", fmt.Errorf("system git lookup: %w", ErrSystemGitNotFound)
	}

	cmd := exec.CommandContext(ctx, gitPath, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_TERMINAL_PROMPT=0",
		"LC_ALL=C",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrStr := strings.TrimSpace(stderr.String())
		if len(args) > 0 {
			return "", fmt.Errorf("git %s: %s: %w", args[0], stderrStr, err)
		}
		return "", fmt.Errorf("git: %s: %w", stderrStr, err)
	}

	return strings.TrimRight(stdout.String(), "\n\r"), nil
}
