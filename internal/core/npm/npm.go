// Package npm wraps the npm executable for manifest creation and package
// installation.
package npm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/RisingFlamesUK/kickstart-node-app/internal/resilience"
)

// ErrNpmNotFound indicates npm is not on PATH.
var ErrNpmNotFound = errors.New("npm: executable not found in PATH")

// Manager runs package-manager commands inside a project directory.
type Manager interface {
	// Init creates package.json with npm defaults.
	Init(ctx context.Context, dir string) error

	// Install installs the given packages and records them in package.json.
	Install(ctx context.Context, dir string, packages []string) error
}

// Option configures a Manager.
type Option func(*npmManager)

// WithBinary overrides the executable name or path (default "npm").
func WithBinary(name string) Option {
	return func(m *npmManager) {
		m.binary = name
	}
}

// WithOutput streams install output to w instead of buffering it.
func WithOutput(w io.Writer) Option {
	return func(m *npmManager) {
		m.output = w
	}
}

// WithRetry sets the retry policy for installs.
func WithRetry(policy resilience.RetryPolicy) Option {
	return func(m *npmManager) {
		m.retry = policy
	}
}

// DefaultInstallRetry retries a failed install twice with backoff.
var DefaultInstallRetry = resilience.RetryPolicy{
	MaxRetries: 2,
	BaseDelay:  time.Second,
	MaxDelay:   5 * time.Second,
	UseJitter:  true,
	Permanent:  func(err error) bool { return errors.Is(err, ErrNpmNotFound) },
}

type npmManager struct {
	binary string
	output io.Writer
	retry  resilience.RetryPolicy
	logger *slog.Logger
}

// NewManager creates a Manager. A nil logger discards output.
func NewManager(logger *slog.Logger, opts ...Option) Manager {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	m := &npmManager{binary: "npm", retry: DefaultInstallRetry, logger: logger.With("module", "npm")}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init runs "npm init -y".
func (m *npmManager) Init(ctx context.Context, dir string) error {
	m.logger.Debug("npm init", "dir", dir)
	if err := m.run(ctx, dir, nil, "init", "-y"); err != nil {
		return fmt.Errorf("npm init: %w", err)
	}
	return nil
}

// Install runs "npm install <packages...>", retrying per the install
// policy. An empty list is a no-op.
func (m *npmManager) Install(ctx context.Context, dir string, packages []string) error {
	if len(packages) == 0 {
		return nil
	}
	m.logger.Debug("npm install", "dir", dir, "packages", packages)
	args := append([]string{"install"}, packages...)
	err := resilience.Retry(ctx, m.retry, func(attempt int) error {
		if attempt > 0 {
			m.logger.Warn("retrying npm install", "attempt", attempt+1)
		}
		return m.run(ctx, dir, m.output, args...)
	})
	if err != nil {
		return fmt.Errorf("npm install: %w", err)
	}
	return nil
}

// run executes npm in dir. When stream is nil, output is buffered and only
// stderr is reported on failure.
func (m *npmManager) run(ctx context.Context, dir string, stream io.Writer, args ...string) error {
	path, err := exec.LookPath(m.binary)
	if err != nil {
		return ErrNpmNotFound
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = filepath.Clean(dir)
	cmd.Env = append(os.Environ(), "npm_config_fund=false", "npm_config_audit=false")

	var stderr bytes.Buffer
	if stream != nil {
		cmd.Stdout = stream
		cmd.Stderr = io.MultiWriter(stream, &stderr)
	} else {
		cmd.Stdout = io.Discard
		cmd.Stderr = &stderr
	}

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w", msg, err)
		}
		return err
	}
	return nil
}
