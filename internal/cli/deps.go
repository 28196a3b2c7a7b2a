// Package cli provides the Cobra command tree and the composition root
// that wires the generator packages together.
package cli

import (
	"io"
	"io/fs"
	"log/slog"

	"github.com/charmbracelet/log"

	"github.com/RisingFlamesUK/kickstart-node-app/internal/cli/wizard"
	"github.com/RisingFlamesUK/kickstart-node-app/internal/core/git"
	"github.com/RisingFlamesUK/kickstart-node-app/internal/core/npm"
	"github.com/RisingFlamesUK/kickstart-node-app/internal/core/project"
	"github.com/RisingFlamesUK/kickstart-node-app/internal/options"
	"github.com/RisingFlamesUK/kickstart-node-app/internal/template"
	"github.com/RisingFlamesUK/kickstart-node-app/internal/ui"
)

// Dependencies holds the services used by the commands. It is the only
// place where concrete collaborators are chosen; tests replace fields with
// fakes.
type Dependencies struct {
	Templates fs.FS
	Theme     *ui.Theme
	Headless  *ui.HeadlessManager

	// NewPackageManager and NewVCS receive the run's logger and, for npm,
	// the stream install output is copied to (nil buffers it).
	NewPackageManager func(logger *slog.Logger, output io.Writer) project.PackageManager
	NewVCS            func(logger *slog.Logger) project.VCS

	// NewPrompter returns nil when prompting is impossible.
	NewPrompter func() options.Prompter

	// WorkDir returns the directory projects are created in.
	WorkDir func() (string, error)
}

// NewDependencies wires the production collaborators.
func NewDependencies(getwd func() (string, error)) (*Dependencies, error) {
	tmpl, err := template.Embedded()
	if err != nil {
		return nil, err
	}

	d := &Dependencies{
		Templates: tmpl,
		Theme:     ui.NewTheme(false),
		Headless:  ui.NewHeadlessManager(),
		NewPackageManager: func(logger *slog.Logger, output io.Writer) project.PackageManager {
			if output == nil {
				return npm.NewManager(logger)
			}
			return npm.NewManager(logger, npm.WithOutput(output))
		},
		NewVCS: func(logger *slog.Logger) project.VCS {
			return git.NewManager(logger)
		},
		WorkDir: getwd,
	}
	d.NewPrompter = func() options.Prompter {
		if d.Headless.IsHeadless() {
			return nil
		}
		return wizard.New(d.Theme)
	}
	return d, nil
}

// newLogger builds the slog logger for one run: info level normally,
// debug level with timestamps when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	handler := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: verbose,
	})
	return slog.New(handler)
}
