package project

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/RisingFlamesUK/kickstart-node-app/internal/defs"
	"github.com/RisingFlamesUK/kickstart-node-app/internal/plan"
	"github.com/RisingFlamesUK/kickstart-node-app/internal/template"
)

// CommitMessage is recorded by the InitVCS action.
const CommitMessage = "Initial commit"

// Mode selects between writing the project and only describing it.
type Mode int

const (
	// ModeLive performs every action.
	ModeLive Mode = iota
	// ModeDryRun logs every action and performs none.
	ModeDryRun
)

// String returns "live" or "dry-run".
func (m Mode) String() string {
	if m == ModeDryRun {
		return "dry-run"
	}
	return "live"
}

// ModeFor maps a dry-run flag to a Mode.
func ModeFor(dryRun bool) Mode {
	if dryRun {
		return ModeDryRun
	}
	return ModeLive
}

// PackageManager creates the manifest and installs packages.
type PackageManager interface {
	Init(ctx context.Context, dir string) error
	Install(ctx context.Context, dir string, packages []string) error
}

// VCS initializes version control and records the first commit.
type VCS interface {
	Init(ctx context.Context, dir string) error
	AddAll(ctx context.Context, dir string) error
	Commit(ctx context.Context, dir, message string) error
}

// Progress receives one increment per executed action.
type Progress interface {
	SetTitle(title string)
	Increment(n int)
	Done()
}

// Result summarizes an execution.
type Result struct {
	Root     string
	Mode     Mode
	Actions  int      // actions performed, or described in dry-run
	Files    []string // project-relative files written (planned, in dry-run)
	Packages []string // packages installed (planned, in dry-run)
}

// Executor runs generation plans.
type Executor struct {
	fsys     fs.FS
	renderer template.Renderer
	copier   template.Copier
	pm       PackageManager
	vcs      VCS
	progress Progress
	logger   *slog.Logger

	preCommit func(root string) error
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithProgress reports each action to p.
func WithProgress(p Progress) ExecutorOption {
	return func(e *Executor) {
		e.progress = p
	}
}

// WithPreCommit runs fn in live mode just before version control is
// initialized, so whatever it writes is part of the first commit.
func WithPreCommit(fn func(root string) error) ExecutorOption {
	return func(e *Executor) {
		e.preCommit = fn
	}
}

// NewExecutor creates an Executor over the template filesystem fsys. A nil
// logger discards output.
func NewExecutor(fsys fs.FS, pm PackageManager, vcs VCS, logger *slog.Logger, opts ...ExecutorOption) *Executor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	e := &Executor{
		fsys:     fsys,
		renderer: template.NewRenderer(fsys),
		copier:   template.NewCopier(fsys),
		pm:       pm,
		vcs:      vcs,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// execState carries per-run values between actions.
type execState struct {
	root     string
	packages []string
	result   *Result
}

// Execute runs p against root. Every template source is checked before
// the first action. Execution stops at the first failing action and
// returns an *ActionError; nothing is rolled back. In ModeDryRun no file is
// written and no collaborator is called.
func (e *Executor) Execute(ctx context.Context, root string, p *plan.Plan, mode Mode) (*Result, error) {
	root = filepath.Clean(root)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := e.preflight(root, p); err != nil {
		return nil, err
	}

	if mode == ModeLive {
		if err := CheckTarget(root); err != nil {
			return nil, err
		}
		if err := os.MkdirAll(root, defs.DirPerm); err != nil {
			return nil, fmt.Errorf("create %s: %w", root, err)
		}
	}

	e.logger.Info("generating project", "root", root, "mode", mode.String(), "actions", len(p.Actions))

	st := &execState{root: root, result: &Result{Root: root, Mode: mode}}
	for _, a := range p.Actions {
		if err := ctx.Err(); err != nil {
			return st.result, err
		}
		if e.progress != nil {
			e.progress.SetTitle(a.String())
		}

		if mode == ModeDryRun {
			e.logger.Info("would "+a.Kind.String(), "action", a.String())
			e.describe(st, a)
		} else {
			e.logger.Debug(a.Kind.String(), "action", a.String())
			if err := e.run(ctx, st, a); err != nil {
				return st.result, &ActionError{Action: a, Err: err}
			}
		}

		st.result.Actions++
		if e.progress != nil {
			e.progress.Increment(1)
		}
	}

	if e.progress != nil {
		e.progress.Done()
	}
	e.logger.Info("project generated", "root", root, "mode", mode.String(), "files", len(st.result.Files))
	return st.result, nil
}

// preflight verifies every template source and destination before anything
// is written.
func (e *Executor) preflight(root string, p *plan.Plan) error {
	for _, a := range p.Actions {
		if !a.Kind.WritesFile() {
			continue
		}
		if !template.Exists(e.fsys, a.Source) {
			return fmt.Errorf("preflight: %w: %s", template.ErrTemplateNotFound, a.Source)
		}
		if err := template.ValidateDestination(root, a.Destination); err != nil {
			return fmt.Errorf("preflight: %w", err)
		}
	}
	return nil
}

// describe records what a dry-run action would produce.
func (e *Executor) describe(st *execState, a plan.Action) {
	switch a.Kind {
	case plan.StaticCopy:
		files, err := e.copier.Files(a.Source)
		if err != nil {
			return
		}
		for _, f := range files {
			rel, err := filepath.Rel(filepath.FromSlash(a.Source), filepath.FromSlash(f))
			if err != nil {
				continue
			}
			st.result.Files = append(st.result.Files, filepath.ToSlash(filepath.Join(a.Destination, rel)))
		}
	case plan.Render:
		st.result.Files = append(st.result.Files, a.Destination)
	case plan.AddDependency:
		st.result.Packages = append(st.result.Packages, a.Source)
	}
}

func (e *Executor) run(ctx context.Context, st *execState, a plan.Action) error {
	switch a.Kind {
	case plan.StaticCopy:
		written, err := e.copier.CopyTree(ctx, st.root, a.Source, a.Destination)
		st.result.Files = append(st.result.Files, written...)
		return err

	case plan.Render:
		return e.render(st, a)

	case plan.MakeExecutable:
		return os.Chmod(filepath.Join(st.root, filepath.FromSlash(a.Destination)), defs.ExecPerm)

	case plan.AddDependency:
		st.packages = append(st.packages, a.Source)
		return nil

	case plan.InitManifest:
		return e.pm.Init(ctx, st.root)

	case plan.PatchManifest:
		return PatchManifest(st.root)

	case plan.InstallDependencies:
		if err := e.pm.Install(ctx, st.root, st.packages); err != nil {
			return err
		}
		st.result.Packages = append(st.result.Packages, st.packages...)
		return nil

	case plan.InitVCS:
		if e.preCommit != nil {
			if err := e.preCommit(st.root); err != nil {
				return fmt.Errorf("before commit: %w", err)
			}
		}
		if err := e.vcs.Init(ctx, st.root); err != nil {
			return err
		}
		if err := e.vcs.AddAll(ctx, st.root); err != nil {
			return err
		}
		return e.vcs.Commit(ctx, st.root, CommitMessage)

	default:
		return fmt.Errorf("unsupported action kind %s", a.Kind)
	}
}

func (e *Executor) render(st *execState, a plan.Action) error {
	out, err := e.renderer.Render(a.Source, a.Data)
	if err != nil {
		return err
	}

	if a.Destination == defs.EnvFile {
		if _, err := godotenv.UnmarshalBytes(out); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidEnv, err)
		}
	}

	dest := filepath.Join(st.root, filepath.FromSlash(a.Destination))
	if err := os.MkdirAll(filepath.Dir(dest), defs.DirPerm); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(dest), err)
	}
	if err := os.WriteFile(dest, out, defs.FilePerm); err != nil {
		return fmt.Errorf("write %s: %w", a.Destination, err)
	}

	st.result.Files = append(st.result.Files, a.Destination)
	return nil
}
