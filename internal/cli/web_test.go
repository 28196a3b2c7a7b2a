package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/RisingFlamesUK/kickstart-node-app/internal/config"
	"github.com/RisingFlamesUK/kickstart-node-app/internal/core/project"
	"github.com/RisingFlamesUK/kickstart-node-app/internal/options"
	"github.com/RisingFlamesUK/kickstart-node-app/internal/template"
	"github.com/RisingFlamesUK/kickstart-node-app/internal/ui"
)

type fakeNpm struct {
	initCalls int
	installed []string
}

func (f *fakeNpm) Init(_ context.Context, dir string) error {
	f.initCalls++
	return os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"name":"app","version":"1.0.0"}`), 0o644)
}

func (f *fakeNpm) Install(_ context.Context, _ string, packages []string) error {
	f.installed = append(f.installed, packages...)
	return nil
}

type fakeVCS struct {
	commits []string
	staged  []string
}

func (f *fakeVCS) Init(context.Context, string) error { return nil }

func (f *fakeVCS) AddAll(_ context.Context, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		f.staged = append(f.staged, e.Name())
	}
	return nil
}

func (f *fakeVCS) Commit(_ context.Context, _ string, msg string) error {
	f.commits = append(f.commits, msg)
	return nil
}

type fakePrompter struct {
	features options.Partial
	calls    int
}

func (f *fakePrompter) PromptFeatures(context.Context) (options.Partial, error) {
	f.calls++
	return f.features, nil
}

func (f *fakePrompter) PromptCredentials(_ context.Context, _ []options.CredentialField, d options.Credentials) (options.PartialCredentials, error) {
	f.calls++
	return options.PartialCredentials{User: &d.User, Password: &d.Password, Name: &d.Name, Host: &d.Host, Port: &d.Port}, nil
}

type harness struct {
	deps     *Dependencies
	dir      string
	npm      *fakeNpm
	vcs      *fakeVCS
	prompter options.Prompter
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	tmpl, err := template.Embedded()
	if err != nil {
		t.Fatalf("Embedded: %v", err)
	}
	hm := ui.NewHeadlessManager()
	hm.ForceHeadless(true)

	h := &harness{dir: t.TempDir(), npm: &fakeNpm{}, vcs: &fakeVCS{}}
	h.deps = &Dependencies{
		Templates: tmpl,
		Theme:     &ui.Theme{NoColor: true, Colors: ui.DefaultColors},
		Headless:  hm,
		NewPackageManager: func(*slog.Logger, io.Writer) project.PackageManager {
			return h.npm
		},
		NewVCS: func(*slog.Logger) project.VCS {
			return h.vcs
		},
		NewPrompter: func() options.Prompter { return h.prompter },
		WorkDir:     func() (string, error) { return h.dir, nil },
	}
	return h
}

func (h *harness) run(args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	root := NewRootCmd(h.deps)
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestWeb_DryRun(t *testing.T) {
	h := newHarness(t)

	out, logs, err := h.run("web", "My App", "--pg", "--passport", "local", "--dry-run", "--silent")
	if err != nil {
		t.Fatalf("web: %v\n%s", err, logs)
	}

	if !strings.Contains(out, "ready to generate") {
		t.Errorf("missing dry-run banner:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(h.dir, "My App")); !os.IsNotExist(err) {
		t.Error("dry run created the project directory")
	}
	if h.npm.initCalls != 0 || len(h.vcs.commits) != 0 {
		t.Error("dry run called collaborators")
	}
	if !strings.Contains(logs, "would render") {
		t.Errorf("dry run should log each action:\n%s", logs)
	}
	if !strings.Contains(logs, "enabling both") {
		t.Errorf("auto-enable notice missing:\n%s", logs)
	}
}

func TestWeb_Live(t *testing.T) {
	h := newHarness(t)

	out, logs, err := h.run("web", "My App", "--passport", "local,bearer,foo", "--axios", "--silent")
	if err != nil {
		t.Fatalf("web: %v\n%s", err, logs)
	}

	root := filepath.Join(h.dir, "My App")
	for _, rel := range []string{"app.js", ".env", "NEXT_STEPS.md", "scripts/token-cli.js", "config/passport-local.js", "docs/axios.md"} {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel))); err != nil {
			t.Errorf("%s missing: %v", rel, err)
		}
	}

	manifest, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(manifest), `"user:create"`) {
		t.Errorf("package.json not patched:\n%s", manifest)
	}

	steps, err := os.ReadFile(filepath.Join(root, "NEXT_STEPS.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(steps), "### Local") || !strings.Contains(string(steps), "Bearer: Quickstart") {
		t.Errorf("NEXT_STEPS.md incomplete:\n%s", steps)
	}

	if !slices.Contains(h.vcs.staged, "NEXT_STEPS.md") {
		t.Errorf("NEXT_STEPS.md not part of the initial commit, staged %v", h.vcs.staged)
	}
	if len(h.vcs.commits) != 1 || h.vcs.commits[0] != project.CommitMessage {
		t.Errorf("commits = %v", h.vcs.commits)
	}
	if len(h.npm.installed) == 0 {
		t.Error("nothing installed")
	}
	if !strings.Contains(logs, "unknown authentication strategy") || !strings.Contains(logs, "foo") {
		t.Errorf("unknown strategy warning missing:\n%s", logs)
	}
	for _, want := range []string{"created successfully", "cd 'My App'", "npm run dev"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWeb_Preset(t *testing.T) {
	h := newHarness(t)
	h.prompter = &fakePrompter{}

	preset := filepath.Join(h.dir, "answers.json")
	body := `{"projectName": "ignored", "pg": true, "axios": true, "pgDatabase": "from_preset", "dryRun": true}`
	if err := os.WriteFile(preset, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	out, logs, err := h.run("web", "demo", "--preset", preset)
	if err != nil {
		t.Fatalf("web: %v\n%s", err, logs)
	}
	if h.prompter.(*fakePrompter).calls != 0 {
		t.Error("a preset run must not prompt")
	}
	if !strings.Contains(out, "Project demo ready to generate") {
		t.Errorf("CLI project name should win over the preset:\n%s", out)
	}
}

func TestWeb_PresetVerbose(t *testing.T) {
	h := newHarness(t)

	preset := filepath.Join(h.dir, "answers.yaml")
	if err := os.WriteFile(preset, []byte("verbose: true\ndryRun: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, logs, err := h.run("web", "demo", "--preset", preset)
	if err != nil {
		t.Fatalf("web: %v\n%s", err, logs)
	}
	if !strings.Contains(logs, "options normalized") {
		t.Errorf("verbose preset should print the resolved options:\n%s", logs)
	}
	if !strings.Contains(logs, "plan built") {
		t.Errorf("verbose preset should enable debug logging:\n%s", logs)
	}
}

func TestWeb_Interactive(t *testing.T) {
	h := newHarness(t)
	fp := &fakePrompter{features: options.Partial{IncludeHTTPClient: options.Ptr(true), Strategies: []string{}}}
	h.prompter = fp

	if _, logs, err := h.run("web", "demo", "--dry-run"); err != nil {
		t.Fatalf("web: %v\n%s", err, logs)
	}
	if fp.calls != 1 {
		t.Errorf("prompter calls = %d, want 1", fp.calls)
	}
}

func TestWeb_Errors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, h *harness)
		args  []string
		is    error
		msg   string
	}{
		{name: "no_name", args: []string{"web"}, msg: "accepts 1 arg"},
		{name: "bad_port", args: []string{"web", "demo", "--port", "http"}, msg: "invalid --port"},
		{name: "missing_preset", args: []string{"web", "demo", "--preset", "nope.json"}, is: config.ErrPresetNotFound},
		{name: "slash_in_name", args: []string{"web", "a/b", "--silent"}, is: project.ErrInvalidRoot},
		{
			name: "target_not_empty",
			setup: func(t *testing.T, h *harness) {
				if err := os.MkdirAll(filepath.Join(h.dir, "demo", "src"), 0o755); err != nil {
					t.Fatal(err)
				}
			},
			args: []string{"web", "demo", "--silent"},
			is:   project.ErrTargetNotEmpty,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			if tt.setup != nil {
				tt.setup(t, h)
			}
			_, _, err := h.run(tt.args...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("error = %v, want %v", err, tt.is)
			}
			if tt.msg != "" && !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error = %q, want it to mention %q", err, tt.msg)
			}
		})
	}
}

func TestQuoteArg(t *testing.T) {
	tests := map[string]string{
		"demo":      "demo",
		"My App":    "'My App'",
		"it's":      `'it'\''s'`,
		"café-app2": "café-app2",
	}
	for in, want := range tests {
		if got := quoteArg(in); got != want {
			t.Errorf("quoteArg(%q) = %q, want %q", in, got, want)
		}
	}
}
