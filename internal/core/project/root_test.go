package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestResolveTarget(t *testing.T) {
	base := t.TempDir()

	got, err := ResolveTarget(base, "My Cool App")
	if err != nil {
		t.Fatalf("ResolveTarget: %v", err)
	}
	if want := filepath.Join(base, "My Cool App"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	for _, name := range []string{"", "  ", ".", "..", "a/b", `a\b`} {
		t.Run(name, func(t *testing.T) {
			if _, err := ResolveTarget(base, name); !errors.Is(err, ErrInvalidRoot) {
				t.Errorf("ResolveTarget(%q) error = %v, want ErrInvalidRoot", name, err)
			}
		})
	}
}

func TestCheckTarget(t *testing.T) {
	base := t.TempDir()

	if err := CheckTarget(filepath.Join(base, "missing")); err != nil {
		t.Errorf("missing dir: %v", err)
	}

	empty := filepath.Join(base, "empty")
	if err := os.Mkdir(empty, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := CheckTarget(empty); err != nil {
		t.Errorf("empty dir: %v", err)
	}

	full := filepath.Join(base, "full")
	if err := os.MkdirAll(filepath.Join(full, "x"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := CheckTarget(full); !errors.Is(err, ErrTargetNotEmpty) {
		t.Errorf("non-empty dir: got %v", err)
	}

	file := filepath.Join(base, "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := CheckTarget(file); !errors.Is(err, ErrInvalidRoot) {
		t.Errorf("regular file: got %v", err)
	}
}
