package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, root, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, "package.json"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readManifest(t *testing.T, root string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestPatchManifest(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `{"name":"demo","version":"1.0.0","main":"index.js","scripts":{"test":"echo none"},"license":"ISC"}`)

	if err := PatchManifest(root); err != nil {
		t.Fatalf("PatchManifest: %v", err)
	}

	want := `{
  "name": "demo",
  "version": "1.0.0",
  "main": "index.js",
  "scripts": {
    "test": "echo none",
    "dev": "node app.js",
    "start": "node app.js"
  },
  "license": "ISC",
  "type": "module"
}
`
	if got := readManifest(t, root); got != want {
		t.Errorf("manifest =\n%s\nwant\n%s", got, want)
	}
}

func TestPatchManifest_KeepsExistingStart(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `{"type":"commonjs","scripts":{"start":"node server.js","dev":"nodemon"}}`)

	if err := PatchManifest(root); err != nil {
		t.Fatalf("PatchManifest: %v", err)
	}

	want := `{
  "type": "module",
  "scripts": {
    "start": "node server.js",
    "dev": "node app.js"
  }
}
`
	if got := readManifest(t, root); got != want {
		t.Errorf("manifest =\n%s\nwant\n%s", got, want)
	}
}

func TestPatchManifest_TokenScripts(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `{"name":"demo"}`)
	if err := os.MkdirAll(filepath.Join(root, "scripts"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "scripts", "token-cli.js"), nil, 0o755); err != nil {
		t.Fatal(err)
	}

	if err := PatchManifest(root); err != nil {
		t.Fatalf("PatchManifest: %v", err)
	}

	want := `{
  "name": "demo",
  "type": "module",
  "scripts": {
    "dev": "node app.js",
    "start": "node app.js",
    "user:create": "node scripts/token-cli.js user:create",
    "token:issue": "node scripts/token-cli.js token:issue"
  }
}
`
	if got := readManifest(t, root); got != want {
		t.Errorf("manifest =\n%s\nwant\n%s", got, want)
	}
}

func TestPatchManifest_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"array", `[1,2]`},
		{"truncated", `{"name":`},
		{"scripts_not_object", `{"scripts":"nope"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeManifest(t, root, tt.content)
			if err := PatchManifest(root); !errors.Is(err, ErrInvalidManifest) {
				t.Errorf("expected ErrInvalidManifest, got %v", err)
			}
		})
	}
}

func TestPatchManifest_Missing(t *testing.T) {
	if err := PatchManifest(t.TempDir()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
