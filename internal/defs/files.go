// Package defs holds file names and permissions shared by the generator
// and the generated project layout.
package defs

import "io/fs"

// Files written at the root of a generated project.
const (
	// AppJS is the Express application entry point.
	AppJS = "app.js"

	// EnvFile holds generated secrets and placeholders.
	EnvFile = ".env"

	// GitIgnore lists paths excluded from the initial commit.
	GitIgnore = ".gitignore"

	// PackageJSON is the npm package manifest.
	PackageJSON = "package.json"

	// NextStepsMD is the post-generation guidance document.
	NextStepsMD = "NEXT_STEPS.md"

	// TokenCLI is the bearer credential/token helper script.
	TokenCLI = "scripts/token-cli.js"
)

// Permissions used when writing generated files.
const (
	DirPerm  fs.FileMode = 0o755
	FilePerm fs.FileMode = 0o644
	ExecPerm fs.FileMode = 0o755
)
