// Package version reports the kickstart-node build.
package version

import (
	"runtime/debug"
	"strings"
)

// Set with -ldflags "-X github.com/RisingFlamesUK/kickstart-node-app/pkg/version.Version=...".
var (
	Version = ""
	Commit  = ""
	Date    = ""
)

// Short returns the release version. Builds without ldflags fall back to
// the module version recorded by "go install", then to "dev".
func Short() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}

// Full returns the version followed by whatever commit and build date are
// known, e.g. "v1.2.0 (commit 3f2a9c1, built 2026-01-05)".
func Full() string {
	var extra []string
	if Commit != "" {
		extra = append(extra, "commit "+shortCommit(Commit))
	}
	if Date != "" {
		extra = append(extra, "built "+Date)
	}
	if len(extra) == 0 {
		return Short()
	}
	return Short() + " (" + strings.Join(extra, ", ") + ")"
}

func shortCommit(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}
