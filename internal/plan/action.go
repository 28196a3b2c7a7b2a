// Package plan expands a resolved Configuration into the ordered list of
// generation actions. Planning is pure: no filesystem access, no clock, no
// map iteration.
package plan

import "fmt"

// Kind identifies what an Action does.
type Kind int

const (
	// StaticCopy copies a template subtree verbatim.
	StaticCopy Kind = iota + 1
	// Render executes a template and writes the result.
	Render
	// MakeExecutable marks an already written file as executable.
	MakeExecutable
	// AddDependency records one npm package for installation.
	AddDependency
	// InitManifest creates package.json.
	InitManifest
	// PatchManifest sets module type and scripts in package.json.
	PatchManifest
	// InstallDependencies installs every recorded package.
	InstallDependencies
	// InitVCS initializes the repository and records the first commit.
	InitVCS
)

var kindNames = [...]string{
	StaticCopy:          "copy",
	Render:              "render",
	MakeExecutable:      "chmod",
	AddDependency:       "dependency",
	InitManifest:        "npm-init",
	PatchManifest:       "patch-manifest",
	InstallDependencies: "npm-install",
	InitVCS:             "git-init",
}

// String returns a short, log-friendly name.
func (k Kind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// WritesFile reports whether the action produces files from templates.
func (k Kind) WritesFile() bool {
	return k == StaticCopy || k == Render
}

// Action is one step of a generation plan.
type Action struct {
	Kind Kind

	// Source is a path in the template filesystem (StaticCopy, Render) or
	// a package name (AddDependency).
	Source string

	// Destination is relative to the project root. Empty for actions that
	// do not target a single path.
	Destination string

	// Data is set for Render actions only.
	Data *TemplateData
}

// String describes the action for logs and error messages.
func (a Action) String() string {
	switch {
	case a.Source != "" && a.Destination != "":
		return fmt.Sprintf("%s %s → %s", a.Kind, a.Source, a.Destination)
	case a.Destination != "":
		return fmt.Sprintf("%s %s", a.Kind, a.Destination)
	case a.Source != "":
		return fmt.Sprintf("%s %s", a.Kind, a.Source)
	default:
		return a.Kind.String()
	}
}

// Plan is the planner output.
type Plan struct {
	Actions      []Action
	Warnings     []string
	Dependencies []string // sorted, de-duplicated package names
}

// Count returns the number of actions of kind k.
func (p *Plan) Count(k Kind) int {
	n := 0
	for _, a := range p.Actions {
		if a.Kind == k {
			n++
		}
	}
	return n
}
