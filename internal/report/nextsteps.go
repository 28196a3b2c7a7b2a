// Package report builds the NEXT_STEPS.md guidance written after a project
// is generated. It reads the resolved Configuration only; feature decisions
// are never re-derived here.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/RisingFlamesUK/kickstart-node-app/internal/defs"
	"github.com/RisingFlamesUK/kickstart-node-app/internal/options"
	"github.com/RisingFlamesUK/kickstart-node-app/internal/strategy"
)

// Commands shown in the bearer guidance.
const (
	userCreateExample = "npm run user:create -- --email you@example.com --password P@ssw0rd"
	tokenIssueExample = "npm run token:issue -- --email you@example.com --scopes read:me --ttl 3600"
)

// doc is one entry of the docs index.
type doc struct {
	label string
	path  string
}

// document accumulates markdown lines and numbers the H2 sections.
type document struct {
	lines []string
	step  int
}

func (d *document) add(lines ...string) {
	d.lines = append(d.lines, lines...)
}

func (d *document) section(title string) {
	d.step++
	d.add(fmt.Sprintf("## %d) %s", d.step, title))
}

func (d *document) rule() {
	d.add("---", "")
}

func (d *document) String() string {
	return strings.Join(d.lines, "\n")
}

// BuildNextSteps returns the NEXT_STEPS.md content for a generated project.
// strategies is the selected strategy list; identifiers without a registry
// entry contribute nothing. slug names the database in the createdb hint
// when no database name was configured.
func BuildNextSteps(projectName string, cfg options.Configuration, strategies []string, slug string) string {
	kinds := selectedKinds(strategies)
	hasAuth := len(kinds) > 0
	hasBearer := slices.Contains(kinds, strategy.Bearer)
	port := cfg.Port
	if port == "" {
		port = options.DefaultPort
	}

	d := &document{}
	d.add("# Next Steps", "",
		"Thanks for using **Kickstart Node**! 🚀",
		fmt.Sprintf("Your project **%s** is ready.", projectName),
		"")
	d.rule()

	d.add("## 📚 Docs")
	for _, entry := range docsIndex(cfg, kinds) {
		d.add(fmt.Sprintf("- **%s** → `%s`", entry.label, entry.path))
	}
	d.add("")
	d.rule()

	// Environment.
	d.section("Configure Environment Variables")
	d.add("Review these keys in `.env` (values may already be set from your flags/prompts):", "",
		"- **Server**", "  - PORT", "")
	if cfg.IncludeDatabase {
		d.add("- **PostgreSQL**", "  - PG_USER", "  - PG_PASS", "  - PG_DB", "  - PG_PORT", "  - PG_HOST", "")
	}
	if cfg.IncludeSessions {
		d.add("- **Session**", "  - SESSION_SECRET (optional; generated at runtime if missing)", "")
	}
	if hasAuth {
		d.add("- **OAuth/Passport**",
			"  - Ensure client IDs/secrets and callback URLs match your local dev port.",
			"  - Update the relevant `*_CLIENT_ID`, `*_CLIENT_SECRET`, and `*_CALLBACK_URL` keys in `.env`.",
			"")
	}
	if hasBearer {
		d.add("- **Bearer (optional hardening)**", "  - TOKEN_HASH_PEPPER", "")
	}
	d.add("> **Note:** After editing `.env`, restart the dev server so changes take effect.", "")
	d.rule()

	// Database.
	d.section("Database")
	if cfg.IncludeDatabase {
		name := cfg.Database.Name
		if name == "" {
			name = slug
		}
		d.add("Make sure Postgres is running and the database exists:",
			"```bash", "createdb "+name, "```", "")
	} else {
		d.add("No database selected. You can enable Postgres later and update `.env` accordingly.", "")
	}

	if hasAuth {
		d.section("Authentication Setup")
		for _, k := range localFirst(kinds) {
			d.add(strategySection(k, port)...)
		}
	}

	if hasBearer {
		d.section("Bearer: Quickstart (CLI + curl)")
		d.add("```bash",
			"# Create a local user (if needed)", userCreateExample, "",
			"# Issue a token for that user", tokenIssueExample, "",
			"# Call the demo protected endpoint (requires scope read:me)",
			curlExample(port),
			"```", "",
			"> Tokens are returned once — store them securely. Only a hash is stored in the DB.",
			"")
	}

	d.section("Start the Dev Server")
	d.add("```bash", "npm run dev", "```", "",
		"Then open http://localhost:"+port, "")
	d.rule()

	d.section("What's Next")
	if cfg.IncludeSessions {
		d.add("- Add CSRF protection to state-changing form POSTs.")
	}
	if hasBearer {
		d.add("- Add route-level scope checks (e.g., `ensureScope('read:me')`).")
	}
	d.add("- Add rate limiting to auth endpoints.", "- Keep dependencies up to date.", "")

	return d.String()
}

// Write stores content as NEXT_STEPS.md in dir.
func Write(dir, content string) error {
	path := filepath.Join(dir, defs.NextStepsMD)
	if err := os.WriteFile(path, []byte(content), defs.FilePerm); err != nil {
		return fmt.Errorf("write %s: %w", defs.NextStepsMD, err)
	}
	return nil
}

// selectedKinds resolves ids to registered kinds, dropping unknown and
// repeated identifiers.
func selectedKinds(ids []string) []strategy.Kind {
	var kinds []strategy.Kind
	for _, id := range ids {
		k, err := strategy.Parse(id)
		if err != nil || slices.Contains(kinds, k) {
			continue
		}
		kinds = append(kinds, k)
	}
	return kinds
}

func localFirst(kinds []strategy.Kind) []strategy.Kind {
	if !slices.Contains(kinds, strategy.Local) {
		return kinds
	}
	out := []strategy.Kind{strategy.Local}
	for _, k := range kinds {
		if k != strategy.Local {
			out = append(out, k)
		}
	}
	return out
}

// docsIndex lists the documents the planner renders for cfg. Strategy docs
// follow registry order.
func docsIndex(cfg options.Configuration, kinds []strategy.Kind) []doc {
	docs := []doc{{"Architecture & Flows", "docs/architecture.md"}}
	if cfg.IncludeDatabase {
		docs = append(docs, doc{"PostgreSQL", "docs/postgres.md"})
	}
	if cfg.IncludeSessions {
		docs = append(docs, doc{"Sessions", "docs/sessions.md"})
	}
	if cfg.IncludeHTTPClient {
		docs = append(docs, doc{"Axios", "docs/axios.md"})
	}
	for _, k := range strategy.All() {
		if !slices.Contains(kinds, k) {
			continue
		}
		for _, d := range k.Descriptor().Docs {
			docs = append(docs, doc{d.Label, d.Output})
		}
	}
	return docs
}

func curlExample(port string) string {
	return fmt.Sprintf(`curl -H "Authorization: Bearer <token>" http://localhost:%s/api/me`, port)
}
