package plan

import (
	"fmt"
	"path"

	"github.com/RisingFlamesUK/kickstart-node-app/internal/defs"
	"github.com/RisingFlamesUK/kickstart-node-app/internal/options"
	"github.com/RisingFlamesUK/kickstart-node-app/internal/strategy"
	"github.com/RisingFlamesUK/kickstart-node-app/internal/template"
)

// builder accumulates actions for one Build call.
type builder struct {
	data    TemplateData
	actions []Action
	warns   []string
}

func (b *builder) copyTree(src, dst string) {
	b.actions = append(b.actions, Action{
		Kind:        StaticCopy,
		Source:      path.Join(template.StaticRoot, src),
		Destination: dst,
	})
}

func (b *builder) render(src, dst string) {
	d := b.data
	b.renderWith(src, dst, &d)
}

func (b *builder) renderWith(src, dst string, data *TemplateData) {
	b.actions = append(b.actions, Action{
		Kind:        Render,
		Source:      path.Join(template.RenderRoot, src),
		Destination: dst,
		Data:        data,
	})
}

func (b *builder) add(k Kind, dst string) {
	b.actions = append(b.actions, Action{Kind: k, Destination: dst})
}

// Build expands cfg into an ordered plan. The phase order is fixed:
// static copies, base files, HTTP client, database, sessions,
// authentication, dependencies, then the manifest and VCS steps.
// Equal configurations always produce equal plans.
func Build(cfg options.Configuration) *Plan {
	b := &builder{data: NewTemplateData(cfg)}

	// Static assets.
	b.copyTree("base/public", "public")
	b.copyTree("base/views", "views")

	// Base.
	b.render("base/app.js.tmpl", defs.AppJS)
	b.render("base/env.tmpl", defs.EnvFile)
	b.render("base/docs/architecture.md.tmpl", "docs/architecture.md")
	b.render("base/utils/validate-env.js.tmpl", "utils/validate-env.js")
	b.render("base/gitignore.tmpl", defs.GitIgnore)

	if cfg.IncludeHTTPClient {
		b.render("axios/docs/axios.md.tmpl", "docs/axios.md")
	}

	if cfg.IncludeDatabase {
		b.render("pg/config/database.js.tmpl", "config/database.js")
		b.render("pg/docs/postgres.md.tmpl", "docs/postgres.md")
	}

	if cfg.IncludeSessions {
		b.render("session/docs/sessions.md.tmpl", "docs/sessions.md")
		// Any selected strategy suppresses the standalone helper, even one
		// the registry does not know.
		if len(cfg.AuthStrategies) == 0 {
			b.render("session/utils/encryption-handler.js.tmpl", "utils/encryption-handler.js")
		}
	}

	b.planAuth(cfg)

	deps := Dependencies(cfg)
	for _, dep := range deps {
		b.actions = append(b.actions, Action{Kind: AddDependency, Source: dep})
	}

	b.add(InitManifest, defs.PackageJSON)
	b.add(PatchManifest, defs.PackageJSON)
	b.add(InstallDependencies, "")
	b.add(InitVCS, "")

	return &Plan{Actions: b.actions, Warnings: b.warns, Dependencies: deps}
}

func (b *builder) planAuth(cfg options.Configuration) {
	resolved := 0
	for _, id := range cfg.AuthStrategies {
		k, err := strategy.Parse(id)
		if err != nil {
			b.warns = append(b.warns, fmt.Sprintf("unknown authentication strategy %q skipped", id))
			continue
		}
		desc := k.Descriptor()
		sd := b.data.Strategies[resolved]
		resolved++

		b.renderWith(desc.Template, desc.Output, b.data.withStrategy(sd))

		if desc.RequiresTokenStore {
			b.render("passport/bearer/token-store.js.tmpl", "utils/token-store.js")
			b.render("passport/bearer/scopes.js.tmpl", "utils/scopes.js")
			b.render("passport/bearer/api-routes.js.tmpl", "routes/api.js")
			b.render("passport/bearer/token-cli.js.tmpl", defs.TokenCLI)
			b.add(MakeExecutable, defs.TokenCLI)
		}

		for _, doc := range desc.Docs {
			b.renderWith(doc.Template, doc.Output, b.data.withStrategy(sd))
		}
	}

	if resolved == 0 {
		return
	}

	b.render("passport/shared/users.js.tmpl", "config/users.js")
	b.render("passport/shared/auth-middleware.js.tmpl", "middleware/auth.js")
	b.render("passport/shared/auth-routes.js.tmpl", "routes/auth.js")
	b.render("passport/shared/login.ejs.tmpl", "views/login.ejs")
	// Replaces the static header copied in the first phase.
	b.render("passport/shared/header.ejs.tmpl", "views/partials/header.ejs")
	if b.data.HasLocal {
		b.render("passport/shared/register.ejs.tmpl", "views/register.ejs")
	}
}
