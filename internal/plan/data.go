package plan

import (
	"strings"

	"github.com/RisingFlamesUK/kickstart-node-app/internal/options"
	"github.com/RisingFlamesUK/kickstart-node-app/internal/strategy"
)

// TemplateData is the value every rendered template executes against.
type TemplateData struct {
	ProjectName string
	ProjectSlug string
	Port        string

	IncludeDatabase   bool
	IncludeSessions   bool
	IncludeHTTPClient bool
	Database          options.Credentials

	// Strategies lists the resolved strategies in selection order.
	Strategies []StrategyData
	HasAuth    bool
	HasLocal   bool
	HasBearer  bool
	HasOAuth   bool

	// Strategy is the strategy being rendered; zero outside the
	// per-strategy phase.
	Strategy StrategyData
}

// StrategyData is the template view of one strategy descriptor.
type StrategyData struct {
	ID           string
	Label        string
	CallbackPath string
	Env          []EnvVar
	OAuth        bool // redirect-based provider
}

// EnvVar is one .env entry contributed by a strategy.
type EnvVar struct {
	Key    string
	Value  string
	Secret bool // generated at render time
}

// NewTemplateData derives template data from cfg. Unknown strategies are
// omitted.
func NewTemplateData(cfg options.Configuration) TemplateData {
	d := TemplateData{
		ProjectName:       cfg.ProjectName,
		ProjectSlug:       cfg.ProjectSlug,
		Port:              cfg.Port,
		IncludeDatabase:   cfg.IncludeDatabase,
		IncludeSessions:   cfg.IncludeSessions,
		IncludeHTTPClient: cfg.IncludeHTTPClient,
		Database:          cfg.Database,
	}

	for _, k := range cfg.Strategies() {
		sd := newStrategyData(k.Descriptor(), cfg.Port)
		d.Strategies = append(d.Strategies, sd)
		switch k {
		case strategy.Local:
			d.HasLocal = true
		case strategy.Bearer:
			d.HasBearer = true
		}
		if sd.OAuth {
			d.HasOAuth = true
		}
	}
	d.HasAuth = len(d.Strategies) > 0

	return d
}

func newStrategyData(desc strategy.Descriptor, port string) StrategyData {
	sd := StrategyData{
		ID:           desc.ID,
		Label:        desc.Label,
		CallbackPath: desc.CallbackPath,
		OAuth:        desc.CallbackPath != "",
	}
	base := "http://localhost:" + port
	for _, key := range desc.EnvKeys {
		ev := EnvVar{Key: key}
		switch {
		case key == "TOKEN_HASH_PEPPER":
			ev.Secret = true
		case key == "MICROSOFT_TENANT":
			ev.Value = "common"
		case key == "STEAM_REALM":
			ev.Value = base + "/"
		case strings.HasSuffix(key, "_CALLBACK_URL"), strings.HasSuffix(key, "_RETURN_URL"):
			ev.Value = base + desc.CallbackPath
		}
		sd.Env = append(sd.Env, ev)
	}
	return sd
}

// withStrategy returns a copy of d focused on s.
func (d TemplateData) withStrategy(s StrategyData) *TemplateData {
	d.Strategy = s
	return &d
}
