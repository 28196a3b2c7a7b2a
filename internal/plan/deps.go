package plan

import (
	"slices"

	"github.com/RisingFlamesUK/kickstart-node-app/internal/options"
)

var baseDependencies = []string{"express", "dotenv", "ejs"}

// Dependencies returns the npm packages cfg requires, sorted and
// de-duplicated. Unknown strategies contribute nothing.
func Dependencies(cfg options.Configuration) []string {
	deps := slices.Clone(baseDependencies)

	if cfg.IncludeDatabase {
		deps = append(deps, "pg")
	}
	if cfg.IncludeSessions {
		deps = append(deps, "express-session", "connect-pg-simple")
	}
	if cfg.IncludeHTTPClient {
		deps = append(deps, "axios")
	}

	kinds := cfg.Strategies()
	if len(kinds) > 0 {
		deps = append(deps, "passport", "bcrypt")
	}
	for _, k := range kinds {
		deps = append(deps, k.Descriptor().Dependencies...)
	}

	slices.Sort(deps)
	return slices.Compact(deps)
}
