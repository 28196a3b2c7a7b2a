package options

import (

	"github.com/RisingFlamesUK/kickstart-node-app/internal/strategy"
)

// Defaults applied during normalization.
const (
	DefaultPort     = "3000"
	DefaultDBUser   = "postgres"
	DefaultDBHost   = "localhost"
	DefaultDBPort   = "5432"
	DefaultSlug     = "app"
	DefaultPassword = ""
)

// Credentials holds the PostgreSQL connection settings written to .env.
type Credentials struct {
	User     string
	Password string
	Name     string
	Host     string
	Port     string
}

// Configuration is the fully resolved description of what to generate.
// It is passed by value once planning starts.
type Configuration struct {
	ProjectName string
	ProjectSlug string

	IncludeDatabase bool
	Database        Credentials // zero unless IncludeDatabase

	IncludeSessions   bool
	IncludeHTTPClient bool

	// AuthStrategies is an ordered set of lower-cased identifiers. Unknown
	// identifiers are kept here and reported by the planner.
	AuthStrategies []string

	Port string

	DryRun         bool
	Verbose        bool
	NonInteractive bool
}

// Strategies returns the registered kinds among AuthStrategies, in order.
func (c Configuration) Strategies() []strategy.Kind {
	var kinds []strategy.Kind
	for _, id := range c.AuthStrategies {
		if k, err := strategy.Parse(id); err == nil {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// LogArgs returns the resolved options as slog key/value pairs. The
// database password is never included.
func (c Configuration) LogArgs() []any {
	args := []any{
		"project", c.ProjectName,
		"slug", c.ProjectSlug,
		"database", c.IncludeDatabase,
		"sessions", c.IncludeSessions,
		"httpClient", c.IncludeHTTPClient,
		"strategies", c.AuthStrategies,
		"port", c.Port,
		"dryRun", c.DryRun,
	}
	if c.IncludeDatabase {
		args = append(args, "dbUser", c.Database.User, "dbName", c.Database.Name,
			"dbHost", c.Database.Host, "dbPort", c.Database.Port)
	}
	return args
}

// CredentialField names one of the five database credential fields.
type CredentialField string

const (
	FieldUser     CredentialField = "user"
	FieldPassword CredentialField = "password"
	FieldName     CredentialField = "database"
	FieldHost     CredentialField = "host"
	FieldPort     CredentialField = "port"
)

// CredentialFields lists the credential fields in prompt order.
func CredentialFields() []CredentialField {
	return []CredentialField{FieldUser, FieldPassword, FieldName, FieldHost, FieldPort}
}
