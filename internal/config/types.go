package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/RisingFlamesUK/kickstart-node-app/internal/options"
)

// Preset mirrors the on-disk preset document. Every field is optional; a
// nil pointer means the key was not present.
//
// Canonical keys follow the Configuration field names. The short aliases
// accepted by the original command line (pg, session, axios, passport,
// pgUser, ...) are read too; when both spellings appear the canonical key wins.
type Preset struct {
	ProjectName       *string     `yaml:"projectName"`
	IncludeDatabase   *bool       `yaml:"includeDatabase"`
	IncludeSessions   *bool       `yaml:"includeSessions"`
	IncludeHTTPClient *bool       `yaml:"includeHttpClient"`
	AuthStrategies    StrategySet `yaml:"authStrategies"`
	Port              *Scalar     `yaml:"port"`
	DryRun            *bool       `yaml:"dryRun"`
	Verbose           *bool       `yaml:"verbose"`
	NonInteractive    *bool       `yaml:"nonInteractive"`

	DatabaseCredentials *CredentialsSection `yaml:"databaseCredentials"`

	// Aliases.
	PG         *bool       `yaml:"pg"`
	Session    *bool       `yaml:"session"`
	Axios      *bool       `yaml:"axios"`
	Passport   StrategySet `yaml:"passport"`
	PGUser     *Scalar     `yaml:"pgUser"`
	PGPassword *Scalar     `yaml:"pgPassword"`
	PGDatabase *Scalar     `yaml:"pgDatabase"`
	PGHost     *Scalar     `yaml:"pgHost"`
	PGPort     *Scalar     `yaml:"pgPort"`
}

// CredentialsSection is the nested databaseCredentials object.
type CredentialsSection struct {
	User     *Scalar `yaml:"user"`
	Password *Scalar `yaml:"password"`
	Database *Scalar `yaml:"database"`
	Host     *Scalar `yaml:"host"`
	Port     *Scalar `yaml:"port"`
}

// Scalar is a string that also accepts numbers and booleans, so both
// "port": 5432 and "port": "5432" decode to the same value.
type Scalar string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Scalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar value", node.Line)
	}
	*s = Scalar(node.Value)
	return nil
}

// StrategySet accepts either a comma-separated string or a list of
// identifiers. A nil StrategySet means the key was absent; an empty
// non-nil one means "explicitly none".
type StrategySet []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StrategySet) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*s = options.ParseStrategies(node.Value)
		return nil
	case yaml.SequenceNode:
		var ids []string
		if err := node.Decode(&ids); err != nil {
			return err
		}
		*s = options.NormalizeStrategies(ids)
		return nil
	default:
		return fmt.Errorf("line %d: expected a string or a list of strategies", node.Line)
	}
}

// ToPartial converts the preset into an options layer.
func (p *Preset) ToPartial() options.Partial {
	out := options.Partial{
		ProjectName:       trimmed(p.ProjectName),
		IncludeDatabase:   firstBool(p.IncludeDatabase, p.PG),
		IncludeSessions:   firstBool(p.IncludeSessions, p.Session),
		IncludeHTTPClient: firstBool(p.IncludeHTTPClient, p.Axios),
		Port:              scalar(p.Port),
		DryRun:            p.DryRun,
		Verbose:           p.Verbose,
		NonInteractive:    p.NonInteractive,
	}

	switch {
	case p.AuthStrategies != nil:
		out.Strategies = []string(p.AuthStrategies)
	case p.Passport != nil:
		out.Strategies = []string(p.Passport)
	}

	creds := CredentialsSection{}
	if p.DatabaseCredentials != nil {
		creds = *p.DatabaseCredentials
	}
	out.Database = options.PartialCredentials{
		User:     scalar(firstScalar(creds.User, p.PGUser)),
		Password: scalar(firstScalar(creds.Password, p.PGPassword)),
		Name:     scalar(firstScalar(creds.Database, p.PGDatabase)),
		Host:     scalar(firstScalar(creds.Host, p.PGHost)),
		Port:     scalar(firstScalar(creds.Port, p.PGPort)),
	}

	return out
}

func firstBool(canonical, alias *bool) *bool {
	if canonical != nil {
		return canonical
	}
	return alias
}

func firstScalar(canonical, alias *Scalar) *Scalar {
	if canonical != nil {
		return canonical
	}
	return alias
}

func scalar(s *Scalar) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
