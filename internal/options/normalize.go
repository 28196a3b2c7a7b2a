package options

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// Prompter asks the user for the values the other sources left open.
type Prompter interface {
	// PromptFeatures asks, in order: database, sessions (only when the
	// database was chosen), HTTP client, authentication on/off and the
	// strategy multi-select (only when authentication was chosen).
	PromptFeatures(ctx context.Context) (Partial, error)

	// PromptCredentials asks for exactly the missing fields, offering the
	// given defaults.
	PromptCredentials(ctx context.Context, missing []CredentialField, defaults Credentials) (PartialCredentials, error)
}

// Result is the output of Normalize.
type Result struct {
	Config  Configuration
	Notices []string // auto-corrections applied, in the order they happened
}

// Normalizer merges input layers and enforces feature prerequisites.
type Normalizer struct {
	prompter Prompter // nil disables prompting
	logger   *slog.Logger
}

// NewNormalizer creates a Normalizer. A nil prompter makes every run behave
// non-interactively; a nil logger discards output.
func NewNormalizer(prompter Prompter, logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Normalizer{prompter: prompter, logger: logger}
}

// Normalize resolves preset and CLI layers (plus interactive answers when
// needed) into a Configuration. Precedence, lowest first: preset, prompt
// answers, CLI flags.
func (n *Normalizer) Normalize(ctx context.Context, preset, cli Partial) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	merged := Fold(preset, cli)
	interactive := !deref(merged.NonInteractive) && n.prompter != nil

	if interactive && !merged.HasFeatureSelection() {
		answers, err := n.prompter.PromptFeatures(ctx)
		if err != nil {
			return nil, fmt.Errorf("prompt features: %w", err)
		}
		merged = Fold(preset, answers, cli)
	}

	name := strings.TrimSpace(deref(merged.ProjectName))
	if name == "" {
		return nil, &ValidationError{Field: "projectName", Message: "must not be empty", Wrapped: ErrMissingProjectName}
	}

	res := &Result{}
	cfg := Configuration{
		ProjectName:       name,
		ProjectSlug:       Slugify(name),
		IncludeDatabase:   deref(merged.IncludeDatabase),
		IncludeSessions:   deref(merged.IncludeSessions),
		IncludeHTTPClient: deref(merged.IncludeHTTPClient),
		AuthStrategies:    NormalizeStrategies(merged.Strategies),
		Port:              strings.TrimSpace(deref(merged.Port)),
		DryRun:            deref(merged.DryRun),
		Verbose:           deref(merged.Verbose),
		NonInteractive:    deref(merged.NonInteractive),
	}
	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}
	if err := validatePort("port", cfg.Port); err != nil {
		return nil, err
	}

	if len(cfg.AuthStrategies) > 0 && (!cfg.IncludeDatabase || !cfg.IncludeSessions) {
		cfg.IncludeDatabase = true
		cfg.IncludeSessions = true
		n.notice(res, "authentication strategies require a database and sessions; enabling both",
			"strategies", strings.Join(cfg.AuthStrategies, ","))
	}
	if cfg.IncludeSessions && !cfg.IncludeDatabase {
		cfg.IncludeDatabase = true
		n.notice(res, "sessions need a backing store; enabling the database")
	}

	if cfg.IncludeDatabase {
		creds, err := n.completeCredentials(ctx, merged.Database, cfg.ProjectSlug, interactive)
		if err != nil {
			return nil, err
		}
		if err := validatePort("databaseCredentials.port", creds.Port); err != nil {
			return nil, err
		}
		cfg.Database = creds
	}

	n.logger.Debug("options normalized", cfg.LogArgs()...)

	res.Config = cfg
	return res, nil
}

// completeCredentials fills missing credential fields from prompts
// (interactive) or fixed defaults.
func (n *Normalizer) completeCredentials(ctx context.Context, given PartialCredentials, slug string, interactive bool) (Credentials, error) {
	defaults := Credentials{
		User:     DefaultDBUser,
		Password: DefaultPassword,
		Name:     slug,
		Host:     DefaultDBHost,
		Port:     DefaultDBPort,
	}

	missing := MissingCredentials(given)
	if len(missing) > 0 && interactive {
		answers, err := n.prompter.PromptCredentials(ctx, missing, defaults)
		if err != nil {
			return Credentials{}, fmt.Errorf("prompt database credentials: %w", err)
		}
		given = fillCredentials(given, answers)
	}

	return Credentials{
		User:     valueOr(given.User, defaults.User),
		Password: deref(given.Password),
		Name:     valueOr(given.Name, defaults.Name),
		Host:     valueOr(given.Host, defaults.Host),
		Port:     valueOr(given.Port, defaults.Port),
	}, nil
}

// MissingCredentials lists the fields of c that still need a value. A field
// is missing when absent; every field except the password is also missing
// when blank.
func MissingCredentials(c PartialCredentials) []CredentialField {
	var missing []CredentialField
	for _, f := range CredentialFields() {
		v := credentialPtr(c, f)
		if v == nil || (f != FieldPassword && strings.TrimSpace(*v) == "") {
			missing = append(missing, f)
		}
	}
	return missing
}

// fillCredentials applies answers only to the fields of given that are
// still missing.
func fillCredentials(given, answers PartialCredentials) PartialCredentials {
	fill := func(g, a *string) *string {
		if (g == nil || strings.TrimSpace(*g) == "") && a != nil {
			return a
		}
		return g
	}
	return PartialCredentials{
		User:     fill(given.User, answers.User),
		Password: pick(answers.Password, given.Password),
		Name:     fill(given.Name, answers.Name),
		Host:     fill(given.Host, answers.Host),
		Port:     fill(given.Port, answers.Port),
	}
}

func credentialPtr(c PartialCredentials, f CredentialField) *string {
	switch f {
	case FieldUser:
		return c.User
	case FieldPassword:
		return c.Password
	case FieldName:
		return c.Name
	case FieldHost:
		return c.Host
	case FieldPort:
		return c.Port
	}
	return nil
}

func valueOr(p *string, def string) string {
	if p == nil {
		return def
	}
	if v := strings.TrimSpace(*p); v != "" {
		return v
	}
	return def
}

func validatePort(field, port string) error {
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return &ValidationError{Field: field, Message: "must be a number between 1 and 65535", Value: port, Wrapped: ErrInvalidPort}
	}
	return nil
}

func (n *Normalizer) notice(res *Result, msg string, args ...any) {
	res.Notices = append(res.Notices, msg)
	n.logger.Info(msg, args...)
}
