package wizard

import (
	"strings"

	"github.com/RisingFlamesUK/kickstart-node-app/internal/options"
	"github.com/RisingFlamesUK/kickstart-node-app/internal/strategy"
)

// FeatureQuestions returns the feature prompts in the order they are asked:
// database, sessions (database only), HTTP client, authentication and the
// strategy selection (authentication only).
func FeatureQuestions() []Question {
	opts := make([]Option, 0, len(strategy.All()))
	for _, k := range strategy.All() {
		opts = append(opts, Option{Label: k.Descriptor().Label, Value: k.String()})
	}

	return []Question{
		{
			ID:    IDDatabase,
			Type:  QuestionTypeConfirm,
			Title: "Include PostgreSQL?",
		},
		{
			ID:          IDSessions,
			Type:        QuestionTypeConfirm,
			Title:       "Enable session management?",
			Description: "Sessions are stored in PostgreSQL.",
			Condition:   func(a *Answers) bool { return a.Database },
		},
		{
			ID:    IDHTTPClient,
			Type:  QuestionTypeConfirm,
			Title: "Include Axios?",
		},
		{
			ID:          IDAuth,
			Type:        QuestionTypeConfirm,
			Title:       "Use Passport.js authentication?",
			Description: "Authentication turns on PostgreSQL and sessions.",
		},
		{
			ID:          IDStrategies,
			Type:        QuestionTypeMultiSelect,
			Title:       "Select authentication strategies",
			Description: "Space to toggle, enter to confirm.",
			Options:     opts,
			Condition:   func(a *Answers) bool { return a.Auth },
		},
	}
}

var credentialTitles = map[options.CredentialField]string{
	options.FieldUser:     "Postgres username:",
	options.FieldPassword: "Postgres password:",
	options.FieldName:     "Postgres database name:",
	options.FieldHost:     "Postgres host:",
	options.FieldPort:     "Postgres port:",
}

// CredentialQuestions returns one input per missing field, in the order
// given, offering the matching default.
func CredentialQuestions(missing []options.CredentialField, defaults options.Credentials) []Question {
	qs := make([]Question, 0, len(missing))
	for _, f := range missing {
		qs = append(qs, Question{
			ID:      credentialPrefix + string(f),
			Type:    QuestionTypeInput,
			Title:   credentialTitles[f],
			Default: credentialDefault(f, defaults),
			Secret:  f == options.FieldPassword,
		})
	}
	return qs
}

func credentialDefault(f options.CredentialField, d options.Credentials) string {
	switch f {
	case options.FieldUser:
		return d.User
	case options.FieldPassword:
		return d.Password
	case options.FieldName:
		return d.Name
	case options.FieldHost:
		return d.Host
	case options.FieldPort:
		return d.Port
	}
	return ""
}

// saveBool stores a confirm answer.
func saveBool(id string, v bool, a *Answers) {
	switch id {
	case IDDatabase:
		a.Database = v
	case IDSessions:
		a.Sessions = v
	case IDHTTPClient:
		a.HTTPClient = v
	case IDAuth:
		a.Auth = v
	}
}

// saveString stores an input answer. Blank answers fall back to the
// question default; passwords are kept verbatim.
func saveString(q *Question, v string, a *Answers) {
	if !q.Secret {
		v = strings.TrimSpace(v)
		if v == "" {
			v = q.Default
		}
	}
	if f, ok := strings.CutPrefix(q.ID, credentialPrefix); ok {
		if a.Credentials == nil {
			a.Credentials = make(map[options.CredentialField]string)
		}
		a.Credentials[options.CredentialField(f)] = v
	}
}

// saveList stores a multi-select answer.
func saveList(id string, v []string, a *Answers) {
	if id == IDStrategies {
		a.Strategies = v
	}
}
