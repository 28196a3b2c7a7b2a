// Package wizard asks for the generator options the command line and the
// preset left open, using huh forms.
package wizard

import (
	"errors"

	"github.com/RisingFlamesUK/kickstart-node-app/internal/options"
)

// ErrCancelled is returned when the user aborts a prompt.
var ErrCancelled = errors.New("wizard cancelled by user")

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeConfirm is a yes/no question.
	QuestionTypeConfirm QuestionType = iota
	// QuestionTypeInput is a text input question.
	QuestionTypeInput
	// QuestionTypeMultiSelect picks any number of options.
	QuestionTypeMultiSelect
)

// Question defines a single wizard question.
type Question struct {
	ID          string
	Type        QuestionType
	Title       string
	Description string
	Options     []Option
	Default     string
	Secret      bool                // input is echoed as a password
	Condition   func(*Answers) bool // nil means always asked
}

// Option represents a selectable option.
type Option struct {
	Label string
	Value string
}

// Answers collects the values given so far. Conditions read it to decide
// whether a later question is asked.
type Answers struct {
	Database   bool
	Sessions   bool
	HTTPClient bool
	Auth       bool
	Strategies []string

	// Credentials holds only the fields that were asked.
	Credentials map[options.CredentialField]string
}

// Question IDs for the feature prompts.
const (
	IDDatabase   = "database"
	IDSessions   = "sessions"
	IDHTTPClient = "http_client"
	IDAuth       = "auth"
	IDStrategies = "strategies"
)

// credentialPrefix prefixes the IDs of credential questions.
const credentialPrefix = "credential_"
