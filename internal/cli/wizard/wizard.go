package wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/RisingFlamesUK/kickstart-node-app/internal/options"
	"github.com/RisingFlamesUK/kickstart-node-app/internal/ui"
)

// askFunc answers one question, recording the result in a.
type askFunc func(ctx context.Context, q *Question, a *Answers) error

// Prompter implements options.Prompter with huh forms.
type Prompter struct {
	ask askFunc
}

var _ options.Prompter = (*Prompter)(nil)

// New creates a Prompter styled with theme. A nil theme uses the default
// palette.
func New(theme *ui.Theme) *Prompter {
	if theme == nil {
		theme = ui.NewTheme(false)
	}
	ht := newWizardTheme(theme)
	return &Prompter{ask: func(ctx context.Context, q *Question, a *Answers) error {
		return runQuestion(ctx, q, a, ht)
	}}
}

// PromptFeatures asks the feature questions. Declining authentication
// yields an explicit empty strategy selection.
func (p *Prompter) PromptFeatures(ctx context.Context) (options.Partial, error) {
	a, err := p.run(ctx, FeatureQuestions())
	if err != nil {
		return options.Partial{}, err
	}

	strategies := []string{}
	if a.Auth {
		strategies = options.NormalizeStrategies(a.Strategies)
	}
	return options.Partial{
		IncludeDatabase:   options.Ptr(a.Database),
		IncludeSessions:   options.Ptr(a.Database && a.Sessions),
		IncludeHTTPClient: options.Ptr(a.HTTPClient),
		Strategies:        strategies,
	}, nil
}

// PromptCredentials asks for exactly the missing fields.
func (p *Prompter) PromptCredentials(ctx context.Context, missing []options.CredentialField, defaults options.Credentials) (options.PartialCredentials, error) {
	a, err := p.run(ctx, CredentialQuestions(missing, defaults))
	if err != nil {
		return options.PartialCredentials{}, err
	}

	var out options.PartialCredentials
	for f, v := range a.Credentials {
		switch f {
		case options.FieldUser:
			out.User = &v
		case options.FieldPassword:
			out.Password = &v
		case options.FieldName:
			out.Name = &v
		case options.FieldHost:
			out.Host = &v
		case options.FieldPort:
			out.Port = &v
		}
	}
	return out, nil
}

// run asks every question whose condition holds, in order. Each question
// runs as its own huh.Form so conditions see the answers given before it.
func (p *Prompter) run(ctx context.Context, questions []Question) (*Answers, error) {
	a := &Answers{}
	for i := range questions {
		q := &questions[i]
		if q.Condition != nil && !q.Condition(a) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := p.ask(ctx, q, a); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func runQuestion(ctx context.Context, q *Question, a *Answers, theme *huh.Theme) error {
	var (
		field huh.Field
		save  func()
	)

	switch q.Type {
	case QuestionTypeConfirm:
		v := q.Default == "true"
		field = huh.NewConfirm().Title(q.Title).Description(q.Description).Value(&v)
		save = func() { saveBool(q.ID, v, a) }

	case QuestionTypeInput:
		var v string
		inp := huh.NewInput().Title(q.Title).Description(q.Description).Value(&v)
		if q.Default != "" {
			inp = inp.Placeholder(q.Default)
		}
		if q.Secret {
			inp = inp.EchoMode(huh.EchoModePassword)
		}
		field = inp
		save = func() { saveString(q, v, a) }

	case QuestionTypeMultiSelect:
		var v []string
		opts := make([]huh.Option[string], len(q.Options))
		for i, o := range q.Options {
			opts[i] = huh.NewOption(o.Label, o.Value)
		}
		field = huh.NewMultiSelect[string]().Title(q.Title).Description(q.Description).Options(opts...).Value(&v)
		save = func() { saveList(q.ID, v, a) }

	default:
		return fmt.Errorf("question %s: unsupported type %d", q.ID, q.Type)
	}

	form := huh.NewForm(huh.NewGroup(field)).WithTheme(theme)
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCancelled
		}
		return fmt.Errorf("wizard error: %w", err)
	}
	save()
	return nil
}

// newWizardTheme maps the ui palette onto a huh theme.
func newWizardTheme(theme *ui.Theme) *huh.Theme {
	t := huh.ThemeBase()
	if theme.NoColor {
		return t
	}

	c := theme.Colors
	primary := lipgloss.Color(c.Primary)
	secondary := lipgloss.Color(c.Secondary)
	green := lipgloss.Color(c.Success)
	red := lipgloss.Color(c.Error)
	muted := lipgloss.Color(c.Muted)

	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(primary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(green).SetString("◆ ")
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(muted).SetString("◇ ")
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(secondary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("#FFFFFF")).Background(primary)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.NextIndicator = lipgloss.NewStyle()
	t.Blurred.PrevIndicator = lipgloss.NewStyle()

	return t
}
