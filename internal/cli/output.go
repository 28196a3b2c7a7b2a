package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/RisingFlamesUK/kickstart-node-app/internal/ui"
)

// styles maps the ui palette onto the lipgloss styles used for results.
type styles struct {
	title   lipgloss.Style
	success lipgloss.Style
	warn    lipgloss.Style
	err     lipgloss.Style
	command lipgloss.Style
	dim     lipgloss.Style
	card    lipgloss.Style
}

func newStyles(theme *ui.Theme) styles {
	if theme == nil || theme.NoColor {
		plain := lipgloss.NewStyle()
		return styles{
			title: plain, success: plain, warn: plain, err: plain,
			command: plain, dim: plain,
			card: lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
		}
	}

	c := theme.Colors
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Primary)),
		success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Success)),
		warn:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.Warning)),
		err:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Error)),
		command: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Secondary)),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.Color(c.Muted)),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.Primary)).
			Padding(0, 1),
	}
}

// successCard prints the closing banner with the commands to run next.
func successCard(w io.Writer, theme *ui.Theme, projectDir string, dryRun bool) {
	s := newStyles(theme)

	headline := s.success.Render("✔ Project " + projectDir + " created successfully")
	if dryRun {
		headline = s.success.Render("✔ Project " + projectDir + " ready to generate") + s.dim.Render(" (dry run, nothing written)")
	}

	lines := []string{
		headline,
		"",
		s.title.Render("Next:"),
		"  " + s.command.Render("cd "+quoteArg(projectDir)),
		"  " + s.command.Render("npm run dev"),
	}
	_, _ = fmt.Fprintln(w, s.card.Render(strings.Join(lines, "\n")))
}

func errorLine(theme *ui.Theme, err error) string {
	return newStyles(theme).err.Render("Error: ") + err.Error()
}

// quoteArg quotes a directory name for the shell when it contains spaces
// or quotes.
func quoteArg(s string) string {
	if !strings.ContainsAny(s, " \t'\"$`\\") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
