package report

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// DefaultWidth is the word-wrap width used when the terminal width is unknown.
const DefaultWidth = 80

// Render formats markdown for the terminal. Plain output drops colors and
// is used when stdout is not a terminal.
func Render(content string, width int, plain bool) (string, error) {
	if width <= 0 {
		width = DefaultWidth
	}

	style := glamour.WithAutoStyle()
	if plain {
		style = glamour.WithStandardStyle("notty")
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}

	out, err := r.Render(content)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
