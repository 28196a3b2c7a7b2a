package ui

import "os"

// Colors is the palette used for progress gradients and styled output.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Muted     string
}

// Theme bundles the palette with the color switch.
type Theme struct {
	NoColor bool
	Colors  Colors
}

// DefaultColors is the kickstart palette.
var DefaultColors = Colors{
	Primary:   "#5FAFFF",
	Secondary: "#AF87FF",
	Success:   "#5FD787",
	Warning:   "#FFD75F",
	Error:     "#FF5F5F",
	Muted:     "#8A8A8A",
}

// NewTheme returns the default theme. Colors are disabled when noColor is
// set or the NO_COLOR environment variable is non-empty.
func NewTheme(noColor bool) *Theme {
	return &Theme{
		NoColor: noColor || os.Getenv("NO_COLOR") != "",
		Colors:  DefaultColors,
	}
}
