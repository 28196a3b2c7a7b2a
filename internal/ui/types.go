// Package ui holds the terminal pieces shared by the commands: theme
// colors, headless detection and the generation progress bar.
package ui

// Progress creates progress bars for long-running work.
type Progress interface {
	// Start creates a determinate bar with total steps.
	Start(title string, total int) ProgressBar
}

// ProgressBar tracks one run of work. Done is safe to call more than once.
type ProgressBar interface {
	SetTitle(title string)
	Increment(n int)
	Done()
}
