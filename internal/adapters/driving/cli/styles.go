package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Styles for terminal output. Only applied when stdout is a terminal.
var (
	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6E3A1")). // Green
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086")) // Medium gray
)

// stdoutIsTerminal reports whether stdout is attached to a terminal.
// Piped or test output stays plain.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// styled applies a style only when printing to a terminal.
func styled(style lipgloss.Style, text string) string {
	if !stdoutIsTerminal() {
		return text
	}
	return style.Render(text)
}
