package viewer

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type styles struct {
	status     lipgloss.Style
	lineNumber lipgloss.Style
}

// newStyles always renders 16-color ANSI sequences. Uncolored output skips
// these styles entirely.
func newStyles() styles {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)

	return styles{
		status: r.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("2")),
		lineNumber: r.NewStyle().
			Foreground(lipgloss.Color("8")),
	}
}
