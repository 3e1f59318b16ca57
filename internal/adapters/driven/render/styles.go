package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for rendered tables.
type Theme struct {
	// Primary is the header colour.
	Primary lipgloss.Color

	// Muted is used for clone URLs and folders.
	Muted lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary: lipgloss.Color("#7C3AED"), // Purple
		Muted:   lipgloss.Color("#6C7086"), // Medium gray
		Border:  lipgloss.Color("#45475A"), // Border gray
	}
}

// styles holds lipgloss styles bound to one output.
type styles struct {
	Header lipgloss.Style
	Cell   lipgloss.Style
	Muted  lipgloss.Style
	Border lipgloss.Style
}

// newStyles binds theme styles to a renderer for w, so colour is only
// emitted when w is a terminal that supports it.
func newStyles(w io.Writer, theme *Theme) styles {
	if theme == nil {
		theme = DefaultTheme()
	}
	r := lipgloss.NewRenderer(w)

	return styles{
		Header: r.NewStyle().
			Bold(true).
			Foreground(theme.Primary).
			Padding(0, 1),
		Cell: r.NewStyle().
			Padding(0, 1),
		Muted: r.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),
		Border: r.NewStyle().
			Foreground(theme.Border),
	}
}
