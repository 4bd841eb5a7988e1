package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	failureStyle = lipgloss.NewStyle().
			Foreground(colorError)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// painter renders single-line text with the styles above, or unchanged when
// color is off
type painter struct {
	color bool
}

func (p painter) render(style lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return style.Render(text)
}

func (p painter) title(text string) string   { return p.render(titleStyle, text) }
func (p painter) success(text string) string { return p.render(successStyle, text) }
func (p painter) failure(text string) string { return p.render(failureStyle, text) }
func (p painter) warning(text string) string { return p.render(warningStyle, text) }
func (p painter) muted(text string) string   { return p.render(mutedStyle, text) }
