package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Cyan   = lipgloss.Color("#22D3EE")
	Blue   = lipgloss.Color("#60A5FA")
	Yellow = lipgloss.Color("#FACC15")
	Green  = lipgloss.Color("#22C55E")
	Rose   = lipgloss.Color("#F43F5E")
)

// Styles holds one style per kind of drill output.
type Styles struct {
	Prompt  lipgloss.Style // card prompt
	Input   lipgloss.Style // "answer [..]" line prompt
	Info    lipgloss.Style // ratio, hint, help
	Correct lipgloss.Style
	Warning lipgloss.Style
	Summary lipgloss.Style
}

// Color returns the coloured styles.
func Color() Styles {
	return Styles{
		Prompt: lipgloss.NewStyle().
			Foreground(Cyan).
			Bold(true),

		Input: lipgloss.NewStyle().
			Foreground(Blue),

		Info: lipgloss.NewStyle().
			Foreground(Yellow),

		Correct: lipgloss.NewStyle().
			Foreground(Green).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(Rose),

		Summary: lipgloss.NewStyle().
			Bold(true),
	}
}

// Plain returns styles that render text unchanged.
func Plain() Styles {
	s := lipgloss.NewStyle()
	return Styles{
		Prompt:  s,
		Input:   s,
		Info:    s,
		Correct: s,
		Warning: s,
		Summary: s,
	}
}

// For picks the coloured or plain styles.
func For(color bool) Styles {
	if color {
		return Color()
	}
	return Plain()
}
