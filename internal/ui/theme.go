package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the viewer's colors.
type Theme struct {
	Name string

	Text   string
	Muted  string
	Accent string
	Danger string
	Border string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Path: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		Danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(lipgloss.Color(t.Border)),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Title  lipgloss.Style
	Path   lipgloss.Style
	Text   lipgloss.Style
	Muted  lipgloss.Style
	Danger lipgloss.Style
	Footer lipgloss.Style
}

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Nightfox", "Slate"}

// GetTheme returns a theme by name, defaulting to Nightfox.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name:   "Nightfox",
		Text:   "#cdcecf", // fg1
		Muted:  "#738091", // comment
		Accent: "#719cd6", // blue
		Danger: "#c94f6d", // red
		Border: "#39506d", // bg4
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name:   "Slate",
		Text:   "#f1f5f9", // slate-100
		Muted:  "#94a3b8", // slate-400
		Accent: "#38bdf8", // sky-400
		Danger: "#ef4444", // red-500
		Border: "#334155", // slate-700
	}
}
