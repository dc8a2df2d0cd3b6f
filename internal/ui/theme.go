package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors and styles for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string
	Surface    string
	SurfaceAlt string

	// Border colors
	Border      string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Heart   string
	Success string
	Warning string
	Danger  string

	// Selection
	SelectionBg   string
	SelectionText string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		Heart: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Heart)).
			Bold(true),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Heart)).
			Bold(true),

		TabActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true).
			Underline(true),

		TabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 2),

		ModalCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(1, 3),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	Heart       lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Header      lipgloss.Style
	Footer      lipgloss.Style
	Logo        lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Selected    lipgloss.Style
	Card        lipgloss.Style
	ModalCard   lipgloss.Style
}

// Theme definitions

var themes = map[string]Theme{
	"Ocean": oceanTheme(),
	"Rose":  roseTheme(),
}

var themeOrder = []string{"Ocean", "Rose"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return oceanTheme()
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

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func oceanTheme() Theme {
	// Cool water palette, loosely Nord-ish blues.
	return Theme{
		Name: "Ocean",

		Background: "#0b1622",
		Surface:    "#12202f",
		SurfaceAlt: "#1a2c3f",

		Border:      "#2e4a63",
		BorderFocus: "#64a8dd",

		Text:    "#d6e2ee",
		Muted:   "#7e93a8",
		Faint:   "#5a6d80",
		Accent:  "#64a8dd",
		Heart:   "#6fc3df",
		Success: "#84c79a",
		Warning: "#e0c074",
		Danger:  "#d96a7f",

		SelectionBg:   "#24415c",
		SelectionText: "#e6eef6",
	}
}

func roseTheme() Theme {
	// Warm rose palette for the pink look the web client shipped with.
	return Theme{
		Name: "Rose",

		Background: "#221219",
		Surface:    "#2e1a23",
		SurfaceAlt: "#3c2430",

		Border:      "#5e3446",
		BorderFocus: "#e58bb1",

		Text:    "#f1dde6",
		Muted:   "#a87e93",
		Faint:   "#805a6d",
		Accent:  "#e58bb1",
		Heart:   "#f2a7c3",
		Success: "#a9c784",
		Warning: "#e0c074",
		Danger:  "#e06a6a",

		SelectionBg:   "#5c2440",
		SelectionText: "#f6e6ee",
	}
}
