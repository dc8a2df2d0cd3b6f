package ui

import "strings"

type helpEntry struct {
	key  string
	desc string
}

var helpSections = []struct {
	title   string
	entries []helpEntry
}{
	{
		title: "Everywhere",
		entries: []helpEntry{
			{"tab", "switch between Us and Wishlists"},
			{"T", "cycle color theme"},
			{"esc", "dismiss status / back to Us"},
			{"?", "toggle this help"},
			{"q, ctrl+c", "quit"},
		},
	},
	{
		title: "Us page",
		entries: []helpEntry{
			{"s", "set relationship start date"},
			{"c", "set or change the shared cloud link"},
			{"o", "open the cloud link"},
			{"y", "copy the cloud link"},
			{"D", "delete the pair"},
		},
	},
	{
		title: "Wishlists",
		entries: []helpEntry{
			{"m / p", "show your list / partner's list"},
			{"←/→", "switch lists"},
			{"j/k, g/G", "move the cursor"},
			{"a", "add a wish to your list"},
			{"enter, o", "open the selected wish's link"},
			{"y", "copy the selected wish's link"},
			{"l", "set a link on your wish"},
			{"x", "mark your wish done / not done"},
			{"d", "delete your wish"},
			{"C", "clear your whole list"},
		},
	},
}

func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.AccentText.Render("Keys"))
	b.WriteString("\n")
	for _, section := range helpSections {
		b.WriteString("\n")
		b.WriteString(styles.Heart.Render(section.title))
		b.WriteString("\n")
		for _, e := range section.entries {
			b.WriteString("  ")
			b.WriteString(styles.Text.Render(pad(e.key, 12)))
			b.WriteString(styles.MutedText.Render(e.desc))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("press any key to close"))
	return m.centered(styles.ModalCard.Render(b.String()))
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}
