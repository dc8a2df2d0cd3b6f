package ui

import (
	"strings"
	"time"

	"github.com/duet-tui/duet/internal/format"
	"github.com/duet-tui/duet/internal/sanitize"
)

// renderHeader draws the top bar: logo, page tabs, partner name and the
// time of the last confirmed sync.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Logo.Render("♥ duet"))
	b.WriteString("   ")

	if m.page == PageMain {
		b.WriteString(styles.TabActive.Render("Us"))
		b.WriteString("  ")
		b.WriteString(styles.TabInactive.Render("Wishlists"))
	} else {
		b.WriteString(styles.TabInactive.Render("Us"))
		b.WriteString("  ")
		b.WriteString(styles.TabActive.Render("Wishlists"))
	}

	var right []string
	if p := m.snapshot.Partner; p != nil {
		if name := sanitize.Text(p.FirstName); name != "" {
			right = append(right, name)
		}
	}
	if !m.lastSync.IsZero() {
		right = append(right, "synced "+format.Ago(m.lastSync, time.Now()))
	}
	if len(right) > 0 {
		b.WriteString("   ")
		b.WriteString(styles.MutedText.Render(strings.Join(right, " · ")))
	}

	return styles.Header.Render(b.String())
}

// renderStatusBar draws the bottom line: a transient error or note when one
// is pending, otherwise the standing key hints.
func (m Model) renderStatusBar() string {
	styles := m.theme.Styles()

	if m.status.text != "" {
		if m.status.isErr {
			return styles.Footer.Render(styles.DangerText.Render(m.status.text) +
				styles.FaintText.Render("  esc dismiss"))
		}
		return styles.Footer.Render(styles.SuccessText.Render(m.status.text))
	}

	return styles.Footer.Render("tab switch page  T theme  ? help  q quit")
}
