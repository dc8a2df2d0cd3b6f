package ui

import (
	"fmt"
	"strings"

	"github.com/duet-tui/duet/internal/sanitize"
)

// renderWishlistPage draws the two-tab wishlist view. The partner tab is
// read-only; edit affordances render only while the caller's own tab is
// active so the screen never advertises a command that would be rejected.
func (m Model) renderWishlistPage() string {
	styles := m.theme.Styles()

	if !m.snapshot.Initialized {
		return styles.MutedText.Render("Connecting...")
	}
	if !m.snapshot.HasPair {
		return styles.Card.Render(styles.MutedText.Render("Wishlists unlock once you are paired"))
	}

	var b strings.Builder
	b.WriteString(m.renderWishTabs())
	b.WriteString("\n\n")
	b.WriteString(m.renderWishItems())
	b.WriteString("\n\n")
	b.WriteString(m.renderWishHints())
	return b.String()
}

func (m Model) renderWishTabs() string {
	styles := m.theme.Styles()

	partnerLabel := fmt.Sprintf("Partner (%d)", len(m.snapshot.PartnerWishlist))
	mineLabel := fmt.Sprintf("Mine (%d)", len(m.snapshot.MyWishlist))

	if m.wishTab == TabMine {
		return styles.TabInactive.Render(partnerLabel) + "   " + styles.TabActive.Render(mineLabel)
	}
	return styles.TabActive.Render(partnerLabel) + "   " + styles.TabInactive.Render(mineLabel)
}

func (m Model) renderWishItems() string {
	styles := m.theme.Styles()
	items := m.activeList()

	if len(items) == 0 {
		if m.wishTab == TabMine {
			return styles.MutedText.Render("Your list is empty") + "\n" +
				styles.FaintText.Render("press a to add a wish")
		}
		return styles.MutedText.Render("Their list is empty")
	}

	var b strings.Builder
	for i, item := range items {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}

		check := "  "
		if item.Done {
			check = styles.SuccessText.Render("✓ ")
		}

		title := sanitize.Text(item.Title)
		line := marker + check + title

		affordance := ""
		if strings.TrimSpace(item.URL) != "" {
			affordance = styles.FaintText.Render("  open")
		} else if m.wishTab == TabMine {
			affordance = styles.FaintText.Render("  add link")
		}

		if i == m.cursor {
			b.WriteString(styles.Selected.Render(line))
		} else if item.Done {
			b.WriteString(styles.MutedText.Render(line))
		} else {
			b.WriteString(styles.Text.Render(line))
		}
		b.WriteString(affordance)

		if i == m.cursor && strings.TrimSpace(item.Description) != "" {
			b.WriteString("\n")
			b.WriteString("    " + styles.FaintText.Render(sanitize.Text(item.Description)))
		}

		if i < len(items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderWishHints() string {
	styles := m.theme.Styles()

	if m.wishTab == TabMine {
		hints := "a add  l link  x done  d delete  o open  y copy"
		if len(m.snapshot.MyWishlist) > 0 {
			hints += "  C clear"
		}
		return styles.FaintText.Render(hints)
	}
	return styles.FaintText.Render("a add to yours  o open  y copy")
}
