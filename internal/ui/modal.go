package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/duet-tui/duet/internal/sanitize"
)

// Confirmation modal, shown before every destructive command.

type confirmKind int

const (
	confirmDeleteWish confirmKind = iota
	confirmClearList
	confirmDeletePair
)

type confirmState struct {
	kind   confirmKind
	itemID int64
	title  string
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := m.confirm
	switch msg.String() {
	case "y", "enter":
		m.confirm = nil
		switch c.kind {
		case confirmDeleteWish:
			return m, m.deleteWishCmd(c.itemID)
		case confirmClearList:
			return m, m.clearWishlistCmd()
		case confirmDeletePair:
			return m, m.deletePairCmd()
		}
		return m, nil

	case "n", "esc", "q":
		m.confirm = nil
		return m, nil
	}
	return m, nil
}

func (m Model) renderConfirm() string {
	styles := m.theme.Styles()

	var question string
	switch m.confirm.kind {
	case confirmDeleteWish:
		question = fmt.Sprintf("Delete %q from your wishlist?", sanitize.Text(m.confirm.title))
	case confirmClearList:
		question = "Clear your entire wishlist?"
	case confirmDeletePair:
		question = "Really dissolve the pair? All shared data and settings will be deleted."
	}

	body := styles.Text.Render(question) + "\n\n" +
		styles.MutedText.Render("y/enter confirm   n/esc cancel")
	return m.centered(styles.ModalCard.Render(body))
}

// Single-line text prompt, used to collect titles, links and dates.

type promptKind int

const (
	promptAddWish promptKind = iota
	promptWishLink
	promptStartDate
	promptCloudURL
)

type promptState struct {
	kind   promptKind
	itemID int64
	input  textinput.Model
}

// openPrompt builds the prompt overlay, pre-filling the current value for
// edits so a typo does not mean retyping the whole link.
func (m *Model) openPrompt(kind promptKind, itemID int64) {
	ti := textinput.New()
	ti.CharLimit = 300
	ti.Width = 48

	switch kind {
	case promptAddWish:
		ti.Placeholder = "What do you wish for?"
	case promptWishLink:
		ti.Placeholder = "https://example.com/product"
		for _, item := range m.snapshot.MyWishlist {
			if item.ID == itemID {
				ti.SetValue(item.URL)
				break
			}
		}
	case promptStartDate:
		ti.Placeholder = "DD.MM.YYYY"
		if m.snapshot.Pair != nil && m.snapshot.Pair.StartStats != nil {
			ti.SetValue(m.snapshot.Pair.StartStats.StartDateHuman)
		}
	case promptCloudURL:
		ti.Placeholder = "https://... (leave empty to clear)"
		if m.snapshot.Pair != nil {
			ti.SetValue(m.snapshot.Pair.CloudURL)
		}
	}

	ti.Focus()
	m.prompt = &promptState{kind: kind, itemID: itemID, input: ti}
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.prompt
	switch msg.String() {
	case "esc":
		m.prompt = nil
		return m, nil

	case "enter":
		value := strings.TrimSpace(p.input.Value())
		kind, itemID := p.kind, p.itemID
		m.prompt = nil
		switch kind {
		case promptAddWish:
			return m, m.addWishCmd(value)
		case promptWishLink:
			return m, m.setWishLinkCmd(itemID, value)
		case promptStartDate:
			return m, m.setStartDateCmd(value)
		case promptCloudURL:
			// Empty input clears the shared link
			return m, m.setCloudCmd(value)
		}
		return m, nil
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return m, cmd
}

func (m Model) renderPrompt() string {
	styles := m.theme.Styles()

	var title string
	switch m.prompt.kind {
	case promptAddWish:
		title = "New wish"
	case promptWishLink:
		title = "Link for this wish"
	case promptStartDate:
		title = "Relationship start date"
	case promptCloudURL:
		title = "Shared cloud link"
	}

	body := styles.AccentText.Render(title) + "\n\n" +
		m.prompt.input.View() + "\n\n" +
		styles.MutedText.Render("enter submit   esc cancel")
	return m.centered(styles.ModalCard.Render(body))
}

// centered places content in the middle of the screen.
func (m Model) centered(content string) string {
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
