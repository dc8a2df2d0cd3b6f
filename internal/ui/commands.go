package ui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/duet-tui/duet/internal/browser"
	"github.com/duet-tui/duet/internal/fambot"
	"github.com/duet-tui/duet/internal/sanitize"
)

// Operation labels used in status messages and the diagnostic log.
const (
	opInit      = "initialize"
	opAddWish   = "add wish"
	opDelWish   = "delete wish"
	opSetLink   = "save link"
	opToggle    = "update wish"
	opClear     = "clear wishlist"
	opStartDate = "save start date"
	opCloud     = "save cloud link"
	opDelPair   = "delete pair"
	opOpenLink  = "open link"
	opCopyLink  = "copy link"
)

// Messages. Exactly one success message per command kind; the store is
// mutated only when one of these lands, never before the response.

type initDoneMsg struct{ resp *fambot.InitResponse }

type wishAddedMsg struct{ item fambot.WishItem }

type wishDeletedMsg struct{ id int64 }

type wishLinkSetMsg struct {
	id   int64
	link string
}

type wishDoneSetMsg struct {
	id   int64
	done bool
}

type wishlistClearedMsg struct{}

type startDateSetMsg struct{ resp *fambot.StartDateResponse }

type cloudSetMsg struct{ link string }

type pairDeletedMsg struct{}

type noteMsg struct{ text string }

type commandFailedMsg struct {
	op  string
	err error
}

// Commands. Each one performs a single round trip on its own goroutine and
// reports back through a message; in-flight commands are independent and
// resolve in completion order.

func (m Model) initCmd() tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		resp, err := client.Init(ctx)
		if err != nil {
			return commandFailedMsg{op: opInit, err: err}
		}
		return initDoneMsg{resp: resp}
	}
}

func (m Model) addWishCmd(title string) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		item, err := client.AddWish(ctx, title)
		if err != nil {
			return commandFailedMsg{op: opAddWish, err: err}
		}
		return wishAddedMsg{item: item}
	}
}

func (m Model) deleteWishCmd(id int64) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		if err := client.DeleteWish(ctx, id); err != nil {
			return commandFailedMsg{op: opDelWish, err: err}
		}
		return wishDeletedMsg{id: id}
	}
}

func (m Model) setWishLinkCmd(id int64, link string) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		if err := client.SetWishLink(ctx, id, link); err != nil {
			return commandFailedMsg{op: opSetLink, err: err}
		}
		return wishLinkSetMsg{id: id, link: link}
	}
}

func (m Model) toggleDoneCmd(id int64, done bool) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		if err := client.SetWishDone(ctx, id, done); err != nil {
			return commandFailedMsg{op: opToggle, err: err}
		}
		return wishDoneSetMsg{id: id, done: done}
	}
}

func (m Model) clearWishlistCmd() tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		if err := client.ClearWishlist(ctx); err != nil {
			return commandFailedMsg{op: opClear, err: err}
		}
		return wishlistClearedMsg{}
	}
}

func (m Model) setStartDateCmd(dateStr string) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		resp, err := client.SetStartDate(ctx, dateStr)
		if err != nil {
			return commandFailedMsg{op: opStartDate, err: err}
		}
		return startDateSetMsg{resp: resp}
	}
}

func (m Model) setCloudCmd(link string) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		if err := client.SetCloudURL(ctx, link); err != nil {
			return commandFailedMsg{op: opCloud, err: err}
		}
		return cloudSetMsg{link: link}
	}
}

func (m Model) deletePairCmd() tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		if err := client.DeletePair(ctx); err != nil {
			return commandFailedMsg{op: opDelPair, err: err}
		}
		return pairDeletedMsg{}
	}
}

func openLinkCmd(link string) tea.Cmd {
	return func() tea.Msg {
		if err := browser.Open(sanitize.URL(link)); err != nil {
			return commandFailedMsg{op: opOpenLink, err: err}
		}
		return noteMsg{text: "Opened in browser"}
	}
}

func copyLinkCmd(link string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(sanitize.URL(link)); err != nil {
			return commandFailedMsg{op: opCopyLink, err: err}
		}
		return noteMsg{text: "Link copied"}
	}
}
