package ui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/duet-tui/duet/internal/fambot"
	"github.com/duet-tui/duet/internal/prefs"
	"github.com/duet-tui/duet/internal/state"
)

// Page is the active top-level page.
type Page int

const (
	PageMain Page = iota
	PageWishlist
)

// WishTab selects which wishlist is visible. The partner's list comes
// first deliberately: on first load you look at what they want.
type WishTab int

const (
	TabPartner WishTab = iota
	TabMine
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    fambot.Service
	Store     *state.Store
	Logger    *zap.Logger
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    fambot.Service
	store     *state.Store
	logger    *zap.Logger
	prefsPath string

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool

	// Navigation state, purely local
	page    Page
	wishTab WishTab
	cursor  int

	// Data state
	snapshot state.Snapshot
	lastSync time.Time

	// Transient status line
	status status

	// Overlays
	confirm  *confirmState
	prompt   *promptState
	showHelp bool
}

type status struct {
	text  string
	isErr bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Ocean"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		ctx:       ctx,
		client:    opts.Client,
		store:     opts.Store,
		logger:    logger,
		prefsPath: prefsPath,
		theme:     GetTheme(themeName),
		page:      PageMain,
		wishTab:   TabPartner,
	}
	if opts.Store != nil {
		m.snapshot = opts.Store.Snapshot()
	}
	return m
}

// Init implements tea.Model. The alt screen grab is the terminal version
// of asking the host for more room, and happens unconditionally at start.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, m.initCmd())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case initDoneMsg:
		m.store.SetPairing(msg.resp)
		m.refresh()
		m.logger.Info("initialized",
			zap.Bool("has_pair", msg.resp.HasPair),
			zap.Int("my_wishes", len(msg.resp.MyWishlist)),
			zap.Int("partner_wishes", len(msg.resp.PartnerWishlist)))
		return m, nil

	case wishAddedMsg:
		m.store.AddWishItem(msg.item)
		m.refresh()
		return m, nil

	case wishDeletedMsg:
		m.store.RemoveWishItem(msg.id)
		m.refresh()
		return m, nil

	case wishLinkSetMsg:
		m.store.SetWishItemLink(msg.id, msg.link)
		m.refresh()
		return m, nil

	case wishDoneSetMsg:
		m.store.SetWishItemDone(msg.id, msg.done)
		m.refresh()
		return m, nil

	case wishlistClearedMsg:
		m.store.ClearMyWishlist()
		m.refresh()
		return m, nil

	case startDateSetMsg:
		m.store.SetStartDate(msg.resp.StartDate, msg.resp.StartStats)
		m.refresh()
		return m, nil

	case cloudSetMsg:
		m.store.SetCloudURL(msg.link)
		m.refresh()
		return m, nil

	case pairDeletedMsg:
		m.store.ClearPairing()
		m.refresh()
		return m, nil

	case noteMsg:
		m.status = status{text: msg.text}
		return m, nil

	case commandFailedMsg:
		m.status = status{text: failureText(msg.op, msg.err), isErr: true}
		m.logger.Warn("command failed", zap.String("op", msg.op), zap.Error(msg.err))
		return m, nil
	}

	return m, nil
}

// refresh re-reads the store after a confirmed mutation. The status line
// is cleared on every successful action.
func (m *Model) refresh() {
	m.snapshot = m.store.Snapshot()
	m.lastSync = time.Now()
	m.status = status{}
	m.clampCursor()
}

// activeList returns the wishlist for the active tab.
func (m Model) activeList() []fambot.WishItem {
	if m.wishTab == TabMine {
		return m.snapshot.MyWishlist
	}
	return m.snapshot.PartnerWishlist
}

// selectedWish returns the wish under the cursor, or nil.
func (m Model) selectedWish() *fambot.WishItem {
	items := m.activeList()
	if m.cursor < 0 || m.cursor >= len(items) {
		return nil
	}
	return &items[m.cursor]
}

func (m *Model) clampCursor() {
	n := len(m.activeList())
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	if m.confirm != nil {
		return m.handleConfirmKey(msg)
	}
	if m.prompt != nil {
		return m.handlePromptKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "T":
		// Cycle theme and persist the choice
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case "tab":
		if m.page == PageMain {
			m.page = PageWishlist
		} else {
			m.page = PageMain
		}
		m.clampCursor()
		return m, nil

	case "esc":
		if m.status.text != "" {
			m.status = status{}
			return m, nil
		}
		m.page = PageMain
		return m, nil
	}

	switch m.page {
	case PageMain:
		return m.handleMainKey(msg)
	case PageWishlist:
		return m.handleWishlistKey(msg)
	}
	return m, nil
}

// handleMainKey processes keys on the main page. Everything here needs an
// existing pairing except the date prompt, which the service rejects on
// its own when no pair exists.
func (m Model) handleMainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.snapshot.HasPair {
		return m, nil
	}

	switch msg.String() {
	case "s":
		m.openPrompt(promptStartDate, 0)
		return m, nil

	case "c":
		m.openPrompt(promptCloudURL, 0)
		return m, nil

	case "o":
		link := ""
		if m.snapshot.Pair != nil {
			link = m.snapshot.Pair.CloudURL
		}
		if strings.TrimSpace(link) == "" {
			m.status = status{text: "No cloud link set yet", isErr: true}
			return m, nil
		}
		return m, openLinkCmd(link)

	case "y":
		link := ""
		if m.snapshot.Pair != nil {
			link = m.snapshot.Pair.CloudURL
		}
		if strings.TrimSpace(link) == "" {
			m.status = status{text: "No cloud link set yet", isErr: true}
			return m, nil
		}
		return m, copyLinkCmd(link)

	case "D":
		m.confirm = &confirmState{kind: confirmDeletePair}
		return m, nil
	}
	return m, nil
}

// handleWishlistKey processes keys on the wishlist page. Editing keys
// apply only to the caller's own list; the partner's list is read-only.
func (m Model) handleWishlistKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.snapshot.HasPair {
		return m, nil
	}

	switch msg.String() {
	case "m":
		m.wishTab = TabMine
		m.clampCursor()
		return m, nil

	case "p":
		m.wishTab = TabPartner
		m.clampCursor()
		return m, nil

	case "left", "right":
		if m.wishTab == TabMine {
			m.wishTab = TabPartner
		} else {
			m.wishTab = TabMine
		}
		m.clampCursor()
		return m, nil

	case "j", "down":
		if m.cursor < len(m.activeList())-1 {
			m.cursor++
		}
		return m, nil

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "g", "home":
		m.cursor = 0
		return m, nil

	case "G", "end":
		if n := len(m.activeList()); n > 0 {
			m.cursor = n - 1
		}
		return m, nil

	case "a":
		// Adding always targets your own list
		m.wishTab = TabMine
		m.clampCursor()
		m.openPrompt(promptAddWish, 0)
		return m, nil

	case "enter", "o":
		item := m.selectedWish()
		if item == nil || strings.TrimSpace(item.URL) == "" {
			return m, nil
		}
		return m, openLinkCmd(item.URL)

	case "y":
		item := m.selectedWish()
		if item == nil || strings.TrimSpace(item.URL) == "" {
			return m, nil
		}
		return m, copyLinkCmd(item.URL)

	case "l":
		if m.wishTab != TabMine {
			return m, nil
		}
		if item := m.selectedWish(); item != nil {
			m.openPrompt(promptWishLink, item.ID)
		}
		return m, nil

	case "x":
		if m.wishTab != TabMine {
			return m, nil
		}
		if item := m.selectedWish(); item != nil {
			return m, m.toggleDoneCmd(item.ID, !item.Done)
		}
		return m, nil

	case "d":
		if m.wishTab != TabMine {
			return m, nil
		}
		if item := m.selectedWish(); item != nil {
			m.confirm = &confirmState{kind: confirmDeleteWish, itemID: item.ID, title: item.Title}
		}
		return m, nil

	case "C":
		// The clear affordance exists only while your own tab is active
		if m.wishTab != TabMine || len(m.snapshot.MyWishlist) == 0 {
			return m, nil
		}
		m.confirm = &confirmState{kind: confirmClearList}
		return m, nil
	}
	return m, nil
}

// View implements tea.Model. Rendering is a pure projection of the model;
// the same model always yields the same screen.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.confirm != nil {
		return m.renderConfirm()
	}
	if m.prompt != nil {
		return m.renderPrompt()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	switch m.page {
	case PageWishlist:
		b.WriteString(m.renderWishlistPage())
	default:
		b.WriteString(m.renderMainPage())
	}
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	return b.String()
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
