package ui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/duet-tui/duet/internal/fambot"
	"github.com/duet-tui/duet/internal/state"
)

// fakeService records calls and returns scripted results.
type fakeService struct {
	initResp *fambot.InitResponse
	addItem  fambot.WishItem
	err      error

	calls []string
}

func (f *fakeService) record(name string) { f.calls = append(f.calls, name) }

func (f *fakeService) Init(ctx context.Context) (*fambot.InitResponse, error) {
	f.record("init")
	return f.initResp, f.err
}

func (f *fakeService) AddWish(ctx context.Context, title string) (fambot.WishItem, error) {
	f.record("add")
	return f.addItem, f.err
}

func (f *fakeService) DeleteWish(ctx context.Context, id int64) error {
	f.record("delete")
	return f.err
}

func (f *fakeService) SetWishLink(ctx context.Context, id int64, link string) error {
	f.record("setlink")
	return f.err
}

func (f *fakeService) SetWishDone(ctx context.Context, id int64, done bool) error {
	f.record("setdone")
	return f.err
}

func (f *fakeService) ClearWishlist(ctx context.Context) error {
	f.record("clear")
	return f.err
}

func (f *fakeService) SetStartDate(ctx context.Context, date string) (*fambot.StartDateResponse, error) {
	f.record("startdate")
	return nil, f.err
}

func (f *fakeService) SetCloudURL(ctx context.Context, link string) error {
	f.record("cloud")
	return f.err
}

func (f *fakeService) DeletePair(ctx context.Context) error {
	f.record("delpair")
	return f.err
}

var _ fambot.Service = (*fakeService)(nil)

func pairedInit() *fambot.InitResponse {
	return &fambot.InitResponse{
		HasPair: true,
		Pair: &fambot.Pair{
			ID:        7,
			StartDate: "2020-02-14",
			StartStats: &fambot.RelationshipStats{
				StartDateISO:   "2020-02-14",
				StartDateHuman: "14.02.2020",
				DaysTogether:   2000,
				Years:          5,
				Months:         5,
			},
			CloudURL: "https://cloud.example/pair",
		},
		Partner: &fambot.Partner{ID: 2, Username: "sam", FirstName: "Sam"},
		MyWishlist: []fambot.WishItem{
			{ID: 1, Title: "New skates", URL: "https://shop.example/skates"},
			{ID: 2, Title: "A quiet weekend"},
		},
		PartnerWishlist: []fambot.WishItem{
			{ID: 3, Title: "Headphones", Done: true},
		},
	}
}

func newTestModel(t *testing.T, svc fambot.Service, resp *fambot.InitResponse) Model {
	t.Helper()

	store := &state.Store{}
	if resp != nil {
		store.SetPairing(resp)
	}

	m := New(Options{
		Client:    svc,
		Store:     store,
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestViewIsIdempotent(t *testing.T) {
	m := newTestModel(t, &fakeService{}, pairedInit())

	first := m.View()
	second := m.View()
	if first != second {
		t.Fatalf("View() changed between renders of the same model")
	}
}

func TestMainPageWithoutPairOmitsSections(t *testing.T) {
	m := newTestModel(t, &fakeService{}, &fambot.InitResponse{HasPair: false})

	view := m.View()
	if !strings.Contains(view, "No pair yet") {
		t.Fatalf("expected no-pair placeholder, got:\n%s", view)
	}
	for _, forbidden := range []string{"Shared cloud", "Together since", "t.me/"} {
		if strings.Contains(view, forbidden) {
			t.Fatalf("no-pair view must not contain %q, got:\n%s", forbidden, view)
		}
	}
}

func TestMainPageShowsStatsAndCloud(t *testing.T) {
	m := newTestModel(t, &fakeService{}, pairedInit())

	view := m.View()
	for _, want := range []string{"Sam", "t.me/sam", "14.02.2020", "2000 days", "Shared cloud", "https://cloud.example/pair"} {
		if !strings.Contains(view, want) {
			t.Fatalf("main page missing %q, got:\n%s", want, view)
		}
	}
}

func TestFutureStartDateSuppressesCountdowns(t *testing.T) {
	resp := pairedInit()
	resp.Pair.StartStats = &fambot.RelationshipStats{
		StartDateISO:   "2030-01-01",
		StartDateHuman: "01.01.2030",
		Future:         true,
	}
	m := newTestModel(t, &fakeService{}, resp)

	view := m.View()
	if !strings.Contains(view, "still ahead") {
		t.Fatalf("expected future-date notice, got:\n%s", view)
	}
	if strings.Contains(view, "together") || strings.Contains(view, "anniversary") {
		t.Fatalf("future date must suppress countdowns, got:\n%s", view)
	}
}

func TestWishlistAffordancesPerTab(t *testing.T) {
	m := newTestModel(t, &fakeService{}, pairedInit())
	m.page = PageWishlist

	// Partner tab is the default and carries no edit affordances.
	view := m.View()
	if strings.Contains(view, "add link") {
		t.Fatalf("partner tab must not offer add link, got:\n%s", view)
	}
	if strings.Contains(view, "C clear") {
		t.Fatalf("partner tab must not offer clear, got:\n%s", view)
	}

	m.wishTab = TabMine
	m.cursor = 1 // "A quiet weekend", no URL
	view = m.View()
	if !strings.Contains(view, "add link") {
		t.Fatalf("own tab should offer add link for url-less items, got:\n%s", view)
	}
	if !strings.Contains(view, "C clear") {
		t.Fatalf("own non-empty tab should offer clear, got:\n%s", view)
	}
}

func TestClearHintAbsentWhenOwnListEmpty(t *testing.T) {
	resp := pairedInit()
	resp.MyWishlist = nil
	m := newTestModel(t, &fakeService{}, resp)
	m.page = PageWishlist
	m.wishTab = TabMine

	view := m.View()
	if strings.Contains(view, "C clear") {
		t.Fatalf("empty own list must not offer clear, got:\n%s", view)
	}
}

func TestAddWishSuccessPath(t *testing.T) {
	svc := &fakeService{addItem: fambot.WishItem{ID: 9, Title: "Bike"}}
	m := newTestModel(t, svc, pairedInit())
	m.page = PageWishlist

	// "a" switches to the own tab and opens the prompt.
	updated, _ := m.Update(keyPress("a"))
	m = updated.(Model)
	if m.prompt == nil || m.prompt.kind != promptAddWish {
		t.Fatalf("expected add-wish prompt to open")
	}
	if m.wishTab != TabMine {
		t.Fatalf("adding must target the own tab")
	}

	m.prompt.input.SetValue("Bike")
	updated, cmd := m.Update(keyPress("enter"))
	m = updated.(Model)
	if cmd == nil {
		t.Fatalf("enter should produce a command")
	}

	msg := cmd()
	added, ok := msg.(wishAddedMsg)
	if !ok {
		t.Fatalf("expected wishAddedMsg, got %T", msg)
	}

	updated, _ = m.Update(added)
	m = updated.(Model)

	found := false
	for _, item := range m.snapshot.MyWishlist {
		if item.ID == 9 && item.Title == "Bike" {
			found = true
		}
	}
	if !found {
		t.Fatalf("confirmed wish missing from snapshot: %#v", m.snapshot.MyWishlist)
	}
}

func TestFailedClearLeavesStoreUntouched(t *testing.T) {
	svc := &fakeService{err: errors.New("boom")}
	m := newTestModel(t, svc, pairedInit())
	m.page = PageWishlist
	m.wishTab = TabMine

	before := len(m.snapshot.MyWishlist)

	updated, _ := m.Update(keyPress("C"))
	m = updated.(Model)
	if m.confirm == nil || m.confirm.kind != confirmClearList {
		t.Fatalf("expected clear confirmation")
	}

	updated, cmd := m.Update(keyPress("y"))
	m = updated.(Model)
	if cmd == nil {
		t.Fatalf("confirming should produce a command")
	}

	msg := cmd()
	failed, ok := msg.(commandFailedMsg)
	if !ok {
		t.Fatalf("expected commandFailedMsg, got %T", msg)
	}

	updated, _ = m.Update(failed)
	m = updated.(Model)

	if len(m.snapshot.MyWishlist) != before {
		t.Fatalf("failed clear mutated the store: %d items, want %d", len(m.snapshot.MyWishlist), before)
	}
	if !m.status.isErr || m.status.text == "" {
		t.Fatalf("failed clear must surface an error status, got %+v", m.status)
	}
}

func TestConfirmCancelRunsNothing(t *testing.T) {
	svc := &fakeService{}
	m := newTestModel(t, svc, pairedInit())
	m.page = PageWishlist
	m.wishTab = TabMine
	m.cursor = 0

	updated, _ := m.Update(keyPress("d"))
	m = updated.(Model)
	if m.confirm == nil {
		t.Fatalf("expected delete confirmation")
	}

	updated, cmd := m.Update(keyPress("n"))
	m = updated.(Model)
	if cmd != nil {
		t.Fatalf("cancelling must not produce a command")
	}
	if m.confirm != nil {
		t.Fatalf("cancel should close the confirmation")
	}
	if len(svc.calls) != 0 {
		t.Fatalf("cancel must not hit the service, calls: %v", svc.calls)
	}
}

func TestPartnerTabRejectsEdits(t *testing.T) {
	svc := &fakeService{}
	m := newTestModel(t, svc, pairedInit())
	m.page = PageWishlist
	m.wishTab = TabPartner
	m.cursor = 0

	for _, key := range []string{"x", "d", "l", "C"} {
		updated, cmd := m.Update(keyPress(key))
		m = updated.(Model)
		if cmd != nil {
			t.Fatalf("key %q must be inert on the partner tab", key)
		}
		if m.confirm != nil || m.prompt != nil {
			t.Fatalf("key %q must not open an overlay on the partner tab", key)
		}
	}
	if len(svc.calls) != 0 {
		t.Fatalf("partner tab edits must not hit the service, calls: %v", svc.calls)
	}
}

func TestThemeCyclePersists(t *testing.T) {
	m := newTestModel(t, &fakeService{}, pairedInit())
	start := m.theme.Name

	updated, _ := m.Update(keyPress("T"))
	m = updated.(Model)
	if m.theme.Name == start {
		t.Fatalf("theme did not change")
	}

	updated, _ = m.Update(keyPress("T"))
	m = updated.(Model)
	if m.theme.Name != start {
		t.Fatalf("cycling twice should return to %q, got %q", start, m.theme.Name)
	}
}

func TestEscDismissesStatusBeforeLeavingPage(t *testing.T) {
	m := newTestModel(t, &fakeService{}, pairedInit())
	m.page = PageWishlist
	m.status = status{text: "something failed", isErr: true}

	updated, _ := m.Update(keyPress("esc"))
	m = updated.(Model)
	if m.status.text != "" {
		t.Fatalf("esc should clear the status first")
	}
	if m.page != PageWishlist {
		t.Fatalf("first esc must not leave the page")
	}

	updated, _ = m.Update(keyPress("esc"))
	m = updated.(Model)
	if m.page != PageMain {
		t.Fatalf("second esc should return to the main page")
	}
}
