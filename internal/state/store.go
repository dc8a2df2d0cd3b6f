package state

import (
	"sync"

	"github.com/duet-tui/duet/internal/fambot"
)

// Snapshot is the authoritative client-side view of the pairing: the last
// successful service response plus every confirmed edit since.
type Snapshot struct {
	Initialized     bool
	HasPair         bool
	Pair            *fambot.Pair
	Partner         *fambot.Partner
	MyWishlist      []fambot.WishItem
	PartnerWishlist []fambot.WishItem
}

// Store owns the snapshot and exposes one mutator per confirmed command.
// Mutators are called only after the corresponding command succeeded; a
// failed command never touches the store. All mutators are idempotent and
// treat unknown ids as silent no-ops, since the service, not the store, is
// the authority on validity.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Snapshot returns an independent copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Pair = clonePair(s.snapshot.Pair)
	snap.Partner = clonePartner(s.snapshot.Partner)
	snap.MyWishlist = cloneItems(s.snapshot.MyWishlist)
	snap.PartnerWishlist = cloneItems(s.snapshot.PartnerWishlist)
	return snap
}

// SetPairing replaces the whole snapshot from an initialization response.
func (s *Store) SetPairing(resp *fambot.InitResponse) {
	if resp == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot = Snapshot{
		Initialized:     true,
		HasPair:         resp.HasPair,
		Pair:            clonePair(resp.Pair),
		Partner:         clonePartner(resp.Partner),
		MyWishlist:      cloneItems(resp.MyWishlist),
		PartnerWishlist: cloneItems(resp.PartnerWishlist),
	}
}

// AddWishItem appends a confirmed wish to the caller's own list. When an
// item with the same id is already present it is replaced in place, so a
// duplicated completion cannot yield two rows.
func (s *Store) AddWishItem(item fambot.WishItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.snapshot.MyWishlist {
		if s.snapshot.MyWishlist[i].ID == item.ID {
			s.snapshot.MyWishlist[i] = item
			return
		}
	}
	s.snapshot.MyWishlist = append(s.snapshot.MyWishlist, item)
}

// RemoveWishItem drops the wish with the given id from the caller's list.
func (s *Store) RemoveWishItem(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.snapshot.MyWishlist
	for i := range items {
		if items[i].ID == id {
			s.snapshot.MyWishlist = append(items[:i:i], items[i+1:]...)
			return
		}
	}
}

// SetWishItemLink attaches a confirmed link to the wish with the given id.
func (s *Store) SetWishItemLink(id int64, link string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.snapshot.MyWishlist {
		if s.snapshot.MyWishlist[i].ID == id {
			s.snapshot.MyWishlist[i].URL = link
			return
		}
	}
}

// SetWishItemDone records a confirmed done-flag flip.
func (s *Store) SetWishItemDone(id int64, done bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.snapshot.MyWishlist {
		if s.snapshot.MyWishlist[i].ID == id {
			s.snapshot.MyWishlist[i].Done = done
			return
		}
	}
}

// ClearMyWishlist empties the caller's own list.
func (s *Store) ClearMyWishlist() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.MyWishlist = nil
}

// SetStartDate replaces the start date and the whole stats block
// atomically. The pair record is created when absent, mirroring a pairing
// whose date is set for the first time.
func (s *Store) SetStartDate(startDate string, stats *fambot.RelationshipStats) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Pair == nil {
		s.snapshot.Pair = &fambot.Pair{}
	}
	s.snapshot.Pair.StartDate = startDate
	s.snapshot.Pair.StartStats = cloneStats(stats)
}

// SetCloudURL records the confirmed shared cloud link; empty clears it.
func (s *Store) SetCloudURL(link string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Pair == nil {
		s.snapshot.Pair = &fambot.Pair{}
	}
	s.snapshot.Pair.CloudURL = link
}

// ClearPairing wipes everything after a confirmed pair deletion.
func (s *Store) ClearPairing() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot = Snapshot{Initialized: true}
}

func cloneItems(items []fambot.WishItem) []fambot.WishItem {
	if len(items) == 0 {
		return nil
	}
	dup := make([]fambot.WishItem, len(items))
	copy(dup, items)
	return dup
}

func clonePair(p *fambot.Pair) *fambot.Pair {
	if p == nil {
		return nil
	}
	dup := *p
	dup.StartStats = cloneStats(p.StartStats)
	return &dup
}

func clonePartner(p *fambot.Partner) *fambot.Partner {
	if p == nil {
		return nil
	}
	dup := *p
	return &dup
}

func cloneStats(st *fambot.RelationshipStats) *fambot.RelationshipStats {
	if st == nil {
		return nil
	}
	dup := *st
	return &dup
}
