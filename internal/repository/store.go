package repository

import (
	"sync"
	"time"

	"github.com/brandvault/trademark-search/internal/model"
)

// Store is the in-memory catalog backing the whole service. Rows live
// in maps keyed by ID, with per-kind order slices preserving insertion
// order for full scans. A single RWMutex guards every read and write so
// a search observes a consistent snapshot across the related tables;
// writes only happen at catalog load and on waitlist joins, so reads
// dominate.
type Store struct {
	mu sync.RWMutex

	owners          map[uint64]model.Owner
	lawFirms        map[uint64]model.LawFirm
	attorneys       map[uint64]model.Attorney
	trademarks      map[uint64]model.Trademark
	classifications map[uint64][]int // trademark ID -> class IDs, insertion order
	waitlist        map[uint64]model.WaitlistEntry

	ownerOrder     []uint64
	lawFirmOrder   []uint64
	attorneyOrder  []uint64
	trademarkOrder []uint64

	nextOwnerID     uint64
	nextLawFirmID   uint64
	nextAttorneyID  uint64
	nextTrademarkID uint64
	nextWaitlistID  uint64
}

// NewStore returns an empty store with all ID counters starting at 1.
// Counters are monotonic and never reused within a process lifetime.
func NewStore() *Store {
	return &Store{
		owners:          map[uint64]model.Owner{},
		lawFirms:        map[uint64]model.LawFirm{},
		attorneys:       map[uint64]model.Attorney{},
		trademarks:      map[uint64]model.Trademark{},
		classifications: map[uint64][]int{},
		waitlist:        map[uint64]model.WaitlistEntry{},
		nextOwnerID:     1,
		nextLawFirmID:   1,
		nextAttorneyID:  1,
		nextTrademarkID: 1,
		nextWaitlistID:  1,
	}
}

// NewTrademark carries the caller-supplied fields for a trademark row.
// The store assigns the ID and zeroes the search counter.
type NewTrademark struct {
	Name             string
	SerialNumber     string
	Description      string
	FilingDate       *string // ISO calendar date, nil when unfiled
	RegistrationDate *string
	StatusID         int
	OwnerID          uint64
	AttorneyID       *uint64
	LawFirmID        *uint64
	Classifications  []int
}

// CreateOwner allocates the next owner ID and inserts the row.
// Uniqueness of the name is the caller's responsibility.
func (s *Store) CreateOwner(name, address string) model.Owner {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := model.Owner{ID: s.nextOwnerID, Name: name, Address: address}
	s.nextOwnerID++
	s.owners[o.ID] = o
	s.ownerOrder = append(s.ownerOrder, o.ID)
	return o
}

// CreateLawFirm allocates the next law firm ID and inserts the row.
func (s *Store) CreateLawFirm(name, address string) model.LawFirm {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := model.LawFirm{ID: s.nextLawFirmID, Name: name, Address: address}
	s.nextLawFirmID++
	s.lawFirms[f.ID] = f
	s.lawFirmOrder = append(s.lawFirmOrder, f.ID)
	return f
}

// CreateAttorney allocates the next attorney ID and inserts the row.
// lawFirmID may be nil for independent attorneys.
func (s *Store) CreateAttorney(name string, lawFirmID *uint64) model.Attorney {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := model.Attorney{ID: s.nextAttorneyID, Name: name, LawFirmID: lawFirmID}
	s.nextAttorneyID++
	s.attorneys[a.ID] = a
	s.attorneyOrder = append(s.attorneyOrder, a.ID)
	return a
}

// CreateTrademark allocates the next trademark ID, inserts the row and
// records its classification link set.
func (s *Store) CreateTrademark(in NewTrademark) model.Trademark {
	s.mu.Lock()
	defer s.mu.Unlock()
	tm := model.Trademark{
		ID:               s.nextTrademarkID,
		Name:             in.Name,
		SerialNumber:     in.SerialNumber,
		Description:      in.Description,
		FilingDate:       parseDate(in.FilingDate),
		RegistrationDate: parseDate(in.RegistrationDate),
		StatusID:         in.StatusID,
		OwnerID:          in.OwnerID,
		AttorneyID:       in.AttorneyID,
		LawFirmID:        in.LawFirmID,
	}
	s.nextTrademarkID++
	s.trademarks[tm.ID] = tm
	s.trademarkOrder = append(s.trademarkOrder, tm.ID)
	cls := make([]int, len(in.Classifications))
	copy(cls, in.Classifications)
	s.classifications[tm.ID] = cls
	return tm
}

// parseDate converts an optional ISO calendar date into a *time.Time.
// Malformed input is treated as absent; seed data is the only producer.
func parseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

// AllOwners returns every owner in insertion order.
func (s *Store) AllOwners() []model.Owner {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Owner, 0, len(s.ownerOrder))
	for _, id := range s.ownerOrder {
		out = append(out, s.owners[id])
	}
	return out
}

// AllLawFirms returns every law firm in insertion order.
func (s *Store) AllLawFirms() []model.LawFirm {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.LawFirm, 0, len(s.lawFirmOrder))
	for _, id := range s.lawFirmOrder {
		out = append(out, s.lawFirms[id])
	}
	return out
}

// AllAttorneys returns every attorney in insertion order.
func (s *Store) AllAttorneys() []model.Attorney {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Attorney, 0, len(s.attorneyOrder))
	for _, id := range s.attorneyOrder {
		out = append(out, s.attorneys[id])
	}
	return out
}
