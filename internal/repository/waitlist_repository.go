package repository

import (
	"time"

	"github.com/brandvault/trademark-search/internal/model"
)

// JoinWaitlist appends a timestamped waitlist entry after checking that
// the email is not already registered. The comparison is a
// case-sensitive exact match; email shape validation belongs to the
// handler layer.
func (s *Store) JoinWaitlist(email string) (model.WaitlistEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.waitlist {
		if e.Email == email {
			return model.WaitlistEntry{}, ErrEmailExists
		}
	}

	entry := model.WaitlistEntry{
		ID:        s.nextWaitlistID,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	s.nextWaitlistID++
	s.waitlist[entry.ID] = entry
	return entry, nil
}

// WaitlistSize reports how many entries are on the waitlist.
func (s *Store) WaitlistSize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.waitlist)
}
