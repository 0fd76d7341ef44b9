package repository

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/brandvault/trademark-search/internal/model"
)

// TrademarkSearchQuery defines filters, sort and pagination for a
// catalog search. Every filter is optional and skipped when empty.
// Date bounds are inclusive; rows without a filing date fail either
// bound. The handler layer validates SortBy and StatusFilter against
// their fixed value sets before a query reaches the store.
type TrademarkSearchQuery struct {
	Query              string
	OwnerFilter        string
	LawFirmFilter      string
	AttorneyFilter     string
	StatusFilter       string
	FilingDateFrom     *time.Time
	FilingDateTo       *time.Time
	RegistrationNumber string
	SortBy             string
	Page               int
	PerPage            int
}

// TrademarkSearchResult is one page of matches plus the total count
// before pagination and the echoed query string.
type TrademarkSearchResult struct {
	Trademarks []model.TrademarkDetail
	Total      int
	Page       int
	PerPage    int
	Query      string
}

// SearchTrademarks scans the catalog in insertion order, applies the
// filter chain, sorts, paginates and joins each surviving row with its
// relations. The whole sequence runs under one read lock so the page
// reflects a single consistent snapshot.
func (s *Store) SearchTrademarks(q TrademarkSearchQuery) TrademarkSearchResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]model.Trademark, 0, len(s.trademarkOrder))
	for _, id := range s.trademarkOrder {
		rows = append(rows, s.trademarks[id])
	}

	keep := func(pred func(model.Trademark) bool) {
		kept := rows[:0]
		for _, tm := range rows {
			if pred(tm) {
				kept = append(kept, tm)
			}
		}
		rows = kept
	}

	if q.Query != "" {
		needle := strings.ToLower(q.Query)
		keep(func(tm model.Trademark) bool {
			return strings.Contains(strings.ToLower(tm.Name), needle)
		})
	}
	if q.OwnerFilter != "" {
		keep(func(tm model.Trademark) bool {
			owner, ok := s.owners[tm.OwnerID]
			return ok && strings.Contains(owner.Name, q.OwnerFilter)
		})
	}
	if q.LawFirmFilter != "" {
		keep(func(tm model.Trademark) bool {
			if tm.LawFirmID == nil {
				return false
			}
			firm, ok := s.lawFirms[*tm.LawFirmID]
			return ok && strings.Contains(firm.Name, q.LawFirmFilter)
		})
	}
	if q.AttorneyFilter != "" {
		keep(func(tm model.Trademark) bool {
			if tm.AttorneyID == nil {
				return false
			}
			att, ok := s.attorneys[*tm.AttorneyID]
			return ok && strings.Contains(att.Name, q.AttorneyFilter)
		})
	}
	if q.StatusFilter != "" {
		keep(func(tm model.Trademark) bool {
			return model.StatusName(tm.StatusID) == q.StatusFilter
		})
	}
	if q.FilingDateFrom != nil {
		keep(func(tm model.Trademark) bool {
			return tm.FilingDate != nil && !tm.FilingDate.Before(*q.FilingDateFrom)
		})
	}
	if q.FilingDateTo != nil {
		keep(func(tm model.Trademark) bool {
			return tm.FilingDate != nil && !tm.FilingDate.After(*q.FilingDateTo)
		})
	}
	if q.RegistrationNumber != "" {
		keep(func(tm model.Trademark) bool {
			return strings.Contains(tm.SerialNumber, q.RegistrationNumber)
		})
	}

	sortTrademarks(rows, q.SortBy)

	total := len(rows)
	page := q.Page
	if page < 1 {
		page = 1
	}
	perPage := q.PerPage
	if perPage < 1 {
		perPage = 10
	}
	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	details := make([]model.TrademarkDetail, 0, end-start)
	for _, tm := range rows[start:end] {
		d, err := s.detailLocked(tm.ID)
		if err != nil {
			// unresolved owner reference; skip rather than fail the page
			continue
		}
		details = append(details, d)
	}

	return TrademarkSearchResult{
		Trademarks: details,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		Query:      q.Query,
	}
}

// sortTrademarks orders rows in place. "relevance" (and anything
// unknown) keeps the filtered order as-is. Undated rows sort after all
// dated rows under the date orders. Name orders use a locale-aware
// collation. Stable sorting keeps ties deterministic across identical
// requests.
func sortTrademarks(rows []model.Trademark, sortBy string) {
	switch sortBy {
	case "recent":
		sort.SliceStable(rows, func(i, j int) bool {
			a, b := rows[i].FilingDate, rows[j].FilingDate
			if a == nil {
				return false
			}
			if b == nil {
				return true
			}
			return a.After(*b)
		})
	case "oldest":
		sort.SliceStable(rows, func(i, j int) bool {
			a, b := rows[i].FilingDate, rows[j].FilingDate
			if a == nil {
				return false
			}
			if b == nil {
				return true
			}
			return a.Before(*b)
		})
	case "name-asc":
		coll := collate.New(language.English)
		sort.SliceStable(rows, func(i, j int) bool {
			return coll.CompareString(rows[i].Name, rows[j].Name) < 0
		})
	case "name-desc":
		coll := collate.New(language.English)
		sort.SliceStable(rows, func(i, j int) bool {
			return coll.CompareString(rows[i].Name, rows[j].Name) > 0
		})
	}
}
