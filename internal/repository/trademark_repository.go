package repository

import "github.com/brandvault/trademark-search/internal/model"

// TrademarkByID resolves a trademark and joins its relations into a
// denormalized detail view. The owner must resolve or the lookup fails;
// attorney and law firm resolve leniently to nil, and a missing
// classification link set yields an empty slice.
func (s *Store) TrademarkByID(id uint64) (model.TrademarkDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.detailLocked(id)
}

// detailLocked builds the detail view for one trademark. Callers must
// hold at least the read lock.
func (s *Store) detailLocked(id uint64) (model.TrademarkDetail, error) {
	tm, ok := s.trademarks[id]
	if !ok {
		return model.TrademarkDetail{}, ErrTrademarkNotFound
	}
	owner, ok := s.owners[tm.OwnerID]
	if !ok {
		return model.TrademarkDetail{}, ErrOwnerNotFound
	}

	d := model.TrademarkDetail{Trademark: tm, Owner: owner}
	if tm.AttorneyID != nil {
		if a, ok := s.attorneys[*tm.AttorneyID]; ok {
			d.Attorney = &a
		}
	}
	if tm.LawFirmID != nil {
		if f, ok := s.lawFirms[*tm.LawFirmID]; ok {
			d.LawFirm = &f
		}
	}

	cls := s.classifications[id]
	d.Classifications = make([]int, len(cls))
	copy(d.Classifications, cls)
	return d, nil
}
