package model

import "time"

// Trademark represents a single mark in the catalog.  Filing and
// registration dates are nullable because pending or abandoned
// applications may lack one or both.  Attorney and law firm are
// optional relations; the owner is mandatory.
//
// Fields:
//  ID               – primary key identifier.
//  Name             – word mark (e.g. "AIR JORDAN").
//  SerialNumber     – unique USPTO-style serial number.
//  Description      – free-text description of the goods/services.
//  FilingDate       – date the application was filed (nullable).
//  RegistrationDate – date the mark registered (nullable).
//  StatusID         – one of the fixed status IDs (see Statuses).
//  OwnerID          – owning entity, always set.
//  AttorneyID       – attorney of record (nullable).
//  LawFirmID        – prosecuting firm (nullable).
//  SearchCount      – how often the mark appeared in searches.
type Trademark struct {
	ID               uint64     // trademarks.id
	Name             string     // trademarks.name
	SerialNumber     string     // trademarks.serial_number
	Description      string     // trademarks.description
	FilingDate       *time.Time // trademarks.filing_date (nullable)
	RegistrationDate *time.Time // trademarks.registration_date (nullable)
	StatusID         int        // trademarks.status_id
	OwnerID          uint64     // trademarks.owner_id
	AttorneyID       *uint64    // trademarks.attorney_id (nullable)
	LawFirmID        *uint64    // trademarks.law_firm_id (nullable)
	SearchCount      int        // trademarks.search_count
}

// TrademarkDetail is the denormalized view of a trademark with its
// relations resolved.  It is built on demand and never stored; the
// owner is always present, attorney and law firm may be nil, and
// Classifications holds the raw class IDs in stored order.
type TrademarkDetail struct {
	Trademark
	Owner           Owner
	Attorney        *Attorney
	LawFirm         *LawFirm
	Classifications []int
}
