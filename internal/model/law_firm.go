package model

// LawFirm represents a law firm that prosecutes trademark
// applications.  Like owners, law firms are loaded with the
// catalog and never modified afterwards.  Attorneys and
// trademarks may reference a law firm by ID.
//
// Fields:
//  ID      – primary key identifier.
//  Name    – unique name of the firm.
//  Address – postal address of the firm.
type LawFirm struct {
	ID      uint64 // law_firms.id
	Name    string // law_firms.name
	Address string // law_firms.address
}
