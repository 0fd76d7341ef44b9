package model

// Owner represents a trademark owner record.  Owners are created
// once when the catalog is loaded and are immutable afterwards.
// Each trademark references exactly one owner by ID.
//
// Fields:
//  ID      – primary key identifier.
//  Name    – unique legal name of the owner (e.g. "Nike, Inc.").
//  Address – postal address of the owner.
type Owner struct {
	ID      uint64 // owners.id
	Name    string // owners.name
	Address string // owners.address
}
