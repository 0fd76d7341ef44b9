package model

// Attorney represents an attorney of record.  An attorney may
// practice at a law firm, referenced by LawFirmID, or work
// independently, in which case LawFirmID is nil.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – full name of the attorney.
//  LawFirmID – firm the attorney belongs to (nullable).
type Attorney struct {
	ID        uint64  // attorneys.id
	Name      string  // attorneys.name
	LawFirmID *uint64 // attorneys.law_firm_id (nullable)
}
