package model

import "time"

// WaitlistEntry models a single signup on the product waitlist.
// Emails are unique across the table; CreatedAt is stamped by the
// repository at insertion time.
//
// Fields:
//  ID        – primary key identifier.
//  Email     – unique email address.
//  CreatedAt – timestamp of the signup.
type WaitlistEntry struct {
	ID        uint64    // waitlist.id
	Email     string    // waitlist.email
	CreatedAt time.Time // waitlist.created_at
}
