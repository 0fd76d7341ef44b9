// Package queue defines message payloads exchanged over the message broker.
package queue

// WaitlistJoinedEvent is published when an email joins the waitlist.
// It carries enough information for downstream consumers to log or
// notify without querying the catalog service.
type WaitlistJoinedEvent struct {
	EntryID  uint64 `json:"entry_id"`
	Email    string `json:"email"`
	JoinedAt string `json:"joined_at"`
}
