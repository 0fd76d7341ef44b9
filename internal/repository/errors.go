// Package repository defines the in-memory catalog store and the error
// sentinels reused across its operations. These sentinel values allow
// higher layers such as handlers to distinguish between different
// failure scenarios: a missing row maps to an HTTP 404 response,
// while a duplicate waitlist email maps to 409.
package repository

import "errors"

// ErrTrademarkNotFound is returned when a trademark ID does not
// resolve to a stored row.
var ErrTrademarkNotFound = errors.New("trademark not found")

// ErrOwnerNotFound is returned when a trademark's owner reference
// does not resolve. Detail views require an owner, so the whole
// lookup fails rather than producing a partial view.
var ErrOwnerNotFound = errors.New("owner not found")

// ErrEmailExists is returned when a waitlist signup uses an email
// that is already on the list. Handlers should translate this into
// an HTTP 409 response.
var ErrEmailExists = errors.New("email already exists")
