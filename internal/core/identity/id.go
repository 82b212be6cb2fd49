// Package identity contains the pure rules for recognising player identifiers
// and usernames. This is part of the Functional Core - no I/O, only pure functions.
package identity

import (
	"github.com/google/uuid"
)

// ParseIdentifier parses raw as a canonical player UUID.
// Both the dashed (8-4-4-4-12) and the undashed 32 hex digit forms are accepted.
// raw is parsed as given; surrounding whitespace makes it a non-UUID.
func ParseIdentifier(raw string) (uuid.UUID, bool) {
	// uuid.Parse also accepts urn and braced forms, which players never type.
	if len(raw) != 32 && len(raw) != 36 {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
