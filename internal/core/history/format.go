package history

import (
	"github.com/google/uuid"
)

// Entry type codes.
const (
	TypeUser  = 'U'
	TypeGroup = 'G'
	TypeTrack = 'T'
)

// Entry is an action-log entry as seen by the formatter.
type Entry struct {
	Index     int // Position in the target's history, 1-based
	Timestamp int64
	ActorID   uuid.UUID
	ActorName string
	Type      byte
	ActedID   *uuid.UUID
	ActedName string
	Action    string
}

// ActorDisplay returns the actor's name, or its UUID when no name was logged.
func (e Entry) ActorDisplay() string {
	if e.ActorName != "" {
		return e.ActorName
	}
	return e.ActorID.String()
}

// ActedDisplay returns the acted subject's name. User entries without a
// logged name fall back to the acted UUID.
func (e Entry) ActedDisplay() string {
	if e.ActedName != "" {
		return e.ActedName
	}
	if e.Type == TypeUser && e.ActedID != nil {
		return e.ActedID.String()
	}
	return ""
}

// Line is a formatted history line. Fields are in display order.
type Line struct {
	Index  int
	Age    string
	Actor  string
	Type   string
	Acted  string
	Action string
}

// FormatEntry formats e relative to now (seconds since epoch).
// A timestamp in the future renders as age "0s".
func FormatEntry(now int64, e Entry) Line {
	return Line{
		Index:  e.Index,
		Age:    FormatConcise(now - e.Timestamp),
		Actor:  e.ActorDisplay(),
		Type:   string(rune(e.Type)),
		Acted:  e.ActedDisplay(),
		Action: e.Action,
	}
}
