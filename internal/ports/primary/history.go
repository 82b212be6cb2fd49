package primary

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// HistoryService defines the primary port for browsing a user's action history.
type HistoryService interface {
	// UserHistory resolves req.Target and returns one page of its history.
	// Errors are ErrInvalidTarget, ErrNoEntries, *PageOutOfRangeError or
	// ErrUnexpectedEmptyPage, possibly wrapped.
	UserHistory(ctx context.Context, req HistoryRequest) (*HistoryPage, error)
}

// HistoryRequest is a request for one page of a user's history.
type HistoryRequest struct {
	Target string  // Username or UUID
	Page   *string // Raw page token, nil selects the most recent page
}

// HistoryPage is one rendered page of history.
type HistoryPage struct {
	Target  uuid.UUID      `json:"target"`
	Name    string         `json:"name"`
	Page    int            `json:"page"`
	MaxPage int            `json:"max_page"`
	Entries []HistoryEntry `json:"entries"`
}

// HistoryEntry is one formatted history line. Field order is display order.
type HistoryEntry struct {
	Index  int    `json:"index"`
	Age    string `json:"age"`
	Actor  string `json:"actor"`
	Type   string `json:"type"`
	Acted  string `json:"acted"`
	Action string `json:"action"`
}

var (
	// ErrInvalidTarget is returned when the target is neither a UUID nor a known username.
	ErrInvalidTarget = errors.New("not a valid user or uuid")

	// ErrNoEntries is returned when the target has no history at all.
	ErrNoEntries = errors.New("no log entries found")

	// ErrUnexpectedEmptyPage is returned when the store reports entries but
	// returns none for a page inside the valid range.
	ErrUnexpectedEmptyPage = errors.New("log store returned an empty page inside the valid range")
)

// PageOutOfRangeError is returned when the requested page is outside [1, MaxPage].
type PageOutOfRangeError struct {
	MaxPage int
}

func (e *PageOutOfRangeError) Error() string {
	return fmt.Sprintf("invalid page number, must be between 1 and %d", e.MaxPage)
}

// ResolveReason tells why a target could not be resolved.
// It is informational; callers present all reasons as ErrInvalidTarget.
type ResolveReason int

const (
	ReasonInvalidName ResolveReason = iota
	ReasonNotFound
	ReasonLookupFailed
)

func (r ResolveReason) String() string {
	switch r {
	case ReasonInvalidName:
		return "invalid name"
	case ReasonNotFound:
		return "not found"
	case ReasonLookupFailed:
		return "lookup failed"
	default:
		return "unknown"
	}
}

// ResolveError describes a failed target resolution. It matches ErrInvalidTarget
// under errors.Is, and the underlying lookup error when there is one.
type ResolveError struct {
	Target string
	Reason ResolveReason
	Err    error
}

func (e *ResolveError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %q: %s: %v", ErrInvalidTarget, e.Target, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %q: %s", ErrInvalidTarget, e.Target, e.Reason)
}

func (e *ResolveError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidTarget, e.Err}
	}
	return []error{ErrInvalidTarget}
}
