// Package history contains the pure business logic for paging and formatting
// action-log history. This is part of the Functional Core - no I/O, only pure functions.
package history

import (
	"strconv"
)

// EntriesPerPage is the fixed number of entries shown on one history page.
const EntriesPerPage = 10

// SelectionKind tags how a page was requested.
type SelectionKind int

const (
	// UseLast selects the most recent page.
	UseLast SelectionKind = iota
	// Explicit selects the page number carried by the selection.
	Explicit
	// ForceInvalid never selects a page. Used for malformed page input so it
	// shares the out-of-range presentation.
	ForceInvalid
)

// PageSelection describes which page the caller asked for.
type PageSelection struct {
	Kind SelectionKind
	Page int // Only meaningful for Explicit
}

// LastPage returns a selection for the most recent page.
func LastPage() PageSelection {
	return PageSelection{Kind: UseLast}
}

// ExplicitPage returns a selection for page n.
func ExplicitPage(n int) PageSelection {
	return PageSelection{Kind: Explicit, Page: n}
}

// InvalidPage returns a selection that always falls outside the valid range.
func InvalidPage() PageSelection {
	return PageSelection{Kind: ForceInvalid}
}

// String implements fmt.Stringer for logging.
func (s PageSelection) String() string {
	switch s.Kind {
	case UseLast:
		return "last"
	case Explicit:
		return strconv.Itoa(s.Page)
	default:
		return "invalid"
	}
}

// ParsePageToken turns an optional user-supplied page token into a selection.
// A nil token selects the last page. A token that is not a 32-bit integer
// yields InvalidPage rather than a parse error.
func ParsePageToken(token *string) PageSelection {
	if token == nil {
		return LastPage()
	}
	n, err := strconv.ParseInt(*token, 10, 32)
	if err != nil {
		return InvalidPage()
	}
	return ExplicitPage(int(n))
}

// MaxPages returns the number of pages needed to show count entries.
func MaxPages(count, perPage int) int {
	if count <= 0 || perPage <= 0 {
		return 0
	}
	return (count + perPage - 1) / perPage
}

// Outcome is the result of evaluating a page selection against a page range.
type Outcome int

const (
	// PageAllowed means the effective page is within [1, maxPage].
	PageAllowed Outcome = iota
	// NoEntries means there is nothing to paginate.
	NoEntries
	// OutOfRange means the effective page is outside [1, maxPage].
	OutOfRange
)

// SelectResult is the outcome of SelectPage.
type SelectResult struct {
	Outcome Outcome
	Page    int // Effective page, set when Outcome is PageAllowed
	MaxPage int
}

// SelectPage evaluates sel against maxPage.
// Rules:
// - maxPage 0 is always NoEntries, whatever was selected
// - UseLast resolves to maxPage
// - Explicit pages must lie in [1, maxPage]
// - ForceInvalid is always OutOfRange
func SelectPage(sel PageSelection, maxPage int) SelectResult {
	if maxPage <= 0 {
		return SelectResult{Outcome: NoEntries}
	}

	var page int
	switch sel.Kind {
	case UseLast:
		page = maxPage
	case Explicit:
		page = sel.Page
	default:
		return SelectResult{Outcome: OutOfRange, MaxPage: maxPage}
	}

	if page < 1 || page > maxPage {
		return SelectResult{Outcome: OutOfRange, MaxPage: maxPage}
	}
	return SelectResult{Outcome: PageAllowed, Page: page, MaxPage: maxPage}
}
