// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle argument parsing, output formatting,
// but delegate business logic to services.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/permlog/internal/ports/primary"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	indexColor  = color.New(color.FgYellow)
	ageColor    = color.New(color.FgHiBlack)
	errorColor  = color.New(color.FgRed)
)

// HistoryAdapter translates user history lookups into HistoryService calls
// and renders the resulting page.
type HistoryAdapter struct {
	service primary.HistoryService
	out     io.Writer
}

// NewHistoryAdapter creates a new HistoryAdapter with the given service.
func NewHistoryAdapter(service primary.HistoryService, out io.Writer) *HistoryAdapter {
	return &HistoryAdapter{
		service: service,
		out:     out,
	}
}

// UserHistory shows one page of target's history. page is the raw page
// argument, nil when it was omitted.
//
// Invalid targets, empty histories and out-of-range pages are reported to
// the user and are not errors.
func (a *HistoryAdapter) UserHistory(ctx context.Context, target string, page *string) error {
	result, err := a.service.UserHistory(ctx, primary.HistoryRequest{
		Target: target,
		Page:   page,
	})
	if err != nil {
		return a.report(target, err)
	}

	fmt.Fprintf(a.out, "%s\n", headerColor.Sprintf("History for %s (page %d of %d)", result.Name, result.Page, result.MaxPage))
	for _, e := range result.Entries {
		fmt.Fprintf(a.out, "%s %s (%s) [%s] (%s) --> %s\n",
			indexColor.Sprintf("#%d", e.Index),
			ageColor.Sprintf("(%s ago)", e.Age),
			e.Actor, e.Type, e.Acted, e.Action)
	}
	return nil
}

func (a *HistoryAdapter) report(target string, err error) error {
	var rangeErr *primary.PageOutOfRangeError
	switch {
	case errors.Is(err, primary.ErrInvalidTarget):
		fmt.Fprintf(a.out, "%s\n", errorColor.Sprintf("'%s' is not a valid user or uuid.", target))
	case errors.Is(err, primary.ErrNoEntries):
		fmt.Fprintf(a.out, "%s\n", errorColor.Sprint("No log entries found."))
	case errors.As(err, &rangeErr):
		fmt.Fprintf(a.out, "%s\n", errorColor.Sprintf("Invalid page number. Please enter a value between 1 and %d.", rangeErr.MaxPage))
	default:
		return fmt.Errorf("failed to show history: %w", err)
	}
	return nil
}
