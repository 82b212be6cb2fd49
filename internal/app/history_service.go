package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/permlog/internal/core/history"
	"github.com/example/permlog/internal/logging"
	"github.com/example/permlog/internal/ports/primary"
	"github.com/example/permlog/internal/ports/secondary"
)

// HistoryServiceImpl implements the HistoryService interface.
type HistoryServiceImpl struct {
	resolver TargetResolver
	logRepo  secondary.ActionLogRepository
	opts     ResolveOptions
	logger   *zap.Logger
	now      func() time.Time
}

// NewHistoryService creates a new HistoryService with injected dependencies.
func NewHistoryService(resolver TargetResolver, logRepo secondary.ActionLogRepository, opts ResolveOptions, logger *zap.Logger) *HistoryServiceImpl {
	return &HistoryServiceImpl{
		resolver: resolver,
		logRepo:  logRepo,
		opts:     opts,
		logger:   logging.OrNop(logger),
		now:      time.Now,
	}
}

// UserHistory resolves the target and shows the requested page of its history.
// A page token that is not a number skips resolution and is shown against an
// empty history, so it always reports no entries.
func (s *HistoryServiceImpl) UserHistory(ctx context.Context, req primary.HistoryRequest) (*primary.HistoryPage, error) {
	sel := history.ParsePageToken(req.Page)
	if sel.Kind == history.ForceInvalid {
		return s.View(ctx, sel, nil)
	}

	target, err := s.resolver.Resolve(ctx, req.Target, s.opts)
	if err != nil {
		return nil, err
	}

	return s.View(ctx, sel, &target)
}

// View shows the page chosen by sel from target's history.
// A nil target has no history.
func (s *HistoryServiceImpl) View(ctx context.Context, sel history.PageSelection, target *uuid.UUID) (*primary.HistoryPage, error) {
	count := 0
	if target != nil {
		var err error
		count, err = s.logRepo.CountUserHistory(ctx, *target)
		if err != nil {
			return nil, fmt.Errorf("failed to count history: %w", err)
		}
	}

	result := history.SelectPage(sel, history.MaxPages(count, history.EntriesPerPage))
	switch result.Outcome {
	case history.NoEntries:
		return nil, primary.ErrNoEntries
	case history.OutOfRange:
		return nil, &primary.PageOutOfRangeError{MaxPage: result.MaxPage}
	}

	records, err := s.logRepo.UserHistoryPage(ctx, *target, result.Page, history.EntriesPerPage)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history page: %w", err)
	}
	if len(records) == 0 {
		s.logger.Error("log store returned no entries for a page in range",
			zap.Stringer("target", target),
			zap.Int("page", result.Page),
			zap.Int("max_page", result.MaxPage),
			zap.Int("count", count),
		)
		return nil, fmt.Errorf("%w: target %s page %d of %d", primary.ErrUnexpectedEmptyPage, target, result.Page, result.MaxPage)
	}

	now := s.now().Unix()
	entries := make([]primary.HistoryEntry, len(records))
	for i, r := range records {
		entries[i] = lineToHistoryEntry(history.FormatEntry(now, recordToEntry(r)))
	}

	return &primary.HistoryPage{
		Target:  *target,
		Name:    recordToEntry(records[0]).ActedDisplay(),
		Page:    result.Page,
		MaxPage: result.MaxPage,
		Entries: entries,
	}, nil
}

// Helper methods

func recordToEntry(r *secondary.ActionLogRecord) history.Entry {
	var typ byte
	if r.Type != "" {
		typ = r.Type[0]
	}
	return history.Entry{
		Index:     r.Index,
		Timestamp: r.Timestamp,
		ActorID:   r.ActorID,
		ActorName: r.ActorName,
		Type:      typ,
		ActedID:   r.ActedID,
		ActedName: r.ActedName,
		Action:    r.Action,
	}
}

func lineToHistoryEntry(l history.Line) primary.HistoryEntry {
	return primary.HistoryEntry{
		Index:  l.Index,
		Age:    l.Age,
		Actor:  l.Actor,
		Type:   l.Type,
		Acted:  l.Acted,
		Action: l.Action,
	}
}

// Ensure HistoryServiceImpl implements the interface
var _ primary.HistoryService = (*HistoryServiceImpl)(nil)
