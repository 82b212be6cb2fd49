package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/permlog/internal/core/history"
	"github.com/example/permlog/internal/core/identity"
	"github.com/example/permlog/internal/ports/primary"
	"github.com/example/permlog/internal/ports/secondary"
)

// LogServiceImpl implements the LogService interface.
type LogServiceImpl struct {
	logWriter secondary.LogWriter
	logRepo   secondary.ActionLogRepository
}

// NewLogService creates a new LogService with injected dependencies.
func NewLogService(logWriter secondary.LogWriter, logRepo secondary.ActionLogRepository) *LogServiceImpl {
	return &LogServiceImpl{
		logWriter: logWriter,
		logRepo:   logRepo,
	}
}

// RecordAction appends an entry to the action log.
func (s *LogServiceImpl) RecordAction(ctx context.Context, req primary.RecordActionRequest) error {
	action := strings.TrimSpace(req.Action)
	if action == "" {
		return fmt.Errorf("action cannot be empty")
	}

	typ := strings.ToUpper(strings.TrimSpace(req.Type))
	if len(typ) != 1 {
		return fmt.Errorf("invalid entry type %q: expected U, G or T", req.Type)
	}

	switch typ[0] {
	case history.TypeUser:
		id, ok := identity.ParseIdentifier(req.Target)
		if !ok {
			return fmt.Errorf("invalid user target %q: expected a uuid", req.Target)
		}
		return s.logWriter.LogUserAction(ctx, id, req.Name, action)
	case history.TypeGroup:
		name := strings.TrimSpace(req.Target)
		if name == "" {
			return fmt.Errorf("group name cannot be empty")
		}
		return s.logWriter.LogGroupAction(ctx, name, action)
	case history.TypeTrack:
		name := strings.TrimSpace(req.Target)
		if name == "" {
			return fmt.Errorf("track name cannot be empty")
		}
		return s.logWriter.LogTrackAction(ctx, name, action)
	default:
		return fmt.Errorf("invalid entry type %q: expected U, G or T", req.Type)
	}
}

// PruneLogs deletes log entries older than the specified number of days.
func (s *LogServiceImpl) PruneLogs(ctx context.Context, olderThanDays int) (int, error) {
	if olderThanDays <= 0 {
		return 0, fmt.Errorf("days must be positive, got %d", olderThanDays)
	}
	return s.logRepo.PruneOlderThan(ctx, olderThanDays)
}

// Ensure LogServiceImpl implements the interface
var _ primary.LogService = (*LogServiceImpl)(nil)
