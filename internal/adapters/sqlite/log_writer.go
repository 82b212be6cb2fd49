package sqlite

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/example/permlog/internal/ctxutil"
	"github.com/example/permlog/internal/ports/secondary"
)

// LogWriterAdapter implements secondary.LogWriter using ActionLogRepository.
type LogWriterAdapter struct {
	logRepo secondary.ActionLogRepository
	now     func() time.Time
}

// NewLogWriterAdapter creates a new LogWriterAdapter.
func NewLogWriterAdapter(logRepo secondary.ActionLogRepository) *LogWriterAdapter {
	return &LogWriterAdapter{
		logRepo: logRepo,
		now:     time.Now,
	}
}

// LogUserAction logs an action performed on a user.
func (w *LogWriterAdapter) LogUserAction(ctx context.Context, userID uuid.UUID, username, action string) error {
	return w.writeLog(ctx, "U", &userID, username, action)
}

// LogGroupAction logs an action performed on a group.
func (w *LogWriterAdapter) LogGroupAction(ctx context.Context, group, action string) error {
	return w.writeLog(ctx, "G", nil, group, action)
}

// LogTrackAction logs an action performed on a track.
func (w *LogWriterAdapter) LogTrackAction(ctx context.Context, track, action string) error {
	return w.writeLog(ctx, "T", nil, track, action)
}

// writeLog writes a log entry with common logic.
func (w *LogWriterAdapter) writeLog(ctx context.Context, typ string, actedID *uuid.UUID, actedName, action string) error {
	actor := ctxutil.ActorFromContext(ctx)

	record := &secondary.ActionLogRecord{
		Timestamp: w.now().Unix(),
		ActorID:   actor.ID,
		ActorName: actor.Name,
		Type:      typ,
		ActedID:   actedID,
		ActedName: actedName,
		Action:    action,
	}

	return w.logRepo.Create(ctx, record)
}

// Ensure LogWriterAdapter implements the interface
var _ secondary.LogWriter = (*LogWriterAdapter)(nil)
