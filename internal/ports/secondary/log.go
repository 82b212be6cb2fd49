package secondary

import (
	"context"

	"github.com/google/uuid"
)

// LogWriter defines the interface for writing action log entries.
// Implementations extract the actor from context.
type LogWriter interface {
	// LogUserAction logs an action performed on a user.
	LogUserAction(ctx context.Context, userID uuid.UUID, username, action string) error

	// LogGroupAction logs an action performed on a group.
	LogGroupAction(ctx context.Context, group, action string) error

	// LogTrackAction logs an action performed on a track.
	LogTrackAction(ctx context.Context, track, action string) error
}
