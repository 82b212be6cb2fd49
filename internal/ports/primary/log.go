package primary

import (
	"context"

	"github.com/google/uuid"
)

// LogService defines the primary port for writing and maintaining the action log.
type LogService interface {
	// RecordAction appends an entry to the action log. The actor is taken from ctx.
	RecordAction(ctx context.Context, req RecordActionRequest) error

	// PruneLogs deletes log entries older than the specified number of days.
	PruneLogs(ctx context.Context, olderThanDays int) (int, error)
}

// RecordActionRequest contains the parameters for recording an action.
type RecordActionRequest struct {
	Type   string // "U", "G" or "T"
	Target string // UUID for users, name for groups and tracks
	Name   string // Display name of a user target, optional
	Action string
}

// PlayerService defines the primary port for maintaining the username cache.
type PlayerService interface {
	// SavePlayer records that the player id was last seen as username.
	SavePlayer(ctx context.Context, id uuid.UUID, username string) error
}
