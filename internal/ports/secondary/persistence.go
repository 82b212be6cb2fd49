// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"

	"github.com/google/uuid"
)

// ActionLogRepository defines the secondary port for action log persistence.
// Entries are immutable - no Update operations, but old entries can be pruned.
type ActionLogRepository interface {
	// Create persists a new action log entry. ID is assigned by the store.
	Create(ctx context.Context, record *ActionLogRecord) error

	// CountUserHistory returns the number of user entries whose acted subject is target.
	CountUserHistory(ctx context.Context, target uuid.UUID) (int, error)

	// UserHistoryPage returns page (1-based) of target's history, oldest first.
	// Records carry their 1-based position in the full history in Index.
	UserHistoryPage(ctx context.Context, target uuid.UUID, page, pageSize int) ([]*ActionLogRecord, error)

	// PruneOlderThan deletes entries older than the given number of days.
	// Returns the number of deleted entries.
	PruneOlderThan(ctx context.Context, days int) (int, error)
}

// ActionLogRecord represents an action log entry as stored in persistence.
type ActionLogRecord struct {
	ID        int64
	Index     int   // Position within a filtered history; zero when not paged
	Timestamp int64 // Seconds since epoch
	ActorID   uuid.UUID
	ActorName string
	Type      string // 'U', 'G' or 'T'
	ActedID   *uuid.UUID
	ActedName string
	Action    string
}

// PlayerRepository defines the secondary port for the username to UUID cache.
type PlayerRepository interface {
	// LookupUUID returns the UUID last seen with the given lower-cased username.
	LookupUUID(ctx context.Context, username string) (uuid.UUID, bool, error)

	// SaveUsername records that id was last seen with username.
	// Any other player holding the same username loses it.
	SaveUsername(ctx context.Context, id uuid.UUID, username string) error
}
