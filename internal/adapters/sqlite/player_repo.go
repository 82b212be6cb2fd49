package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/example/permlog/internal/ports/secondary"
)

// PlayerRepository implements secondary.PlayerRepository with SQLite.
type PlayerRepository struct {
	db *sql.DB
}

// NewPlayerRepository creates a new SQLite player repository.
func NewPlayerRepository(db *sql.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// LookupUUID returns the UUID cached for the lower-cased username.
func (r *PlayerRepository) LookupUUID(ctx context.Context, username string) (uuid.UUID, bool, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, "SELECT uuid FROM players WHERE username = ?", username).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("failed to look up player %s: %w", username, err)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("player %s has invalid uuid %q: %w", username, raw, err)
	}
	return id, true, nil
}

// SaveUsername records username for id, taking it away from any other player.
func (r *PlayerRepository) SaveUsername(ctx context.Context, id uuid.UUID, username string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM players WHERE username = ? AND uuid != ?", username, id.String()); err != nil {
		return fmt.Errorf("failed to release username %s: %w", username, err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO players (uuid, username) VALUES (?, ?)
		ON CONFLICT(uuid) DO UPDATE SET username = excluded.username, updated_at = CURRENT_TIMESTAMP`,
		id.String(), username,
	)
	if err != nil {
		return fmt.Errorf("failed to save player %s: %w", id, err)
	}

	return tx.Commit()
}

// Ensure PlayerRepository implements the interface
var _ secondary.PlayerRepository = (*PlayerRepository)(nil)
