// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/example/permlog/internal/ports/secondary"
)

// ActionLogRepository implements secondary.ActionLogRepository with SQLite.
type ActionLogRepository struct {
	db *sql.DB
}

// NewActionLogRepository creates a new SQLite action log repository.
func NewActionLogRepository(db *sql.DB) *ActionLogRepository {
	return &ActionLogRepository{db: db}
}

// Create persists a new action log entry and sets record.ID.
func (r *ActionLogRepository) Create(ctx context.Context, record *secondary.ActionLogRecord) error {
	var actedID sql.NullString
	if record.ActedID != nil {
		actedID = sql.NullString{String: record.ActedID.String(), Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO action_logs (timestamp, actor_uuid, actor_name, type, acted_uuid, acted_name, action) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.Timestamp,
		record.ActorID.String(),
		record.ActorName,
		record.Type,
		actedID,
		record.ActedName,
		record.Action,
	)
	if err != nil {
		return fmt.Errorf("failed to create action log: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read action log id: %w", err)
	}
	record.ID = id

	return nil
}

// CountUserHistory returns the number of user entries acting on target.
func (r *ActionLogRepository) CountUserHistory(ctx context.Context, target uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM action_logs WHERE type = 'U' AND acted_uuid = ?`,
		target.String(),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count user history: %w", err)
	}
	return count, nil
}

// UserHistoryPage returns one page of target's history, oldest first.
func (r *ActionLogRepository) UserHistoryPage(ctx context.Context, target uuid.UUID, page, pageSize int) ([]*secondary.ActionLogRecord, error) {
	if page < 1 || pageSize < 1 {
		return nil, fmt.Errorf("invalid page %d (size %d)", page, pageSize)
	}
	offset := (page - 1) * pageSize

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, timestamp, actor_uuid, actor_name, type, acted_uuid, acted_name, action FROM action_logs
		WHERE type = 'U' AND acted_uuid = ?
		ORDER BY timestamp ASC, id ASC
		LIMIT ? OFFSET ?`,
		target.String(), pageSize, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query user history: %w", err)
	}
	defer rows.Close()

	var records []*secondary.ActionLogRecord
	for rows.Next() {
		record, err := scanActionLog(rows)
		if err != nil {
			return nil, err
		}
		record.Index = offset + len(records) + 1
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read user history: %w", err)
	}

	return records, nil
}

// PruneOlderThan deletes log entries older than the given number of days.
func (r *ActionLogRepository) PruneOlderThan(ctx context.Context, days int) (int, error) {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM action_logs WHERE timestamp < CAST(strftime('%s', 'now') AS INTEGER) - ?",
		days*86400,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to prune action logs: %w", err)
	}

	count, _ := result.RowsAffected()
	return int(count), nil
}

func scanActionLog(rows *sql.Rows) (*secondary.ActionLogRecord, error) {
	var (
		actorID string
		actedID sql.NullString
	)

	record := &secondary.ActionLogRecord{}
	err := rows.Scan(&record.ID,
		&record.Timestamp,
		&actorID,
		&record.ActorName,
		&record.Type,
		&actedID,
		&record.ActedName,
		&record.Action)
	if err != nil {
		return nil, fmt.Errorf("failed to scan action log: %w", err)
	}

	record.ActorID, err = uuid.Parse(actorID)
	if err != nil {
		return nil, fmt.Errorf("action log %d has invalid actor uuid: %w", record.ID, err)
	}
	if actedID.Valid {
		id, err := uuid.Parse(actedID.String)
		if err != nil {
			return nil, fmt.Errorf("action log %d has invalid acted uuid: %w", record.ID, err)
		}
		record.ActedID = &id
	}

	return record, nil
}

// Ensure ActionLogRepository implements the interface
var _ secondary.ActionLogRepository = (*ActionLogRepository)(nil)
