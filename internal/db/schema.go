package db

import (
	"database/sql"
	"fmt"
)

// SchemaVersion is the version recorded for databases created from SchemaSQL.
const SchemaVersion = 1

// SchemaSQL is the complete schema for fresh installs.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. Tests load it
// via GetSchemaSQL() instead of hardcoding CREATE TABLE statements, so a
// repository referencing a missing column fails with "no such column".
const SchemaSQL = `
-- Action log (append-only audit trail of permission changes)
CREATE TABLE IF NOT EXISTS action_logs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	timestamp INTEGER NOT NULL,
	actor_uuid TEXT NOT NULL,
	actor_name TEXT NOT NULL DEFAULT '',
	type TEXT NOT NULL CHECK(type IN ('U', 'G', 'T')),
	acted_uuid TEXT,
	acted_name TEXT NOT NULL DEFAULT '',
	action TEXT NOT NULL,
	CHECK((type = 'U') = (acted_uuid IS NOT NULL))
);

CREATE INDEX IF NOT EXISTS idx_action_logs_acted ON action_logs(type, acted_uuid, timestamp, id);
CREATE INDEX IF NOT EXISTS idx_action_logs_timestamp ON action_logs(timestamp);

-- Players (username cache, usernames stored lower-cased)
CREATE TABLE IF NOT EXISTS players (
	uuid TEXT PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER PRIMARY KEY,
	applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// InitSchema creates the schema on a fresh database and records its version.
// Existing databases at the current version are left untouched.
func InitSchema(conn *sql.DB) error {
	var tableCount int
	err := conn.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount > 0 {
		var version int
		err = conn.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&version)
		if err != nil {
			return err
		}
		if version > SchemaVersion {
			return fmt.Errorf("database schema version %d is newer than supported version %d", version, SchemaVersion)
		}
		if version == SchemaVersion {
			return nil
		}
	}

	if _, err := conn.Exec(SchemaSQL); err != nil {
		return err
	}
	_, err = conn.Exec("INSERT OR IGNORE INTO schema_version (version) VALUES (?)", SchemaVersion)
	return err
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
