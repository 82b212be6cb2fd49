// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() to ensure tests run against
// the authoritative schema, preventing drift between test and production.
//
// DO NOT hardcode CREATE TABLE statements in test files. Use setupTestDB()
// and the seed* helpers instead.
package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/example/permlog/internal/adapters/sqlite"
	"github.com/example/permlog/internal/db"
	"github.com/example/permlog/internal/ports/secondary"
)

// setupTestDB creates an in-memory database with the authoritative schema.
// This is the single shared test database setup function for all repository tests.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	// Every pooled connection would get its own empty in-memory database.
	testDB.SetMaxOpenConns(1)

	// Use the authoritative schema from schema.go
	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedUserEntry inserts a user action log entry and returns its record.
func seedUserEntry(t *testing.T, testDB *sql.DB, acted uuid.UUID, actedName string, timestamp int64, action string) *secondary.ActionLogRecord {
	t.Helper()
	record := &secondary.ActionLogRecord{
		Timestamp: timestamp,
		ActorID:   uuid.Nil,
		ActorName: "Console",
		Type:      "U",
		ActedID:   &acted,
		ActedName: actedName,
		Action:    action,
	}
	if err := sqlite.NewActionLogRepository(testDB).Create(context.Background(), record); err != nil {
		t.Fatalf("failed to seed action log: %v", err)
	}
	return record
}

// seedGroupEntry inserts a group action log entry.
func seedGroupEntry(t *testing.T, testDB *sql.DB, group string, timestamp int64, action string) {
	t.Helper()
	record := &secondary.ActionLogRecord{
		Timestamp: timestamp,
		ActorID:   uuid.Nil,
		ActorName: "Console",
		Type:      "G",
		ActedName: group,
		Action:    action,
	}
	if err := sqlite.NewActionLogRepository(testDB).Create(context.Background(), record); err != nil {
		t.Fatalf("failed to seed action log: %v", err)
	}
}
