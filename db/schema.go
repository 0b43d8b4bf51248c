// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/friday-picker/cliparse"
)

// Open connects to the configured database and verifies the connection.
// dbType is cliparse.DatabasePostgres or cliparse.DatabaseSQLite.
func Open(dbType, dbURL string) (*sql.DB, error) {
	var driver string
	switch dbType {
	case cliparse.DatabasePostgres:
		driver = "postgres"
	case cliparse.DatabaseSQLite:
		driver = "sqlite"
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(driver, dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows one writer; a single connection keeps transactions from
	// failing with SQLITE_BUSY
	if driver == "sqlite" {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Users
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL
);

-- Weeks
CREATE TABLE IF NOT EXISTS weeks (
    id TEXT PRIMARY KEY,
    start_date TIMESTAMP NOT NULL
);

-- Attendance
CREATE TABLE IF NOT EXISTS user_attendance (
    user_id TEXT NOT NULL,
    week_id TEXT NOT NULL,
    is_attending BOOLEAN NOT NULL DEFAULT FALSE,
    PRIMARY KEY (user_id, week_id)
);

CREATE INDEX IF NOT EXISTS idx_user_attendance_week_id ON user_attendance(week_id);

-- Options
CREATE TABLE IF NOT EXISTS options (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    added_by TEXT NOT NULL,
    week_id TEXT NOT NULL,
    section TEXT NOT NULL DEFAULT 'Activity',
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_options_week_id ON options(week_id);

-- Votes
CREATE TABLE IF NOT EXISTS votes (
    user_id TEXT NOT NULL,
    option_id TEXT NOT NULL,
    week_id TEXT NOT NULL,
    PRIMARY KEY (user_id, option_id, week_id)
);

CREATE INDEX IF NOT EXISTS idx_votes_week_id ON votes(week_id);
CREATE INDEX IF NOT EXISTS idx_votes_option_id ON votes(option_id);
`
