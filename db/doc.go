// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Connecting

Open selects the driver from the configured database type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

PostgreSQL uses github.com/lib/pq; SQLite uses modernc.org/sqlite and is
limited to a single open connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - users: Seeded identities (id is the lowercased name)
  - weeks: One row per week id, created on first use
  - user_attendance: Attendance flag per (user, week)
  - options: Proposed options per week, tagged with a section
  - votes: One row per (user, option, week)

# Relationships

	weeks 1──* options
	weeks 1──* user_attendance
	weeks 1──* votes
	options 1──* votes

Relationships are enforced by query scoping, not foreign keys: the weekly
reset deletes votes and attendance while options and weeks stay.
*/
package db
