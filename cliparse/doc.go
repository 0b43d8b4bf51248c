// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: PostgreSQL connection string or SQLite file path (required)
  - DatabaseType: "postgres" or "sqlite" (inferred from the URL)
  - Users: Names seeded into the users table
  - ResetSchedule: Cron expression for the weekly reset (default: "0 12 * * 6")
  - Timezone: IANA zone for week boundaries (default: local)
  - SeedDemo: Insert demo data at startup

# CLI Flags

	-p               Server port
	-d               Database URL
	-t               Database type
	-users           Seed user names, comma separated
	-reset-schedule  Weekly reset cron expression
	-tz              Timezone
	-seed-demo       Insert demo data

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	USERS          → -users
	RESET_SCHEDULE → -reset-schedule
	TIMEZONE       → -tz

When DATABASE_URL is unset, a postgres URL is built from DB_HOST, DB_PORT,
DB_USER, DB_PASSWORD and DB_NAME. main loads a .env file before parsing.

# Validation

ParseFlags returns an error wrapping ErrDatabaseConfig if no connection
parameters can be found, or if only some of the DB_* variables are set.
*/
package cliparse
