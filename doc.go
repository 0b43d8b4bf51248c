// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Friday Picker API server.

Friday Picker helps a small group plan its Friday: members mark whether
they are coming, propose bars, food and activities, vote for any number of
options and see which one wins each section. Votes and attendance are
cleared every Saturday at noon.

# Starting the Server

With no database settings the server refuses to start. For local use:

	DATABASE_URL=friday.db go run .

Or with flags:

	go run . -p 3318 -d "postgres://..." -seed-demo

A .env file in the working directory is loaded before flags are parsed.

# Configuration

Storage (one of):

  - DATABASE_URL (-d): PostgreSQL URL or SQLite file path
  - DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME: PostgreSQL parts

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): postgres or sqlite (inferred from the URL)
  - USERS (-users): Comma-separated member names
  - RESET_SCHEDULE (-reset-schedule): Cron spec (default: "0 12 * * 6")
  - TIMEZONE (-tz): IANA zone for weeks and the reset (default: Local)
  - LOG_FORMAT: "json" for JSON logs
  - -seed-demo: Insert demo options and votes for the current week

# Architecture

  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - store: Weeks, attendance, options and votes on database/sql
  - tally: Approval and section winners
  - week: Week identifiers
  - ident: User and option identifiers
  - scheduler: Cron-driven weekly reset
  - seed: Member and demo data
  - metrics: Prometheus counters
  - models: Request/response and domain types
  - db: Connection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
