// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Friday Picker API.

# Handler Types

Each handler is a struct holding the store and, where it mutates state,
the metrics recorder:

  - UserHandler: Seeded group members
  - AttendanceHandler: Weekly attendance
  - OptionHandler: Proposals and their tallies
  - VoteHandler: Per-user vote sets
  - ResultsHandler: Section winners
  - ResetHandler: Manual weekly reset

Handlers are created via constructor functions:

	voteHandler := handlers.NewVoteHandler(st, rec)

A nil recorder disables metrics.

# Week Resolution

Every handler that reads or writes weekly data first calls
store.EnsureWeek, so the week row exists before any attendance, option
or vote references it.

# Errors

Malformed or incomplete bodies return 400 before storage is touched.
Storage failures are logged and return 500 with a generic message. A failed
vote submission rolls back and leaves the user's previous votes in place.
*/
package handlers
