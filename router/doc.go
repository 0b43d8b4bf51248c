// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Friday Picker API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, rec)

Every API route is registered twice: at the root and under /api, the base
path used by the web frontend.

# Endpoints

Health:

	GET /health

Identity and attendance:

	GET  /users      - Seeded group members
	GET  /attendance - Current week attendance
	POST /attendance - Mark a user in or out

Options and votes:

	GET  /options          - Current week options with tallies
	POST /options          - Propose an option
	GET  /votes/{userId}   - Option ids a user voted for
	POST /votes            - Replace a user's vote set

Results and maintenance:

	GET  /results - Options grouped by section with winners
	POST /reset   - Clear this week's votes and attendance
	GET  /metrics - Prometheus metrics (root only)
*/
package router
