// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package week derives the identifier of "the current week" from a timestamp.

# Format

Week IDs look like 2025-W42:

	id := week.ID(time.Now())

The week number is ceil((day-of-year + weekday of Jan 1) / 7) with Sunday as
weekday 0, so weeks run Sunday through Saturday and week 1 may be partial.
Numbers are capped at 53.

# Start Date

Start returns the Sunday that opens the week, used as the start_date of the
weeks table:

	start := week.Start(time.Now())
*/
package week
