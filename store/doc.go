// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the data-access layer for weeks, attendance, options and votes.

# Creating a Store

A Store wraps a *sql.DB and the location used for week boundaries:

	st := store.New(conn, loc)

Tests can pin the clock:

	st.SetClock(func() time.Time { return fixed })

# Weeks

Every operation is scoped to a week id. Handlers resolve it first:

	weekID, err := st.EnsureWeek(ctx)

EnsureWeek inserts the week row on first use and is a no-op afterwards.

# Votes

ReplaceVotes is the only multi-statement write. It deletes the user's votes
for the week and inserts the new set inside one transaction:

	err := st.ReplaceVotes(ctx, "peki", weekID, []string{optA, optB})
	if errors.Is(err, store.ErrVoteTransaction) {
		// rolled back; the previous votes are unchanged
	}

Concurrent replacements for different users are independent. For the same
user and week the last commit wins.

# Aggregates

Options returns vote_count (distinct voters) and total_attending (attendees
of the whole week) per option, plus the derived approval percentage.

# Weekly Reset

ResetWeeklyData deletes votes and attendance of the current week only.
*/
package store
