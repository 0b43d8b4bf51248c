// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/friday-picker/models"
	"github.com/danielhkuo/friday-picker/store"
	"github.com/danielhkuo/friday-picker/testutil"
	"github.com/danielhkuo/friday-picker/week"
)

func TestEnsureWeek_Idempotent(t *testing.T) {
	st, conn, clock := testutil.SetupTestStore(t)
	ctx := context.Background()

	first, err := st.EnsureWeek(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2025-W42", first)

	// Later in the same week
	clock.Set(testutil.TestNow.Add(20 * time.Hour))
	second, err := st.EnsureWeek(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, testutil.CountRows(t, conn, "weeks", ""))

	w, ok, err := st.Week(ctx, first)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, w.StartDate.Equal(week.Start(testutil.TestNow)), "start date %s", w.StartDate)
	assert.Equal(t, time.Sunday, w.StartDate.Weekday())
}

func TestEnsureWeek_NewWeekAddsRow(t *testing.T) {
	st, conn, clock := testutil.SetupTestStore(t)
	ctx := context.Background()

	_, err := st.EnsureWeek(ctx)
	require.NoError(t, err)

	clock.Set(testutil.TestNow.AddDate(0, 0, 7))
	next, err := st.EnsureWeek(ctx)
	require.NoError(t, err)

	assert.Equal(t, "2025-W43", next)
	assert.Equal(t, 2, testutil.CountRows(t, conn, "weeks", ""))

	_, ok, err := st.Week(ctx, "1999-W01")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUsers_OrderedByName(t *testing.T) {
	st, _, _ := testutil.SetupTestStore(t)

	users, err := st.Users(context.Background())
	require.NoError(t, err)
	require.Len(t, users, len(testutil.TestUsers))
	assert.Equal(t, models.User{ID: "cula", Name: "Cula"}, users[0])
	assert.Equal(t, "tella", users[3].ID)

	// Existing users are not renamed
	require.NoError(t, st.EnsureUser(context.Background(), models.User{ID: "cula", Name: "Renamed"}))
	users, err = st.Users(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Cula", users[0].Name)
}

func TestAttendance(t *testing.T) {
	st, _, _ := testutil.SetupTestStore(t)
	ctx := context.Background()
	weekID, err := st.EnsureWeek(ctx)
	require.NoError(t, err)

	// Nobody has a record yet
	entries, err := st.Attendance(ctx, weekID)
	require.NoError(t, err)
	require.Len(t, entries, 4)
	for _, e := range entries {
		assert.False(t, e.IsAttending, "%s should default to not attending", e.UserID)
	}

	require.NoError(t, st.SetAttendance(ctx, "peki", weekID, true))
	require.NoError(t, st.SetAttendance(ctx, "peki", weekID, true)) // idempotent
	require.NoError(t, st.SetAttendance(ctx, "tella", weekID, true))
	require.NoError(t, st.SetAttendance(ctx, "tella", weekID, false)) // last write wins

	entries, err = st.Attendance(ctx, weekID)
	require.NoError(t, err)
	got := map[string]bool{}
	for _, e := range entries {
		got[e.UserID] = e.IsAttending
	}
	assert.Equal(t, map[string]bool{"cula": false, "fjordi": false, "peki": true, "tella": false}, got)

	n, err := st.AttendingCount(ctx, weekID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Other weeks are unaffected
	other, err := st.Attendance(ctx, "2025-W41")
	require.NoError(t, err)
	for _, e := range other {
		assert.False(t, e.IsAttending)
	}
}

func TestSetAttendance_UnknownUserCreatesOrphan(t *testing.T) {
	st, conn, _ := testutil.SetupTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.SetAttendance(ctx, "ghost", "2025-W42", true))
	assert.Equal(t, 1, testutil.CountRows(t, conn, "user_attendance", "user_id = $1", "ghost"))

	// Orphans are not listed but still count as attendees
	entries, err := st.Attendance(ctx, "2025-W42")
	require.NoError(t, err)
	assert.Len(t, entries, 4)
}

func TestAddOption(t *testing.T) {
	st, _, _ := testutil.SetupTestStore(t)
	ctx := context.Background()
	weekID, err := st.EnsureWeek(ctx)
	require.NoError(t, err)

	opt, err := st.AddOption(ctx, "Bowling", "peki", weekID, "")
	require.NoError(t, err)
	assert.Equal(t, models.SectionActivity, opt.Section, "empty section defaults to Activity")
	assert.Regexp(t, `^2025-W42-\d+-[0-9a-z]{9}$`, opt.ID)

	opts, err := st.Options(ctx, weekID)
	require.NoError(t, err)
	require.Len(t, opts, 1)
	assert.Equal(t, opt.ID, opts[0].ID)
	assert.Equal(t, "Peki", opts[0].AddedByName)
	assert.Equal(t, weekID, opts[0].WeekID)
	assert.False(t, opts[0].CreatedAt.IsZero())
}

func TestOptions_Ordering(t *testing.T) {
	st, _, _ := testutil.SetupTestStore(t)
	ctx := context.Background()
	weekID, err := st.EnsureWeek(ctx)
	require.NoError(t, err)

	food1 := testutil.AddTestOption(t, st, weekID, "Pizza", "cula", models.SectionFood)
	bar1 := testutil.AddTestOption(t, st, weekID, "Black Cat", "peki", models.SectionBars)
	food2 := testutil.AddTestOption(t, st, weekID, "Sushi", "tella", models.SectionFood)
	bar2 := testutil.AddTestOption(t, st, weekID, "Rooftop", "fjordi", models.SectionBars)
	act := testutil.AddTestOption(t, st, weekID, "Karaoke", "peki", models.SectionActivity)

	// Another week's options never show up
	testutil.AddTestOption(t, st, "2025-W41", "Old", "peki", models.SectionBars)

	opts, err := st.Options(ctx, weekID)
	require.NoError(t, err)

	ids := make([]string, len(opts))
	for i, o := range opts {
		ids[i] = o.ID
	}
	// Sections sort alphabetically, creation order within a section
	assert.Equal(t, []string{act, bar1, bar2, food1, food2}, ids)
}

func TestOptions_Aggregates(t *testing.T) {
	st, _, _ := testutil.SetupTestStore(t)
	ctx := context.Background()
	weekID, err := st.EnsureWeek(ctx)
	require.NoError(t, err)

	x := testutil.AddTestOption(t, st, weekID, "X", "cula", models.SectionBars)
	y := testutil.AddTestOption(t, st, weekID, "Y", "cula", models.SectionBars)
	testutil.SetTestAttendance(t, st, weekID, "cula", "fjordi", "peki")

	require.NoError(t, st.ReplaceVotes(ctx, "cula", weekID, []string{x}))
	require.NoError(t, st.ReplaceVotes(ctx, "fjordi", weekID, []string{x, y}))

	opts, err := st.Options(ctx, weekID)
	require.NoError(t, err)
	require.Len(t, opts, 2)

	assert.Equal(t, x, opts[0].ID)
	assert.Equal(t, 2, opts[0].VoteCount)
	assert.Equal(t, 3, opts[0].TotalAttending)
	assert.Equal(t, 67, opts[0].Approval)

	assert.Equal(t, 1, opts[1].VoteCount)
	assert.Equal(t, 3, opts[1].TotalAttending, "same denominator for every option")
	assert.Equal(t, 33, opts[1].Approval)
}

func TestOptions_NoAttendeesZeroApproval(t *testing.T) {
	st, _, _ := testutil.SetupTestStore(t)
	ctx := context.Background()
	weekID, err := st.EnsureWeek(ctx)
	require.NoError(t, err)

	x := testutil.AddTestOption(t, st, weekID, "X", "cula", models.SectionFood)
	require.NoError(t, st.ReplaceVotes(ctx, "cula", weekID, []string{x}))

	opts, err := st.Options(ctx, weekID)
	require.NoError(t, err)
	require.Len(t, opts, 1)
	assert.Equal(t, 1, opts[0].VoteCount)
	assert.Equal(t, 0, opts[0].TotalAttending)
	assert.Equal(t, 0, opts[0].Approval)
}

func TestReplaceVotes_ReplacesWholeSet(t *testing.T) {
	st, _, _ := testutil.SetupTestStore(t)
	ctx := context.Background()
	weekID := "2025-W42"

	require.NoError(t, st.ReplaceVotes(ctx, "peki", weekID, []string{"a", "b"}))
	require.NoError(t, st.ReplaceVotes(ctx, "peki", weekID, []string{"c"}))

	votes, err := st.UserVotes(ctx, "peki", weekID)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, votes)
}

func TestReplaceVotes_Duplicates(t *testing.T) {
	st, _, _ := testutil.SetupTestStore(t)
	ctx := context.Background()
	weekID := "2025-W42"

	require.NoError(t, st.ReplaceVotes(ctx, "peki", weekID, []string{"a", "a", "b"}))

	votes, err := st.UserVotes(ctx, "peki", weekID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, votes)
}

func TestReplaceVotes_EmptyClears(t *testing.T) {
	st, _, _ := testutil.SetupTestStore(t)
	ctx := context.Background()
	weekID := "2025-W42"

	require.NoError(t, st.ReplaceVotes(ctx, "peki", weekID, []string{"a"}))
	require.NoError(t, st.ReplaceVotes(ctx, "peki", weekID, []string{}))

	votes, err := st.UserVotes(ctx, "peki", weekID)
	require.NoError(t, err)
	assert.NotNil(t, votes)
	assert.Empty(t, votes)
}

func TestReplaceVotes_ScopedToUserAndWeek(t *testing.T) {
	st, _, _ := testutil.SetupTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.ReplaceVotes(ctx, "peki", "2025-W41", []string{"old"}))
	require.NoError(t, st.ReplaceVotes(ctx, "tella", "2025-W42", []string{"a"}))
	require.NoError(t, st.ReplaceVotes(ctx, "peki", "2025-W42", []string{"b"}))

	prior, err := st.UserVotes(ctx, "peki", "2025-W41")
	require.NoError(t, err)
	assert.Equal(t, []string{"old"}, prior)

	other, err := st.UserVotes(ctx, "tella", "2025-W42")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, other)
}

func TestReplaceVotes_RollbackOnFault(t *testing.T) {
	st, conn, _ := testutil.SetupTestStore(t)
	ctx := context.Background()
	weekID := "2025-W42"

	require.NoError(t, st.ReplaceVotes(ctx, "peki", weekID, []string{"a", "b"}))
	testutil.InjectVoteFault(t, conn)

	// The delete and the insert of "c" succeed before the fault
	err := st.ReplaceVotes(ctx, "peki", weekID, []string{"c", testutil.FaultOptionID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrVoteTransaction), "got %v", err)

	votes, err := st.UserVotes(ctx, "peki", weekID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, votes)
}

func TestReplaceVotes_CanceledContext(t *testing.T) {
	st, _, _ := testutil.SetupTestStore(t)
	weekID := "2025-W42"

	require.NoError(t, st.ReplaceVotes(context.Background(), "peki", weekID, []string{"a"}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := st.ReplaceVotes(ctx, "peki", weekID, []string{"b"})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrVoteTransaction)

	votes, err := st.UserVotes(context.Background(), "peki", weekID)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, votes)
}

func TestReplaceVotes_ConcurrentUsers(t *testing.T) {
	st, _, _ := testutil.SetupTestStore(t)
	ctx := context.Background()
	weekID := "2025-W42"

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := fmt.Sprintf("user%d", i%5)
			errs <- st.ReplaceVotes(ctx, user, weekID, []string{"a", fmt.Sprintf("opt%d", i)})
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	// Each user keeps exactly one complete set from whichever write landed last
	for u := 0; u < 5; u++ {
		votes, err := st.UserVotes(ctx, fmt.Sprintf("user%d", u), weekID)
		require.NoError(t, err)
		assert.Len(t, votes, 2)
		assert.Contains(t, votes, "a")
	}
}

func TestResetWeeklyData(t *testing.T) {
	st, conn, clock := testutil.SetupTestStore(t)
	ctx := context.Background()

	// Previous cycle
	clock.Set(testutil.TestNow.AddDate(0, 0, -7))
	prevWeek, err := st.EnsureWeek(ctx)
	require.NoError(t, err)
	prevOpt := testutil.AddTestOption(t, st, prevWeek, "Last week", "cula", models.SectionBars)
	testutil.SetTestAttendance(t, st, prevWeek, "cula")
	require.NoError(t, st.ReplaceVotes(ctx, "cula", prevWeek, []string{prevOpt}))

	// Current cycle
	clock.Set(testutil.TestNow)
	weekID, err := st.EnsureWeek(ctx)
	require.NoError(t, err)
	require.NotEqual(t, prevWeek, weekID)
	opt := testutil.AddTestOption(t, st, weekID, "This week", "peki", models.SectionFood)
	testutil.SetTestAttendance(t, st, weekID, "peki", "tella")
	require.NoError(t, st.ReplaceVotes(ctx, "peki", weekID, []string{opt}))
	require.NoError(t, st.ReplaceVotes(ctx, "tella", weekID, []string{opt}))

	res, err := st.ResetWeeklyData(ctx)
	require.NoError(t, err)
	assert.Equal(t, weekID, res.WeekID)
	assert.Equal(t, int64(2), res.VotesDeleted)
	assert.Equal(t, int64(2), res.AttendanceDeleted)

	// Current week: votes and attendance gone, options kept
	assert.Equal(t, 0, testutil.CountRows(t, conn, "votes", "week_id = $1", weekID))
	assert.Equal(t, 0, testutil.CountRows(t, conn, "user_attendance", "week_id = $1", weekID))
	opts, err := st.Options(ctx, weekID)
	require.NoError(t, err)
	require.Len(t, opts, 1)
	assert.Equal(t, 0, opts[0].VoteCount)

	// Previous week untouched
	prevOpts, err := st.Options(ctx, prevWeek)
	require.NoError(t, err)
	require.Len(t, prevOpts, 1)
	assert.Equal(t, 1, prevOpts[0].VoteCount)
	assert.Equal(t, 1, prevOpts[0].TotalAttending)
	assert.Equal(t, 2, testutil.CountRows(t, conn, "weeks", ""))
	assert.Equal(t, 4, testutil.CountRows(t, conn, "users", ""))

	// Second run is a no-op
	res, err = st.ResetWeeklyData(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.VotesDeleted)
	assert.Equal(t, int64(0), res.AttendanceDeleted)
	assert.Equal(t, 1, testutil.CountRows(t, conn, "votes", ""))
}
