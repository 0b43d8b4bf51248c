// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/friday-picker/metrics"
	"github.com/danielhkuo/friday-picker/models"
)

type fakeResetter struct {
	calls atomic.Int32
	err   error
}

func (f *fakeResetter) ResetWeeklyData(ctx context.Context) (models.ResetResult, error) {
	f.calls.Add(1)
	if f.err != nil {
		return models.ResetResult{WeekID: "2025-W42"}, f.err
	}
	return models.ResetResult{WeekID: "2025-W42", VotesDeleted: 3, AttendanceDeleted: 1}, nil
}

func TestNewWeeklyReset_InvalidSpec(t *testing.T) {
	_, err := NewWeeklyReset(&fakeResetter{}, "every saturday", time.UTC, nil)
	require.Error(t, err)
}

func TestNext_SaturdayNoon(t *testing.T) {
	loc := time.FixedZone("test", 2*3600)
	w, err := NewWeeklyReset(&fakeResetter{}, "0 12 * * 6", loc, nil)
	require.NoError(t, err)

	tests := []struct {
		name string
		from time.Time
		want time.Time
	}{
		{"wednesday", time.Date(2025, 10, 15, 9, 0, 0, 0, loc), time.Date(2025, 10, 18, 12, 0, 0, 0, loc)},
		{"saturday morning", time.Date(2025, 10, 18, 11, 59, 0, 0, loc), time.Date(2025, 10, 18, 12, 0, 0, 0, loc)},
		{"saturday after noon", time.Date(2025, 10, 18, 12, 0, 0, 0, loc), time.Date(2025, 10, 25, 12, 0, 0, 0, loc)},
		{"other zone input", time.Date(2025, 10, 18, 9, 30, 0, 0, time.UTC), time.Date(2025, 10, 18, 12, 0, 0, 0, loc)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := w.Next(tt.from)
			assert.True(t, got.Equal(tt.want), "Next(%s) = %s, want %s", tt.from, got, tt.want)
		})
	}
}

func TestRun_RecordsOutcome(t *testing.T) {
	rec := metrics.New()
	ok := &fakeResetter{}
	w, err := NewWeeklyReset(ok, "0 12 * * 6", time.UTC, rec)
	require.NoError(t, err)

	w.run()
	w.run()
	assert.Equal(t, int32(2), ok.calls.Load())

	failing := &fakeResetter{err: errors.New("database down")}
	wf, err := NewWeeklyReset(failing, "0 12 * * 6", time.UTC, rec)
	require.NoError(t, err)
	wf.run()
	assert.Equal(t, int32(1), failing.calls.Load())

	families, err := rec.Registry().Gather()
	require.NoError(t, err)
	var found bool
	for _, f := range families {
		if f.GetName() == "friday_picker_weekly_resets_total" {
			found = true
		}
	}
	assert.True(t, found)

	count, err := promtestutil.GatherAndCount(rec.Registry(), "friday_picker_weekly_resets_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "success and error series")
}

func TestStartStop(t *testing.T) {
	w, err := NewWeeklyReset(&fakeResetter{}, "0 12 * * 6", time.UTC, nil)
	require.NoError(t, err)

	w.Start()
	w.Stop()
}
