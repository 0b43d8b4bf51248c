// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/robfig/cron/v3"

	"github.com/danielhkuo/friday-picker/metrics"
	"github.com/danielhkuo/friday-picker/models"
)

// resetTimeout bounds a single scheduled reset
const resetTimeout = 30 * time.Second

// Resetter clears the current week's votes and attendance
type Resetter interface {
	ResetWeeklyData(ctx context.Context) (models.ResetResult, error)
}

// WeeklyReset runs a Resetter on a cron schedule
type WeeklyReset struct {
	resetter Resetter
	metrics  *metrics.Recorder
	schedule cron.Schedule
	loc      *time.Location
	cron     *cron.Cron
}

// NewWeeklyReset parses spec (standard 5-field cron) in loc.
// It does not start the schedule.
func NewWeeklyReset(resetter Resetter, spec string, loc *time.Location, rec *metrics.Recorder) (*WeeklyReset, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid reset schedule %q: %w", spec, err)
	}
	if loc == nil {
		loc = time.Local
	}

	w := &WeeklyReset{
		resetter: resetter,
		metrics:  rec,
		schedule: schedule,
		loc:      loc,
		cron:     cron.New(cron.WithLocation(loc)),
	}
	w.cron.Schedule(schedule, cron.FuncJob(w.run))

	return w, nil
}

// Start begins the schedule in the background
func (w *WeeklyReset) Start() {
	w.cron.Start()

	next := w.Next(time.Now())
	slog.Info("weekly reset scheduled",
		"next", next.Format(time.RFC1123),
		"in", humanize.Time(next),
	)
}

// Stop halts the schedule and waits for a running reset to finish
func (w *WeeklyReset) Stop() {
	<-w.cron.Stop().Done()
	slog.Info("weekly reset stopped")
}

// Next returns the first scheduled run after t
func (w *WeeklyReset) Next(t time.Time) time.Time {
	return w.schedule.Next(t.In(w.loc))
}

func (w *WeeklyReset) run() {
	ctx, cancel := context.WithTimeout(context.Background(), resetTimeout)
	defer cancel()

	slog.Info("running scheduled weekly reset")

	res, err := w.resetter.ResetWeeklyData(ctx)
	w.metrics.WeeklyReset(models.TriggerScheduled, res, err)
	if err != nil {
		slog.Error("scheduled weekly reset failed", "error", err, "week_id", res.WeekID)
		return
	}

	next := w.Next(time.Now())
	slog.Info("weekly reset completed",
		"week_id", res.WeekID,
		"votes_deleted", res.VotesDeleted,
		"attendance_deleted", res.AttendanceDeleted,
		"next", humanize.Time(next),
	)
}
