// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scheduler triggers the weekly reset on a cron schedule.

	reset, err := scheduler.NewWeeklyReset(st, "0 12 * * 6", loc, rec)
	if err != nil {
		return err
	}
	reset.Start()
	defer reset.Stop()

The schedule is evaluated in the configured location, so "0 12 * * 6" means
Saturday noon local time. Failures are logged and counted; the next run is
attempted on schedule.
*/
package scheduler
