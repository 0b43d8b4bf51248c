// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package week

import (
	"fmt"
	"time"
)

// MaxWeek is the highest week number an ID can carry.
const MaxWeek = 53

// ID returns the week identifier for t, formatted as YYYY-Www.
// Weeks start on Sunday; week 1 is the (possibly partial) week containing Jan 1.
func ID(t time.Time) string {
	year, n := Number(t)
	return fmt.Sprintf("%d-W%02d", year, n)
}

// Number returns the calendar year and 1-based week number of t
func Number(t time.Time) (int, int) {
	jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	offset := int(jan1.Weekday())

	// ceil((yearDay + offset) / 7)
	n := (t.YearDay() + offset + 6) / 7

	// A leap year starting on Saturday ends with a one-day 54th week
	if n > MaxWeek {
		n = MaxWeek
	}
	return t.Year(), n
}

// Start returns midnight of the Sunday on or before t, in t's location.
func Start(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d-int(t.Weekday()), 0, 0, 0, 0, t.Location())
}
