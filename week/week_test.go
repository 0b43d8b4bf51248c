// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package week

import (
	"regexp"
	"strconv"
	"testing"
	"time"
)

func TestID(t *testing.T) {
	tests := []struct {
		name     string
		t        time.Time
		expected string
	}{
		{"new year wednesday", time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC), "2025-W01"},
		{"first saturday", time.Date(2025, 1, 4, 23, 59, 0, 0, time.UTC), "2025-W01"},
		{"first sunday starts week 2", time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), "2025-W02"},
		{"friday in october", time.Date(2025, 10, 17, 19, 0, 0, 0, time.UTC), "2025-W42"},
		{"sunday in october", time.Date(2025, 10, 19, 8, 0, 0, 0, time.UTC), "2025-W43"},
		{"jan 1 on saturday afternoon", time.Date(2022, 1, 1, 15, 0, 0, 0, time.UTC), "2022-W01"},
		{"jan 1 on sunday", time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC), "2023-W01"},
		{"last day of 2025", time.Date(2025, 12, 31, 12, 0, 0, 0, time.UTC), "2025-W53"},
		{"leap year starting saturday is capped", time.Date(2028, 12, 31, 12, 0, 0, 0, time.UTC), "2028-W53"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ID(tt.t); got != tt.expected {
				t.Errorf("ID(%s) = %s, expected %s", tt.t, got, tt.expected)
			}
		})
	}
}

func TestID_FormatAndMonotonic(t *testing.T) {
	pattern := regexp.MustCompile(`^(\d{4})-W(\d{2})$`)

	for _, year := range []int{2023, 2024, 2025, 2026, 2028} {
		prev := 0
		start := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
		for ts := start; ts.Year() == year; ts = ts.Add(5 * time.Hour) {
			id := ID(ts)
			m := pattern.FindStringSubmatch(id)
			if m == nil {
				t.Fatalf("ID(%s) = %q does not match YYYY-Www", ts, id)
			}
			if m[1] != strconv.Itoa(year) {
				t.Fatalf("ID(%s) = %q has wrong year", ts, id)
			}
			n, _ := strconv.Atoi(m[2])
			if n < 1 || n > MaxWeek {
				t.Fatalf("ID(%s) = %q week out of range", ts, id)
			}
			if n < prev {
				t.Fatalf("ID(%s) = %q went backwards from week %d", ts, id, prev)
			}
			prev = n
		}
	}
}

func TestID_ChangesOnlyOnSunday(t *testing.T) {
	ts := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 60; i++ {
		next := ts.AddDate(0, 0, 1)
		if ID(next) != ID(ts) && next.Weekday() != time.Sunday {
			t.Errorf("week changed between %s and %s (%s)", ts, next, next.Weekday())
		}
		ts = next
	}
}

func TestStart(t *testing.T) {
	loc := time.FixedZone("test", -5*3600)

	tests := []struct {
		name     string
		t        time.Time
		expected time.Time
	}{
		{"wednesday", time.Date(2025, 10, 22, 15, 30, 0, 0, loc), time.Date(2025, 10, 19, 0, 0, 0, 0, loc)},
		{"sunday is its own start", time.Date(2025, 10, 19, 23, 0, 0, 0, loc), time.Date(2025, 10, 19, 0, 0, 0, 0, loc)},
		{"saturday", time.Date(2025, 10, 25, 12, 0, 0, 0, loc), time.Date(2025, 10, 19, 0, 0, 0, 0, loc)},
		{"crosses year boundary", time.Date(2026, 1, 2, 8, 0, 0, 0, loc), time.Date(2025, 12, 28, 0, 0, 0, 0, loc)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Start(tt.t)
			if !got.Equal(tt.expected) {
				t.Errorf("Start(%s) = %s, expected %s", tt.t, got, tt.expected)
			}
			if got.Weekday() != time.Sunday {
				t.Errorf("Start(%s) is a %s", tt.t, got.Weekday())
			}
		})
	}
}
