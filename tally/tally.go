// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"math"
	"sort"

	"github.com/danielhkuo/friday-picker/models"
)

// Approval returns round(100 * votes / attending), halves rounding up.
// Zero attendees means zero approval.
func Approval(votes, attending int) int {
	if attending <= 0 {
		return 0
	}
	return int(math.Floor(100*float64(votes)/float64(attending) + 0.5))
}

// Winner returns the option with the most votes, the earliest one on ties.
// Returns nil when no option has a vote.
func Winner(options []models.Option) *models.Option {
	var best *models.Option
	for i := range options {
		if best == nil || options[i].VoteCount > best.VoteCount {
			best = &options[i]
		}
	}
	if best == nil || best.VoteCount == 0 {
		return nil
	}
	winner := *best
	return &winner
}

// BySection groups options by section. Known sections come first in display
// order and are always present; other sections follow alphabetically.
// Within a section options are sorted by vote count, descending, keeping
// listing order on ties.
func BySection(options []models.Option) []models.SectionResult {
	grouped := make(map[string][]models.Option)
	for _, opt := range options {
		grouped[opt.Section] = append(grouped[opt.Section], opt)
	}

	order := append([]string{}, models.Sections...)
	var extra []string
	for section := range grouped {
		if !isKnownSection(section) {
			extra = append(extra, section)
		}
	}
	sort.Strings(extra)
	order = append(order, extra...)

	results := make([]models.SectionResult, 0, len(order))
	for _, section := range order {
		opts := grouped[section]
		if opts == nil {
			opts = []models.Option{}
		}
		sort.SliceStable(opts, func(i, j int) bool {
			return opts[i].VoteCount > opts[j].VoteCount
		})
		results = append(results, models.SectionResult{
			Section: section,
			Winner:  Winner(opts),
			Options: opts,
		})
	}

	return results
}

func isKnownSection(section string) bool {
	for _, s := range models.Sections {
		if s == section {
			return true
		}
	}
	return false
}
