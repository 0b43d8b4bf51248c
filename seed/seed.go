// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/friday-picker/ident"
	"github.com/danielhkuo/friday-picker/models"
	"github.com/danielhkuo/friday-picker/store"
)

// Users inserts any missing users; the id is the lowercased name
func Users(ctx context.Context, st *store.Store, names []string) error {
	for _, name := range names {
		u := models.User{ID: ident.UserID(name), Name: name}
		if err := st.EnsureUser(ctx, u); err != nil {
			return err
		}
	}
	slog.Info("users seeded", "count", len(names))
	return nil
}

type demoOption struct {
	name    string
	addedBy string
	section string
}

var demoOptions = []demoOption{
	{"Bowling", "rroni", models.SectionActivity},
	{"Pizza Palace", "fjordi", models.SectionFood},
	{"The Black Cat Bar", "peki", models.SectionBars},
	{"Karaoke Night", "reznovi", models.SectionActivity},
	{"Sushi Train", "tella", models.SectionFood},
	{"Rooftop Lounge", "zingo", models.SectionBars},
}

var demoAttendance = map[string]bool{
	"cula": true, "fjordi": true, "peki": true, "reznovi": false,
	"rroni": true, "tella": true, "zingo": false, "zorki": true,
}

// votes reference demoOptions by index
var demoVotes = map[string][]int{
	"cula":   {0, 1, 2},
	"fjordi": {1, 4},
	"peki":   {2, 5},
	"rroni":  {0, 3},
	"tella":  {1, 4, 5},
	"zorki":  {0, 2},
}

// Demo fills the current week with sample options, attendance and votes.
// It expects the default user list.
func Demo(ctx context.Context, st *store.Store) (string, error) {
	weekID, err := st.EnsureWeek(ctx)
	if err != nil {
		return "", err
	}

	ids := make([]string, len(demoOptions))
	for i, o := range demoOptions {
		opt, err := st.AddOption(ctx, o.name, o.addedBy, weekID, o.section)
		if err != nil {
			return "", fmt.Errorf("demo option %q: %w", o.name, err)
		}
		ids[i] = opt.ID
	}

	for userID, attending := range demoAttendance {
		if err := st.SetAttendance(ctx, userID, weekID, attending); err != nil {
			return "", err
		}
	}

	for userID, picks := range demoVotes {
		optionIDs := make([]string, len(picks))
		for i, p := range picks {
			optionIDs[i] = ids[p]
		}
		if err := st.ReplaceVotes(ctx, userID, weekID, optionIDs); err != nil {
			return "", err
		}
	}

	slog.Info("demo data seeded", "week_id", weekID, "options", len(ids))
	return weekID, nil
}
