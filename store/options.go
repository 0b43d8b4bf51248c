// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/danielhkuo/friday-picker/ident"
	"github.com/danielhkuo/friday-picker/models"
	"github.com/danielhkuo/friday-picker/tally"
)

// Options lists the week's options grouped by section, in insertion order
// within a section. Each option carries its distinct voter count and the
// number of attendees for the whole week.
func (s *Store) Options(ctx context.Context, weekID string) ([]models.Option, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			o.id,
			o.name,
			o.added_by,
			COALESCE(u.name, ''),
			o.week_id,
			o.section,
			o.created_at,
			COUNT(DISTINCT v.user_id),
			(SELECT COUNT(DISTINCT ua.user_id)
			 FROM user_attendance ua
			 WHERE ua.week_id = $1 AND ua.is_attending = TRUE)
		FROM options o
		LEFT JOIN users u ON o.added_by = u.id
		LEFT JOIN votes v ON o.id = v.option_id AND v.week_id = $1
		WHERE o.week_id = $1
		GROUP BY o.id, o.name, o.added_by, u.name, o.week_id, o.section, o.created_at
		ORDER BY o.section, o.created_at ASC, o.id
	`, weekID)
	if err != nil {
		return nil, fmt.Errorf("failed to query options: %w", err)
	}
	defer rows.Close()

	options := []models.Option{}
	for rows.Next() {
		var opt models.Option
		err := rows.Scan(
			&opt.ID, &opt.Name, &opt.AddedBy, &opt.AddedByName, &opt.WeekID,
			&opt.Section, &opt.CreatedAt, &opt.VoteCount, &opt.TotalAttending,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan option: %w", err)
		}
		opt.Approval = tally.Approval(opt.VoteCount, opt.TotalAttending)
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read options: %w", err)
	}

	return options, nil
}

// AddOption appends an option to the week. An empty section means Activity.
func (s *Store) AddOption(ctx context.Context, name, addedBy, weekID, section string) (models.Option, error) {
	section = strings.TrimSpace(section)
	if section == "" {
		section = models.DefaultSection
	}

	now := s.Now()
	opt := models.Option{
		ID:        ident.OptionID(weekID, now),
		Name:      name,
		AddedBy:   addedBy,
		WeekID:    weekID,
		Section:   section,
		CreatedAt: now.UTC(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO options (id, name, added_by, week_id, section, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, opt.ID, opt.Name, opt.AddedBy, opt.WeekID, opt.Section, opt.CreatedAt)
	if err != nil {
		return models.Option{}, fmt.Errorf("failed to insert option: %w", err)
	}

	return opt, nil
}
