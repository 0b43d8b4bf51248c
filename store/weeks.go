// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/friday-picker/models"
	"github.com/danielhkuo/friday-picker/week"
)

// EnsureWeek creates the row for the current week if it is missing and
// returns its id either way.
func (s *Store) EnsureWeek(ctx context.Context) (string, error) {
	now := s.Now()
	weekID := week.ID(now)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO weeks (id, start_date)
		VALUES ($1, $2)
		ON CONFLICT (id) DO NOTHING
	`, weekID, week.Start(now))
	if err != nil {
		return "", fmt.Errorf("failed to ensure week %s: %w", weekID, err)
	}

	return weekID, nil
}

// Week returns a stored week. ok is false if it was never created.
func (s *Store) Week(ctx context.Context, weekID string) (w models.Week, ok bool, err error) {
	err = s.db.QueryRowContext(ctx, `
		SELECT id, start_date FROM weeks WHERE id = $1
	`, weekID).Scan(&w.ID, &w.StartDate)

	if err == sql.ErrNoRows {
		return models.Week{}, false, nil
	}
	if err != nil {
		return models.Week{}, false, fmt.Errorf("failed to query week %s: %w", weekID, err)
	}
	return w, true, nil
}
