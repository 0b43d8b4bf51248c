// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"github.com/danielhkuo/friday-picker/models"
)

// ResetWeeklyData clears votes and attendance of the current week.
// Options, users and weeks are kept. Running it again deletes nothing.
func (s *Store) ResetWeeklyData(ctx context.Context) (models.ResetResult, error) {
	res := models.ResetResult{WeekID: s.CurrentWeekID()}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return res, fmt.Errorf("failed to begin reset: %w", err)
	}
	defer tx.Rollback()

	votes, err := tx.ExecContext(ctx, `DELETE FROM votes WHERE week_id = $1`, res.WeekID)
	if err != nil {
		return res, fmt.Errorf("failed to delete votes: %w", err)
	}
	attendance, err := tx.ExecContext(ctx, `DELETE FROM user_attendance WHERE week_id = $1`, res.WeekID)
	if err != nil {
		return res, fmt.Errorf("failed to delete attendance: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return res, fmt.Errorf("failed to commit reset: %w", err)
	}

	// Counts are informational; drivers that cannot report them leave zero
	res.VotesDeleted, _ = votes.RowsAffected()
	res.AttendanceDeleted, _ = attendance.RowsAffected()

	return res, nil
}
