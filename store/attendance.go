// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"github.com/danielhkuo/friday-picker/models"
)

// Attendance lists every user with their flag for the week, ordered by name.
// Users without a record are not attending.
func (s *Store) Attendance(ctx context.Context, weekID string) ([]models.AttendanceEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT u.id, u.name, COALESCE(ua.is_attending, FALSE)
		FROM users u
		LEFT JOIN user_attendance ua ON u.id = ua.user_id AND ua.week_id = $1
		ORDER BY u.name
	`, weekID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance: %w", err)
	}
	defer rows.Close()

	entries := []models.AttendanceEntry{}
	for rows.Next() {
		var e models.AttendanceEntry
		if err := rows.Scan(&e.UserID, &e.Name, &e.IsAttending); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance: %w", err)
	}

	return entries, nil
}

// SetAttendance upserts the user's flag for the week; the last write wins.
// The user id is not checked against the users table.
func (s *Store) SetAttendance(ctx context.Context, userID, weekID string, attending bool) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_attendance (user_id, week_id, is_attending)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, week_id)
		DO UPDATE SET is_attending = excluded.is_attending
	`, userID, weekID, attending)
	if err != nil {
		return fmt.Errorf("failed to update attendance for %s: %w", userID, err)
	}
	return nil
}

// AttendingCount returns how many users are attending the week
func (s *Store) AttendingCount(ctx context.Context, weekID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(DISTINCT user_id) FROM user_attendance
		WHERE week_id = $1 AND is_attending = TRUE
	`, weekID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendees: %w", err)
	}
	return n, nil
}
