// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
)

// UserVotes returns the option ids the user voted for in the week
func (s *Store) UserVotes(ctx context.Context, userID, weekID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT option_id FROM votes
		WHERE user_id = $1 AND week_id = $2
		ORDER BY option_id
	`, userID, weekID)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()

	votes := []string{}
	for rows.Next() {
		var optionID string
		if err := rows.Scan(&optionID); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		votes = append(votes, optionID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read votes: %w", err)
	}

	return votes, nil
}

// ReplaceVotes swaps the user's whole vote set for the week in one
// transaction. Duplicate ids count once. On error nothing changes and the
// returned error wraps ErrVoteTransaction.
func (s *Store) ReplaceVotes(ctx context.Context, userID, weekID string, optionIDs []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %w", ErrVoteTransaction, err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		DELETE FROM votes WHERE user_id = $1 AND week_id = $2
	`, userID, weekID)
	if err != nil {
		return fmt.Errorf("%w: delete votes: %w", ErrVoteTransaction, err)
	}

	for _, optionID := range dedupe(optionIDs) {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO votes (user_id, option_id, week_id)
			VALUES ($1, $2, $3)
		`, userID, optionID, weekID)
		if err != nil {
			return fmt.Errorf("%w: insert vote %s: %w", ErrVoteTransaction, optionID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", ErrVoteTransaction, err)
	}

	return nil
}

// dedupe drops repeated ids, keeping first-seen order
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
