// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/danielhkuo/friday-picker/week"
)

// ErrVoteTransaction wraps any failure while replacing a user's votes.
// The transaction has been rolled back and the previous votes are intact.
var ErrVoteTransaction = errors.New("vote transaction failed")

// Store is the data-access layer. It is safe for concurrent use.
type Store struct {
	db  *sql.DB
	loc *time.Location
	now func() time.Time
}

// New creates a Store over db. Week boundaries are computed in loc.
func New(db *sql.DB, loc *time.Location) *Store {
	if loc == nil {
		loc = time.Local
	}
	return &Store{db: db, loc: loc, now: time.Now}
}

// SetClock replaces the time source, for tests
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// Now returns the current time in the store's location
func (s *Store) Now() time.Time {
	return s.now().In(s.loc)
}

// CurrentWeekID returns the week id for the store's clock
func (s *Store) CurrentWeekID() string {
	return week.ID(s.Now())
}
