// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/friday-picker/cliparse"
	"github.com/danielhkuo/friday-picker/db"
	"github.com/danielhkuo/friday-picker/ident"
	"github.com/danielhkuo/friday-picker/models"
	"github.com/danielhkuo/friday-picker/store"
)

// FaultOptionID makes any vote insert fail once InjectVoteFault has run
const FaultOptionID = "inject-fault"

// TestNow is a Friday evening in week 2025-W42
var TestNow = time.Date(2025, 10, 17, 19, 0, 0, 0, time.UTC)

// TestUsers are seeded by SetupTestStore
var TestUsers = []string{"Cula", "Fjordi", "Peki", "Tella"}

// SetupTestDB creates a fresh SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	conn, err := db.Open(cliparse.DatabaseSQLite, path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// Clock is a settable time source, safe for concurrent use
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Tick returns the current time and advances the clock by d
func (c *Clock) Tick(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now
	c.now = c.now.Add(d)
	return now
}

// SetupTestStore creates a store on a fresh database with TestUsers seeded.
// The store's clock starts at TestNow and ticks one millisecond per read so
// options get increasing created_at values.
func SetupTestStore(t *testing.T) (*store.Store, *sql.DB, *Clock) {
	t.Helper()

	conn := SetupTestDB(t)
	st := store.New(conn, time.UTC)

	clock := &Clock{now: TestNow}
	st.SetClock(func() time.Time { return clock.Tick(time.Millisecond) })

	for _, name := range TestUsers {
		if err := st.EnsureUser(context.Background(), models.User{ID: ident.UserID(name), Name: name}); err != nil {
			t.Fatalf("Failed to seed user: %v", err)
		}
	}

	return st, conn, clock
}

// InjectVoteFault installs a trigger that aborts inserting a vote for FaultOptionID
func InjectVoteFault(t *testing.T, conn *sql.DB) {
	t.Helper()

	_, err := conn.Exec(`
		CREATE TRIGGER fail_vote_insert BEFORE INSERT ON votes
		WHEN NEW.option_id = '` + FaultOptionID + `'
		BEGIN
			SELECT RAISE(ABORT, 'injected storage fault');
		END
	`)
	if err != nil {
		t.Fatalf("Failed to install fault trigger: %v", err)
	}
}

// AddTestOption adds an option to the week and returns its id
func AddTestOption(t *testing.T, st *store.Store, weekID, name, addedBy, section string) string {
	t.Helper()

	opt, err := st.AddOption(context.Background(), name, addedBy, weekID, section)
	if err != nil {
		t.Fatalf("Failed to create test option: %v", err)
	}
	return opt.ID
}

// SetTestAttendance marks users as attending the week
func SetTestAttendance(t *testing.T, st *store.Store, weekID string, userIDs ...string) {
	t.Helper()

	for _, userID := range userIDs {
		if err := st.SetAttendance(context.Background(), userID, weekID, true); err != nil {
			t.Fatalf("Failed to set attendance: %v", err)
		}
	}
}

// CountRows returns the number of rows in table matching where
func CountRows(t *testing.T, conn *sql.DB, table, where string, args ...any) int {
	t.Helper()

	query := "SELECT COUNT(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}

	var n int
	if err := conn.QueryRow(query, args...).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		var reader *bytes.Reader
		if raw, ok := body.(string); ok {
			reader = bytes.NewReader([]byte(raw))
		} else {
			jsonBody, _ := json.Marshal(body)
			reader = bytes.NewReader(jsonBody)
		}
		req = httptest.NewRequest(method, path, reader)
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
