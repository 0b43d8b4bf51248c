package models

import "time"

// Section constants
const (
	SectionBars     = "Bars"
	SectionFood     = "Food"
	SectionActivity = "Activity"
	SectionMisc     = "Miscellaneous"
)

// Sections lists the known sections in display order
var Sections = []string{SectionBars, SectionFood, SectionActivity, SectionMisc}

// DefaultSection is used when an option is added without one
const DefaultSection = SectionActivity

// Reset trigger constants
const (
	TriggerScheduled = "scheduled"
	TriggerManual    = "manual"
)

// Request types

type UpdateAttendanceRequest struct {
	UserID      string `json:"userId"`
	IsAttending *bool  `json:"isAttending"`
}

type AddOptionRequest struct {
	Name    string `json:"name"`
	AddedBy string `json:"addedBy"`
	Section string `json:"section"`
}

// nil OptionIDs means the field was missing; an empty array clears the votes
type SubmitVotesRequest struct {
	UserID    string   `json:"userId"`
	OptionIDs []string `json:"optionIds"`
}

// Response types

type HealthResponse struct {
	Status string `json:"status"`
	Week   string `json:"week"`
}

// is_attending is 1 or 0
type AttendanceRow struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	IsAttending int    `json:"is_attending"`
}

type AttendanceResponse struct {
	WeekID     string          `json:"weekId"`
	Attendance []AttendanceRow `json:"attendance"`
}

type UpdateAttendanceResponse struct {
	Success     bool   `json:"success"`
	WeekID      string `json:"weekId"`
	UserID      string `json:"userId"`
	IsAttending bool   `json:"isAttending"`
}

type OptionsResponse struct {
	WeekID  string   `json:"weekId"`
	Options []Option `json:"options"`
}

type AddOptionResponse struct {
	Success bool   `json:"success"`
	Option  Option `json:"option"`
}

type UserVotesResponse struct {
	WeekID string   `json:"weekId"`
	UserID string   `json:"userId"`
	Votes  []string `json:"votes"`
}

type SubmitVotesResponse struct {
	Success   bool     `json:"success"`
	WeekID    string   `json:"weekId"`
	UserID    string   `json:"userId"`
	OptionIDs []string `json:"optionIds"`
}

type ResetResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ResultsResponse struct {
	WeekID         string          `json:"weekId"`
	TotalAttending int             `json:"totalAttending"`
	Sections       []SectionResult `json:"sections"`
}

// Domain types

type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Week struct {
	ID        string    `json:"id"`
	StartDate time.Time `json:"start_date"`
}

type AttendanceEntry struct {
	UserID      string
	Name        string
	IsAttending bool
}

// Option is a proposal for the week together with its vote aggregates
type Option struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	AddedBy        string    `json:"added_by"`
	AddedByName    string    `json:"added_by_name"`
	WeekID         string    `json:"week_id"`
	Section        string    `json:"section"`
	CreatedAt      time.Time `json:"created_at"`
	VoteCount      int       `json:"vote_count"`
	TotalAttending int       `json:"total_attending"`
	Approval       int       `json:"approval"` // percent of attendees, 0-100
}

type SectionResult struct {
	Section string   `json:"section"`
	Winner  *Option  `json:"winner"`
	Options []Option `json:"options"`
}

type ResetResult struct {
	WeekID            string `json:"week_id"`
	VotesDeleted      int64  `json:"votes_deleted"`
	AttendanceDeleted int64  `json:"attendance_deleted"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
