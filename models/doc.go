// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - UpdateAttendanceRequest: userId, isAttending
  - AddOptionRequest: name, addedBy, section
  - SubmitVotesRequest: userId, optionIds

# Response Types

Types for JSON responses:

  - HealthResponse: status, week
  - AttendanceResponse: weekId, attendance
  - UpdateAttendanceResponse: success, weekId, userId, isAttending
  - OptionsResponse: weekId, options
  - AddOptionResponse: success, option
  - UserVotesResponse: weekId, userId, votes
  - SubmitVotesResponse: success, weekId, userId, optionIds
  - ResetResponse: success, message
  - ResultsResponse: weekId, totalAttending, sections
  - ErrorResponse: error, message

# Domain Types

  - User: seeded identity
  - Week: week id and its starting Sunday
  - AttendanceEntry: a user's attendance flag for a week
  - Option: proposal with vote_count, total_attending and approval
  - SectionResult: options of one section with the winning option
  - ResetResult: rows removed by a weekly reset

# Constants

Sections:

	SectionBars     = "Bars"
	SectionFood     = "Food"
	SectionActivity = "Activity"
	SectionMisc     = "Miscellaneous"

Reset triggers:

	TriggerScheduled = "scheduled"
	TriggerManual    = "manual"
*/
package models
