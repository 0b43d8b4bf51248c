// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/friday-picker/middleware"
	"github.com/danielhkuo/friday-picker/models"
	"github.com/danielhkuo/friday-picker/store"
	"github.com/danielhkuo/friday-picker/tally"
)

type ResultsHandler struct {
	store *store.Store
}

func NewResultsHandler(st *store.Store) *ResultsHandler {
	return &ResultsHandler{store: st}
}

// GetResults handles GET /results
// Groups the week's options by section and picks each section's winner.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	weekID, err := h.store.EnsureWeek(r.Context())
	if err != nil {
		slog.Error("failed to ensure week", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch results")
		return
	}

	options, err := h.store.Options(r.Context(), weekID)
	if err != nil {
		slog.Error("failed to query options", "error", err, "week_id", weekID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch results")
		return
	}

	// Options carry the week's attendee count; query it when there are none
	var attending int
	if len(options) > 0 {
		attending = options[0].TotalAttending
	} else if attending, err = h.store.AttendingCount(r.Context(), weekID); err != nil {
		slog.Error("failed to count attendees", "error", err, "week_id", weekID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch results")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		WeekID:         weekID,
		TotalAttending: attending,
		Sections:       tally.BySection(options),
	})
}
