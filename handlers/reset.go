// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/friday-picker/metrics"
	"github.com/danielhkuo/friday-picker/middleware"
	"github.com/danielhkuo/friday-picker/models"
	"github.com/danielhkuo/friday-picker/store"
)

type ResetHandler struct {
	store   *store.Store
	metrics *metrics.Recorder
}

func NewResetHandler(st *store.Store, rec *metrics.Recorder) *ResetHandler {
	return &ResetHandler{store: st, metrics: rec}
}

// Reset handles POST /reset
// Runs the weekly reset on demand.
func (h *ResetHandler) Reset(w http.ResponseWriter, r *http.Request) {
	res, err := h.store.ResetWeeklyData(r.Context())
	h.metrics.WeeklyReset(models.TriggerManual, res, err)
	if err != nil {
		slog.Error("failed to reset weekly data", "error", err, "week_id", res.WeekID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reset data")
		return
	}

	slog.Info("weekly reset completed",
		"week_id", res.WeekID,
		"votes_deleted", res.VotesDeleted,
		"attendance_deleted", res.AttendanceDeleted,
		"trigger", models.TriggerManual,
	)

	middleware.JSONResponse(w, http.StatusOK, models.ResetResponse{
		Success: true,
		Message: "Weekly data reset successfully",
	})
}
