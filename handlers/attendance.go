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

type AttendanceHandler struct {
	store   *store.Store
	metrics *metrics.Recorder
}

func NewAttendanceHandler(st *store.Store, rec *metrics.Recorder) *AttendanceHandler {
	return &AttendanceHandler{store: st, metrics: rec}
}

// GetAttendance handles GET /attendance
func (h *AttendanceHandler) GetAttendance(w http.ResponseWriter, r *http.Request) {
	weekID, err := h.store.EnsureWeek(r.Context())
	if err != nil {
		slog.Error("failed to ensure week", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch attendance")
		return
	}

	entries, err := h.store.Attendance(r.Context(), weekID)
	if err != nil {
		slog.Error("failed to query attendance", "error", err, "week_id", weekID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch attendance")
		return
	}

	rows := make([]models.AttendanceRow, len(entries))
	for i, e := range entries {
		rows[i] = models.AttendanceRow{ID: e.UserID, Name: e.Name}
		if e.IsAttending {
			rows[i].IsAttending = 1
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.AttendanceResponse{
		WeekID:     weekID,
		Attendance: rows,
	})
}

// UpdateAttendance handles POST /attendance
func (h *AttendanceHandler) UpdateAttendance(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateAttendanceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.UserID == "" || req.IsAttending == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "userId and boolean isAttending are required")
		return
	}

	weekID, err := h.store.EnsureWeek(r.Context())
	if err != nil {
		slog.Error("failed to ensure week", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update attendance")
		return
	}

	attending := *req.IsAttending
	if err := h.store.SetAttendance(r.Context(), req.UserID, weekID, attending); err != nil {
		slog.Error("failed to update attendance", "error", err, "user_id", req.UserID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update attendance")
		return
	}
	h.metrics.AttendanceUpdated(attending)

	slog.Info("attendance updated", "week_id", weekID, "user_id", req.UserID, "attending", attending)

	middleware.JSONResponse(w, http.StatusOK, models.UpdateAttendanceResponse{
		Success:     true,
		WeekID:      weekID,
		UserID:      req.UserID,
		IsAttending: attending,
	})
}
