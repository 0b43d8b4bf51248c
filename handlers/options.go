// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/friday-picker/metrics"
	"github.com/danielhkuo/friday-picker/middleware"
	"github.com/danielhkuo/friday-picker/models"
	"github.com/danielhkuo/friday-picker/store"
)

type OptionHandler struct {
	store   *store.Store
	metrics *metrics.Recorder
}

func NewOptionHandler(st *store.Store, rec *metrics.Recorder) *OptionHandler {
	return &OptionHandler{store: st, metrics: rec}
}

// ListOptions handles GET /options
func (h *OptionHandler) ListOptions(w http.ResponseWriter, r *http.Request) {
	weekID, err := h.store.EnsureWeek(r.Context())
	if err != nil {
		slog.Error("failed to ensure week", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch options")
		return
	}

	options, err := h.store.Options(r.Context(), weekID)
	if err != nil {
		slog.Error("failed to query options", "error", err, "week_id", weekID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch options")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.OptionsResponse{
		WeekID:  weekID,
		Options: options,
	})
}

// AddOption handles POST /options
func (h *OptionHandler) AddOption(w http.ResponseWriter, r *http.Request) {
	var req models.AddOptionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.AddedBy == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Name and addedBy are required")
		return
	}

	weekID, err := h.store.EnsureWeek(r.Context())
	if err != nil {
		slog.Error("failed to ensure week", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add option")
		return
	}

	opt, err := h.store.AddOption(r.Context(), req.Name, req.AddedBy, weekID, req.Section)
	if err != nil {
		slog.Error("failed to insert option", "error", err, "week_id", weekID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add option")
		return
	}
	h.metrics.OptionAdded(opt.Section)

	slog.Info("option added", "week_id", weekID, "option_id", opt.ID, "section", opt.Section)

	middleware.JSONResponse(w, http.StatusOK, models.AddOptionResponse{
		Success: true,
		Option:  opt,
	})
}
