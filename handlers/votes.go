// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/friday-picker/metrics"
	"github.com/danielhkuo/friday-picker/middleware"
	"github.com/danielhkuo/friday-picker/models"
	"github.com/danielhkuo/friday-picker/store"
)

type VoteHandler struct {
	store   *store.Store
	metrics *metrics.Recorder
}

func NewVoteHandler(st *store.Store, rec *metrics.Recorder) *VoteHandler {
	return &VoteHandler{store: st, metrics: rec}
}

// GetUserVotes handles GET /votes/{userId}
func (h *VoteHandler) GetUserVotes(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "userId is required")
		return
	}

	weekID, err := h.store.EnsureWeek(r.Context())
	if err != nil {
		slog.Error("failed to ensure week", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch votes")
		return
	}

	votes, err := h.store.UserVotes(r.Context(), userID, weekID)
	if err != nil {
		slog.Error("failed to query votes", "error", err, "user_id", userID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch votes")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.UserVotesResponse{
		WeekID: weekID,
		UserID: userID,
		Votes:  votes,
	})
}

// SubmitVotes handles POST /votes
// Replaces the user's whole vote set for the current week.
func (h *VoteHandler) SubmitVotes(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitVotesRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.UserID == "" || req.OptionIDs == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "userId and an optionIds array are required")
		return
	}

	weekID, err := h.store.EnsureWeek(r.Context())
	if err != nil {
		slog.Error("failed to ensure week", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit votes")
		return
	}

	err = h.store.ReplaceVotes(r.Context(), req.UserID, weekID, req.OptionIDs)
	h.metrics.VotesReplaced(err)
	if err != nil {
		if errors.Is(err, store.ErrVoteTransaction) {
			slog.Error("vote transaction rolled back", "error", err, "user_id", req.UserID, "week_id", weekID)
		} else {
			slog.Error("failed to submit votes", "error", err, "user_id", req.UserID)
		}
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit votes")
		return
	}

	slog.Info("votes submitted", "week_id", weekID, "user_id", req.UserID, "count", len(req.OptionIDs))

	middleware.JSONResponse(w, http.StatusOK, models.SubmitVotesResponse{
		Success:   true,
		WeekID:    weekID,
		UserID:    req.UserID,
		OptionIDs: req.OptionIDs,
	})
}
