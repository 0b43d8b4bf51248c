// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"strings"

	"github.com/danielhkuo/friday-picker/handlers"
	"github.com/danielhkuo/friday-picker/metrics"
	"github.com/danielhkuo/friday-picker/middleware"
	"github.com/danielhkuo/friday-picker/models"
	"github.com/danielhkuo/friday-picker/store"
)

// APIPrefix is the base path the web frontend calls
const APIPrefix = "/api"

func NewRouter(st *store.Store, rec *metrics.Recorder) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	userHandler := handlers.NewUserHandler(st)
	attendanceHandler := handlers.NewAttendanceHandler(st, rec)
	optionHandler := handlers.NewOptionHandler(st, rec)
	voteHandler := handlers.NewVoteHandler(st, rec)
	resetHandler := handlers.NewResetHandler(st, rec)
	resultsHandler := handlers.NewResultsHandler(st)

	health := func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
			Status: "ok",
			Week:   st.CurrentWeekID(),
		})
	}

	routes := []struct {
		pattern string
		handler http.HandlerFunc
	}{
		{"GET /health", health},

		// Identity and attendance
		{"GET /users", middleware.WithLogging(userHandler.ListUsers)},
		{"GET /attendance", middleware.WithLogging(attendanceHandler.GetAttendance)},
		{"POST /attendance", middleware.WithLogging(attendanceHandler.UpdateAttendance)},

		// Options and votes
		{"GET /options", middleware.WithLogging(optionHandler.ListOptions)},
		{"POST /options", middleware.WithLogging(optionHandler.AddOption)},
		{"GET /votes/{userId}", middleware.WithLogging(voteHandler.GetUserVotes)},
		{"POST /votes", middleware.WithLogging(voteHandler.SubmitVotes)},

		// Results and maintenance
		{"GET /results", middleware.WithLogging(resultsHandler.GetResults)},
		{"POST /reset", middleware.WithLogging(resetHandler.Reset)},
	}

	for _, rt := range routes {
		mux.HandleFunc(rt.pattern, rt.handler)
		mux.HandleFunc(withPrefix(rt.pattern), rt.handler)
	}

	mux.Handle("GET /metrics", rec.Handler())

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("friday-picker API v1"))
	})

	return mux
}

// withPrefix turns "GET /users" into "GET /api/users".
func withPrefix(pattern string) string {
	method, path, ok := strings.Cut(pattern, " ")
	if !ok {
		return APIPrefix + pattern
	}
	return method + " " + APIPrefix + path
}
