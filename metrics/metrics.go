// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/friday-picker/models"
)

const namespace = "friday_picker"

// Recorder holds the application's counters on its own registry.
// All methods are safe on a nil *Recorder.
type Recorder struct {
	registry          *prometheus.Registry
	voteSubmissions   *prometheus.CounterVec
	attendanceUpdates *prometheus.CounterVec
	optionsAdded      *prometheus.CounterVec
	resets            *prometheus.CounterVec
	rowsReset         *prometheus.CounterVec
}

func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		voteSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vote_submissions_total",
			Help:      "Vote set replacements by outcome.",
		}, []string{"outcome"}),
		attendanceUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "attendance_updates_total",
			Help:      "Attendance updates by attending flag.",
		}, []string{"attending"}),
		optionsAdded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "options_added_total",
			Help:      "Options added by section.",
		}, []string{"section"}),
		resets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weekly_resets_total",
			Help:      "Weekly resets by trigger and outcome.",
		}, []string{"trigger", "outcome"}),
		rowsReset: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reset_rows_deleted_total",
			Help:      "Rows removed by weekly resets.",
		}, []string{"table"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.voteSubmissions,
		r.attendanceUpdates,
		r.optionsAdded,
		r.resets,
		r.rowsReset,
	)

	return r
}

// Handler serves the registry in the prometheus exposition format
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Registry exposes the underlying registry for tests and extra collectors
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

func (r *Recorder) VotesReplaced(err error) {
	if r == nil {
		return
	}
	r.voteSubmissions.WithLabelValues(outcome(err)).Inc()
}

func (r *Recorder) AttendanceUpdated(attending bool) {
	if r == nil {
		return
	}
	label := "false"
	if attending {
		label = "true"
	}
	r.attendanceUpdates.WithLabelValues(label).Inc()
}

// OptionAdded counts an option; free-form sections share the "other" label
func (r *Recorder) OptionAdded(section string) {
	if r == nil {
		return
	}
	label := "other"
	for _, s := range models.Sections {
		if s == section {
			label = s
			break
		}
	}
	r.optionsAdded.WithLabelValues(label).Inc()
}

func (r *Recorder) WeeklyReset(trigger string, res models.ResetResult, err error) {
	if r == nil {
		return
	}
	r.resets.WithLabelValues(trigger, outcome(err)).Inc()
	if err == nil {
		r.rowsReset.WithLabelValues("votes").Add(float64(res.VotesDeleted))
		r.rowsReset.WithLabelValues("user_attendance").Add(float64(res.AttendanceDeleted))
	}
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
