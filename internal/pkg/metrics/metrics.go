// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled requests.
	// Labels: method, route (chi route pattern), status (HTTP status code).
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ems_http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ems_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)

	// LoginAttempts counts password logins by outcome: success, failure.
	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ems_login_attempts_total",
			Help: "Total number of password login attempts",
		},
		[]string{"outcome"},
	)

	// AttendanceClockIns counts accepted clock-ins by status: present, late.
	AttendanceClockIns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ems_attendance_clock_ins_total",
			Help: "Total number of recorded clock-ins",
		},
		[]string{"status"},
	)

	// LeaveDecisions counts admin decisions on leave applications: approved, rejected.
	LeaveDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ems_leave_decisions_total",
			Help: "Total number of leave application decisions",
		},
		[]string{"status"},
	)

	// DocumentUploads counts upload attempts by outcome: stored, rejected, failed.
	DocumentUploads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ems_document_uploads_total",
			Help: "Total number of document upload attempts",
		},
		[]string{"outcome"},
	)

	// Workforce mirrors the dashboard counters, refreshed by a background job.
	// Labels: metric (active_employees, present_today, late_today, pending_leaves, pending_salaries, documents).
	Workforce = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ems_workforce",
			Help: "Current workforce counters as shown on the admin dashboard",
		},
		[]string{"metric"},
	)
)
