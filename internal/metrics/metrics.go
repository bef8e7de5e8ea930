// Package metrics defines the Prometheus metrics of the expense-tracker
// server. Metrics are registered with the default registry on package
// initialisation and exposed by the HTTP handler on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "expense_tracker"

// Auth outcomes used as the "outcome" label of AuthAttemptsTotal.
const (
	OutcomeSuccess  = "success"
	OutcomeInvalid  = "invalid_input"
	OutcomeRejected = "rejected"
	OutcomeConflict = "conflict"
	OutcomeError    = "error"
)

// ── HTTP metrics ──────────────────────────────────────────────────────────────

// HTTPRequestsTotal counts handled requests.
// Labels:
//   - method: HTTP method
//   - route: chi route pattern (e.g. "/api/expenses/{id}"), "unmatched" otherwise
//   - status: response status code
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests, by method, route and status.",
	},
	[]string{"method", "route", "status"},
)

// HTTPRequestDuration measures request latency by method and route pattern.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts signup, login and authorize calls.
// Labels:
//   - operation: "signup", "login" or "authorize"
//   - outcome: one of the Outcome* constants
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication attempts, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// ── Ledger metrics ────────────────────────────────────────────────────────────

// ExpensesCreatedTotal counts stored expenses. Categories are free text, so
// they are not used as a label.
var ExpensesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "expenses_created_total",
		Help:      "Total number of expenses created.",
	},
)

// ExpensesDeletedTotal counts removed expenses.
// Label:
//   - mode: "single" or "all"
var ExpensesDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "expenses_deleted_total",
		Help:      "Total number of expenses deleted, by mode.",
	},
	[]string{"mode"},
)
