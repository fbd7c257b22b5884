// Package metrics defines and registers all custom Prometheus metrics for the
// queue calling API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "queue"

// ── Calling metrics ───────────────────────────────────────────────────────────

// CallsTotal counts issued ticket calls.
// Label:
//   - lane: "male" or "female"
var CallsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "calls_total",
		Help:      "Total number of ticket calls, by lane.",
	},
	[]string{"lane"},
)

// RecallsTotal counts recall (previous-ticket) operations.
// Label:
//   - result: "ok" or "empty" (recall against an empty history)
var RecallsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recalls_total",
		Help:      "Total number of recall operations, by result.",
	},
	[]string{"result"},
)

// ResetsTotal counts full queue resets.
var ResetsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resets_total",
		Help:      "Total number of queue resets.",
	},
)

// BroadcastUpdatesTotal counts side-channel writes (set and clear).
// Labels:
//   - field: "ticker", "display_message", "note", "center_image",
//     "staff_message", "admin_message"
//   - action: "set" or "clear"
var BroadcastUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "broadcast_updates_total",
		Help:      "Total number of side-channel field updates, by field and action.",
	},
	[]string{"field", "action"},
)

// MutationDuration measures one state mutation end-to-end, from handler entry
// to persisted document.
// Label:
//   - op: "next", "prev", "reset", "broadcast"
var MutationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "mutation_duration_seconds",
		Help:      "Duration of queue state mutations.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"op"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "invalid", "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionsRevokedTotal counts explicit session revocations.
// Label:
//   - reason: "logout", "password_reset", "user_deleted"
var SessionsRevokedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_revoked_total",
		Help:      "Total number of revoked sessions, by reason.",
	},
	[]string{"reason"},
)
