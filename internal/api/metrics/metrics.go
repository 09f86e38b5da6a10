// Package metrics defines and registers all custom Prometheus metrics for the
// sentiment serving API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default registry at package init; the
// router exposes them on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sentiment"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// UsersCreatedTotal counts accounts created through registration or the
// admin endpoint.
// Label:
//   - role: role assigned to the new account ("admin", "user", "guest")
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of user accounts created, by role.",
	},
	[]string{"role"},
)

// ── Prediction metrics ────────────────────────────────────────────────────────

// PredictionsTotal counts completed inference calls.
// Label:
//   - label: predicted sentiment label (e.g. "POSITIVE"), or "error" on failure
var PredictionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "predictions_total",
		Help:      "Total number of predictions served, by predicted label.",
	},
	[]string{"label"},
)

// PredictionDuration measures end-to-end inference latency for cache misses.
// Label:
//   - label: predicted sentiment label
var PredictionDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "prediction_duration_seconds",
		Help:      "Duration of inference calls from dispatch to response.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"label"},
)

// PredictionCacheTotal counts cache lookups.
// Label:
//   - result: "hit" (served from cache) or "miss" (forwarded to the model)
var PredictionCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "prediction_cache_total",
		Help:      "Total number of prediction cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
