package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cauldron_http_requests_total",
			Help: "Total number of HTTP requests by method, path and status.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cauldron_http_request_duration_seconds",
			Help:    "HTTP request latency distribution.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "path"},
	)
)

// Brewing Metrics
var (
	BrewsCommitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cauldron_brews_committed_total",
			Help: "Committed brews with at least one successful trial, by category.",
		},
		[]string{"category"},
	)

	BrewsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cauldron_brews_failed_total",
			Help: "Committed brews whose whole batch failed (ingredients still consumed), by category.",
		},
		[]string{"category"},
	)

	ArtifactsCrafted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cauldron_artifacts_crafted_total",
			Help: "Crafted artifact units produced, by category.",
		},
		[]string{"category"},
	)

	RecipeUnlocks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cauldron_recipe_unlocks_total",
			Help: "Secret recipes unlocked via redemption codes.",
		},
	)
)
