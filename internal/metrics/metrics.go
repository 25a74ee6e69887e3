// Suggestio - Collaborative Product Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/suggestio

// Package metrics provides Prometheus instrumentation for the recommendation
// service: HTTP latency and throughput, recommendation tier selection, and
// explanation-service health (outcomes, cache efficiency, circuit breaker).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method", "status"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"path", "method", "status"},
	)

	// Recommendation Engine Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total recommendations served, labelled by the tier that produced them",
		},
		[]string{"tier"},
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Duration of recommendation computation in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	// Explanation Service Metrics
	ExplainRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "explain_requests_total",
			Help: "Explanation service calls by outcome (success, error, degraded)",
		},
		[]string{"outcome"},
	)

	ExplainDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "explain_duration_seconds",
			Help:    "Duration of explanation service round trips in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		},
	)

	ExplainCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "explain_cache_hits_total",
			Help: "Explanation cache hits",
		},
	)

	ExplainCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "explain_cache_misses_total",
			Help: "Explanation cache misses",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Requests through the circuit breaker by result (success, failure, rejected)",
		},
		[]string{"name", "result"},
	)

	// Identity Metrics
	NewVisitorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "new_visitors_total",
			Help: "Requests that arrived without a usable identity cookie",
		},
	)
)
