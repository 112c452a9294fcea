// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package observability provides Prometheus metrics for the review service.
//
// Metrics are exposed via the /metrics endpoint for scraping. All metric
// operations are thread-safe via Prometheus's internal locking.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "sentinel"

const httpSubsystem = "http"

// ReviewMetrics holds all Prometheus metrics for the review service.
//
// Initialize once at startup via InitMetrics(), or with NewReviewMetrics
// against a custom registry in tests.
type ReviewMetrics struct {
	// RequestsTotal counts HTTP requests by route, method, and status code.
	RequestsTotal *prometheus.CounterVec

	// RequestDurationSeconds measures request latency by route and method.
	RequestDurationSeconds *prometheus.HistogramVec

	// ReviewsTotal counts accepted review submissions by language.
	ReviewsTotal *prometheus.CounterVec

	// ValidationFailuresTotal counts rejected fields by field name and
	// error kind.
	ValidationFailuresTotal *prometheus.CounterVec
}

// DefaultMetrics is the singleton instance registered with the default
// Prometheus registry. Initialized by InitMetrics().
var DefaultMetrics *ReviewMetrics

// NewReviewMetrics creates and registers all review metrics with the given
// registerer.
func NewReviewMetrics(reg prometheus.Registerer) *ReviewMetrics {
	factory := promauto.With(reg)

	return &ReviewMetrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: httpSubsystem,
				Name:      "requests_total",
				Help:      "Total HTTP requests by route, method, and status code",
			},
			[]string{"route", "method", "status"},
		),

		RequestDurationSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: httpSubsystem,
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds by route and method",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
			},
			[]string{"route", "method"},
		),

		ReviewsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "reviews_total",
				Help:      "Total accepted review submissions by language",
			},
			[]string{"language"},
		),

		ValidationFailuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "validation_failures_total",
				Help:      "Total rejected request fields by field and error kind",
			},
			[]string{"field", "kind"},
		),
	}
}

// InitMetrics initializes the default metrics instance against the default
// Prometheus registry. Call once at application startup; a second call
// panics on duplicate registration.
func InitMetrics() *ReviewMetrics {
	DefaultMetrics = NewReviewMetrics(prometheus.DefaultRegisterer)
	return DefaultMetrics
}
