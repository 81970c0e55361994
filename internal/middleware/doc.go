// Spotify Music Recommendation System - Content-Based Music Discovery
// Copyright 2026 Sammy Bolger (SammyBolger)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SammyBolger/Spotify-Music-Recommendation-System

/*
Package middleware provides HTTP middleware components for the application.

This package implements infrastructure middleware for request ID tracking and
Prometheus metrics instrumentation. All middleware uses the standard
func(http.Handler) http.Handler shape, so it composes with the chi router's
Use chain alongside the stock chi middleware.

Key Components:

  - Request ID: UUID-based request tracking for distributed tracing,
    integrated with the logging package's context fields
  - Prometheus Metrics: HTTP request/response instrumentation (request
    counts, latency histograms, in-flight gauge)

Usage Example:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
*/
package middleware
