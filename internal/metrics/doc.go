// Spotify Music Recommendation System - Content-Based Music Discovery
// Copyright 2026 Sammy Bolger (SammyBolger)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SammyBolger/Spotify-Music-Recommendation-System

/*
Package metrics provides Prometheus metrics collection and export for observability.

This package implements application instrumentation using the Prometheus client
library, exposing metrics for monitoring performance, errors, and system health.

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

HTTP Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Active requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)
    Labels: endpoint

Catalog Metrics:
  - catalog_tracks: Tracks loaded after cleaning (gauge)
  - catalog_genres: Distinct genres in the catalog (gauge)
  - catalog_rows_dropped_total: Source rows dropped during cleaning (counter)
    Labels: reason
  - catalog_load_duration_seconds: Catalog load time (histogram)

Recommendation Metrics:
  - recommendation_queries_total: Similarity queries served (counter)
    Labels: query_type ("track", "features", "mood")
  - recommendation_query_duration_seconds: Query latency (histogram)
    Labels: query_type

All metrics use promauto registration, so importing the package is enough to
make them visible on the default registry.
*/
package metrics
