// Spotify Music Recommendation System - Content-Based Music Discovery
// Copyright 2026 Sammy Bolger (SammyBolger)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SammyBolger/Spotify-Music-Recommendation-System

/*
Package api provides the HTTP query boundary over the catalog and the
similarity engine, built on the chi router.

The package exposes read-only catalog endpoints (search, browse, stats) and
recommendation endpoints (seed track, explicit features, mood preset) under
the /api/v1 base path. All responses use the models.APIResponse envelope.

Routing and middleware:

  - chi router with RealIP, Recoverer, request ID, and Prometheus
    instrumentation
  - go-chi/cors for CORS (global, handles OPTIONS preflight)
  - go-chi/httprate for per-IP rate limiting on data endpoints
  - promhttp on /metrics

Input handling is boundary-gated: query parameters are parsed leniently with
defaults, request bodies are validated with go-playground/validator, and the
catalog/engine layers below never see malformed input. Empty search queries
and out-of-range feature values are rejected here with VALIDATION_ERROR;
unknown track IDs map to NOT_FOUND; unknown moods return an empty result by
design of the preset table.
*/
package api
