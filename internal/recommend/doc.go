// Spotify Music Recommendation System - Content-Based Music Discovery
// Copyright 2026 Sammy Bolger (SammyBolger)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SammyBolger/Spotify-Music-Recommendation-System

// Package recommend implements the content-based similarity engine.
//
// At construction the engine extracts the catalog's audio feature matrix in
// the canonical column order, fits a per-column min-max scaler over it, and
// caches the normalized matrix. The transform is frozen for the life of the
// engine: catalog rows and client-supplied query vectors go through the same
// scaling before any comparison.
//
// Recommendations are answered by an on-demand cosine similarity scan against
// the cached normalized matrix, O(N*F) per query. No N x N similarity matrix
// is ever materialized; for catalogs in the hundred-thousand-track range the
// scan stays well inside interactive latency budgets, and anything beyond
// that would call for an index behind the same interface.
//
// Three query modes are supported: seed-track neighbors (with optional
// same-artist exclusion), free-form feature vectors with documented per-field
// defaults, and named mood presets that expand to feature vectors.
//
// The engine is immutable after construction and safe for unsynchronized
// concurrent use.
package recommend
