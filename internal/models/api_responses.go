// Spotify Music Recommendation System - Content-Based Music Discovery
// Copyright 2026 Sammy Bolger (SammyBolger)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SammyBolger/Spotify-Music-Recommendation-System

package models

import (
	"time"

	"github.com/SammyBolger/Spotify-Music-Recommendation-System/internal/catalog"
	"github.com/SammyBolger/Spotify-Music-Recommendation-System/internal/recommend"
)

// Response status values for APIResponse.Status.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Machine-readable error codes returned in APIError.Code.
const (
	CodeValidationError   = "VALIDATION_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeInternalError     = "INTERNAL_ERROR"
	CodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
)

// APIResponse is the standardized response wrapper used by all HTTP
// endpoints. It provides a consistent structure for both successful and
// error responses, with metadata for observability.
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"total": 2, "tracks": [...]},
//	  "metadata": {"timestamp": "2026-08-30T12:00:00Z", "query_time_ms": 3}
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {"code": "NOT_FOUND", "message": "track not found"},
//	  "metadata": {"timestamp": "2026-08-30T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string    `json:"status"`
	Data     any       `json:"data,omitempty"`
	Metadata Metadata  `json:"metadata"`
	Error    *APIError `json:"error,omitempty"`
}

// Metadata contains response metadata for observability. QueryTimeMS is the
// server-side handling time in milliseconds and may be 0 for trivial lookups.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError carries structured error details. Code is machine-readable for
// client dispatch; Message is human-readable; Details adds field-level
// context for validation failures.
type APIError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// HealthPayload reports service liveness and catalog readiness.
type HealthPayload struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Tracks  int    `json:"tracks_loaded"`
}

// TracksPayload wraps a track list result.
type TracksPayload struct {
	Total  int             `json:"total"`
	Tracks []catalog.Track `json:"tracks"`
}

// RecommendationsPayload wraps a ranked recommendation result. Seed is the
// originating track for track-based queries and empty otherwise; Mood is set
// for mood-based queries.
type RecommendationsPayload struct {
	Seed            *catalog.Track             `json:"seed_track,omitempty"`
	Mood            string                     `json:"mood,omitempty"`
	Count           int                        `json:"count"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
}

// GenresPayload wraps the genre name list.
type GenresPayload struct {
	Total  int      `json:"total"`
	Genres []string `json:"genres"`
}

// GenreStatsPayload wraps per-genre mean audio feature profiles.
type GenreStatsPayload struct {
	Total  int                              `json:"total"`
	Genres map[string]catalog.AudioFeatures `json:"genres"`
}

// MoodsPayload lists the available mood preset names.
type MoodsPayload struct {
	Moods []string `json:"moods"`
}
