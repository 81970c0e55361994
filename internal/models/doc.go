// Spotify Music Recommendation System - Content-Based Music Discovery
// Copyright 2026 Sammy Bolger (SammyBolger)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SammyBolger/Spotify-Music-Recommendation-System

/*
Package models defines shared API data structures.

This package contains the response envelope and payload types used by all
HTTP endpoints. It serves as the single source of truth for the wire format,
keeping handlers free of ad hoc anonymous structs.

Key Components:

  - APIResponse: Standardized response wrapper ("success"/"error" envelope)
  - APIError: Structured error details with machine-readable codes
  - Metadata: Response metadata (timestamp, query time)
  - Payload types: TracksPayload, RecommendationsPayload, GenresPayload,
    StatsPayload, HealthPayload

Usage Example:

	response := models.APIResponse{
	    Status: models.StatusSuccess,
	    Data: models.TracksPayload{
	        Total:  len(tracks),
	        Tracks: tracks,
	    },
	    Metadata: models.Metadata{
	        Timestamp: time.Now().UTC(),
	    },
	}
*/
package models
