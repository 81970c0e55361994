// Spotify Music Recommendation System - Content-Based Music Discovery
// Copyright 2026 Sammy Bolger (SammyBolger)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SammyBolger/Spotify-Music-Recommendation-System

package catalog

import "errors"

// Common catalog errors
var (
	// ErrDataLoad indicates the catalog source was unreadable or the CSV is
	// missing required columns. Fatal at startup; there is no automatic retry.
	ErrDataLoad = errors.New("catalog data load failed")

	// ErrTrackNotFound indicates an unknown track ID. Callers recover locally
	// (empty result or 404); it is never a hard failure.
	ErrTrackNotFound = errors.New("track not found")
)
