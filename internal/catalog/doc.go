// Spotify Music Recommendation System - Content-Based Music Discovery
// Copyright 2026 Sammy Bolger (SammyBolger)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SammyBolger/Spotify-Music-Recommendation-System

// Package catalog loads, cleans, and serves the in-memory track catalog.
//
// The catalog is built once at process start from a CSV source (the Spotify
// Tracks Dataset layout) and is immutable afterwards. Loading goes through
// DuckDB's CSV reader, which gives us robust header detection and schema
// validation; type coercion and row-level cleaning happen on the Go side:
//
//   - missing name/artist/album/genre values are filled with fixed sentinels
//   - each of the nine audio feature columns is coerced to float64, with
//     unparseable values treated as missing
//   - rows still missing any audio feature after coercion are dropped
//   - duplicate track IDs are deduplicated, first occurrence wins
//
// The resulting Store exposes typed lookup, search, and browse operations
// over the cleaned collection plus derived indexes by ID and by genre. All
// Store methods are pure reads and safe for unsynchronized concurrent use.
package catalog
