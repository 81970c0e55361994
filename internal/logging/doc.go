// Spotify Music Recommendation System - Content-Based Music Discovery
// Copyright 2026 Sammy Bolger (SammyBolger)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SammyBolger/Spotify-Music-Recommendation-System

// Package logging provides centralized zerolog-based structured logging.
//
// The package exposes a global logger configured once at startup, producing
// zero-allocation JSON output for production and human-readable console
// output for development.
//
// # Quick Start
//
//	import "github.com/SammyBolger/Spotify-Music-Recommendation-System/internal/logging"
//
//	// Initialize at application startup
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	// Log messages with structured fields
//	logging.Info().Str("track_id", id).Msg("Recommendation served")
//	logging.Error().Err(err).Msg("Catalog load failed")
//
//	// Context-aware logging (request/correlation IDs)
//	logging.Ctx(ctx).Info().Msg("Processing request")
//
// # Configuration
//
// Environment Variables (applied via internal/config):
//
//	LOG_LEVEL   - Minimum log level: trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - Output format: json, console (default: json)
//	LOG_CALLER  - Include caller file:line: true, false (default: false)
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
//
// Use structured fields instead of string formatting:
//
//	logging.Info().Str("genre", g).Int("count", n).Msg("tracks loaded")  // Correct
//	logging.Info().Msgf("loaded %d tracks for %s", n, g)                 // Avoid
//
// # Thread Safety
//
// All exported functions are safe for concurrent use. The global logger
// is protected by sync.RWMutex for configuration changes.
package logging
