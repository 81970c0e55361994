// Spotify Music Recommendation System - Content-Based Music Discovery
// Copyright 2026 Sammy Bolger (SammyBolger)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SammyBolger/Spotify-Music-Recommendation-System

// Package config provides layered configuration loading using Koanf v2.
//
// Configuration is assembled from three sources (highest priority wins):
//
//  1. Built-in defaults
//  2. Optional YAML config file (config.yaml, or CONFIG_PATH)
//  3. Environment variables
//
// Environment variable names map onto nested koanf paths, e.g.
// SERVER_PORT -> server.port, CATALOG_PATH -> catalog.path,
// LOG_LEVEL -> logging.level.
//
// The loaded Config is validated before being returned; an invalid
// configuration is a startup failure, never a silently degraded run.
package config
