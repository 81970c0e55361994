// Spotify Music Recommendation System - Content-Based Music Discovery
// Copyright 2026 Sammy Bolger (SammyBolger)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SammyBolger/Spotify-Music-Recommendation-System

// Package main is the entry point for the music recommendation server.
//
// The server loads a Spotify-style track catalog from CSV, fits a
// content-based similarity engine over its audio features, and serves
// search, browse, and recommendation queries over a REST API.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Load settings from environment variables and config
//     files (Koanf v2)
//  2. Logging: zerolog, JSON or console format per config
//  3. Catalog: Read and clean the track CSV through DuckDB, build indexes
//  4. Engine: Fit min-max normalization and cache the feature matrix
//  5. HTTP Server: chi-routed REST API with Prometheus metrics
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (CATALOG_PATH, HTTP_PORT, LOG_LEVEL, ...)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (10s timeout)
//
// # Example Usage
//
//	export CATALOG_PATH=data/spotify_full.csv
//	export HTTP_PORT=8080
//	./music-recommender
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SammyBolger/Spotify-Music-Recommendation-System/internal/api"
	"github.com/SammyBolger/Spotify-Music-Recommendation-System/internal/catalog"
	"github.com/SammyBolger/Spotify-Music-Recommendation-System/internal/config"
	"github.com/SammyBolger/Spotify-Music-Recommendation-System/internal/logging"
	"github.com/SammyBolger/Spotify-Music-Recommendation-System/internal/recommend"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", api.Version).
		Str("environment", cfg.Server.Environment).
		Msg("Starting music recommendation server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load the catalog. A missing or malformed source is fatal: the service
	// has nothing to serve without it.
	store, err := catalog.Load(ctx, &cfg.Catalog)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Catalog.Path).Msg("Failed to load catalog")
	}

	engine := recommend.NewEngine(store, logging.Logger())

	router := api.NewRouter(store, engine, cfg)
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// Shutdown on SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logging.Error().Err(err).Msg("Graceful shutdown failed")
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server error")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
