// Spotify Music Recommendation System - Content-Based Music Discovery
// Copyright 2026 Sammy Bolger (SammyBolger)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SammyBolger/Spotify-Music-Recommendation-System

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/SammyBolger/Spotify-Music-Recommendation-System/internal/catalog"
	"github.com/SammyBolger/Spotify-Music-Recommendation-System/internal/config"
	"github.com/SammyBolger/Spotify-Music-Recommendation-System/internal/middleware"
	"github.com/SammyBolger/Spotify-Music-Recommendation-System/internal/recommend"
)

// Router wires handlers and middleware into the chi route tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a Router over the loaded catalog and fitted engine.
func NewRouter(store *catalog.Store, engine *recommend.Engine, cfg *config.Config) *Router {
	mwConfig := DefaultChiMiddlewareConfig()
	mwConfig.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mwConfig.RateLimitRequests = cfg.Security.RateLimitReqs
	mwConfig.RateLimitWindow = cfg.Security.RateLimitWindow
	mwConfig.RateLimitDisabled = cfg.Security.RateLimitDisabled

	return &Router{
		handler:       NewHandler(store, engine, cfg),
		chiMiddleware: NewChiMiddleware(mwConfig),
	}
}

// Setup configures all HTTP routes and returns the root handler.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order. CORS must be global
	// to handle OPTIONS preflight.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	// Health endpoint: no rate limit so monitoring can poll freely.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/", router.handler.Health)
	})

	// Catalog endpoints
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)

		r.Get("/stats", router.handler.Stats)

		r.Route("/tracks", func(r chi.Router) {
			r.Get("/search", router.handler.TracksSearch)
			r.Get("/top", router.handler.TracksTop)
			r.Get("/{id}", router.handler.TrackByID)
		})

		r.Route("/genres", func(r chi.Router) {
			r.Get("/", router.handler.Genres)
			r.Get("/stats", router.handler.GenresStats)
			r.Get("/{genre}/tracks", router.handler.GenreTracks)
		})

		r.Route("/recommendations", func(r chi.Router) {
			r.Get("/track/{id}", router.handler.RecommendByTrack)
			r.Post("/features", router.handler.RecommendByFeatures)
			r.Get("/moods", router.handler.Moods)
			r.Get("/mood/{mood}", router.handler.RecommendByMood)
		})
	})

	// Prometheus metrics in text exposition format.
	r.Handle("/metrics", promhttp.Handler())

	return r
}
