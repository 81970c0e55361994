// Spotify Music Recommendation System - Content-Based Music Discovery
// Copyright 2026 Sammy Bolger (SammyBolger)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SammyBolger/Spotify-Music-Recommendation-System

package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/SammyBolger/Spotify-Music-Recommendation-System/internal/catalog"
	"github.com/SammyBolger/Spotify-Music-Recommendation-System/internal/config"
	"github.com/SammyBolger/Spotify-Music-Recommendation-System/internal/logging"
	"github.com/SammyBolger/Spotify-Music-Recommendation-System/internal/metrics"
	"github.com/SammyBolger/Spotify-Music-Recommendation-System/internal/models"
	"github.com/SammyBolger/Spotify-Music-Recommendation-System/internal/recommend"
)

// Version is the reported service version.
const Version = "1.0.0"

// Handler holds the shared dependencies for all HTTP handlers. The catalog
// and engine are immutable after startup, so handlers read them without
// locking.
type Handler struct {
	store     *catalog.Store
	engine    *recommend.Engine
	cfg       *config.Config
	logger    zerolog.Logger
	startTime time.Time
}

// NewHandler creates a Handler with explicit dependencies.
func NewHandler(store *catalog.Store, engine *recommend.Engine, cfg *config.Config) *Handler {
	return &Handler{
		store:     store,
		engine:    engine,
		cfg:       cfg,
		logger:    logging.WithComponent("api"),
		startTime: time.Now(),
	}
}

// clampK bounds the k query parameter to the configured [1, MaxK] range.
func (h *Handler) clampK(r *http.Request) int {
	return clamp(getIntParam(r, "k", h.cfg.API.DefaultK), 1, h.cfg.API.MaxK)
}

// Empty results serialize as [] rather than null.

func nonNilTracks(tracks []catalog.Track) []catalog.Track {
	if tracks == nil {
		return []catalog.Track{}
	}
	return tracks
}

func nonNilRecs(recs []recommend.Recommendation) []recommend.Recommendation {
	if recs == nil {
		return []recommend.Recommendation{}
	}
	return recs
}

// Health handles health check requests. The service is ready once the
// catalog is loaded; an empty catalog reports degraded.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	status := "healthy"
	if h.store.Size() == 0 {
		status = "degraded"
	}

	respondSuccess(w, models.HealthPayload{
		Status:  status,
		Version: Version,
		Tracks:  h.store.Size(),
	}, start)
}

// Stats returns aggregate catalog counts.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, h.store.Stats(), start)
}

// TracksSearch searches tracks by name or artist substring. An empty query
// is rejected here so the store never sees a match-everything search.
func (h *Handler) TracksSearch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		respondError(w, http.StatusBadRequest, models.CodeValidationError,
			"Search query must not be empty", nil)
		return
	}

	tracks := h.store.Search(query)
	respondSuccess(w, models.TracksPayload{
		Total:  len(tracks),
		Tracks: nonNilTracks(tracks),
	}, start)
}

// TracksTop returns the most popular tracks.
func (h *Handler) TracksTop(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit := clamp(getIntParam(r, "limit", h.cfg.API.DefaultTopTracks), 1, h.cfg.API.MaxPageSize)
	tracks := h.store.TopByPopularity(limit)
	respondSuccess(w, models.TracksPayload{
		Total:  len(tracks),
		Tracks: nonNilTracks(tracks),
	}, start)
}

// TrackByID returns one track with its audio features.
func (h *Handler) TrackByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id := chi.URLParam(r, "id")
	track, err := h.store.GetByID(id)
	if err != nil {
		if errors.Is(err, catalog.ErrTrackNotFound) {
			respondError(w, http.StatusNotFound, models.CodeNotFound, "Track not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, models.CodeInternalError,
			"Failed to load track", err)
		return
	}

	respondSuccess(w, track, start)
}

// Genres returns the sorted distinct genre names.
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	genres := h.store.Genres()
	respondSuccess(w, models.GenresPayload{
		Total:  len(genres),
		Genres: genres,
	}, start)
}

// GenresStats returns the mean audio feature profile per genre.
func (h *Handler) GenresStats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	stats := h.store.GenreStats()
	respondSuccess(w, models.GenreStatsPayload{
		Total:  len(stats),
		Genres: stats,
	}, start)
}

// GenreTracks returns tracks of one genre in catalog order. An unknown genre
// yields an empty list rather than an error, matching browse semantics.
func (h *Handler) GenreTracks(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	genre := chi.URLParam(r, "genre")
	limit := clamp(getIntParam(r, "limit", h.cfg.API.DefaultTopTracks), 1, h.cfg.API.MaxPageSize)
	tracks := h.store.ByGenre(genre, limit)
	respondSuccess(w, models.TracksPayload{
		Total:  len(tracks),
		Tracks: nonNilTracks(tracks),
	}, start)
}

// RecommendByTrack returns tracks similar to a seed track. Unknown seeds are
// a 404: the seed lookup is a resource access, unlike the total engine query
// underneath.
func (h *Handler) RecommendByTrack(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id := chi.URLParam(r, "id")
	seed, err := h.store.GetByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, models.CodeNotFound, "Track not found", nil)
		return
	}

	k := h.clampK(r)
	excludeSameArtist := getBoolParam(r, "exclude_same_artist", false)

	recs := h.engine.FromTrack(id, k, excludeSameArtist)
	metrics.RecordRecommendationQuery("track", time.Since(start))

	respondSuccess(w, models.RecommendationsPayload{
		Seed:            &seed,
		Count:           len(recs),
		Recommendations: nonNilRecs(recs),
	}, start)
}

// RecommendByFeatures returns tracks similar to a client-supplied feature
// vector. The body is a partial set of sliders; missing ones take their
// documented defaults, out-of-range ones are rejected by the validator.
func (h *Handler) RecommendByFeatures(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var query recommend.FeatureQuery
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		respondError(w, http.StatusBadRequest, models.CodeValidationError,
			"Invalid JSON body", err)
		return
	}
	if apiErr := validateRequest(&query); apiErr != nil {
		respondJSON(w, http.StatusBadRequest, &models.APIResponse{
			Status:   models.StatusError,
			Metadata: models.Metadata{Timestamp: time.Now().UTC()},
			Error:    apiErr,
		})
		return
	}

	k := h.clampK(r)

	recs := h.engine.FromFeatures(query, k)
	metrics.RecordRecommendationQuery("features", time.Since(start))

	respondSuccess(w, models.RecommendationsPayload{
		Count:           len(recs),
		Recommendations: nonNilRecs(recs),
	}, start)
}

// RecommendByMood returns tracks matching a named mood preset. An unknown
// mood is a 200 with an empty list; the preset table treats it as a silent
// no-op, and the boundary preserves that.
func (h *Handler) RecommendByMood(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	mood := chi.URLParam(r, "mood")
	k := h.clampK(r)

	recs := h.engine.ByMood(mood, k)
	metrics.RecordRecommendationQuery("mood", time.Since(start))

	respondSuccess(w, models.RecommendationsPayload{
		Mood:            strings.ToLower(mood),
		Count:           len(recs),
		Recommendations: nonNilRecs(recs),
	}, start)
}

// Moods lists the available mood preset names.
func (h *Handler) Moods(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, models.MoodsPayload{Moods: recommend.Moods()}, start)
}
