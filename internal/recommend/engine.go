// Spotify Music Recommendation System - Content-Based Music Discovery
// Copyright 2026 Sammy Bolger (SammyBolger)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SammyBolger/Spotify-Music-Recommendation-System

package recommend

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/SammyBolger/Spotify-Music-Recommendation-System/internal/catalog"
)

// Recommendation is one ranked result: a catalog track with its similarity to
// the query, expressed as a 0-100 percentage with one decimal place.
type Recommendation struct {
	Track catalog.Track `json:"track"`
	Score float64       `json:"similarity_score"`
}

// Engine answers nearest-neighbor queries against the catalog's normalized
// feature matrix. It is immutable after construction and safe for concurrent
// use without locking: every query is a pure read plus request-scoped output.
type Engine struct {
	store  *catalog.Store
	logger zerolog.Logger
	scaler *minMaxScaler
	matrix [][]float64 // normalized rows, aligned with catalog row index
}

// NewEngine builds the engine from a loaded catalog: it extracts the feature
// matrix in canonical column order, fits the min-max transform over it, and
// caches the normalized matrix. This is the one-time O(N*F) setup cost; the
// transform is frozen afterwards.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewEngine(store *catalog.Store, logger zerolog.Logger) *Engine {
	tracks := store.Tracks()

	raw := make([][]float64, len(tracks))
	for i := range tracks {
		raw[i] = tracks[i].Features.Vector()
	}

	scaler := fitScaler(raw, catalog.FeatureCount)

	matrix := make([][]float64, len(raw))
	for i, row := range raw {
		matrix[i] = scaler.transform(row)
	}

	e := &Engine{
		store:  store,
		logger: logger.With().Str("component", "recommend").Logger(),
		scaler: scaler,
		matrix: matrix,
	}

	e.logger.Info().
		Int("tracks", len(matrix)).
		Int("features", catalog.FeatureCount).
		Msg("Similarity engine fitted")

	return e
}

// FromTrack returns the k tracks most similar to the seed track.
//
// The seed itself can never appear in the results: its own similarity is
// forced below every attainable value before ranking. With excludeSameArtist
// set, every track sharing the seed's exact artist string is excluded as
// well. An unknown seed ID yields an empty result, not an error, so the
// query boundary stays total.
func (e *Engine) FromTrack(seedID string, k int, excludeSameArtist bool) []Recommendation {
	seedIdx, ok := e.store.IndexOf(seedID)
	if !ok {
		e.logger.Debug().Str("track_id", seedID).Msg("Seed track not found")
		return nil
	}

	sims := e.similarities(e.matrix[seedIdx])
	// Self-exclusion: below any attainable cosine value, and filtered out of
	// the candidate set so it cannot surface even when k covers the catalog.
	sims[seedIdx] = -1

	include := func(i int) bool { return i != seedIdx }
	if excludeSameArtist {
		tracks := e.store.Tracks()
		seedArtist := tracks[seedIdx].Artists
		include = func(i int) bool {
			return i != seedIdx && tracks[i].Artists != seedArtist
		}
	}

	return e.rank(sims, include, k)
}

// FromFeatures returns the k tracks most similar to a client-supplied feature
// vector. Unset fields take the documented defaults, and the vector goes
// through the frozen catalog transform before comparison (out-of-range values
// extrapolate, they are not clamped). There is no seed row, so no
// self-exclusion applies; an empty catalog yields an empty result.
func (e *Engine) FromFeatures(query FeatureQuery, k int) []Recommendation {
	scaled := e.scaler.transform(query.Vector())
	return e.rank(e.similarities(scaled), nil, k)
}

// ByMood returns the k tracks matching a named mood preset. Unknown moods
// are a silent no-op yielding an empty result.
func (e *Engine) ByMood(mood string, k int) []Recommendation {
	preset, ok := MoodPreset(mood)
	if !ok {
		e.logger.Debug().Str("mood", mood).Msg("Unknown mood preset")
		return nil
	}
	return e.FromFeatures(preset, k)
}

// similarities computes the cosine similarity of a normalized query vector
// against every normalized catalog row. O(N*F) per call.
func (e *Engine) similarities(query []float64) []float64 {
	sims := make([]float64, len(e.matrix))
	for i, row := range e.matrix {
		sims[i] = cosineSimilarity(query, row)
	}
	return sims
}

// rank selects the top k candidate rows by similarity, descending. The sort
// is stable, so ties (identical feature vectors) resolve in catalog order.
// include filters candidate rows; nil admits every row.
func (e *Engine) rank(sims []float64, include func(i int) bool, k int) []Recommendation {
	candidates := make([]int, 0, len(sims))
	for i := range sims {
		if include == nil || include(i) {
			candidates = append(candidates, i)
		}
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return sims[candidates[a]] > sims[candidates[b]]
	})

	if k < 0 {
		k = 0
	}
	if k > len(candidates) {
		k = len(candidates)
	}

	tracks := e.store.Tracks()
	results := make([]Recommendation, 0, k)
	for _, idx := range candidates[:k] {
		results = append(results, Recommendation{
			Track: tracks[idx],
			Score: scorePercent(sims[idx]),
		})
	}
	return results
}
