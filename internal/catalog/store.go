// Spotify Music Recommendation System - Content-Based Music Discovery
// Copyright 2026 Sammy Bolger (SammyBolger)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SammyBolger/Spotify-Music-Recommendation-System

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/SammyBolger/Spotify-Music-Recommendation-System/internal/config"
	"github.com/SammyBolger/Spotify-Music-Recommendation-System/internal/logging"
	"github.com/SammyBolger/Spotify-Music-Recommendation-System/internal/metrics"
)

// Sentinel values for missing display metadata, matching the source dataset
// conventions (genre labels are lowercase, display fields are title case).
const (
	UnknownTrack  = "Unknown Track"
	UnknownArtist = "Unknown Artist"
	UnknownAlbum  = "Unknown Album"
	UnknownGenre  = "unknown"
)

// sourceColumns lists the raw CSV columns the loader requires, in the order
// they are selected. The raw track_genre column maps to the canonical genre
// field.
var sourceColumns = []string{
	"track_id",
	"track_name",
	"artists",
	"album_name",
	"track_genre",
	"popularity",
	"danceability",
	"energy",
	"loudness",
	"speechiness",
	"acousticness",
	"instrumentalness",
	"liveness",
	"valence",
	"tempo",
}

// Store is the immutable in-memory track catalog with derived indexes.
// It is built once by Load and never mutated afterwards, so all methods are
// safe for unsynchronized concurrent use.
type Store struct {
	tracks  []Track          // catalog order (CSV order after cleaning)
	byID    map[string]int   // track ID -> row index
	byGenre map[string][]int // lowercased genre -> row indexes in catalog order
	genres  []string         // sorted distinct genres
	artists int              // distinct artist count, precomputed for Stats
}

// Load reads, cleans, and indexes the track catalog from the configured CSV
// source. The CSV is read through DuckDB (header detection, quoting, schema
// validation); all values arrive as strings and are coerced here so cleaning
// rules stay explicit:
//
//   - rows with a missing track_id are skipped (they cannot be indexed)
//   - missing display metadata is filled with Unknown* sentinels
//   - audio features are parsed as float64; rows with any unparseable or
//     missing feature are dropped
//   - duplicate track IDs keep the first occurrence
//
// A missing file or absent required column fails with an error wrapping
// ErrDataLoad.
func Load(ctx context.Context, cfg *config.CatalogConfig) (*Store, error) {
	logger := logging.WithComponent("catalog")
	start := time.Now()

	rows, err := readSource(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store := &Store{
		byID:    make(map[string]int),
		byGenre: make(map[string][]int),
	}

	var skippedID, droppedFeature, deduped int
	for _, raw := range rows {
		track, ok, reason := cleanRow(raw)
		if !ok {
			switch reason {
			case dropMissingID:
				skippedID++
				metrics.RecordDroppedRow("missing_id")
			case dropMissingFeature:
				droppedFeature++
				metrics.RecordDroppedRow("missing_feature")
			}
			continue
		}
		if _, exists := store.byID[track.ID]; exists {
			deduped++
			metrics.RecordDroppedRow("duplicate_id")
			continue
		}
		idx := len(store.tracks)
		store.tracks = append(store.tracks, track)
		store.byID[track.ID] = idx
		store.byGenre[track.Genre] = append(store.byGenre[track.Genre], idx)
	}

	store.genres = make([]string, 0, len(store.byGenre))
	for genre := range store.byGenre {
		store.genres = append(store.genres, genre)
	}
	sort.Strings(store.genres)

	artistSet := make(map[string]struct{}, len(store.tracks))
	for i := range store.tracks {
		artistSet[store.tracks[i].Artists] = struct{}{}
	}
	store.artists = len(artistSet)

	metrics.RecordCatalogLoad(len(store.tracks), len(store.genres), time.Since(start))

	logger.Info().
		Int("tracks", len(store.tracks)).
		Int("genres", len(store.genres)).
		Int("skipped_missing_id", skippedID).
		Int("dropped_missing_feature", droppedFeature).
		Int("deduplicated", deduped).
		Dur("duration", time.Since(start)).
		Msg("Catalog loaded")

	return store, nil
}

// rawRow holds one CSV row before coercion, aligned with sourceColumns.
type rawRow []sql.NullString

// readSource queries the CSV through an in-memory DuckDB instance and returns
// the raw string rows. DuckDB validates the header for us: selecting a column
// that does not exist fails the query.
func readSource(ctx context.Context, cfg *config.CatalogConfig) ([]rawRow, error) {
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	connStr := fmt.Sprintf("?threads=%d&max_memory=%s&autoinstall_known_extensions=false&autoload_known_extensions=false",
		threads, cfg.MaxMemory)

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("%w: opening duckdb: %v", ErrDataLoad, err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			logging.Warn().Err(cerr).Msg("Failed to close catalog reader connection")
		}
	}()

	// all_varchar keeps coercion on the Go side so a single malformed cell
	// drops one row instead of failing the whole sniffed column.
	query := fmt.Sprintf(
		`SELECT %s FROM read_csv(%s, header=true, all_varchar=true, null_padding=true)`,
		strings.Join(sourceColumns, ", "),
		quoteLiteral(cfg.Path),
	)

	dbRows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrDataLoad, cfg.Path, err)
	}
	defer func() {
		_ = dbRows.Close() // best-effort cleanup
	}()

	var rows []rawRow
	for dbRows.Next() {
		raw := make(rawRow, len(sourceColumns))
		dest := make([]any, len(sourceColumns))
		for i := range dest {
			dest[i] = &raw[i]
		}
		if err := dbRows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%w: scanning row: %v", ErrDataLoad, err)
		}
		rows = append(rows, raw)
	}
	if err := dbRows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating rows: %v", ErrDataLoad, err)
	}

	return rows, nil
}

// quoteLiteral escapes a string for safe use as a SQL string literal.
// DuckDB table functions do not accept prepared-statement placeholders in all
// driver versions, so the path is inlined.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// dropReason classifies why cleanRow rejected a row.
type dropReason int

const (
	dropNone dropReason = iota
	dropMissingID
	dropMissingFeature
)

// cleanRow coerces one raw CSV row into a Track, applying sentinel fills and
// the drop rules documented on Load.
func cleanRow(raw rawRow) (Track, bool, dropReason) {
	id := strings.TrimSpace(stringOr(raw[0], ""))
	if id == "" {
		return Track{}, false, dropMissingID
	}

	track := Track{
		ID:        id,
		Name:      stringOr(raw[1], UnknownTrack),
		Artists:   stringOr(raw[2], UnknownArtist),
		AlbumName: stringOr(raw[3], UnknownAlbum),
		Genre:     strings.ToLower(stringOr(raw[4], UnknownGenre)),
	}

	if pop, err := parseFloat(raw[5]); err == nil {
		track.Popularity = int(pop)
	}

	vector := make([]float64, FeatureCount)
	for i := 0; i < FeatureCount; i++ {
		val, err := parseFloat(raw[6+i])
		if err != nil {
			return Track{}, false, dropMissingFeature
		}
		vector[i] = val
	}
	track.Features = FeaturesFromVector(vector)

	return track, true, dropNone
}

// stringOr returns the trimmed value, or the fallback when NULL or empty.
func stringOr(v sql.NullString, fallback string) string {
	if !v.Valid {
		return fallback
	}
	s := strings.TrimSpace(v.String)
	if s == "" {
		return fallback
	}
	return s
}

// parseFloat parses a nullable string cell as float64.
func parseFloat(v sql.NullString) (float64, error) {
	if !v.Valid {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseFloat(strings.TrimSpace(v.String), 64)
}

// Size returns the number of tracks in the catalog.
func (s *Store) Size() int {
	return len(s.tracks)
}

// Tracks returns the full catalog in catalog order. The returned slice is
// shared and must be treated as read-only.
func (s *Store) Tracks() []Track {
	return s.tracks
}

// Stats returns aggregate counts over the catalog.
func (s *Store) Stats() Stats {
	return Stats{
		TotalTracks:   len(s.tracks),
		TotalGenres:   len(s.genres),
		TotalArtists:  s.artists,
		AudioFeatures: FeatureCount,
	}
}

// GetByID returns the track with the given ID, or ErrTrackNotFound.
func (s *Store) GetByID(id string) (Track, error) {
	idx, ok := s.byID[id]
	if !ok {
		return Track{}, fmt.Errorf("%w: %s", ErrTrackNotFound, id)
	}
	return s.tracks[idx], nil
}

// IndexOf returns the catalog row index for a track ID.
func (s *Store) IndexOf(id string) (int, bool) {
	idx, ok := s.byID[id]
	return idx, ok
}

// Search returns all tracks whose name or artists contain the query,
// case-insensitively, in catalog order.
//
// An empty query matches every track; gating empty queries is the caller's
// responsibility (the API layer rejects them before reaching the store).
func (s *Store) Search(query string) []Track {
	q := strings.ToLower(query)
	var matches []Track
	for i := range s.tracks {
		if strings.Contains(strings.ToLower(s.tracks[i].Name), q) ||
			strings.Contains(strings.ToLower(s.tracks[i].Artists), q) {
			matches = append(matches, s.tracks[i])
		}
	}
	return matches
}

// TopByPopularity returns the n most popular tracks, descending. Ties keep
// catalog order.
func (s *Store) TopByPopularity(n int) []Track {
	if n <= 0 {
		return nil
	}

	indexes := make([]int, len(s.tracks))
	for i := range indexes {
		indexes[i] = i
	}
	sort.SliceStable(indexes, func(a, b int) bool {
		return s.tracks[indexes[a]].Popularity > s.tracks[indexes[b]].Popularity
	})

	if n > len(indexes) {
		n = len(indexes)
	}
	top := make([]Track, n)
	for i := 0; i < n; i++ {
		top[i] = s.tracks[indexes[i]]
	}
	return top
}

// ByGenre returns up to limit tracks of the given genre (case-normalized
// equality) in catalog order.
func (s *Store) ByGenre(genre string, limit int) []Track {
	indexes := s.byGenre[strings.ToLower(genre)]
	if limit <= 0 || limit > len(indexes) {
		limit = len(indexes)
	}
	tracks := make([]Track, 0, limit)
	for _, idx := range indexes[:limit] {
		tracks = append(tracks, s.tracks[idx])
	}
	return tracks
}

// Genres returns the sorted distinct genre values.
func (s *Store) Genres() []string {
	return s.genres
}

// GenreStats returns the mean of each raw audio feature per genre.
func (s *Store) GenreStats() map[string]AudioFeatures {
	stats := make(map[string]AudioFeatures, len(s.genres))
	for genre, indexes := range s.byGenre {
		if len(indexes) == 0 {
			continue
		}
		sums := make([]float64, FeatureCount)
		for _, idx := range indexes {
			vec := s.tracks[idx].Features.Vector()
			for i, v := range vec {
				sums[i] += v
			}
		}
		for i := range sums {
			sums[i] /= float64(len(indexes))
		}
		stats[genre] = FeaturesFromVector(sums)
	}
	return stats
}
