// Spotify Music Recommendation System - Content-Based Music Discovery
// Copyright 2026 Sammy Bolger (SammyBolger)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SammyBolger/Spotify-Music-Recommendation-System

package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/SammyBolger/Spotify-Music-Recommendation-System/internal/config"
)

const testHeader = "track_id,track_name,artists,album_name,track_genre,popularity," +
	"danceability,energy,loudness,speechiness,acousticness,instrumentalness,liveness,valence,tempo"

// writeCSV writes a catalog CSV fixture and returns its path.
func writeCSV(t *testing.T, lines ...string) string {
	t.Helper()

	content := testHeader + "\n"
	for _, line := range lines {
		content += line + "\n"
	}

	path := filepath.Join(t.TempDir(), "catalog.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

// loadFixture loads a Store from CSV fixture lines.
func loadFixture(t *testing.T, lines ...string) *Store {
	t.Helper()

	cfg := &config.CatalogConfig{
		Path:      writeCSV(t, lines...),
		MaxMemory: "256MB",
	}
	store, err := Load(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return store
}

func row(id, name, artist, album, genre string, popularity string, features string) string {
	return id + "," + name + "," + artist + "," + album + "," + genre + "," + popularity + "," + features
}

func TestLoadCleansRows(t *testing.T) {
	store := loadFixture(t,
		row("t1", "Song One", "Artist A", "Album X", "Pop", "80", "0.5,0.6,-8.0,0.05,0.3,0.0,0.1,0.7,120.0"),
		// missing name/artist/album/genre -> sentinels
		row("t2", "", "", "", "", "50", "0.4,0.5,-10.0,0.04,0.4,0.1,0.2,0.5,100.0"),
		// unparseable feature -> dropped
		row("t3", "Bad Row", "Artist B", "Album Y", "rock", "10", "oops,0.5,-10.0,0.04,0.4,0.1,0.2,0.5,100.0"),
		// duplicate id -> first occurrence wins
		row("t1", "Song One Again", "Artist A", "Album X", "pop", "90", "0.9,0.9,-5.0,0.05,0.1,0.0,0.1,0.9,130.0"),
		// missing id -> skipped
		row("", "No ID", "Artist C", "Album Z", "jazz", "20", "0.3,0.3,-12.0,0.03,0.6,0.2,0.3,0.4,90.0"),
	)

	if store.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", store.Size())
	}

	t1, err := store.GetByID("t1")
	if err != nil {
		t.Fatalf("GetByID(t1) error = %v", err)
	}
	if t1.Name != "Song One" {
		t.Errorf("dedup kept %q, want first occurrence \"Song One\"", t1.Name)
	}
	if t1.Genre != "pop" {
		t.Errorf("Genre = %q, want lowercased \"pop\"", t1.Genre)
	}
	if t1.Popularity != 80 {
		t.Errorf("Popularity = %d, want 80", t1.Popularity)
	}
	if t1.Features.Tempo != 120.0 {
		t.Errorf("Tempo = %f, want 120.0", t1.Features.Tempo)
	}

	t2, err := store.GetByID("t2")
	if err != nil {
		t.Fatalf("GetByID(t2) error = %v", err)
	}
	if t2.Name != UnknownTrack || t2.Artists != UnknownArtist ||
		t2.AlbumName != UnknownAlbum || t2.Genre != UnknownGenre {
		t.Errorf("sentinel fill = %q/%q/%q/%q, want Unknown sentinels",
			t2.Name, t2.Artists, t2.AlbumName, t2.Genre)
	}

	if _, err := store.GetByID("t3"); !errors.Is(err, ErrTrackNotFound) {
		t.Errorf("row with unparseable feature should be dropped, got err = %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	cfg := &config.CatalogConfig{
		Path:      filepath.Join(t.TempDir(), "does-not-exist.csv"),
		MaxMemory: "256MB",
	}
	_, err := Load(context.Background(), cfg)
	if !errors.Is(err, ErrDataLoad) {
		t.Fatalf("Load() error = %v, want ErrDataLoad", err)
	}
}

func TestLoadMissingColumn(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.csv")
	content := "track_id,track_name\nabc,Song\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg := &config.CatalogConfig{Path: path, MaxMemory: "256MB"}
	_, err := Load(context.Background(), cfg)
	if !errors.Is(err, ErrDataLoad) {
		t.Fatalf("Load() error = %v, want ErrDataLoad", err)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	lines := []string{
		row("a", "Alpha", "One", "LP", "pop", "10", "0.1,0.2,-5.0,0.01,0.5,0.0,0.1,0.5,100.0"),
		row("b", "Beta", "Two", "LP", "rock", "20", "0.9,0.8,-4.0,0.02,0.2,0.1,0.2,0.8,140.0"),
		row("c", "Gamma", "Three", "LP", "jazz", "30", "0.4,0.3,-9.0,0.03,0.7,0.5,0.1,0.3,80.0"),
	}
	path := writeCSV(t, lines...)
	cfg := &config.CatalogConfig{Path: path, MaxMemory: "256MB"}

	first, err := Load(context.Background(), cfg)
	if err != nil {
		t.Fatalf("first Load() error = %v", err)
	}
	second, err := Load(context.Background(), cfg)
	if err != nil {
		t.Fatalf("second Load() error = %v", err)
	}

	if first.Size() != second.Size() {
		t.Fatalf("sizes differ: %d vs %d", first.Size(), second.Size())
	}
	for i := range first.Tracks() {
		if first.Tracks()[i].ID != second.Tracks()[i].ID {
			t.Errorf("row %d: IDs differ: %q vs %q", i, first.Tracks()[i].ID, second.Tracks()[i].ID)
		}
	}
}

func TestSearch(t *testing.T) {
	store := loadFixture(t,
		row("t1", "Blinding Lights", "The Weeknd", "After Hours", "pop", "95", "0.5,0.7,-5.0,0.06,0.0,0.0,0.1,0.3,171.0"),
		row("t2", "Lights Up", "Harry Styles", "Fine Line", "pop", "80", "0.7,0.6,-6.0,0.05,0.3,0.0,0.1,0.6,90.0"),
		row("t3", "Believer", "Imagine Dragons", "Evolve", "rock", "88", "0.8,0.8,-4.0,0.1,0.0,0.0,0.1,0.7,125.0"),
	)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"matches name substring", "lights", 2},
		{"case insensitive", "BELIEVER", 1},
		{"matches artist", "weeknd", 1},
		{"no match", "zzz", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(store.Search(tt.query)); got != tt.want {
				t.Errorf("Search(%q) returned %d tracks, want %d", tt.query, got, tt.want)
			}
		})
	}
}

func TestTopByPopularity(t *testing.T) {
	store := loadFixture(t,
		row("low", "Low", "A", "LP", "pop", "10", "0.5,0.5,-5.0,0.05,0.5,0.0,0.1,0.5,120.0"),
		row("tie1", "Tie First", "B", "LP", "pop", "50", "0.5,0.5,-5.0,0.05,0.5,0.0,0.1,0.5,120.0"),
		row("high", "High", "C", "LP", "pop", "90", "0.5,0.5,-5.0,0.05,0.5,0.0,0.1,0.5,120.0"),
		row("tie2", "Tie Second", "D", "LP", "pop", "50", "0.5,0.5,-5.0,0.05,0.5,0.0,0.1,0.5,120.0"),
	)

	top := store.TopByPopularity(3)
	if len(top) != 3 {
		t.Fatalf("TopByPopularity(3) returned %d tracks", len(top))
	}
	if top[0].ID != "high" {
		t.Errorf("top[0] = %q, want \"high\"", top[0].ID)
	}
	// Tie between tie1 and tie2 resolves in catalog order.
	if top[1].ID != "tie1" || top[2].ID != "tie2" {
		t.Errorf("tie order = [%q, %q], want [tie1, tie2]", top[1].ID, top[2].ID)
	}

	if got := store.TopByPopularity(100); len(got) != store.Size() {
		t.Errorf("oversized n returned %d tracks, want %d", len(got), store.Size())
	}
	if got := store.TopByPopularity(0); got != nil {
		t.Errorf("TopByPopularity(0) = %v, want nil", got)
	}
}

func TestByGenreAndGenres(t *testing.T) {
	store := loadFixture(t,
		row("t1", "One", "A", "LP", "pop", "10", "0.5,0.5,-5.0,0.05,0.5,0.0,0.1,0.5,120.0"),
		row("t2", "Two", "B", "LP", "rock", "20", "0.5,0.5,-5.0,0.05,0.5,0.0,0.1,0.5,120.0"),
		row("t3", "Three", "C", "LP", "pop", "30", "0.5,0.5,-5.0,0.05,0.5,0.0,0.1,0.5,120.0"),
	)

	pop := store.ByGenre("POP", 10)
	if len(pop) != 2 {
		t.Fatalf("ByGenre(POP) returned %d tracks, want 2", len(pop))
	}
	if pop[0].ID != "t1" || pop[1].ID != "t3" {
		t.Errorf("ByGenre order = [%q, %q], want catalog order [t1, t3]", pop[0].ID, pop[1].ID)
	}

	if limited := store.ByGenre("pop", 1); len(limited) != 1 {
		t.Errorf("ByGenre with limit 1 returned %d tracks", len(limited))
	}
	if none := store.ByGenre("metal", 5); len(none) != 0 {
		t.Errorf("unknown genre returned %d tracks, want 0", len(none))
	}

	genres := store.Genres()
	if len(genres) != 2 || genres[0] != "pop" || genres[1] != "rock" {
		t.Errorf("Genres() = %v, want [pop rock]", genres)
	}
}

func TestGenreStats(t *testing.T) {
	store := loadFixture(t,
		row("t1", "One", "A", "LP", "pop", "10", "0.2,0.4,-10.0,0.05,0.5,0.0,0.1,0.4,100.0"),
		row("t2", "Two", "B", "LP", "pop", "20", "0.4,0.6,-6.0,0.05,0.5,0.0,0.1,0.6,140.0"),
	)

	stats := store.GenreStats()
	pop, ok := stats["pop"]
	if !ok {
		t.Fatal("expected stats for pop genre")
	}
	if pop.Danceability != 0.3 {
		t.Errorf("mean danceability = %f, want 0.3", pop.Danceability)
	}
	if pop.Loudness != -8.0 {
		t.Errorf("mean loudness = %f, want -8.0", pop.Loudness)
	}
	if pop.Tempo != 120.0 {
		t.Errorf("mean tempo = %f, want 120.0", pop.Tempo)
	}
}

func TestStats(t *testing.T) {
	store := loadFixture(t,
		row("t1", "One", "Shared Artist", "LP", "pop", "10", "0.5,0.5,-5.0,0.05,0.5,0.0,0.1,0.5,120.0"),
		row("t2", "Two", "Shared Artist", "LP", "rock", "20", "0.5,0.5,-5.0,0.05,0.5,0.0,0.1,0.5,120.0"),
		row("t3", "Three", "Other Artist", "LP", "jazz", "30", "0.5,0.5,-5.0,0.05,0.5,0.0,0.1,0.5,120.0"),
	)

	stats := store.Stats()
	if stats.TotalTracks != 3 {
		t.Errorf("TotalTracks = %d, want 3", stats.TotalTracks)
	}
	if stats.TotalGenres != 3 {
		t.Errorf("TotalGenres = %d, want 3", stats.TotalGenres)
	}
	if stats.TotalArtists != 2 {
		t.Errorf("TotalArtists = %d, want 2", stats.TotalArtists)
	}
	if stats.AudioFeatures != FeatureCount {
		t.Errorf("AudioFeatures = %d, want %d", stats.AudioFeatures, FeatureCount)
	}
}

func TestVectorRoundTrip(t *testing.T) {
	t.Parallel()

	f := AudioFeatures{
		Danceability:     0.1,
		Energy:           0.2,
		Loudness:         -3.0,
		Speechiness:      0.4,
		Acousticness:     0.5,
		Instrumentalness: 0.6,
		Liveness:         0.7,
		Valence:          0.8,
		Tempo:            99.0,
	}
	if got := FeaturesFromVector(f.Vector()); got != f {
		t.Errorf("FeaturesFromVector(Vector()) = %+v, want %+v", got, f)
	}
	if len(f.Vector()) != FeatureCount {
		t.Errorf("Vector length = %d, want %d", len(f.Vector()), FeatureCount)
	}
	if len(FeatureNames) != FeatureCount {
		t.Errorf("FeatureNames length = %d, want %d", len(FeatureNames), FeatureCount)
	}
}
