// Spotify Music Recommendation System - Content-Based Music Discovery
// Copyright 2026 Sammy Bolger (SammyBolger)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SammyBolger/Spotify-Music-Recommendation-System

package catalog

// FeatureNames is the canonical audio feature column order. It defines the
// basis of the similarity vector space: every feature vector in the system,
// whether extracted from a catalog row or supplied by a client, follows this
// order.
var FeatureNames = []string{
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

// FeatureCount is the fixed dimensionality of audio feature vectors.
const FeatureCount = 9

// AudioFeatures is the fixed-shape audio feature record for one track.
//
// Field semantics (from the Spotify Tracks Dataset):
//   - Danceability: how suitable a track is for dancing (0.0 to 1.0)
//   - Energy: intensity and activity measure (0.0 to 1.0)
//   - Loudness: overall loudness in dB (typically -60 to 0)
//   - Speechiness: presence of spoken words (0.0 to 1.0)
//   - Acousticness: confidence of acoustic sound (0.0 to 1.0)
//   - Instrumentalness: predicted absence of vocals (0.0 to 1.0)
//   - Liveness: presence of an audience (0.0 to 1.0)
//   - Valence: musical positiveness (0.0 to 1.0)
//   - Tempo: estimated tempo in BPM
type AudioFeatures struct {
	Danceability     float64 `json:"danceability"`
	Energy           float64 `json:"energy"`
	Loudness         float64 `json:"loudness"`
	Speechiness      float64 `json:"speechiness"`
	Acousticness     float64 `json:"acousticness"`
	Instrumentalness float64 `json:"instrumentalness"`
	Liveness         float64 `json:"liveness"`
	Valence          float64 `json:"valence"`
	Tempo            float64 `json:"tempo"`
}

// Vector returns the features as a slice in the canonical FeatureNames order.
func (f AudioFeatures) Vector() []float64 {
	return []float64{
		f.Danceability,
		f.Energy,
		f.Loudness,
		f.Speechiness,
		f.Acousticness,
		f.Instrumentalness,
		f.Liveness,
		f.Valence,
		f.Tempo,
	}
}

// FeaturesFromVector builds an AudioFeatures record from a slice in the
// canonical FeatureNames order. The slice must have exactly FeatureCount
// elements; extra elements are ignored, missing ones stay zero.
func FeaturesFromVector(v []float64) AudioFeatures {
	var f AudioFeatures
	fields := []*float64{
		&f.Danceability,
		&f.Energy,
		&f.Loudness,
		&f.Speechiness,
		&f.Acousticness,
		&f.Instrumentalness,
		&f.Liveness,
		&f.Valence,
		&f.Tempo,
	}
	for i := range fields {
		if i < len(v) {
			*fields[i] = v[i]
		}
	}
	return f
}

// Track is one catalog entry: display metadata plus the fixed-shape audio
// feature vector used for similarity.
type Track struct {
	// ID is the opaque unique track identifier.
	ID string `json:"track_id"`

	// Name is the track title. Never empty; missing values become "Unknown Track".
	Name string `json:"track_name"`

	// Artists is the performing artist(s). Never empty; missing values become
	// "Unknown Artist".
	Artists string `json:"artists"`

	// AlbumName is the album title. Never empty; missing values become
	// "Unknown Album".
	AlbumName string `json:"album_name"`

	// Genre is the lowercased genre label. Never empty; missing values become
	// "unknown".
	Genre string `json:"genre"`

	// Popularity is the dataset popularity rank (0-100, higher is more popular).
	Popularity int `json:"popularity"`

	// Features is the complete audio feature vector. Rows with any
	// unrecoverable missing feature are dropped at load time, so Features is
	// never partial.
	Features AudioFeatures `json:"features"`
}

// Stats summarizes the loaded catalog.
type Stats struct {
	TotalTracks   int `json:"total_tracks"`
	TotalGenres   int `json:"total_genres"`
	TotalArtists  int `json:"total_artists"`
	AudioFeatures int `json:"audio_features"`
}
