// Spotify Music Recommendation System - Content-Based Music Discovery
// Copyright 2026 Sammy Bolger (SammyBolger)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SammyBolger/Spotify-Music-Recommendation-System

package recommend

import "github.com/SammyBolger/Spotify-Music-Recommendation-System/internal/catalog"

// Per-field defaults applied when a FeatureQuery leaves a field unset.
// These are the documented slider defaults of the query boundary.
const (
	DefaultDanceability     = 0.5
	DefaultEnergy           = 0.5
	DefaultLoudness         = -10.0
	DefaultSpeechiness      = 0.1
	DefaultAcousticness     = 0.5
	DefaultInstrumentalness = 0.0
	DefaultLiveness         = 0.2
	DefaultValence          = 0.5
	DefaultTempo            = 120.0
)

// FeatureQuery is a partial audio feature vector supplied by a client.
// Nil fields take the documented defaults, preserving the "missing field
// defaults to a known value" contract with a fixed-shape struct instead of a
// dynamic map.
//
// Validation bounds mirror the dataset value ranges; loudness and tempo are
// open-ended on purpose (dB and BPM are not confined to [0, 1]).
type FeatureQuery struct {
	Danceability     *float64 `json:"danceability" validate:"omitempty,gte=0,lte=1"`
	Energy           *float64 `json:"energy" validate:"omitempty,gte=0,lte=1"`
	Loudness         *float64 `json:"loudness" validate:"omitempty,gte=-60,lte=10"`
	Speechiness      *float64 `json:"speechiness" validate:"omitempty,gte=0,lte=1"`
	Acousticness     *float64 `json:"acousticness" validate:"omitempty,gte=0,lte=1"`
	Instrumentalness *float64 `json:"instrumentalness" validate:"omitempty,gte=0,lte=1"`
	Liveness         *float64 `json:"liveness" validate:"omitempty,gte=0,lte=1"`
	Valence          *float64 `json:"valence" validate:"omitempty,gte=0,lte=1"`
	Tempo            *float64 `json:"tempo" validate:"omitempty,gte=0,lte=300"`
}

// Vector expands the query into a full raw feature vector in the canonical
// catalog.FeatureNames order, filling unset fields with their defaults.
func (q FeatureQuery) Vector() []float64 {
	return []float64{
		orDefault(q.Danceability, DefaultDanceability),
		orDefault(q.Energy, DefaultEnergy),
		orDefault(q.Loudness, DefaultLoudness),
		orDefault(q.Speechiness, DefaultSpeechiness),
		orDefault(q.Acousticness, DefaultAcousticness),
		orDefault(q.Instrumentalness, DefaultInstrumentalness),
		orDefault(q.Liveness, DefaultLiveness),
		orDefault(q.Valence, DefaultValence),
		orDefault(q.Tempo, DefaultTempo),
	}
}

// QueryFromFeatures builds a fully specified FeatureQuery from a catalog
// feature record.
func QueryFromFeatures(f catalog.AudioFeatures) FeatureQuery {
	v := f.Vector()
	return FeatureQuery{
		Danceability:     &v[0],
		Energy:           &v[1],
		Loudness:         &v[2],
		Speechiness:      &v[3],
		Acousticness:     &v[4],
		Instrumentalness: &v[5],
		Liveness:         &v[6],
		Valence:          &v[7],
		Tempo:            &v[8],
	}
}

func orDefault(v *float64, def float64) float64 {
	if v != nil {
		return *v
	}
	return def
}
