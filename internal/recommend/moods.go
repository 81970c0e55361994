// Spotify Music Recommendation System - Content-Based Music Discovery
// Copyright 2026 Sammy Bolger (SammyBolger)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SammyBolger/Spotify-Music-Recommendation-System

package recommend

import (
	"sort"
	"strings"
)

// moodPresets maps mood names to partial feature templates. Fields left unset
// fall back to the FeatureQuery defaults when the preset is expanded.
var moodPresets = map[string]FeatureQuery{
	"happy": {
		Valence:      f(0.8),
		Energy:       f(0.7),
		Danceability: f(0.7),
	},
	"sad": {
		Valence:      f(0.2),
		Energy:       f(0.3),
		Acousticness: f(0.6),
	},
	"energetic": {
		Energy:       f(0.9),
		Tempo:        f(140),
		Danceability: f(0.7),
	},
	"chill": {
		Energy:       f(0.3),
		Acousticness: f(0.7),
		Valence:      f(0.5),
	},
	"party": {
		Danceability: f(0.9),
		Energy:       f(0.8),
		Valence:      f(0.7),
	},
	"focus": {
		Instrumentalness: f(0.7),
		Speechiness:      f(0.05),
		Energy:           f(0.4),
	},
}

// f is a literal pointer helper for the preset table.
func f(v float64) *float64 {
	return &v
}

// MoodPreset looks up a mood by name, case-insensitively.
func MoodPreset(mood string) (FeatureQuery, bool) {
	preset, ok := moodPresets[strings.ToLower(mood)]
	return preset, ok
}

// Moods returns the sorted list of known mood preset names.
func Moods() []string {
	names := make([]string, 0, len(moodPresets))
	for name := range moodPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
