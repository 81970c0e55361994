// Spotify Music Recommendation System - Content-Based Music Discovery
// Copyright 2026 Sammy Bolger (SammyBolger)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SammyBolger/Spotify-Music-Recommendation-System

package recommend

import "testing"

func TestMoodPreset(t *testing.T) {
	t.Parallel()

	preset, ok := MoodPreset("Happy")
	if !ok {
		t.Fatal("MoodPreset(Happy) not found")
	}
	if preset.Valence == nil || *preset.Valence != 0.8 {
		t.Errorf("happy valence = %v, want 0.8", preset.Valence)
	}

	if _, ok := MoodPreset("grumpy"); ok {
		t.Error("MoodPreset(grumpy) = found, want not found")
	}
}

func TestMoodsSorted(t *testing.T) {
	t.Parallel()

	moods := Moods()
	want := []string{"chill", "energetic", "focus", "happy", "party", "sad"}
	if len(moods) != len(want) {
		t.Fatalf("Moods() = %v, want %v", moods, want)
	}
	for i := range want {
		if moods[i] != want[i] {
			t.Fatalf("Moods() = %v, want %v", moods, want)
		}
	}
}

func TestFeatureQueryDefaults(t *testing.T) {
	t.Parallel()

	v := FeatureQuery{}.Vector()
	want := []float64{
		DefaultDanceability, DefaultEnergy, DefaultLoudness,
		DefaultSpeechiness, DefaultAcousticness, DefaultInstrumentalness,
		DefaultLiveness, DefaultValence, DefaultTempo,
	}
	for i := range want {
		if v[i] != want[i] {
			t.Errorf("default vector[%d] = %v, want %v", i, v[i], want[i])
		}
	}

	energy := 0.9
	v = FeatureQuery{Energy: &energy}.Vector()
	if v[1] != 0.9 {
		t.Errorf("explicit energy = %v, want 0.9", v[1])
	}
	if v[0] != DefaultDanceability {
		t.Errorf("unset danceability = %v, want default", v[0])
	}
}
