// Spotify Music Recommendation System - Content-Based Music Discovery
// Copyright 2026 Sammy Bolger (SammyBolger)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SammyBolger/Spotify-Music-Recommendation-System

package recommend

import "math"

// cosineSimilarity returns the cosine of the angle between two equal-length
// vectors: dot(a, b) / (|a| * |b|). A vector compared against itself yields
// exactly 1. When either vector has zero norm the similarity is undefined;
// this implementation degrades to 0 rather than dividing by zero.
func cosineSimilarity(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// scorePercent converts a raw similarity into the 0-100 percentage scale
// reported to clients, rounded to one decimal place.
func scorePercent(similarity float64) float64 {
	return math.Round(similarity*1000) / 10
}
