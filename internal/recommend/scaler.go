// Spotify Music Recommendation System - Content-Based Music Discovery
// Copyright 2026 Sammy Bolger (SammyBolger)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SammyBolger/Spotify-Music-Recommendation-System

package recommend

// minMaxScaler is a per-column affine scaling fit once over the full catalog
// feature matrix. Each column maps its catalog-wide [min, max] range onto
// [0, 1]. Once fit, the scaler is frozen.
type minMaxScaler struct {
	min   []float64
	scale []float64 // 1/(max-min); 0 for zero-variance columns
}

// fitScaler computes per-column min and max over the matrix. A column with a
// single repeated value (min == max) gets scale 0 so every value in it maps
// to 0 instead of dividing by zero.
func fitScaler(matrix [][]float64, cols int) *minMaxScaler {
	s := &minMaxScaler{
		min:   make([]float64, cols),
		scale: make([]float64, cols),
	}
	if len(matrix) == 0 {
		return s
	}

	maxs := make([]float64, cols)
	for c := 0; c < cols; c++ {
		s.min[c] = matrix[0][c]
		maxs[c] = matrix[0][c]
	}
	for _, row := range matrix {
		for c, v := range row {
			if v < s.min[c] {
				s.min[c] = v
			}
			if v > maxs[c] {
				maxs[c] = v
			}
		}
	}
	for c := 0; c < cols; c++ {
		if spread := maxs[c] - s.min[c]; spread > 0 {
			s.scale[c] = 1 / spread
		}
	}
	return s
}

// transform scales a raw vector with the frozen transform. Values outside the
// fitted range extrapolate linearly beyond [0, 1]; they are intentionally not
// clamped, since clamping would change ranking results for out-of-range query
// vectors.
func (s *minMaxScaler) transform(v []float64) []float64 {
	out := make([]float64, len(v))
	for c, x := range v {
		out[c] = (x - s.min[c]) * s.scale[c]
	}
	return out
}
