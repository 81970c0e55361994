// Spotify Music Recommendation System - Content-Based Music Discovery
// Copyright 2026 Sammy Bolger (SammyBolger)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SammyBolger/Spotify-Music-Recommendation-System

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/SammyBolger/Spotify-Music-Recommendation-System/internal/metrics"
)

func TestPrometheusMetricsRecordsRequest(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.ToFloat64(
		metrics.APIRequestsTotal.WithLabelValues("GET", "/missing", "404"))

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rec := httptest.NewRecorder()
	PrometheusMetrics(handler).ServeHTTP(rec, req)

	after := testutil.ToFloat64(
		metrics.APIRequestsTotal.WithLabelValues("GET", "/missing", "404"))
	if after != before+1 {
		t.Errorf("request counter = %v, want %v", after, before+1)
	}
}

func TestPrometheusMetricsDefaultsTo200(t *testing.T) {
	// A handler that writes a body without calling WriteHeader is a 200.
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	before := testutil.ToFloat64(
		metrics.APIRequestsTotal.WithLabelValues("GET", "/implicit", "200"))

	req := httptest.NewRequest(http.MethodGet, "/implicit", nil)
	rec := httptest.NewRecorder()
	PrometheusMetrics(handler).ServeHTTP(rec, req)

	after := testutil.ToFloat64(
		metrics.APIRequestsTotal.WithLabelValues("GET", "/implicit", "200"))
	if after != before+1 {
		t.Errorf("request counter = %v, want %v", after, before+1)
	}
}

func TestActiveRequestGaugeReturnsToBaseline(t *testing.T) {
	base := testutil.ToFloat64(metrics.APIActiveRequests)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if in := testutil.ToFloat64(metrics.APIActiveRequests); in != base+1 {
			t.Errorf("in-flight gauge during request = %v, want %v", in, base+1)
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/gauge", nil)
	PrometheusMetrics(handler).ServeHTTP(httptest.NewRecorder(), req)

	if got := testutil.ToFloat64(metrics.APIActiveRequests); got != base {
		t.Errorf("in-flight gauge after request = %v, want %v", got, base)
	}
}
