// CineRank - Movie Rating API and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/cinerank/internal/config"
	"github.com/tomtom215/cinerank/internal/metrics"
	"github.com/tomtom215/cinerank/internal/recommend"
)

func TestChiMiddlewareConfigFromSecurity(t *testing.T) {
	sec := &config.SecurityConfig{
		RateLimitReqs:     42,
		RateLimitWindow:   30 * time.Second,
		RateLimitDisabled: true,
		CORSOrigins:       []string{"https://example.com"},
	}

	cfg := ChiMiddlewareConfigFromSecurity(sec)
	if cfg.RateLimitRequests != 42 {
		t.Errorf("RateLimitRequests = %d, want 42", cfg.RateLimitRequests)
	}
	if cfg.RateLimitWindow != 30*time.Second {
		t.Errorf("RateLimitWindow = %v, want 30s", cfg.RateLimitWindow)
	}
	if !cfg.RateLimitDisabled {
		t.Error("RateLimitDisabled = false, want true")
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "https://example.com" {
		t.Errorf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}

	if def := ChiMiddlewareConfigFromSecurity(nil); def.RateLimitRequests != 100 {
		t.Errorf("nil security RateLimitRequests = %d, want 100", def.RateLimitRequests)
	}
}

func TestRateLimit_Exceeded(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 1
	cfg.RateLimitWindow = time.Minute

	mock := &mockRecommender{resp: &recommend.Response{UserID: 1}}
	h := newTestRouter(mock, mockPinger{}, cfg)

	before := testutil.ToFloat64(metrics.APIRateLimitHits.WithLabelValues("api"))

	first := doGet(h, "/api/v1/users/1/recommendations")
	if first.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want %d", first.Code, http.StatusOK)
	}

	second := doGet(h, "/api/v1/users/1/recommendations")
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want %d", second.Code, http.StatusTooManyRequests)
	}
	env := decodeEnvelope[interface{}](t, second)
	if env.Error == nil || env.Error.Code != ErrCodeTooManyRequests {
		t.Errorf("error = %+v, want code %s", env.Error, ErrCodeTooManyRequests)
	}

	if got := testutil.ToFloat64(metrics.APIRateLimitHits.WithLabelValues("api")) - before; got != 1 {
		t.Errorf("rate limit hits delta = %v, want 1", got)
	}

	// Probes have their own, larger budget.
	if rec := doGet(h, "/api/v1/health/live"); rec.Code != http.StatusOK {
		t.Errorf("health after API throttling status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 1
	cfg.RateLimitDisabled = true

	h := newTestRouter(&mockRecommender{resp: &recommend.Response{}}, mockPinger{}, cfg)

	for i := 0; i < 5; i++ {
		if rec := doGet(h, "/api/v1/users/1/recommendations"); rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want %d", i, rec.Code, http.StatusOK)
		}
	}
}

func TestCORS_Preflight(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = []string{"https://app.example.com"}
	cfg.RateLimitDisabled = true

	h := newTestRouter(&mockRecommender{}, mockPinger{}, cfg)

	tests := []struct {
		origin    string
		wantAllow string
	}{
		{"https://app.example.com", "https://app.example.com"},
		{"https://evil.example.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/api/v1/users/1/recommendations", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodGet)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantAllow {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantAllow)
			}
		})
	}
}
