// CineRank - Movie Rating API and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/cinerank/internal/logging"
)

// readinessTimeout bounds the database ping behind /health/ready.
const readinessTimeout = 2 * time.Second

// Pinger reports whether the rating store is reachable. *database.DB satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// BreakerReporter exposes the snapshot circuit breaker state. *recommend.Engine satisfies it.
type BreakerReporter interface {
	BreakerState() string
}

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	db        Pinger
	breaker   BreakerReporter
	startTime time.Time
}

// NewHealthHandler creates a health handler. breaker may be nil.
func NewHealthHandler(db Pinger, breaker BreakerReporter) *HealthHandler {
	return &HealthHandler{
		db:        db,
		breaker:   breaker,
		startTime: time.Now(),
	}
}

// HealthLive returns 200 while the process is running, regardless of dependencies.
func (h *HealthHandler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady returns 200 only when the database answers a ping.
// The breaker state is reported but does not gate readiness.
func (h *HealthHandler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	dbConnected := h.db != nil && h.db.Ping(ctx) == nil

	data := map[string]interface{}{
		"ready":              dbConnected,
		"database_connected": dbConnected,
	}
	if h.breaker != nil {
		data["circuit_breaker"] = h.breaker.BreakerState()
	}

	if !dbConnected {
		logging.Ctx(r.Context()).Warn().Msg("Readiness check failed: database unreachable")
		rw.ErrorWithDetails(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Service not ready", data)
		return
	}

	rw.Success(data)
}
