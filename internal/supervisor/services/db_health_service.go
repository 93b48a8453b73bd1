// CineRank - Movie Rating API and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package services

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinerank/internal/metrics"
)

// defaultHealthInterval applies when the configured interval is not positive.
const defaultHealthInterval = 30 * time.Second

const (
	stateUnknown int32 = iota
	stateUp
	stateDown
)

// Pinger is satisfied by *database.DB.
type Pinger interface {
	Ping(ctx context.Context) error
}

// DatabaseHealthService pings the database on an interval, publishes the
// result as a gauge and logs transitions between reachable and unreachable.
type DatabaseHealthService struct {
	db       Pinger
	interval time.Duration
	timeout  time.Duration
	logger   zerolog.Logger
	name     string

	state atomic.Int32
}

// NewDatabaseHealthService creates the monitor. Each ping is bounded by half
// the interval.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewDatabaseHealthService(db Pinger, interval time.Duration, logger zerolog.Logger) *DatabaseHealthService {
	if interval <= 0 {
		interval = defaultHealthInterval
	}
	return &DatabaseHealthService{
		db:       db,
		interval: interval,
		timeout:  interval / 2,
		logger:   logger.With().Str("service", "db-health").Logger(),
		name:     "db-health",
	}
}

// Serve implements suture.Service. It checks once immediately, then on every tick.
func (s *DatabaseHealthService) Serve(ctx context.Context) error {
	s.logger.Debug().Dur("interval", s.interval).Msg("database health monitor starting")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.check(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.check(ctx)
		}
	}
}

// check runs one ping and reports state changes.
func (s *DatabaseHealthService) check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, s.timeout)
	err := s.db.Ping(pingCtx)
	cancel()

	if ctx.Err() != nil {
		return
	}

	up := err == nil
	metrics.RecordDBHealth(up)

	next := stateDown
	if up {
		next = stateUp
	}
	if s.state.Swap(next) == next {
		return
	}
	if up {
		s.logger.Info().Msg("database reachable")
	} else {
		s.logger.Error().Err(err).Msg("database unreachable")
	}
}

// healthy reports the last observed state and whether any check has run.
func (s *DatabaseHealthService) healthy() (healthy, checked bool) {
	switch s.state.Load() {
	case stateUp:
		return true, true
	case stateDown:
		return false, true
	default:
		return false, false
	}
}

// String implements fmt.Stringer. Suture uses it in log messages.
func (s *DatabaseHealthService) String() string {
	return s.name
}
