// CineRank - Movie Rating API and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/cinerank/internal/metrics"
)

// breakerName labels the snapshot circuit breaker in logs and metrics.
const breakerName = "recommend-snapshot"

// DataProvider supplies a fresh ratings/movies snapshot for each request.
// The engine never writes through it.
type DataProvider interface {
	// GetRatings returns all ratings in insertion order.
	GetRatings(ctx context.Context) ([]Rating, error)

	// GetMovies returns the movie catalog.
	GetMovies(ctx context.Context) ([]Movie, error)
}

type snapshot struct {
	ratings []Rating
	movies  []Movie
}

// Engine serves recommendations from a DataProvider. Every call loads its own
// snapshot and builds its own matrix, so concurrent calls share nothing but
// the provider and the circuit breaker. It is safe for concurrent use.
type Engine struct {
	config   Config
	provider DataProvider
	logger   zerolog.Logger
	breaker  *gobreaker.CircuitBreaker[*snapshot]
}

// NewEngine creates an engine. The logger is used as-is; pass a component
// logger from the logging package.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewEngine(provider DataProvider, cfg Config, logger zerolog.Logger) (*Engine, error) {
	if provider == nil {
		return nil, errors.New("recommend: data provider is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("recommend: invalid config: %w", err)
	}

	e := &Engine{
		config:   cfg,
		provider: provider,
		logger:   logger,
	}

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)
	e.breaker = gobreaker.NewCircuitBreaker[*snapshot](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerFailureThreshold
		},
		// A caller giving up is not a data source failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			e.logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("[CIRCUIT BREAKER] State transition")
			metrics.RecordCircuitBreakerTransition(name, from.String(), to.String())
		},
	})

	return e, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.config
}

// BreakerState returns the snapshot circuit breaker state: closed, half-open or open.
func (e *Engine) BreakerState() string {
	return e.breaker.State().String()
}

// Normalize applies defaults to zero K/TopN and checks limits.
func (e *Engine) Normalize(req Request) (Request, error) {
	if req.K == 0 {
		req.K = e.config.DefaultNeighbors
	}
	if req.TopN == 0 {
		req.TopN = e.config.DefaultTopN
	}
	if req.K < 0 || req.K > e.config.MaxNeighbors {
		return req, fmt.Errorf("%w: k must be between 1 and %d, got %d", ErrInvalidRequest, e.config.MaxNeighbors, req.K)
	}
	if req.TopN < 0 || req.TopN > e.config.MaxTopN {
		return req, fmt.Errorf("%w: top_n must be between 1 and %d, got %d", ErrInvalidRequest, e.config.MaxTopN, req.TopN)
	}
	return req, nil
}

// RecommendForUser loads a fresh snapshot and ranks the user's unrated movies.
// It returns ErrUserNotFound when the user has no ratings, ErrDataUnavailable
// when the snapshot cannot be loaded and ErrInvalidRequest for out-of-range
// parameters. An empty result is not an error.
func (e *Engine) RecommendForUser(ctx context.Context, req Request) (*Response, error) {
	req, err := e.Normalize(req)
	if err != nil {
		metrics.RecordRecommendation("invalid", 0)
		return nil, err
	}

	snap, err := e.loadSnapshot(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			metrics.RecordRecommendation("error", 0)
			return nil, fmt.Errorf("recommend: %w", ctxErr)
		}
		metrics.RecordRecommendation("unavailable", 0)
		e.logger.Error().Err(err).Int("user_id", req.UserID).Msg("Failed to load recommendation snapshot")
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}

	start := time.Now()
	rec := NewRecommenderFromSnapshot(snap.ratings, snap.movies)
	scored, stats, err := rec.rank(req.UserID, req.K, req.TopN)
	elapsed := time.Since(start)

	if err != nil {
		metrics.RecordRecommendation("user_not_found", elapsed)
		e.logger.Debug().Int("user_id", req.UserID).Msg("Recommendation requested for unknown user")
		return nil, err
	}

	metrics.RecordRecommendationWork(stats.Candidates, stats.Predicted)
	outcome := "success"
	if len(scored) == 0 {
		outcome = "empty"
	}
	metrics.RecordRecommendation(outcome, elapsed)

	titles := make([]string, len(scored))
	for i, s := range scored {
		titles[i] = s.Title
	}

	e.logger.Debug().
		Int("user_id", req.UserID).
		Int("k", req.K).
		Int("top_n", req.TopN).
		Int("users", rec.Matrix().Len()).
		Int("candidates", stats.Candidates).
		Int("predicted", stats.Predicted).
		Int("returned", len(scored)).
		Dur("elapsed", elapsed).
		Msg("Recommendations computed")

	return &Response{
		UserID:      req.UserID,
		Titles:      titles,
		Items:       scored,
		K:           req.K,
		TopN:        req.TopN,
		Candidates:  stats.Candidates,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// loadSnapshot fetches ratings and movies through the circuit breaker.
func (e *Engine) loadSnapshot(ctx context.Context) (*snapshot, error) {
	start := time.Now()
	snap, err := e.breaker.Execute(func() (*snapshot, error) {
		ratings, err := e.provider.GetRatings(ctx)
		if err != nil {
			return nil, fmt.Errorf("get ratings: %w", err)
		}
		movies, err := e.provider.GetMovies(ctx)
		if err != nil {
			return nil, fmt.Errorf("get movies: %w", err)
		}
		return &snapshot{ratings: ratings, movies: movies}, nil
	})
	metrics.RecordSnapshotLoad(time.Since(start))

	switch {
	case err == nil:
		metrics.RecordCircuitBreakerRequest(breakerName, "success")
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.RecordCircuitBreakerRequest(breakerName, "rejected")
	default:
		metrics.RecordCircuitBreakerRequest(breakerName, "failure")
	}
	return snap, err
}
