// CineRank - Movie Rating API and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package main

import (
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinerank/internal/config"
	"github.com/tomtom215/cinerank/internal/recommend"
)

// initRecommend creates the recommendation engine over the given provider.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initRecommend(cfg *config.Config, provider recommend.DataProvider, logger zerolog.Logger) (*recommend.Engine, error) {
	engineCfg := buildEngineConfig(&cfg.Recommend)

	logger.Info().
		Int("default_k", engineCfg.DefaultNeighbors).
		Int("default_top_n", engineCfg.DefaultTopN).
		Int("max_k", engineCfg.MaxNeighbors).
		Int("max_top_n", engineCfg.MaxTopN).
		Uint32("breaker_threshold", engineCfg.BreakerFailureThreshold).
		Dur("breaker_timeout", engineCfg.BreakerTimeout).
		Msg("initializing recommendation engine")

	return recommend.NewEngine(provider, engineCfg, logger)
}

// buildEngineConfig maps the recommend config section onto the engine config.
func buildEngineConfig(rc *config.RecommendConfig) recommend.Config {
	return recommend.Config{
		DefaultNeighbors:        rc.DefaultNeighbors,
		DefaultTopN:             rc.DefaultTopN,
		MaxNeighbors:            rc.MaxNeighbors,
		MaxTopN:                 rc.MaxTopN,
		BreakerFailureThreshold: rc.BreakerFailureThreshold,
		BreakerTimeout:          rc.BreakerTimeout,
	}
}
