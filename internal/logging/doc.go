// CineRank - Movie Rating API and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

// Package logging provides centralized zerolog-based structured logging for CineRank.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Msg("Server starting")
//	logging.Error().Err(err).Msg("Operation failed")
//
//	// With context (request and correlation IDs)
//	logging.Ctx(ctx).Info().Int("user_id", id).Msg("Recommendation served")
//
// # Configuration
//
// Environment Variables (read through the config package):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false (default: false)
//
// # Field Names
//
// Entries use time, level, message, error and caller. Request-scoped entries
// add request_id and correlation_id; component loggers add component.
// Domain fields are snake_case: user_id, movie_id, k, top_n.
//
//	logging.Info().Int("user_id", u).Int("count", n).Msg("recommended")
//
// # slog Bridge
//
// NewSlogLogger exposes the global logger as a *slog.Logger for libraries
// that only accept slog, such as the suture event hook.
package logging
