// CineRank - Movie Rating API and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

// Package services provides suture.Service wrappers for CineRank components.
//
// Each wrapper translates a component's lifecycle into suture's
// Serve(ctx) error contract: block until ctx is canceled, return an error
// to request a restart.
//
//   - HTTPServerService runs an *http.Server and shuts it down gracefully.
//   - DatabaseHealthService pings the rating store on an interval and
//     publishes the result as the duckdb_up gauge.
package services
