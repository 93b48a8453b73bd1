// CineRank - Movie Rating API and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

/*
Package middleware provides HTTP middleware shared by the CineRank router.

Key Components:

  - RequestID: UUID request IDs propagated into the logging context
  - PrometheusMetrics: request count, latency and in-flight gauges
  - AccessLog: one structured zerolog line per request

All middleware use the func(http.Handler) http.Handler shape so they plug
straight into chi's r.Use:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(middleware.PrometheusMetrics)

Metrics are labeled with the chi route pattern (for example
/api/v1/users/{userID}/recommendations) rather than the raw path, so user IDs
never become label values.
*/
package middleware
