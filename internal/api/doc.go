// CineRank - Movie Rating API and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

/*
Package api exposes the recommendation engine over HTTP using the Chi router.

Routes:

	GET /api/v1/users/{userID}/recommendations?k=&top_n=
	GET /api/v1/health/live
	GET /api/v1/health/ready
	GET /metrics

Every JSON endpoint answers with the same envelope:

	{"success": true,  "data": {...}, "meta": {"request_id": "...", "timestamp": "..."}}
	{"success": false, "error": {"code": "USER_NOT_FOUND", "message": "..."}, "meta": {...}}

Error codes used by the recommendation endpoint:

  - VALIDATION_ERROR (400): non-numeric or out-of-range user ID, k or top_n
  - USER_NOT_FOUND (404): the user has no ratings
  - SERVICE_UNAVAILABLE (503): the rating store could not be read or the
    snapshot circuit breaker is open
  - INTERNAL_ERROR (500): anything else

Middleware stack (outermost first): request ID, real IP, panic recovery,
CORS, access log, then per-group rate limiting and Prometheus metrics.
*/
package api
