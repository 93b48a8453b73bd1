// CineRank - Movie Rating API and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
exposed at /metrics by the API router:

	curl http://localhost:8080/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Requests in flight (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)

Recommendation Metrics:
  - recommend_requests_total: Requests by outcome (counter)
  - recommend_duration_seconds: Matrix build plus ranking time (histogram)
  - recommend_candidates: Unrated movies considered per request (histogram)
  - recommend_predictions_total: Predictions by result, predicted or absent (counter)
  - recommend_snapshot_load_duration_seconds: Snapshot load latency (histogram)

Database Metrics:
  - duckdb_query_duration_seconds, duckdb_query_errors_total

Circuit Breaker Metrics:
  - circuit_breaker_state, circuit_breaker_requests_total,
    circuit_breaker_state_transitions_total
*/
package metrics
