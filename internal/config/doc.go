// CineRank - Movie Rating API and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

/*
Package config loads CineRank configuration with koanf v2.

Configuration is layered, later layers winning:

 1. Built-in defaults (defaultConfig)
 2. A YAML file: $CONFIG_PATH, else config.yaml, config.yml,
    /etc/cinerank/config.yaml, /etc/cinerank/config.yml
 3. Environment variables

Example config.yaml:

	database:
	  path: /data/cinerank.duckdb
	  seed_sample_data: true
	server:
	  port: 8080
	recommend:
	  default_neighbors: 2
	  default_top_n: 3

Environment Variables:
  - DUCKDB_PATH, DUCKDB_MAX_MEMORY, DUCKDB_THREADS, SEED_SAMPLE_DATA
  - HTTP_HOST, HTTP_PORT, HTTP_TIMEOUT, SHUTDOWN_TIMEOUT
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT, CORS_ORIGINS (comma-separated)
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER
  - RECOMMEND_DEFAULT_K, RECOMMEND_DEFAULT_TOP_N, RECOMMEND_MAX_K, RECOMMEND_MAX_TOP_N,
    RECOMMEND_REQUEST_TIMEOUT, RECOMMEND_BREAKER_THRESHOLD, RECOMMEND_BREAKER_TIMEOUT
*/
package config
