// CineRank - Movie Rating API and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

/*
Package main is the entry point for the CineRank server.

CineRank serves movie recommendations computed by user-based collaborative
filtering over the ratings stored in DuckDB.

# Application Architecture

	RootSupervisor ("cinerank")
	├── DataSupervisor ("data-layer")
	│   └── DatabaseHealthService (duckdb_up gauge)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService (Chi router)

Component initialization order:

 1. Configuration: Koanf v2 (defaults, YAML file, environment)
 2. Logging: zerolog, configured from the logging section
 3. Database: DuckDB schema, optional sample seed
 4. Recommendation engine: reads a fresh snapshot per request
 5. HTTP server and supervisor tree

# Configuration

Common environment variables:

  - DUCKDB_PATH: database file (default /data/cinerank.duckdb)
  - SEED_SAMPLE_DATA: load the built-in sample dataset into an empty database
  - HTTP_PORT / HTTP_HOST: listen address (default 0.0.0.0:8080)
  - RECOMMEND_DEFAULT_K / RECOMMEND_DEFAULT_TOP_N: request defaults (2 and 3)
  - LOG_LEVEL / LOG_FORMAT: zerolog level and json|console output

# Example Usage

	export DUCKDB_PATH=./data/cinerank.duckdb
	export SEED_SAMPLE_DATA=true
	export LOG_FORMAT=console
	./cinerank

	curl http://localhost:8080/api/v1/users/2/recommendations
	curl 'http://localhost:8080/api/v1/users/1/recommendations?k=3&top_n=5'

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server drains
in-flight requests for SHUTDOWN_TIMEOUT before the database is closed.
*/
package main
