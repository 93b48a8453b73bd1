// CineRank - Movie Rating API and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

// Package database is the DuckDB store behind CineRank.
//
// It owns the relational schema (users, genres, movies, ratings) and serves
// read-only snapshots to the recommendation engine: *DB satisfies
// recommend.DataProvider through GetRatings and GetMovies.
//
// # Usage
//
//	db, err := database.New(&cfg.Database)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	if cfg.Database.SeedSampleData {
//	    if err := db.SeedSampleData(ctx); err != nil {
//	        return err
//	    }
//	}
//
//	engine, err := recommend.NewEngine(db, recCfg, logger)
//
// # Ordering
//
// Ratings are returned in insertion order (ascending rating id). The engine
// derives user order, column order and tie-breaks from that order, so it is
// part of the contract.
//
// # Testing
//
// Tests open ":memory:" databases. DuckDB shares one in-memory instance
// across all connections of a single *sql.DB.
package database
