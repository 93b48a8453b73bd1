// CineRank - Movie Rating API and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package database

import (
	"context"
	"fmt"
	"time"
)

// schemaTimeout bounds each DDL statement during startup.
const schemaTimeout = 60 * time.Second

func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), schemaTimeout)
}

func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range tableCreationQueries() {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}
	return nil
}

// tableCreationQueries returns the DDL in dependency order.
// Rating ids come from a sequence so that id order is insertion order.
func tableCreationQueries() []string {
	return []string{
		`CREATE SEQUENCE IF NOT EXISTS users_id_seq START 1`,
		`CREATE SEQUENCE IF NOT EXISTS genres_id_seq START 1`,
		`CREATE SEQUENCE IF NOT EXISTS movies_id_seq START 1`,
		`CREATE SEQUENCE IF NOT EXISTS ratings_id_seq START 1`,

		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY DEFAULT nextval('users_id_seq'),
			username TEXT UNIQUE NOT NULL,
			first_name TEXT,
			last_name TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS genres (
			id INTEGER PRIMARY KEY DEFAULT nextval('genres_id_seq'),
			name TEXT UNIQUE NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS movies (
			id INTEGER PRIMARY KEY DEFAULT nextval('movies_id_seq'),
			title TEXT NOT NULL,
			release_date DATE,
			runtime INTEGER,
			imdb_id INTEGER UNIQUE,
			genre_id INTEGER REFERENCES genres(id)
		)`,

		`CREATE TABLE IF NOT EXISTS ratings (
			id INTEGER PRIMARY KEY DEFAULT nextval('ratings_id_seq'),
			movie_id INTEGER NOT NULL REFERENCES movies(id),
			user_id INTEGER NOT NULL REFERENCES users(id),
			rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
			date DATE NOT NULL
		)`,
	}
}

func (db *DB) createIndexes() error {
	ctx, cancel := schemaContext()
	defer cancel()

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_ratings_user ON ratings(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_ratings_movie ON ratings(movie_id)`,
		`CREATE INDEX IF NOT EXISTS idx_movies_genre ON movies(genre_id)`,
	}
	for _, query := range indexes {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to create index: %s: %w", query, err)
		}
	}
	return nil
}
