// CineRank - Movie Rating API and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tomtom215/cinerank/internal/metrics"
	"github.com/tomtom215/cinerank/internal/recommend"
)

var _ recommend.DataProvider = (*DB)(nil)

// GetRatings returns every rating in insertion order.
func (db *DB) GetRatings(ctx context.Context) (ratings []recommend.Rating, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("select", "ratings", time.Since(start), err) }()

	rows, err := db.conn.QueryContext(ctx, `
		SELECT user_id, movie_id, rating, date
		FROM ratings
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query ratings: %w", err)
	}
	defer closeWithLog(rows, "ratings rows")

	for rows.Next() {
		var r recommend.Rating
		if err := rows.Scan(&r.UserID, &r.MovieID, &r.Score, &r.Date); err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		ratings = append(ratings, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ratings: %w", err)
	}

	return ratings, nil
}

// GetMovies returns the catalog with each movie's genre name resolved.
// Missing runtime, release date or genre come back as zero values.
func (db *DB) GetMovies(ctx context.Context) (movies []recommend.Movie, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("select", "movies", time.Since(start), err) }()

	rows, err := db.conn.QueryContext(ctx, `
		SELECT m.id, m.title, m.runtime, m.release_date, g.name
		FROM movies m
		LEFT JOIN genres g ON g.id = m.genre_id
		ORDER BY m.id`)
	if err != nil {
		return nil, fmt.Errorf("query movies: %w", err)
	}
	defer closeWithLog(rows, "movies rows")

	for rows.Next() {
		var (
			m           recommend.Movie
			runtime     sql.NullInt64
			releaseDate sql.NullTime
			genre       sql.NullString
		)
		if err := rows.Scan(&m.ID, &m.Title, &runtime, &releaseDate, &genre); err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		m.Runtime = int(runtime.Int64)
		m.ReleaseDate = releaseDate.Time
		m.Genre = genre.String
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movies: %w", err)
	}

	return movies, nil
}

// countRatings returns the number of stored ratings.
func (db *DB) countRatings(ctx context.Context) (n int, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("count", "ratings", time.Since(start), err) }()

	if err = db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM ratings`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count ratings: %w", err)
	}
	return n, nil
}
