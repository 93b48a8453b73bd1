// CineRank - Movie Rating API and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/cinerank/internal/logging"
	"github.com/tomtom215/cinerank/internal/validation"
)

type seedUser struct {
	ID        int    `json:"id" validate:"required,gt=0"`
	Username  string `json:"username" validate:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type seedMovie struct {
	ID          int    `json:"id" validate:"required,gt=0"`
	Title       string `json:"title" validate:"required"`
	Runtime     int    `json:"runtime" validate:"gt=0"`
	ReleaseDate string `json:"release_date" validate:"required,isodate"`
	Genre       string `json:"genre" validate:"required"`
}

type seedRating struct {
	UserID  int `json:"user_id" validate:"required,gt=0"`
	MovieID int `json:"movie_id" validate:"required,gt=0"`
	Score   int `json:"rating" validate:"rating"`
}

// seedRatingsStart dates the first sample rating; each later one is a day after.
var seedRatingsStart = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

var sampleUsers = []seedUser{
	{1, "user001", "John", "Doe"},
	{2, "user002", "Alice", "Smith"},
	{3, "user003", "Bob", "Johnson"},
	{4, "user004", "Sarah", "Williams"},
	{5, "user005", "Michael", "Brown"},
	{6, "user006", "Emily", "Jones"},
	{7, "user007", "Chris", "Miller"},
	{8, "user008", "Jessica", "Davis"},
	{9, "user009", "John", "Smith"},
}

var sampleMovies = []seedMovie{
	{10, "Action Adventure", 120, "2001-07-20", "Action"},
	{20, "Romantic Comedy", 95, "2019-05-10", "Romance"},
	{30, "Sci-Fi Epic", 130, "2005-11-22", "Sci-Fi"},
	{40, "Crime Thriller", 100, "2011-03-15", "Crime"},
	{50, "Fantasy Drama", 110, "2016-08-01", "Fantasy"},
	{60, "Historical Drama", 140, "2020-02-25", "Drama"},
	{70, "Superhero Action", 125, "2015-11-15", "Action"},
	{80, "Action Thriller", 105, "2018-06-12", "Action"},
	{90, "Romantic Drama", 98, "2021-01-30", "Romance"},
	{100, "Sci-Fi Adventure", 142, "2017-08-22", "Sci-Fi"},
	{110, "Mystery Thriller", 105, "2019-09-10", "Crime"},
	{120, "Fantasy Quest", 98, "2016-12-05", "Fantasy"},
	{130, "Historical Epic", 130, "2023-05-19", "Drama"},
}

// Insertion order matters: it fixes the engine's user and column order.
var sampleRatings = []seedRating{
	{1, 10, 5}, {1, 20, 3}, {2, 10, 4}, {2, 30, 5},
	{3, 10, 2}, {3, 20, 3}, {3, 30, 4}, {4, 20, 5},
	{4, 40, 4}, {5, 10, 4}, {5, 30, 3}, {6, 20, 2},
	{6, 40, 5}, {7, 50, 3}, {7, 60, 4}, {8, 10, 5},
	{8, 50, 4}, {9, 30, 2}, {9, 60, 3}, {1, 70, 4},
	{1, 80, 3}, {2, 70, 5}, {2, 80, 4}, {3, 70, 3},
	{4, 80, 5}, {5, 70, 4}, {6, 70, 2}, {7, 80, 4},
	{8, 80, 3},
}

// SeedSampleData loads the built-in sample users, genres, movies and ratings.
// It does nothing if the database already holds users, movies or ratings.
func (db *DB) SeedSampleData(ctx context.Context) error {
	empty, err := db.isEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		logging.Info().Msg("Database already has data, skipping sample seed")
		return nil
	}

	if err := validateSeed(); err != nil {
		return err
	}

	logging.Info().
		Int("users", len(sampleUsers)).
		Int("movies", len(sampleMovies)).
		Int("ratings", len(sampleRatings)).
		Msg("Seeding database with sample data...")

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, u := range sampleUsers {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO users (id, username, first_name, last_name) VALUES (?, ?, ?, ?)`,
			u.ID, u.Username, u.FirstName, u.LastName); err != nil {
			return fmt.Errorf("insert user %d: %w", u.ID, err)
		}
	}

	genreIDs := make(map[string]int)
	for _, m := range sampleMovies {
		if _, ok := genreIDs[m.Genre]; ok {
			continue
		}
		id := len(genreIDs) + 1
		if _, err := tx.ExecContext(ctx, `INSERT INTO genres (id, name) VALUES (?, ?)`, id, m.Genre); err != nil {
			return fmt.Errorf("insert genre %q: %w", m.Genre, err)
		}
		genreIDs[m.Genre] = id
	}

	for _, m := range sampleMovies {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO movies (id, title, release_date, runtime, genre_id) VALUES (?, ?, CAST(? AS DATE), ?, ?)`,
			m.ID, m.Title, m.ReleaseDate, m.Runtime, genreIDs[m.Genre]); err != nil {
			return fmt.Errorf("insert movie %d: %w", m.ID, err)
		}
	}

	for i, r := range sampleRatings {
		date := seedRatingsStart.AddDate(0, 0, i)
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO ratings (movie_id, user_id, rating, date) VALUES (?, ?, ?, ?)`,
			r.MovieID, r.UserID, r.Score, date); err != nil {
			return fmt.Errorf("insert rating %d/%d: %w", r.UserID, r.MovieID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}

	logging.Info().Msg("Sample data seeded")
	return nil
}

func (db *DB) isEmpty(ctx context.Context) (bool, error) {
	var n int
	err := db.conn.QueryRowContext(ctx, `
		SELECT (SELECT COUNT(*) FROM users)
		     + (SELECT COUNT(*) FROM movies)
		     + (SELECT COUNT(*) FROM ratings)`).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check existing data: %w", err)
	}
	return n == 0, nil
}

func validateSeed() error {
	for _, u := range sampleUsers {
		if verr := validation.ValidateStruct(u); verr != nil {
			return fmt.Errorf("sample user %d: %w", u.ID, verr)
		}
	}
	for _, m := range sampleMovies {
		if verr := validation.ValidateStruct(m); verr != nil {
			return fmt.Errorf("sample movie %d: %w", m.ID, verr)
		}
	}
	for _, r := range sampleRatings {
		if verr := validation.ValidateStruct(r); verr != nil {
			return fmt.Errorf("sample rating %d/%d: %w", r.UserID, r.MovieID, verr)
		}
	}
	return nil
}
