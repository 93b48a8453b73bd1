// CineRank - Movie Rating API and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package recommend

import (
	"errors"
	"fmt"
	"time"
)

// ReleaseDateLayout is the ISO date layout used for movie release dates.
const ReleaseDateLayout = "2006-01-02"

var (
	// ErrUserNotFound is returned when the user has no ratings in the snapshot.
	ErrUserNotFound = errors.New("user not found")

	// ErrDataUnavailable is returned when the ratings/movies snapshot cannot be loaded.
	ErrDataUnavailable = errors.New("recommendation data unavailable")

	// ErrInvalidRequest is returned when request parameters are out of range.
	ErrInvalidRequest = errors.New("invalid recommendation request")
)

// Rating is a single user rating of a movie.
type Rating struct {
	UserID  int `json:"user_id"`
	MovieID int `json:"movie_id"`

	// Score is the rating on a 1-5 scale.
	Score int `json:"rating"`

	// Date is when the rating was given. Not used by the ranking itself.
	Date time.Time `json:"date,omitempty"`
}

// Movie holds the catalog attributes the predictor weighs.
type Movie struct {
	ID          int       `json:"movie_id"`
	Title       string    `json:"title"`
	Runtime     int       `json:"runtime"`
	ReleaseDate time.Time `json:"release_date"`
	Genre       string    `json:"genre"`
}

// ReleaseYear returns the calendar year of the release date.
func (m Movie) ReleaseYear() int {
	return m.ReleaseDate.Year()
}

// ParseReleaseDate parses a "YYYY-MM-DD" release date.
func ParseReleaseDate(s string) (time.Time, error) {
	t, err := time.Parse(ReleaseDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse release date %q: %w", s, err)
	}
	return t, nil
}

// Catalog indexes movies by ID.
type Catalog map[int]Movie

// NewCatalog builds a catalog from a movie list. Later duplicates win.
func NewCatalog(movies []Movie) Catalog {
	c := make(Catalog, len(movies))
	for _, m := range movies {
		c[m.ID] = m
	}
	return c
}

// ScoredMovie is a recommended movie with its predicted score.
type ScoredMovie struct {
	MovieID int     `json:"movie_id"`
	Title   string  `json:"title"`
	Score   float64 `json:"score"`
}

// Request describes a recommendation request.
type Request struct {
	// UserID is the user to recommend for.
	UserID int `json:"user_id"`

	// K is the number of neighbors used per prediction.
	// Defaults to Config.DefaultNeighbors if zero.
	K int `json:"k,omitempty"`

	// TopN is the maximum number of titles returned.
	// Defaults to Config.DefaultTopN if zero.
	TopN int `json:"top_n,omitempty"`
}

// Response is the result of a recommendation request.
type Response struct {
	UserID int `json:"user_id"`

	// Titles lists recommended titles, best first.
	Titles []string `json:"titles"`

	// Items carries the same ranking with movie IDs and predicted scores.
	Items []ScoredMovie `json:"items"`

	K    int `json:"k"`
	TopN int `json:"top_n"`

	// Candidates is the number of unrated movies that were considered.
	Candidates int `json:"candidates"`

	GeneratedAt time.Time `json:"generated_at"`
}

// Stats summarizes the work done by one ranking pass.
type Stats struct {
	Candidates int
	Predicted  int
}
