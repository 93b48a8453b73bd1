// CineRank - Movie Rating API and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package recommend

// Cell is one user/movie entry of the matrix.
// Rated is false for the explicit unrated marker; Score is meaningless then.
type Cell struct {
	Score int
	Rated bool
}

// userRow keeps the cells of one user along with their iteration order:
// rated movies in first-rated order, then unrated movies in column order.
type userRow struct {
	order []int
	cells map[int]Cell
}

// Matrix is a user x movie rating table built from a ratings snapshot.
// Columns are the movies referenced by at least one rating, in first-seen order.
// A Matrix is read-only once built and is not shared between requests.
type Matrix struct {
	users  []int
	movies []int
	rows   map[int]*userRow
}

// BuildMatrix converts ratings into a matrix. A later rating for the same
// (user, movie) pair overwrites the score but keeps the original position.
// Every user row is filled with unrated cells for the columns it lacks.
func BuildMatrix(ratings []Rating) *Matrix {
	m := &Matrix{rows: make(map[int]*userRow)}
	seenMovie := make(map[int]struct{})

	for _, r := range ratings {
		row, ok := m.rows[r.UserID]
		if !ok {
			row = &userRow{cells: make(map[int]Cell)}
			m.rows[r.UserID] = row
			m.users = append(m.users, r.UserID)
		}
		if _, exists := row.cells[r.MovieID]; !exists {
			row.order = append(row.order, r.MovieID)
		}
		row.cells[r.MovieID] = Cell{Score: r.Score, Rated: true}

		if _, ok := seenMovie[r.MovieID]; !ok {
			seenMovie[r.MovieID] = struct{}{}
			m.movies = append(m.movies, r.MovieID)
		}
	}

	for _, user := range m.users {
		row := m.rows[user]
		for _, movie := range m.movies {
			if _, ok := row.cells[movie]; !ok {
				row.cells[movie] = Cell{}
				row.order = append(row.order, movie)
			}
		}
	}

	return m
}

// Users returns user IDs in first-seen order.
func (m *Matrix) Users() []int {
	return append([]int(nil), m.users...)
}

// Movies returns the column movie IDs in first-seen order.
func (m *Matrix) Movies() []int {
	return append([]int(nil), m.movies...)
}

// Len returns the number of users.
func (m *Matrix) Len() int {
	return len(m.users)
}

// HasUser reports whether the user has at least one rating.
func (m *Matrix) HasUser(user int) bool {
	_, ok := m.rows[user]
	return ok
}

// Cell returns the entry for (user, movie). The second result is false when
// the user is unknown or the movie is not a column.
func (m *Matrix) Cell(user, movie int) (Cell, bool) {
	row, ok := m.rows[user]
	if !ok {
		return Cell{}, false
	}
	c, ok := row.cells[movie]
	return c, ok
}

// Row returns the movie IDs of a user's row in iteration order.
func (m *Matrix) Row(user int) []int {
	row, ok := m.rows[user]
	if !ok {
		return nil
	}
	return append([]int(nil), row.order...)
}

// RatedMovies returns the movies the user rated, in first-rated order.
func (m *Matrix) RatedMovies(user int) []int {
	row, ok := m.rows[user]
	if !ok {
		return nil
	}
	var out []int
	for _, movie := range row.order {
		if row.cells[movie].Rated {
			out = append(out, movie)
		}
	}
	return out
}

// UnratedMovies returns the columns the user has not rated, in column order.
func (m *Matrix) UnratedMovies(user int) []int {
	row, ok := m.rows[user]
	if !ok {
		return nil
	}
	var out []int
	for _, movie := range m.movies {
		if !row.cells[movie].Rated {
			out = append(out, movie)
		}
	}
	return out
}

// positiveScore returns the score of a rated cell with a positive score.
func (m *Matrix) positiveScore(user, movie int) (int, bool) {
	c, ok := m.Cell(user, movie)
	if !ok || !c.Rated || c.Score <= 0 {
		return 0, false
	}
	return c.Score, true
}

// Equal reports whether two matrices hold the same users, columns, cells and order.
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if !equalInts(m.users, other.users) || !equalInts(m.movies, other.movies) {
		return false
	}
	for _, user := range m.users {
		a, b := m.rows[user], other.rows[user]
		if b == nil || !equalInts(a.order, b.order) || len(a.cells) != len(b.cells) {
			return false
		}
		for movie, cell := range a.cells {
			if b.cells[movie] != cell {
				return false
			}
		}
	}
	return true
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
