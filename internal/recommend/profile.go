// CineRank - Movie Rating API and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package recommend

const (
	// DefaultPreferredRuntime is the runtime preference of a user with no liked movies.
	DefaultPreferredRuntime = 100.0

	// DefaultPreferredReleaseYear is the era preference of a user with no liked movies.
	DefaultPreferredReleaseYear = 2010.0

	// likedThreshold is exclusive: a 3 is neutral.
	likedThreshold = 3
)

// Profile is a user's implicit taste derived from the movies they liked.
type Profile struct {
	PreferredRuntime     float64
	PreferredReleaseYear float64
	FavoriteGenre        string
	HasFavoriteGenre     bool
}

// DefaultProfile is the fallback profile for users with no liked movies.
func DefaultProfile() Profile {
	return Profile{
		PreferredRuntime:     DefaultPreferredRuntime,
		PreferredReleaseYear: DefaultPreferredReleaseYear,
	}
}

// LikedMovies returns the movies the user rated above 3, in row order.
func LikedMovies(m *Matrix, user int) []int {
	var liked []int
	for _, movie := range m.RatedMovies(user) {
		if c, _ := m.Cell(user, movie); c.Score > likedThreshold {
			liked = append(liked, movie)
		}
	}
	return liked
}

// BuildProfile derives a user's profile: mean runtime and mean release year
// of liked movies, plus the most common liked genre (first seen wins ties).
// Liked movies missing from the catalog are ignored.
func BuildProfile(m *Matrix, catalog Catalog, user int) Profile {
	var (
		runtimeSum, yearSum float64
		n                   int
		genres              []string
		counts              = make(map[string]int)
	)

	for _, id := range LikedMovies(m, user) {
		movie, ok := catalog[id]
		if !ok {
			continue
		}
		runtimeSum += float64(movie.Runtime)
		yearSum += float64(movie.ReleaseYear())
		n++

		if _, seen := counts[movie.Genre]; !seen {
			genres = append(genres, movie.Genre)
		}
		counts[movie.Genre]++
	}

	if n == 0 {
		return DefaultProfile()
	}

	favorite, best := "", 0
	for _, g := range genres {
		if counts[g] > best {
			favorite, best = g, counts[g]
		}
	}

	return Profile{
		PreferredRuntime:     runtimeSum / float64(n),
		PreferredReleaseYear: yearSum / float64(n),
		FavoriteGenre:        favorite,
		HasFavoriteGenre:     true,
	}
}
