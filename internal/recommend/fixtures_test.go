// CineRank - Movie Rating API and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package recommend

import (
	"math"
	"testing"
	"time"
)

const floatTolerance = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= floatTolerance
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseReleaseDate(s)
	if err != nil {
		t.Fatalf("ParseReleaseDate(%q) error = %v", s, err)
	}
	return d
}

func ratings(triples ...[3]int) []Rating {
	out := make([]Rating, len(triples))
	for i, tr := range triples {
		out[i] = Rating{UserID: tr[0], MovieID: tr[1], Score: tr[2]}
	}
	return out
}

// sampleRatings is the nine-user worked example shipped with the sample seed.
func sampleRatings() []Rating {
	return ratings(
		[3]int{1, 10, 5}, [3]int{1, 20, 3}, [3]int{2, 10, 4}, [3]int{2, 30, 5},
		[3]int{3, 10, 2}, [3]int{3, 20, 3}, [3]int{3, 30, 4}, [3]int{4, 20, 5},
		[3]int{4, 40, 4}, [3]int{5, 10, 4}, [3]int{5, 30, 3}, [3]int{6, 20, 2},
		[3]int{6, 40, 5}, [3]int{7, 50, 3}, [3]int{7, 60, 4}, [3]int{8, 10, 5},
		[3]int{8, 50, 4}, [3]int{9, 30, 2}, [3]int{9, 60, 3}, [3]int{1, 70, 4},
		[3]int{1, 80, 3}, [3]int{2, 70, 5}, [3]int{2, 80, 4}, [3]int{3, 70, 3},
		[3]int{4, 80, 5}, [3]int{5, 70, 4}, [3]int{6, 70, 2}, [3]int{7, 80, 4},
		[3]int{8, 80, 3},
	)
}

func sampleMovies(t *testing.T) []Movie {
	t.Helper()
	return []Movie{
		{ID: 10, Title: "Action Adventure", Runtime: 120, ReleaseDate: date(t, "2001-07-20"), Genre: "Action"},
		{ID: 20, Title: "Romantic Comedy", Runtime: 95, ReleaseDate: date(t, "2019-05-10"), Genre: "Romance"},
		{ID: 30, Title: "Sci-Fi Epic", Runtime: 130, ReleaseDate: date(t, "2005-11-22"), Genre: "Sci-Fi"},
		{ID: 40, Title: "Crime Thriller", Runtime: 100, ReleaseDate: date(t, "2011-03-15"), Genre: "Crime"},
		{ID: 50, Title: "Fantasy Drama", Runtime: 110, ReleaseDate: date(t, "2016-08-01"), Genre: "Fantasy"},
		{ID: 60, Title: "Historical Drama", Runtime: 140, ReleaseDate: date(t, "2020-02-25"), Genre: "Drama"},
		{ID: 70, Title: "Superhero Action", Runtime: 125, ReleaseDate: date(t, "2015-11-15"), Genre: "Action"},
		{ID: 80, Title: "Action Thriller", Runtime: 105, ReleaseDate: date(t, "2018-06-12"), Genre: "Action"},
		{ID: 90, Title: "Romantic Drama", Runtime: 98, ReleaseDate: date(t, "2021-01-30"), Genre: "Romance"},
		{ID: 100, Title: "Sci-Fi Adventure", Runtime: 142, ReleaseDate: date(t, "2017-08-22"), Genre: "Sci-Fi"},
		{ID: 110, Title: "Mystery Thriller", Runtime: 105, ReleaseDate: date(t, "2019-09-10"), Genre: "Crime"},
		{ID: 120, Title: "Fantasy Quest", Runtime: 98, ReleaseDate: date(t, "2016-12-05"), Genre: "Fantasy"},
		{ID: 130, Title: "Historical Epic", Runtime: 130, ReleaseDate: date(t, "2023-05-19"), Genre: "Drama"},
	}
}
