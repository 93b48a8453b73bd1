// CineRank - Movie Rating API and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package recommend

import (
	"reflect"
	"testing"
	"time"
)

func TestBuildProfile_SampleUsers(t *testing.T) {
	m := BuildMatrix(sampleRatings())
	catalog := NewCatalog(sampleMovies(t))

	tests := []struct {
		name string
		user int
		want Profile
	}{
		{
			name: "several liked movies",
			user: 2,
			want: Profile{PreferredRuntime: 120, PreferredReleaseYear: 2009.75, FavoriteGenre: "Action", HasFavoriteGenre: true},
		},
		{
			name: "single liked movie",
			user: 3,
			want: Profile{PreferredRuntime: 130, PreferredReleaseYear: 2005, FavoriteGenre: "Sci-Fi", HasFavoriteGenre: true},
		},
		{
			name: "no liked movies",
			user: 9,
			want: DefaultProfile(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildProfile(m, catalog, tt.user)
			if got != tt.want {
				t.Errorf("BuildProfile(%d) = %+v, want %+v", tt.user, got, tt.want)
			}
		})
	}
}

func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile()
	if p.PreferredRuntime != 100 || p.PreferredReleaseYear != 2010 || p.HasFavoriteGenre || p.FavoriteGenre != "" {
		t.Errorf("DefaultProfile() = %+v, want (100, 2010, none)", p)
	}
}

func TestLikedMovies_ThresholdIsExclusive(t *testing.T) {
	m := BuildMatrix(ratings([3]int{1, 1, 3}, [3]int{1, 2, 4}, [3]int{1, 3, 5}, [3]int{1, 4, 1}))
	if got, want := LikedMovies(m, 1), []int{2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("LikedMovies = %v, want %v", got, want)
	}
}

func TestBuildProfile_GenreTieBreak(t *testing.T) {
	year := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	catalog := NewCatalog([]Movie{
		{ID: 1, Title: "a", Runtime: 90, ReleaseDate: year, Genre: "Drama"},
		{ID: 2, Title: "b", Runtime: 90, ReleaseDate: year, Genre: "Comedy"},
		{ID: 3, Title: "c", Runtime: 90, ReleaseDate: year, Genre: "Comedy"},
		{ID: 4, Title: "d", Runtime: 90, ReleaseDate: year, Genre: "Drama"},
	})

	tests := []struct {
		name  string
		input []Rating
		want  string
	}{
		{
			name:  "tie goes to first liked genre",
			input: ratings([3]int{1, 1, 5}, [3]int{1, 2, 5}, [3]int{1, 3, 4}, [3]int{1, 4, 4}),
			want:  "Drama",
		},
		{
			name:  "tie order follows rating order",
			input: ratings([3]int{1, 2, 5}, [3]int{1, 1, 5}, [3]int{1, 4, 4}, [3]int{1, 3, 4}),
			want:  "Comedy",
		},
		{
			name:  "strict majority wins",
			input: ratings([3]int{1, 1, 5}, [3]int{1, 2, 5}, [3]int{1, 3, 4}),
			want:  "Comedy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildProfile(BuildMatrix(tt.input), catalog, 1)
			if got.FavoriteGenre != tt.want || !got.HasFavoriteGenre {
				t.Errorf("FavoriteGenre = %q (has=%v), want %q", got.FavoriteGenre, got.HasFavoriteGenre, tt.want)
			}
		})
	}
}

func TestBuildProfile_SkipsMoviesMissingFromCatalog(t *testing.T) {
	catalog := NewCatalog([]Movie{
		{ID: 1, Title: "known", Runtime: 80, ReleaseDate: time.Date(1990, 6, 1, 0, 0, 0, 0, time.UTC), Genre: "Horror"},
	})

	withKnown := BuildProfile(BuildMatrix(ratings([3]int{1, 1, 5}, [3]int{1, 2, 5})), catalog, 1)
	if withKnown.PreferredRuntime != 80 || withKnown.PreferredReleaseYear != 1990 || withKnown.FavoriteGenre != "Horror" {
		t.Errorf("profile = %+v, want runtime 80, year 1990, Horror", withKnown)
	}

	onlyUnknown := BuildProfile(BuildMatrix(ratings([3]int{1, 2, 5})), catalog, 1)
	if onlyUnknown != DefaultProfile() {
		t.Errorf("profile = %+v, want default", onlyUnknown)
	}
}
