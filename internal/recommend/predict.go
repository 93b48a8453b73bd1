// CineRank - Movie Rating API and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package recommend

import "math"

const (
	// runtimeScale is the runtime gap in minutes at which the runtime weight reaches 0.
	runtimeScale = 100.0

	// releaseYearScale is the release year gap at which the release weight reaches 0.
	releaseYearScale = 20.0

	// FavoriteGenreBoost multiplies predictions for movies in the favorite genre.
	FavoriteGenreBoost = 1.2
)

// TimeReleaseWeight scores how close a movie's runtime and release year are to
// the profile. Each component is clamped at 0; the result is their mean, in [0,1].
func TimeReleaseWeight(movie Movie, p Profile) float64 {
	runtimeWeight := math.Max(0, 1-math.Abs(float64(movie.Runtime)-p.PreferredRuntime)/runtimeScale)
	releaseWeight := math.Max(0, 1-math.Abs(float64(movie.ReleaseYear())-p.PreferredReleaseYear)/releaseYearScale)
	return (runtimeWeight + releaseWeight) / 2
}

// GenreWeight returns FavoriteGenreBoost when the movie is in the profile's
// favorite genre and 1.0 otherwise.
func GenreWeight(movie Movie, p Profile) float64 {
	if p.HasFavoriteGenre && movie.Genre == p.FavoriteGenre {
		return FavoriteGenreBoost
	}
	return 1.0
}

// Predictor estimates ratings for unrated movies from the user's nearest
// neighbors and taste profile. Profiles and similarities are memoized for the
// lifetime of the predictor.
type Predictor struct {
	matrix   *Matrix
	catalog  Catalog
	sims     *SimilarityMatrix
	profiles map[int]Profile
}

// NewPredictor returns a predictor over one matrix/catalog snapshot.
func NewPredictor(m *Matrix, catalog Catalog) *Predictor {
	return &Predictor{
		matrix:   m,
		catalog:  catalog,
		sims:     NewSimilarityMatrix(m),
		profiles: make(map[int]Profile),
	}
}

// Profile returns the (memoized) profile of user.
func (p *Predictor) Profile(user int) Profile {
	if prof, ok := p.profiles[user]; ok {
		return prof
	}
	prof := BuildProfile(p.matrix, p.catalog, user)
	p.profiles[user] = prof
	return prof
}

// Predict returns the predicted score of movie for user using k neighbors.
// The second result is false when no neighbor rated the movie, when their
// similarities sum to 0, or when the movie is not in the catalog.
// The score is not clamped to the 1-5 rating scale.
func (p *Predictor) Predict(user, movie, k int) (float64, bool) {
	info, ok := p.catalog[movie]
	if !ok {
		return 0, false
	}

	var weighted, simSum float64
	found := 0
	for _, n := range p.sims.TopKNeighbors(user, k) {
		score, ok := p.matrix.positiveScore(n.UserID, movie)
		if !ok {
			continue
		}
		weighted += float64(score) * n.Similarity
		simSum += n.Similarity
		found++
	}

	if found == 0 || simSum == 0 {
		return 0, false
	}

	prof := p.Profile(user)
	return (weighted / simSum) * TimeReleaseWeight(info, prof) * GenreWeight(info, prof), true
}
