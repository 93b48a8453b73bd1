// CineRank - Movie Rating API and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package recommend

import (
	"fmt"
	"sort"
)

// Recommender ranks a user's unrated movies by predicted score.
type Recommender struct {
	matrix    *Matrix
	catalog   Catalog
	predictor *Predictor
}

// NewRecommender builds a recommender for one ratings/movies snapshot.
func NewRecommender(m *Matrix, catalog Catalog) *Recommender {
	return &Recommender{
		matrix:    m,
		catalog:   catalog,
		predictor: NewPredictor(m, catalog),
	}
}

// NewRecommenderFromSnapshot builds the matrix and catalog and returns a recommender.
func NewRecommenderFromSnapshot(ratings []Rating, movies []Movie) *Recommender {
	return NewRecommender(BuildMatrix(ratings), NewCatalog(movies))
}

// Matrix returns the underlying rating matrix.
func (r *Recommender) Matrix() *Matrix {
	return r.matrix
}

// Predictor returns the underlying predictor.
func (r *Recommender) Predictor() *Predictor {
	return r.predictor
}

// Recommend returns up to topN titles for user, best first.
func (r *Recommender) Recommend(user, k, topN int) ([]string, error) {
	scored, err := r.RecommendScored(user, k, topN)
	if err != nil {
		return nil, err
	}
	titles := make([]string, len(scored))
	for i, s := range scored {
		titles[i] = s.Title
	}
	return titles, nil
}

// RecommendScored returns up to topN unrated movies with their predicted scores.
func (r *Recommender) RecommendScored(user, k, topN int) ([]ScoredMovie, error) {
	scored, _, err := r.rank(user, k, topN)
	return scored, err
}

// rank predicts every unrated column for user, drops absent predictions,
// sorts by score descending (stable, so ties keep column order) and cuts to topN.
func (r *Recommender) rank(user, k, topN int) ([]ScoredMovie, Stats, error) {
	if !r.matrix.HasUser(user) {
		return nil, Stats{}, fmt.Errorf("%w: %d", ErrUserNotFound, user)
	}

	candidates := r.matrix.UnratedMovies(user)
	stats := Stats{Candidates: len(candidates)}

	scored := make([]ScoredMovie, 0, len(candidates))
	for _, movie := range candidates {
		score, ok := r.predictor.Predict(user, movie, k)
		if !ok {
			continue
		}
		scored = append(scored, ScoredMovie{
			MovieID: movie,
			Title:   r.catalog[movie].Title,
			Score:   score,
		})
	}
	stats.Predicted = len(scored)

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if topN <= 0 {
		return []ScoredMovie{}, stats, nil
	}
	if topN < len(scored) {
		scored = scored[:topN]
	}
	return scored, stats, nil
}
