// CineRank - Movie Rating API and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

// Package recommend implements user-based collaborative filtering for movie
// recommendations.
//
// # Pipeline
//
// Data flows strictly upward, and every structure is request-scoped:
//
//	ratings -> Matrix -> SimilarityMatrix -> Profile + Predictor -> Recommender
//
//   - BuildMatrix turns ratings into a user x movie table whose columns are the
//     movies referenced by at least one rating. Cells a user did not rate carry
//     an explicit unrated marker.
//   - CosineSimilarity compares two users over their co-rated movies.
//   - BuildProfile derives preferred runtime, release year and favorite genre
//     from the movies a user rated above 3. Users who liked nothing get
//     DefaultProfile (100 minutes, 2010, no genre).
//   - Predictor.Predict averages the top-k neighbors' ratings weighted by
//     similarity, then multiplies by TimeReleaseWeight and GenreWeight. The
//     result is not clamped to the 1-5 scale.
//   - Recommender ranks every unrated column and keeps the best topN.
//
// # Usage
//
//	engine, err := recommend.NewEngine(db, recommend.DefaultConfig(), logger)
//	resp, err := engine.RecommendForUser(ctx, recommend.Request{UserID: 2})
//	// resp.Titles: best first; empty when nothing can be predicted
//
// The Engine loads a fresh snapshot from its DataProvider on every call through
// a circuit breaker, so nothing is cached between requests.
package recommend
