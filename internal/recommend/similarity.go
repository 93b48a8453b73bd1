// CineRank - Movie Rating API and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package recommend

import (
	"math"
	"sort"
)

// Neighbor is a user ranked by similarity to the target user.
type Neighbor struct {
	UserID     int
	Similarity float64
}

// CosineSimilarity computes cosine similarity between two users restricted to
// the movies both rated with a positive score. It returns 0 when there is no
// overlap, when either norm is zero, or when a == b.
//
// Co-rated movies are accumulated in column order so that the result is
// bit-for-bit symmetric.
func CosineSimilarity(m *Matrix, a, b int) float64 {
	if a == b || !m.HasUser(a) || !m.HasUser(b) {
		return 0
	}

	var dot, normA, normB float64
	common := 0
	for _, movie := range m.movies {
		ra, okA := m.positiveScore(a, movie)
		if !okA {
			continue
		}
		rb, okB := m.positiveScore(b, movie)
		if !okB {
			continue
		}
		fa, fb := float64(ra), float64(rb)
		dot += fa * fb
		normA += fa * fa
		normB += fb * fb
		common++
	}

	if common == 0 || normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

type userPair struct {
	lo, hi int
}

func newUserPair(a, b int) userPair {
	if a > b {
		a, b = b, a
	}
	return userPair{lo: a, hi: b}
}

// SimilarityMatrix memoizes pairwise similarities for one matrix.
// It is filled lazily and lives only as long as the request that built it.
// Not safe for concurrent use.
type SimilarityMatrix struct {
	matrix *Matrix
	memo   map[userPair]float64
}

// NewSimilarityMatrix returns an empty similarity memo over m.
func NewSimilarityMatrix(m *Matrix) *SimilarityMatrix {
	return &SimilarityMatrix{
		matrix: m,
		memo:   make(map[userPair]float64),
	}
}

// Get returns sim(a, b). The diagonal is always 0.
func (s *SimilarityMatrix) Get(a, b int) float64 {
	if a == b {
		return 0
	}
	key := newUserPair(a, b)
	if v, ok := s.memo[key]; ok {
		return v
	}
	v := CosineSimilarity(s.matrix, a, b)
	s.memo[key] = v
	return v
}

// TopKNeighbors returns the k users most similar to user, best first.
// Ties keep the matrix user order. k <= 0 returns nil; k larger than the
// number of other users returns all of them.
func (s *SimilarityMatrix) TopKNeighbors(user, k int) []Neighbor {
	if k <= 0 {
		return nil
	}

	neighbors := make([]Neighbor, 0, len(s.matrix.users))
	for _, other := range s.matrix.users {
		if other == user {
			continue
		}
		neighbors = append(neighbors, Neighbor{UserID: other, Similarity: s.Get(user, other)})
	}

	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].Similarity > neighbors[j].Similarity
	})

	if k < len(neighbors) {
		neighbors = neighbors[:k]
	}
	return neighbors
}
