// CineRank - Movie Rating API and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/cinerank/internal/logging"
	"github.com/tomtom215/cinerank/internal/recommend"
	"github.com/tomtom215/cinerank/internal/validation"
)

// Recommender produces recommendations. *recommend.Engine satisfies it.
type Recommender interface {
	RecommendForUser(ctx context.Context, req recommend.Request) (*recommend.Response, error)
}

// RecommendHandler handles recommendation API endpoints.
type RecommendHandler struct {
	engine  Recommender
	timeout time.Duration
}

// NewRecommendHandler creates a recommendation handler. A zero timeout
// leaves the request context untouched.
func NewRecommendHandler(engine Recommender, timeout time.Duration) *RecommendHandler {
	return &RecommendHandler{engine: engine, timeout: timeout}
}

// recommendParams are the parsed path and query parameters.
// Zero k and top_n select the engine defaults.
type recommendParams struct {
	UserID int `json:"user_id" validate:"gt=0"`
	K      int `json:"k" validate:"gte=0"`
	TopN   int `json:"top_n" validate:"gte=0"`
}

// GetRecommendations handles GET /api/v1/users/{userID}/recommendations.
func (h *RecommendHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	params, ok := parseRecommendParams(rw, r)
	if !ok {
		return
	}

	ctx := r.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	resp, err := h.engine.RecommendForUser(ctx, recommend.Request{
		UserID: params.UserID,
		K:      params.K,
		TopN:   params.TopN,
	})
	if err != nil {
		h.writeEngineError(rw, r, params.UserID, err)
		return
	}

	if resp.Titles == nil {
		resp.Titles = []string{}
	}
	if resp.Items == nil {
		resp.Items = []recommend.ScoredMovie{}
	}

	rw.Success(resp)
}

// parseRecommendParams reads and validates the request parameters, writing a
// VALIDATION_ERROR response and returning false on failure.
func parseRecommendParams(rw *ResponseWriter, r *http.Request) (recommendParams, bool) {
	var params recommendParams

	fields := []struct {
		name  string
		raw   string
		dest  *int
		given bool
	}{
		{"user_id", chi.URLParam(r, "userID"), &params.UserID, true},
		{"k", r.URL.Query().Get("k"), &params.K, false},
		{"top_n", r.URL.Query().Get("top_n"), &params.TopN, false},
	}

	for _, f := range fields {
		if f.raw == "" && !f.given {
			continue
		}
		n, err := strconv.Atoi(f.raw)
		if err != nil {
			rw.ErrorWithDetails(http.StatusBadRequest, ErrCodeValidationFailed,
				f.name+" must be an integer",
				map[string]interface{}{"field": f.name, "value": f.raw})
			return params, false
		}
		*f.dest = n
	}

	if verr := validation.ValidateStruct(params); verr != nil {
		rw.ValidationError(verr)
		return params, false
	}
	return params, true
}

// writeEngineError maps engine errors onto HTTP responses.
func (h *RecommendHandler) writeEngineError(rw *ResponseWriter, r *http.Request, userID int, err error) {
	logger := logging.Ctx(r.Context())

	switch {
	case errors.Is(err, recommend.ErrUserNotFound):
		rw.NotFound(ErrCodeUserNotFound, "User "+strconv.Itoa(userID)+" has no ratings")
	case errors.Is(err, recommend.ErrInvalidRequest):
		rw.ErrorWithDetails(http.StatusBadRequest, ErrCodeValidationFailed, err.Error(), nil)
	case errors.Is(err, recommend.ErrDataUnavailable):
		logger.Warn().Err(err).Int("user_id", userID).Msg("Recommendation data unavailable")
		rw.ServiceUnavailable("Recommendation data is temporarily unavailable")
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		logger.Warn().Err(err).Int("user_id", userID).Dur("timeout", h.timeout).Msg("Recommendation did not complete")
		rw.ServiceUnavailable("Recommendation timed out")
	default:
		logger.Error().Err(err).Int("user_id", userID).Msg("Recommendation failed")
		rw.InternalError("Failed to generate recommendations")
	}
}
