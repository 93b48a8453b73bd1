// CineRank - Movie Rating API and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

// Package validation wraps go-playground/validator v10 for CineRank.
//
// A single validator is shared process-wide. Messages name fields by their
// json tag so API clients see the names they sent ("top_n", not "TopN").
//
// Custom rules:
//
//	isodate  calendar date in YYYY-MM-DD form (movie release dates)
//	rating   star rating between 1 and 5 inclusive
//
// Usage:
//
//	type recommendParams struct {
//	    UserID int `json:"user_id" validate:"gt=0"`
//	    TopN   int `json:"top_n" validate:"gte=0"`
//	}
//
//	if verr := validation.ValidateStruct(&p); verr != nil {
//	    apiErr := verr.ToAPIError() // Code is VALIDATION_ERROR
//	}
package validation
