// CineRank - Movie Rating API and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

type movieInput struct {
	Title       string `json:"title" validate:"required,max=100"`
	Runtime     int    `json:"runtime" validate:"gt=0"`
	ReleaseDate string `json:"release_date" validate:"required,isodate"`
	Genre       string `json:"genre" validate:"required"`
}

type ratingInput struct {
	Score int `json:"rating" validate:"rating"`
}

type queryInput struct {
	K    int `json:"k" validate:"gte=0,lte=100"`
	TopN int `json:"top_n" validate:"gte=0,lte=50"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		input     interface{}
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{
			name:  "valid movie",
			input: &movieInput{Title: "Sci-Fi Epic", Runtime: 130, ReleaseDate: "2005-11-22", Genre: "Sci-Fi"},
		},
		{
			name:      "title too long",
			input:     &movieInput{Title: strings.Repeat("x", 101), Runtime: 90, ReleaseDate: "2005-11-22", Genre: "Drama"},
			wantField: "title",
			wantTag:   "max",
			wantMsg:   "title must be at most 100 characters",
		},
		{
			name:      "non-positive runtime",
			input:     &movieInput{Title: "t", Runtime: 0, ReleaseDate: "2005-11-22", Genre: "Drama"},
			wantField: "runtime",
			wantTag:   "gt",
			wantMsg:   "runtime must be greater than 0",
		},
		{
			name:      "bad release date",
			input:     &movieInput{Title: "t", Runtime: 90, ReleaseDate: "22/11/2005", Genre: "Drama"},
			wantField: "release_date",
			wantTag:   "isodate",
			wantMsg:   "release_date must be a date in YYYY-MM-DD format",
		},
		{
			name:      "top_n above limit",
			input:     &queryInput{K: 2, TopN: 51},
			wantField: "top_n",
			wantTag:   "lte",
			wantMsg:   "top_n must be less than or equal to 50",
		},
		{
			name:  "five stars",
			input: &ratingInput{Score: 5},
		},
		{
			name:      "zero stars",
			input:     &ratingInput{Score: 0},
			wantField: "rating",
			wantTag:   "rating",
			wantMsg:   "rating must be between 1 and 5",
		},
		{
			name:      "six stars",
			input:     &ratingInput{Score: 6},
			wantField: "rating",
			wantTag:   "rating",
			wantMsg:   "rating must be between 1 and 5",
		},
		{
			name:  "zero query uses defaults",
			input: &queryInput{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("ValidateStruct() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("ValidateStruct() error = nil, want error")
			}
			if len(err.Fields) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(err.Fields), err)
			}
			fe := err.Fields[0]
			if fe.Field != tt.wantField || fe.Tag != tt.wantTag {
				t.Errorf("field/tag = %s/%s, want %s/%s", fe.Field, fe.Tag, tt.wantField, tt.wantTag)
			}
			if fe.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", fe.Message, tt.wantMsg)
			}
		})
	}
}

func TestRequestValidationError_ToAPIError(t *testing.T) {
	single := ValidateStruct(&queryInput{K: -1})
	if single == nil {
		t.Fatal("expected validation error")
	}
	apiErr := single.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if apiErr.Details["field"] != "k" {
		t.Errorf("Details[field] = %v, want k", apiErr.Details["field"])
	}

	multi := ValidateStruct(&queryInput{K: -1, TopN: 99})
	if multi == nil {
		t.Fatal("expected validation error")
	}
	apiErr = multi.ToAPIError()
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 2 {
		t.Fatalf("Details[fields] = %v, want 2 entries", apiErr.Details["fields"])
	}
	if !strings.Contains(apiErr.Message, "k:") || !strings.Contains(apiErr.Message, "top_n:") {
		t.Errorf("Message = %q, want both fields listed", apiErr.Message)
	}

	empty := &RequestValidationError{}
	if empty.Error() != "validation failed" || empty.ToAPIError().Message != "Validation failed" {
		t.Error("empty RequestValidationError should use generic messages")
	}
}
