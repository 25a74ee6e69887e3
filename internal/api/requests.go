// Suggestio - Collaborative Product Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/suggestio

package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/tomtom215/suggestio/internal/validation"
)

// recommendationsQuery holds the parsed query parameters of
// GET /recommendations.
type recommendationsQuery struct {
	// K overrides the configured batch size; zero means "use the default".
	K int `validate:"omitempty,min=1,max=10"`
}

// parseRecommendationsQuery parses and validates the query string.
func parseRecommendationsQuery(r *http.Request) (recommendationsQuery, error) {
	var q recommendationsQuery

	if raw := r.URL.Query().Get("k"); raw != "" {
		k, err := strconv.Atoi(raw)
		if err != nil {
			return q, fmt.Errorf("query parameter k must be an integer")
		}
		q.K = k
	}

	if err := validation.ValidateStruct(&q); err != nil {
		return q, fmt.Errorf("query parameter k must be between 1 and 10")
	}
	return q, nil
}
