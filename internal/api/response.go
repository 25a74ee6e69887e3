// Suggestio - Collaborative Product Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/suggestio

// Package api implements the HTTP surface: the recommendations endpoint,
// health probes, and the chi router wiring them together.
package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/suggestio/internal/logging"
)

// Recommendation is one entry of the recommendations response.
type Recommendation struct {
	ProductName string   `json:"product_name"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"image_url"`
	Platforms   []string `json:"platforms"`
	Explanation string   `json:"explanation"`
}

// healthResponse is the body of the health endpoints.
type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// errorResponse is the body of client-error replies.
type errorResponse struct {
	Error string `json:"error"`
}

// respondJSON writes v as a JSON body with the given status. Encoding
// failures are logged; headers are already sent at that point.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error().Err(err).Msg("failed to encode response")
	}
}

// respondError writes a JSON error body.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}
