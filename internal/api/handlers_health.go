// Suggestio - Collaborative Product Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/suggestio

package api

import "net/http"

// Version is the build version, stamped via -ldflags at release time.
var Version = "dev"

// Health reports overall service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: Version})
}

// HealthLive is the liveness probe: the process is up and serving.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, healthResponse{Status: "alive"})
}

// HealthReady is the readiness probe. The catalog is loaded before the
// listener starts, so readiness only guards against an empty catalog, which
// would make every response an empty array.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.store.Len() == 0 {
		respondJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "no catalog"})
		return
	}
	respondJSON(w, http.StatusOK, healthResponse{Status: "ready"})
}
