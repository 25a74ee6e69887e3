// Suggestio - Collaborative Product Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/suggestio

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/suggestio/internal/catalog"
	"github.com/tomtom215/suggestio/internal/config"
	"github.com/tomtom215/suggestio/internal/explain"
	"github.com/tomtom215/suggestio/internal/logging"
	"github.com/tomtom215/suggestio/internal/metrics"
	"github.com/tomtom215/suggestio/internal/middleware"
	"github.com/tomtom215/suggestio/internal/recommend"
)

// Recommender is the engine surface the handler needs.
type Recommender interface {
	RecommendK(profileID, k int) ([]catalog.Item, recommend.Tier)
	K() int
}

// Resolver maps identity tokens to profile ids.
type Resolver interface {
	Resolve(token uuid.UUID) int
}

// Handler serves the recommendation and health endpoints.
type Handler struct {
	cfg       *config.Config
	resolver  Resolver
	engine    Recommender
	explainer explain.Explainer
	store     *catalog.Store
	log       *catalog.Log
}

// NewHandler wires the request pipeline together. explainer may be
// explain.Disabled{} when generation is turned off.
func NewHandler(cfg *config.Config, resolver Resolver, engine Recommender, explainer explain.Explainer, store *catalog.Store, log *catalog.Log) *Handler {
	return &Handler{
		cfg:       cfg,
		resolver:  resolver,
		engine:    engine,
		explainer: explainer,
		store:     store,
		log:       log,
	}
}

// Recommendations handles GET /recommendations.
//
// The flow is: identify (cookie), resolve (token to profile), recommend
// (tiered engine), explain (best-effort), respond. Identity and explanation
// failures degrade rather than fail: a bad cookie becomes a fresh visitor,
// a failed explanation becomes the placeholder sentence. The endpoint
// answers 200 with a JSON array unless the query parameters themselves are
// invalid.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	q, err := parseRecommendationsQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	token, fresh := h.identify(r)
	if fresh {
		metrics.NewVisitorsTotal.Inc()
	}
	h.setIdentityCookie(w, token)

	profileID := h.resolver.Resolve(token)

	k := q.K
	if k == 0 {
		k = h.engine.K()
	}
	items, tier := h.engine.RecommendK(profileID, k)

	historyNames := h.historyNames(profileID)
	recNames := make([]string, len(items))
	for i, it := range items {
		recNames[i] = it.Name
	}

	explanations := h.explainSet(r.Context(), historyNames, recNames)

	resp := make([]Recommendation, len(items))
	for i, it := range items {
		platforms := it.Platforms
		if platforms == nil {
			platforms = []string{}
		}
		resp[i] = Recommendation{
			ProductName: it.Name,
			Category:    it.Category,
			ImageURL:    it.ImageURL,
			Platforms:   platforms,
			Explanation: explanations[it.Name],
		}
	}

	logging.Info().
		Str("request_id", middleware.GetRequestID(r.Context())).
		Int("profile_id", profileID).
		Str("tier", tier.String()).
		Int("count", len(resp)).
		Bool("new_visitor", fresh).
		Msg("recommendations served")

	respondJSON(w, http.StatusOK, resp)
}

// identify extracts the visitor token from the identity cookie. A missing,
// malformed, or non-UUID cookie yields a fresh token; fresh reports whether
// one was minted.
func (h *Handler) identify(r *http.Request) (uuid.UUID, bool) {
	c, err := r.Cookie(h.cfg.Security.CookieName)
	if err != nil {
		return uuid.New(), true
	}
	token, err := uuid.Parse(c.Value)
	if err != nil {
		logging.Debug().Str("cookie", h.cfg.Security.CookieName).Msg("unparsable identity cookie replaced")
		return uuid.New(), true
	}
	return token, false
}

// setIdentityCookie (re)issues the identity cookie, refreshing its lifetime
// on every request. Cross-site deployments (CORS origins configured) need
// SameSite=None, which browsers only accept on Secure cookies.
func (h *Handler) setIdentityCookie(w http.ResponseWriter, token uuid.UUID) {
	cookie := &http.Cookie{
		Name:     h.cfg.Security.CookieName,
		Value:    token.String(),
		Path:     "/",
		MaxAge:   int(h.cfg.Security.CookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if len(h.cfg.Security.CORSOrigins) > 0 {
		cookie.SameSite = http.SameSiteNoneMode
		cookie.Secure = true
	}
	http.SetCookie(w, cookie)
}

// historyNames resolves the profile's viewed item ids to catalog names,
// skipping ids that no longer exist in the catalog.
func (h *Handler) historyNames(profileID int) []string {
	history := h.log.History(profileID)
	names := make([]string, 0, len(history))
	for id := range history {
		if it, ok := h.store.Get(id); ok {
			names = append(names, it.Name)
		}
	}
	return names
}

// explainSet runs the explainer under the configured timeout and fills any
// gap with the placeholder. It never fails the request.
func (h *Handler) explainSet(ctx context.Context, historyNames, recNames []string) map[string]string {
	if len(recNames) == 0 {
		return map[string]string{}
	}

	ctx, cancel := context.WithTimeout(ctx, h.cfg.Explain.Timeout)
	defer cancel()

	start := time.Now()
	generated, err := h.explainer.Explain(ctx, historyNames, recNames)
	metrics.ExplainDuration.Observe(time.Since(start).Seconds())

	switch {
	case err != nil && len(generated) > 0:
		metrics.ExplainRequests.WithLabelValues("degraded").Inc()
		logging.Warn().Err(err).Msg("explanation partially failed, placeholders substituted")
	case err != nil:
		metrics.ExplainRequests.WithLabelValues("error").Inc()
		logging.Warn().Err(err).Msg("explanation failed, placeholders substituted")
	default:
		metrics.ExplainRequests.WithLabelValues("success").Inc()
	}

	return explain.Apply(generated, recNames)
}
