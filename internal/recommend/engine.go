// Suggestio - Collaborative Product Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/suggestio

// Package recommend implements the tiered collaborative-filtering engine.
//
// Recommendations fall through four tiers:
//
//  1. cold start: the profile has no history, sample the whole catalog
//  2. collaborative: rank items viewed by overlapping profiles
//  3. category: no overlapping profile exists, fall back to the
//     requester's own categories
//  4. exhausted: neighbors exist but offer nothing unseen, sample what
//     the profile has not viewed yet
//
// The catalog and interaction log are immutable after startup, so the only
// mutable engine state is the random source used by the sampled tiers.
package recommend

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/suggestio/internal/catalog"
	"github.com/tomtom215/suggestio/internal/logging"
	"github.com/tomtom215/suggestio/internal/metrics"
)

// Engine produces per-profile recommendation sets. It is safe for
// concurrent use.
type Engine struct {
	k      int
	store  *catalog.Store
	log    *catalog.Log
	logger zerolog.Logger

	// Random source for the sampled tiers (protected by rngMu for
	// concurrent access).
	rng   *rand.Rand
	rngMu sync.Mutex
}

// NewEngine creates an engine producing up to k items per request.
// seed selects a deterministic random source; pass 0 for a time-based one.
func NewEngine(k int, store *catalog.Store, log *catalog.Log, seed int64) *Engine {
	if k < 1 {
		k = 1
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Engine{
		k:      k,
		store:  store,
		log:    log,
		logger: logging.With().Str("component", "recommend").Logger(),
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// K returns the configured recommendation set size.
func (e *Engine) K() int {
	return e.k
}

// Recommend returns up to k items for the given profile along with the tier
// that produced them. It never fails: an empty catalog yields an empty set.
func (e *Engine) Recommend(profileID int) ([]catalog.Item, Tier) {
	return e.RecommendK(profileID, e.k)
}

// RecommendK is Recommend with a per-request set size override.
func (e *Engine) RecommendK(profileID, k int) ([]catalog.Item, Tier) {
	start := time.Now()
	if k < 1 {
		k = e.k
	}

	history := e.log.History(profileID)

	var (
		items []catalog.Item
		tier  Tier
	)
	switch {
	case len(history) == 0:
		tier = TierColdStart
		items = e.sample(e.store.Items(), k)
	default:
		items, tier = e.collaborative(profileID, history, k)
	}

	elapsed := time.Since(start)
	metrics.RecommendationsTotal.WithLabelValues(tier.String()).Inc()
	metrics.RecommendationDuration.Observe(elapsed.Seconds())

	e.logger.Debug().
		Int("profile_id", profileID).
		Str("tier", tier.String()).
		Int("count", len(items)).
		Dur("elapsed", elapsed).
		Msg("recommendation set produced")

	return items, tier
}

// collaborative implements tiers 2-4 for profiles with history.
func (e *Engine) collaborative(profileID int, history map[int]struct{}, k int) ([]catalog.Item, Tier) {
	// Neighbors: every other profile that viewed at least one item from the
	// requester's history. Score per candidate item is the number of
	// distinct neighbors that viewed it.
	neighbors := make(map[int]struct{})
	for itemID := range history {
		for viewer := range e.log.Viewers(itemID) {
			if viewer != profileID {
				neighbors[viewer] = struct{}{}
			}
		}
	}

	if len(neighbors) == 0 {
		return e.byCategory(history, k), TierCategory
	}

	scores := make(map[int]int)
	for neighbor := range neighbors {
		for itemID := range e.log.History(neighbor) {
			if _, seen := history[itemID]; seen {
				continue
			}
			scores[itemID]++
		}
	}

	// Keep only candidates that still exist in the catalog.
	type scored struct {
		item  catalog.Item
		count int
	}
	pool := make([]scored, 0, len(scores))
	for itemID, count := range scores {
		if it, ok := e.store.Get(itemID); ok {
			pool = append(pool, scored{item: it, count: count})
		}
	}

	if len(pool) == 0 {
		return e.unseen(history, k), TierExhausted
	}

	sort.Slice(pool, func(i, j int) bool {
		if pool[i].count != pool[j].count {
			return pool[i].count > pool[j].count
		}
		return pool[i].item.ID < pool[j].item.ID
	})

	if len(pool) > k {
		pool = pool[:k]
	}
	items := make([]catalog.Item, len(pool))
	for i, s := range pool {
		items[i] = s.item
	}
	return items, TierCollaborative
}

// byCategory returns unseen items that share a category with the profile's
// history, in catalog order. The result may be shorter than k; it is not
// padded.
func (e *Engine) byCategory(history map[int]struct{}, k int) []catalog.Item {
	categories := make(map[string]struct{})
	for itemID := range history {
		if it, ok := e.store.Get(itemID); ok {
			categories[it.Category] = struct{}{}
		}
	}

	var items []catalog.Item
	for _, it := range e.store.Items() {
		if len(items) == k {
			break
		}
		if _, seen := history[it.ID]; seen {
			continue
		}
		if _, ok := categories[it.Category]; !ok {
			continue
		}
		items = append(items, it)
	}
	return items
}

// unseen samples k items the profile has not viewed. A profile that has
// viewed the entire catalog falls back to sampling the full catalog rather
// than returning nothing.
func (e *Engine) unseen(history map[int]struct{}, k int) []catalog.Item {
	all := e.store.Items()
	candidates := make([]catalog.Item, 0, len(all))
	for _, it := range all {
		if _, seen := history[it.ID]; !seen {
			candidates = append(candidates, it)
		}
	}
	if len(candidates) == 0 {
		candidates = all
	}
	return e.sample(candidates, k)
}

// sample draws k items from the pool with replacement, so the result may
// contain duplicates and always has exactly k entries for a non-empty pool.
func (e *Engine) sample(pool []catalog.Item, k int) []catalog.Item {
	if len(pool) == 0 {
		return nil
	}

	e.rngMu.Lock()
	defer e.rngMu.Unlock()

	items := make([]catalog.Item, k)
	for i := range items {
		items[i] = pool[e.rng.Intn(len(pool))]
	}
	return items
}
