// Suggestio - Collaborative Product Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/suggestio

package explain

import (
	"context"
	"sort"
	"strings"

	"github.com/tomtom215/suggestio/internal/cache"
	"github.com/tomtom215/suggestio/internal/metrics"
)

// Cached wraps an Explainer with a per-item LRU cache. An explanation
// depends on both the item and the viewing history it is justified by, so
// the cache key covers both; two profiles with the same history share
// entries.
type Cached struct {
	inner Explainer
	lru   *cache.LRU
}

// NewCached wraps inner with the given cache.
func NewCached(inner Explainer, lru *cache.LRU) *Cached {
	return &Cached{inner: inner, lru: lru}
}

// Explain implements Explainer. Cached items are served locally; only the
// misses are forwarded to the inner explainer. If the inner call fails, any
// cached explanations already found are still returned alongside the error.
func (c *Cached) Explain(ctx context.Context, history, recommended []string) (map[string]string, error) {
	prefix := historyKey(history)

	out := make(map[string]string, len(recommended))
	var missing []string
	for _, name := range recommended {
		if text, ok := c.lru.Get(prefix + name); ok {
			metrics.ExplainCacheHits.Inc()
			out[name] = text
			continue
		}
		metrics.ExplainCacheMisses.Inc()
		missing = append(missing, name)
	}

	if len(missing) == 0 {
		return out, nil
	}

	generated, err := c.inner.Explain(ctx, history, missing)
	if err != nil {
		return out, err
	}
	for name, text := range generated {
		if text == "" {
			continue
		}
		out[name] = text
		c.lru.Set(prefix+name, text)
	}
	return out, nil
}

// historyKey builds a stable cache-key prefix from the viewing history.
// Order must not matter: histories are sets.
func historyKey(history []string) string {
	if len(history) == 0 {
		return "|"
	}
	sorted := make([]string, len(history))
	copy(sorted, history)
	sort.Strings(sorted)
	return strings.Join(sorted, "\x1f") + "|"
}
