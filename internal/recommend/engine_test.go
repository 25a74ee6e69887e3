// Suggestio - Collaborative Product Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/suggestio

package recommend

import (
	"sync"
	"testing"

	"github.com/tomtom215/suggestio/internal/catalog"
)

func testStore() *catalog.Store {
	return catalog.NewStore([]catalog.Item{
		{ID: 1, Name: "Alpha Headset", Category: "Electronics"},
		{ID: 2, Name: "Beta Keyboard", Category: "Electronics"},
		{ID: 3, Name: "Gamma Novel", Category: "Books"},
		{ID: 4, Name: "Delta Mouse", Category: "Electronics"},
		{ID: 5, Name: "Epsilon Atlas", Category: "Books"},
		{ID: 6, Name: "Zeta Mug", Category: "Home"},
	})
}

func newTestEngine(t *testing.T, k int, interactions []catalog.Interaction) *Engine {
	t.Helper()
	return NewEngine(k, testStore(), catalog.NewLog(interactions), 42)
}

func itemIDs(items []catalog.Item) []int {
	ids := make([]int, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

func TestRecommendColdStart(t *testing.T) {
	e := newTestEngine(t, 3, nil)

	items, tier := e.Recommend(101)
	if tier != TierColdStart {
		t.Fatalf("tier = %s, want %s", tier, TierColdStart)
	}
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}
	for _, it := range items {
		if _, ok := e.store.Get(it.ID); !ok {
			t.Errorf("item %d not in catalog", it.ID)
		}
	}
}

func TestRecommendColdStartSingleItemCatalog(t *testing.T) {
	// Sampling is with replacement: a one-item catalog still yields k
	// entries, all the same item.
	store := catalog.NewStore([]catalog.Item{{ID: 1, Name: "Alpha Headset", Category: "Electronics"}})
	e := NewEngine(3, store, catalog.NewLog(nil), 42)

	items, tier := e.Recommend(101)
	if tier != TierColdStart {
		t.Fatalf("tier = %s, want %s", tier, TierColdStart)
	}
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}
	for _, it := range items {
		if it.ID != 1 {
			t.Fatalf("item id = %d, want 1", it.ID)
		}
	}
}

func TestRecommendColdStartDeterministicSeed(t *testing.T) {
	a := newTestEngine(t, 3, nil)
	b := newTestEngine(t, 3, nil)

	first, _ := a.Recommend(101)
	second, _ := b.Recommend(101)

	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("seeded engines diverged at %d: %d vs %d", i, first[i].ID, second[i].ID)
		}
	}
}

func TestRecommendCollaborativeRanking(t *testing.T) {
	// Profile 101 viewed item 1. Neighbors 102, 103 and 104 share it.
	// Candidate counts among neighbors: item 2 viewed by 102+103 (2),
	// item 3 by 103 (1), item 4 by 104 (1). Item 1 is excluded as history.
	interactions := []catalog.Interaction{
		{ProfileID: 101, ItemID: 1},
		{ProfileID: 102, ItemID: 1},
		{ProfileID: 102, ItemID: 2},
		{ProfileID: 103, ItemID: 1},
		{ProfileID: 103, ItemID: 2},
		{ProfileID: 103, ItemID: 3},
		{ProfileID: 104, ItemID: 1},
		{ProfileID: 104, ItemID: 4},
	}
	e := newTestEngine(t, 3, interactions)

	items, tier := e.Recommend(101)
	if tier != TierCollaborative {
		t.Fatalf("tier = %s, want %s", tier, TierCollaborative)
	}

	got := itemIDs(items)
	want := []int{2, 3, 4} // count desc, then id asc
	if len(got) != len(want) {
		t.Fatalf("item ids = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("item ids = %v, want %v", got, want)
		}
	}
}

func TestRecommendCollaborativeTruncatesToK(t *testing.T) {
	interactions := []catalog.Interaction{
		{ProfileID: 101, ItemID: 1},
		{ProfileID: 102, ItemID: 1},
		{ProfileID: 102, ItemID: 2},
		{ProfileID: 102, ItemID: 3},
		{ProfileID: 102, ItemID: 4},
		{ProfileID: 102, ItemID: 5},
	}
	e := newTestEngine(t, 3, interactions)

	items, tier := e.Recommend(101)
	if tier != TierCollaborative {
		t.Fatalf("tier = %s, want %s", tier, TierCollaborative)
	}
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}
}

func TestRecommendCollaborativeExcludesHistory(t *testing.T) {
	interactions := []catalog.Interaction{
		{ProfileID: 101, ItemID: 1},
		{ProfileID: 101, ItemID: 2},
		{ProfileID: 102, ItemID: 1},
		{ProfileID: 102, ItemID: 2},
		{ProfileID: 102, ItemID: 3},
	}
	e := newTestEngine(t, 3, interactions)

	items, _ := e.Recommend(101)
	for _, it := range items {
		if it.ID == 1 || it.ID == 2 {
			t.Errorf("recommended already-viewed item %d", it.ID)
		}
	}
}

func TestRecommendCategoryFallback(t *testing.T) {
	// Profile 101 viewed items 1 and 3 and nobody else viewed anything
	// it viewed, so there are no neighbors. Categories: Electronics and
	// Books. Unseen items in those categories, catalog order: 2, 4, 5.
	interactions := []catalog.Interaction{
		{ProfileID: 101, ItemID: 1},
		{ProfileID: 101, ItemID: 3},
		{ProfileID: 102, ItemID: 6},
	}
	e := newTestEngine(t, 3, interactions)

	items, tier := e.Recommend(101)
	if tier != TierCategory {
		t.Fatalf("tier = %s, want %s", tier, TierCategory)
	}

	got := itemIDs(items)
	want := []int{2, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("item ids = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("item ids = %v, want %v", got, want)
		}
	}
}

func TestRecommendCategoryFallbackNoPadding(t *testing.T) {
	// Profile 101 viewed the only Home item and has no neighbors. No
	// unseen Home items exist, so the category tier returns an empty set
	// rather than padding from other categories.
	interactions := []catalog.Interaction{
		{ProfileID: 101, ItemID: 6},
	}
	e := newTestEngine(t, 3, interactions)

	items, tier := e.Recommend(101)
	if tier != TierCategory {
		t.Fatalf("tier = %s, want %s", tier, TierCategory)
	}
	if len(items) != 0 {
		t.Fatalf("len(items) = %d, want 0 (no padding)", len(items))
	}
}

func TestRecommendExhaustedNeighbors(t *testing.T) {
	// Neighbor 102 exists (shares item 1) but offers nothing beyond the
	// requester's history, so the engine samples unseen catalog items.
	interactions := []catalog.Interaction{
		{ProfileID: 101, ItemID: 1},
		{ProfileID: 101, ItemID: 2},
		{ProfileID: 102, ItemID: 1},
		{ProfileID: 102, ItemID: 2},
	}
	e := newTestEngine(t, 3, interactions)

	items, tier := e.Recommend(101)
	if tier != TierExhausted {
		t.Fatalf("tier = %s, want %s", tier, TierExhausted)
	}
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}
	for _, it := range items {
		if it.ID == 1 || it.ID == 2 {
			t.Errorf("sampled already-viewed item %d", it.ID)
		}
	}
}

func TestRecommendExhaustedFullCatalogViewed(t *testing.T) {
	// Both profiles viewed the entire catalog: neighbors exist, the
	// collaborative pool is empty, and so is the unseen pool. The engine
	// falls back to sampling the full catalog rather than returning nothing.
	var interactions []catalog.Interaction
	for _, p := range []int{101, 102} {
		for id := 1; id <= 6; id++ {
			interactions = append(interactions, catalog.Interaction{ProfileID: p, ItemID: id})
		}
	}
	e := newTestEngine(t, 3, interactions)

	items, tier := e.Recommend(101)
	if tier != TierExhausted {
		t.Fatalf("tier = %s, want %s", tier, TierExhausted)
	}
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}
}

func TestRecommendSkipsDanglingItems(t *testing.T) {
	// Item 999 is referenced in the log but absent from the catalog; it
	// must never surface in a recommendation set.
	interactions := []catalog.Interaction{
		{ProfileID: 101, ItemID: 1},
		{ProfileID: 102, ItemID: 1},
		{ProfileID: 102, ItemID: 999},
		{ProfileID: 102, ItemID: 2},
	}
	e := newTestEngine(t, 3, interactions)

	items, tier := e.Recommend(101)
	if tier != TierCollaborative {
		t.Fatalf("tier = %s, want %s", tier, TierCollaborative)
	}
	for _, it := range items {
		if it.ID == 999 {
			t.Fatal("recommended item missing from catalog")
		}
	}
}

func TestRecommendKOverride(t *testing.T) {
	e := newTestEngine(t, 3, nil)

	items, _ := e.RecommendK(101, 5)
	if len(items) != 5 {
		t.Fatalf("len(items) = %d, want 5", len(items))
	}

	items, _ = e.RecommendK(101, 0)
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want configured k 3", len(items))
	}
}

func TestRecommendEmptyCatalog(t *testing.T) {
	e := NewEngine(3, catalog.NewStore(nil), catalog.NewLog(nil), 42)

	items, tier := e.Recommend(101)
	if tier != TierColdStart {
		t.Fatalf("tier = %s, want %s", tier, TierColdStart)
	}
	if len(items) != 0 {
		t.Fatalf("len(items) = %d, want 0", len(items))
	}
}

func TestRecommendConcurrent(t *testing.T) {
	e := newTestEngine(t, 3, []catalog.Interaction{
		{ProfileID: 101, ItemID: 1},
		{ProfileID: 102, ItemID: 1},
		{ProfileID: 102, ItemID: 2},
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(profile int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				e.Recommend(profile)
			}
		}(100 + i)
	}
	wg.Wait()
}

func TestTierString(t *testing.T) {
	tests := []struct {
		tier Tier
		want string
	}{
		{TierColdStart, "cold_start"},
		{TierCollaborative, "collaborative"},
		{TierCategory, "category"},
		{TierExhausted, "exhausted"},
		{Tier(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.tier.String(); got != tt.want {
			t.Errorf("Tier(%d).String() = %q, want %q", tt.tier, got, tt.want)
		}
	}
}
