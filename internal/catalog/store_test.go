// Suggestio - Collaborative Product Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/suggestio

package catalog

import (
	"testing"
)

func testItems() []Item {
	return []Item{
		{ID: 1, Name: "Wireless Headphones", Category: "Electronics", ImageURL: "https://img/1", Platforms: []string{"Amazon", "Best Buy"}},
		{ID: 2, Name: "Ergonomic Desk Chair", Category: "Home Goods", ImageURL: "https://img/2", Platforms: []string{"Amazon"}},
		{ID: 3, Name: "Sci-Fi Novel", Category: "Books", ImageURL: "https://img/3", Platforms: []string{"Audible"}},
	}
}

func TestStoreLookup(t *testing.T) {
	s := NewStore(testItems())

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}

	it, ok := s.Get(2)
	if !ok || it.Name != "Ergonomic Desk Chair" {
		t.Errorf("Get(2) = %+v, %v", it, ok)
	}

	if _, ok := s.Get(99); ok {
		t.Error("Get(99) should miss")
	}
}

func TestStorePreservesCatalogOrder(t *testing.T) {
	s := NewStore(testItems())

	got := s.Items()
	for i, wantID := range []int{1, 2, 3} {
		if got[i].ID != wantID {
			t.Errorf("Items()[%d].ID = %d, want %d", i, got[i].ID, wantID)
		}
	}
}

func TestLogHistorySetSemantics(t *testing.T) {
	l := NewLog([]Interaction{
		{ProfileID: 101, ItemID: 1},
		{ProfileID: 101, ItemID: 1}, // repeat must be idempotent
		{ProfileID: 101, ItemID: 2},
		{ProfileID: 102, ItemID: 2},
	})

	h := l.History(101)
	if len(h) != 2 {
		t.Fatalf("history size = %d, want 2", len(h))
	}
	for _, id := range []int{1, 2} {
		if _, ok := h[id]; !ok {
			t.Errorf("history missing item %d", id)
		}
	}
}

func TestLogEmptyHistoryIsNonNil(t *testing.T) {
	l := NewLog(nil)

	h := l.History(999)
	if h == nil {
		t.Fatal("History for unknown profile must be non-nil")
	}
	if len(h) != 0 {
		t.Fatalf("expected empty history, got %d items", len(h))
	}
}

func TestLogViewers(t *testing.T) {
	l := NewLog([]Interaction{
		{ProfileID: 101, ItemID: 7},
		{ProfileID: 102, ItemID: 7},
		{ProfileID: 102, ItemID: 7},
		{ProfileID: 103, ItemID: 8},
	})

	v := l.Viewers(7)
	if len(v) != 2 {
		t.Fatalf("viewers of 7 = %d, want 2", len(v))
	}
	for _, p := range []int{101, 102} {
		if _, ok := v[p]; !ok {
			t.Errorf("viewers missing profile %d", p)
		}
	}

	if len(l.Viewers(999)) != 0 {
		t.Error("viewers of unknown item should be empty")
	}
}
