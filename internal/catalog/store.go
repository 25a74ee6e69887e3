// Suggestio - Collaborative Product Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/suggestio

// Package catalog provides the immutable in-memory product catalog and
// interaction log. Both tables are built once at process startup and are
// read-only thereafter, so any number of concurrently handled requests may
// read them without synchronization.
package catalog

// Store is the immutable in-memory product table.
type Store struct {
	// items preserves catalog (source file) order.
	items []Item

	// byID indexes items for O(1) lookup.
	byID map[int]Item
}

// NewStore builds a Store from the given items. Item order is preserved as
// catalog order; later duplicates of an id overwrite the index entry but not
// the ordered slice (upstream data has unique ids).
func NewStore(items []Item) *Store {
	byID := make(map[int]Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	return &Store{items: items, byID: byID}
}

// Len returns the number of catalog items.
func (s *Store) Len() int {
	return len(s.items)
}

// Items returns all items in catalog order. The returned slice is shared;
// callers must not mutate it.
func (s *Store) Items() []Item {
	return s.items
}

// Get returns the item with the given id.
func (s *Store) Get(id int) (Item, bool) {
	it, ok := s.byID[id]
	return it, ok
}

// Log is the immutable in-memory interaction table, indexed for the two
// access patterns the engine needs: history-by-profile and viewers-by-item.
type Log struct {
	// histories maps profile id to the set of distinct item ids it viewed.
	histories map[int]map[int]struct{}

	// viewers maps item id to the distinct profile ids that viewed it.
	viewers map[int]map[int]struct{}
}

// NewLog builds a Log from raw interaction records. Repeated (profile, item)
// pairs are idempotent.
func NewLog(interactions []Interaction) *Log {
	l := &Log{
		histories: make(map[int]map[int]struct{}),
		viewers:   make(map[int]map[int]struct{}),
	}

	for _, rec := range interactions {
		h, ok := l.histories[rec.ProfileID]
		if !ok {
			h = make(map[int]struct{})
			l.histories[rec.ProfileID] = h
		}
		h[rec.ItemID] = struct{}{}

		v, ok := l.viewers[rec.ItemID]
		if !ok {
			v = make(map[int]struct{})
			l.viewers[rec.ItemID] = v
		}
		v[rec.ProfileID] = struct{}{}
	}

	return l
}

// History returns the set of distinct item ids the profile has viewed.
// Profiles with no interactions return an empty (non-nil) set. The returned
// map is shared; callers must not mutate it.
func (l *Log) History(profileID int) map[int]struct{} {
	if h, ok := l.histories[profileID]; ok {
		return h
	}
	return emptySet
}

// Viewers returns the set of distinct profile ids that viewed the item.
// The returned map is shared; callers must not mutate it.
func (l *Log) Viewers(itemID int) map[int]struct{} {
	if v, ok := l.viewers[itemID]; ok {
		return v
	}
	return emptySet
}

// Len returns the number of distinct profiles with at least one interaction.
func (l *Log) Len() int {
	return len(l.histories)
}

// emptySet is the shared zero-value set returned for unknown keys.
var emptySet = map[int]struct{}{}
