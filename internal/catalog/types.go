// Suggestio - Collaborative Product Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/suggestio

package catalog

// Item represents a product in the catalog.
//
// Items are created in bulk at load time and never mutated or deleted during
// the process lifetime, so they are safe for unsynchronized concurrent reads.
type Item struct {
	// ID is the unique product identifier.
	ID int `json:"id"`

	// Name is the product display name, unique within the catalog.
	Name string `json:"name"`

	// Category is the product category (one of a fixed small enumeration).
	Category string `json:"category"`

	// ImageURL is the product image reference.
	ImageURL string `json:"image_url"`

	// Platforms lists the storefronts carrying the product, in source order.
	Platforms []string `json:"platforms"`
}

// Interaction represents a single profile-views-item event from the
// interaction log.
//
// The upstream generator de-duplicates (profile, item) pairs, but the log
// does not assume this: repeats collapse to set semantics per profile.
type Interaction struct {
	// ProfileID is the synthetic profile that viewed the item.
	ProfileID int `json:"profile_id"`

	// ItemID references an Item. Dangling references (items absent from the
	// catalog) are tolerated and ignored by consumers.
	ItemID int `json:"item_id"`
}
