// Suggestio - Collaborative Product Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/suggestio

package recommend

// Tier identifies which fallback stage produced a recommendation set.
type Tier int

const (
	// TierColdStart is used for profiles with no interaction history.
	TierColdStart Tier = iota

	// TierCollaborative is the primary path: items viewed by profiles
	// that share at least one viewed item with the requester.
	TierCollaborative

	// TierCategory falls back to unseen items from the requester's own
	// viewed categories when no overlapping profile exists.
	TierCategory

	// TierExhausted covers profiles whose neighbors have nothing new to
	// offer: random unseen items, or fully random when everything has
	// been seen.
	TierExhausted
)

// String returns the tier label used in logs and metrics.
func (t Tier) String() string {
	switch t {
	case TierColdStart:
		return "cold_start"
	case TierCollaborative:
		return "collaborative"
	case TierCategory:
		return "category"
	case TierExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}
