// Suggestio - Collaborative Product Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/suggestio

// Package identity maps opaque client tokens to the fixed synthetic profile
// pool.
//
// A visitor is identified by a 128-bit token carried in a cookie. The token
// is never stored server-side; instead it is deterministically folded onto
// one of N profile ids, so the same token resolves to the same profile across
// requests and process restarts. Changing the pool shape (N, START) remaps
// existing tokens silently - an accepted limitation of the scheme.
package identity

import "github.com/google/uuid"

// Resolver maps 128-bit tokens onto the profile id range [start, start+n).
type Resolver struct {
	n     int
	start int
}

// NewResolver creates a resolver for a pool of n profiles beginning at start.
// n must be positive.
func NewResolver(n, start int) *Resolver {
	if n < 1 {
		n = 1
	}
	return &Resolver{n: n, start: start}
}

// Resolve returns the profile id for the given token.
//
// The token is interpreted as a big-endian 128-bit unsigned integer and
// reduced modulo n. The remainder is folded byte by byte so that every bit
// of the token contributes to the result; truncating to a 64-bit prefix
// would skew the distribution across the pool.
//
// Resolve is a pure function: any token is valid, the same token always
// yields the same profile id, and the result is always within
// [start, start+n).
func (r *Resolver) Resolve(token uuid.UUID) int {
	rem := 0
	for _, b := range token {
		rem = (rem*256 + int(b)) % r.n
	}
	return rem + r.start
}

// PoolSize returns the number of profiles in the pool.
func (r *Resolver) PoolSize() int {
	return r.n
}

// PoolStart returns the first profile id in the pool.
func (r *Resolver) PoolStart() int {
	return r.start
}
