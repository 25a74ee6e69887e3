// Suggestio - Collaborative Product Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/suggestio

package identity

import (
	"testing"

	"github.com/google/uuid"
)

func TestResolveRange(t *testing.T) {
	r := NewResolver(50, 101)

	for i := 0; i < 1000; i++ {
		id := r.Resolve(uuid.New())
		if id < 101 || id > 150 {
			t.Fatalf("Resolve() = %d, want in [101, 150]", id)
		}
	}
}

func TestResolveDeterministic(t *testing.T) {
	r := NewResolver(50, 101)
	token := uuid.MustParse("b3c1a9d2-4e5f-4a6b-8c7d-9e0f1a2b3c4d")

	first := r.Resolve(token)
	for i := 0; i < 10; i++ {
		if got := r.Resolve(token); got != first {
			t.Fatalf("Resolve() = %d on call %d, want %d", got, i+2, first)
		}
	}
}

// TestResolveUsesHighBytes ensures the full 128 bits participate in the
// mapping: two tokens that share the same low 64 bits must be able to land
// on different profiles.
func TestResolveUsesHighBytes(t *testing.T) {
	r := NewResolver(50, 101)

	var a, b uuid.UUID
	// Identical low halves, differing high halves.
	for i := 8; i < 16; i++ {
		a[i] = byte(i)
		b[i] = byte(i)
	}
	a[0] = 0x01
	b[0] = 0x02

	if r.Resolve(a) == r.Resolve(b) {
		// The mod can legitimately collide for one pair; try a sweep and
		// require at least one divergence.
		diverged := false
		for hi := byte(0); hi < 200; hi++ {
			b[0] = hi
			if r.Resolve(a) != r.Resolve(b) {
				diverged = true
				break
			}
		}
		if !diverged {
			t.Fatal("high token bytes never changed the resolved profile")
		}
	}
}

func TestResolveKnownValues(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		start int
		token uuid.UUID
		want  int
	}{
		{
			name:  "zero token maps to start",
			n:     50,
			start: 101,
			token: uuid.UUID{},
			want:  101,
		},
		{
			name:  "token equal to n maps to start",
			n:     50,
			start: 101,
			token: uuid.UUID{15: 50},
			want:  101,
		},
		{
			name:  "token one below n",
			n:     50,
			start: 101,
			token: uuid.UUID{15: 49},
			want:  150,
		},
		{
			name:  "single profile pool",
			n:     1,
			start: 7,
			token: uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff"),
			want:  7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(tt.n, tt.start)
			if got := r.Resolve(tt.token); got != tt.want {
				t.Errorf("Resolve() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNewResolverClampsPoolSize(t *testing.T) {
	r := NewResolver(0, 101)
	if r.PoolSize() != 1 {
		t.Fatalf("PoolSize() = %d, want 1", r.PoolSize())
	}
	if got := r.Resolve(uuid.New()); got != 101 {
		t.Fatalf("Resolve() = %d, want 101", got)
	}
}
