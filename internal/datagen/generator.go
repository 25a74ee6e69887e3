// Suggestio - Collaborative Product Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/suggestio

// Package datagen produces the synthetic catalog and interaction tables the
// server loads at startup. Product names are adjective+noun combinations per
// category; interactions are biased so each profile mostly views one
// preferred category, which gives the collaborative tier realistic overlap
// to work with.
package datagen

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/tomtom215/suggestio/internal/catalog"
)

// categoryConfig describes the name vocabulary and storefronts of one
// product category.
type categoryConfig struct {
	name       string
	adjectives []string
	nouns      []string
	platforms  []string
}

// categoryConfigs is the fixed catalog vocabulary, in output order.
var categoryConfigs = []categoryConfig{
	{
		name:       "Electronics",
		adjectives: []string{"Wireless", "Smart", "4K", "Portable", "Gaming", "Ultra-Slim"},
		nouns:      []string{"Headphones", "Speaker", "Monitor", "Charger", "Mouse", "Keyboard"},
		platforms:  []string{"Amazon", "Best Buy", "Newegg"},
	},
	{
		name:       "Home Goods",
		adjectives: []string{"Ergonomic", "Handmade", "Minimalist", "Electric", "Non-Stick"},
		nouns:      []string{"Coffee Maker", "Blender", "Desk Chair", "Air Fryer", "Cookware Set"},
		platforms:  []string{"Amazon", "Target", "Wayfair"},
	},
	{
		name:       "Apparel",
		adjectives: []string{"Vintage", "Athletic", "Denim", "Waterproof", "Organic Cotton"},
		nouns:      []string{"Jacket", "T-Shirt", "Running Shoes", "Jeans", "Backpack"},
		platforms:  []string{"Nike", "ASOS", "Amazon"},
	},
	{
		name:       "Books",
		adjectives: []string{"Bestselling", "Classic", "Sci-Fi", "Fantasy", "Historical"},
		nouns:      []string{"Novel", "Biography", "Cookbook", "Anthology", "Graphic Novel"},
		platforms:  []string{"Amazon", "Barnes & Noble", "Audible"},
	},
	{
		name:       "Sports & Outdoors",
		adjectives: []string{"Durable", "Lightweight", "Insulated", "All-Weather", "Professional"},
		nouns:      []string{"Yoga Mat", "Dumbbell Set", "Tent", "Water Bottle", "Basketball"},
		platforms:  []string{"Amazon", "REI", "Dick's Sporting Goods"},
	},
}

// Options controls dataset size and shape.
type Options struct {
	// Products caps the total number of generated products.
	Products int

	// Profiles is the synthetic profile pool size.
	Profiles int

	// ProfileStart is the first profile id.
	ProfileStart int

	// Interactions is the number of view events drawn (before
	// de-duplication).
	Interactions int

	// PreferenceBias is the probability that a view lands in the profile's
	// preferred category.
	PreferenceBias float64

	// Seed seeds the generator; zero selects a time-based seed.
	Seed int64
}

// DefaultOptions mirrors the dataset shipped with the service.
func DefaultOptions() Options {
	return Options{
		Products:       200,
		Profiles:       50,
		ProfileStart:   101,
		Interactions:   1200,
		PreferenceBias: 0.8,
	}
}

// Generator builds synthetic datasets.
type Generator struct {
	opts Options
	rng  *rand.Rand
}

// New creates a Generator.
func New(opts Options) *Generator {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if opts.PreferenceBias <= 0 || opts.PreferenceBias > 1 {
		opts.PreferenceBias = 0.8
	}
	return &Generator{opts: opts, rng: rand.New(rand.NewSource(seed))}
}

// Products generates up to opts.Products items. Each category contributes
// its adjective-noun combinations in shuffled order; names are unique across
// the catalog and ids are assigned sequentially from 1.
func (g *Generator) Products() []catalog.Item {
	var items []catalog.Item
	seen := make(map[string]struct{})
	id := 1

	for _, cc := range categoryConfigs {
		combos := make([][2]string, 0, len(cc.adjectives)*len(cc.nouns))
		for _, adj := range cc.adjectives {
			for _, noun := range cc.nouns {
				combos = append(combos, [2]string{adj, noun})
			}
		}
		g.rng.Shuffle(len(combos), func(i, j int) {
			combos[i], combos[j] = combos[j], combos[i]
		})

		for _, combo := range combos {
			if id > g.opts.Products {
				break
			}
			name := combo[0] + " " + combo[1]
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}

			items = append(items, catalog.Item{
				ID:        id,
				Name:      name,
				Category:  cc.name,
				ImageURL:  imageURL(name),
				Platforms: append([]string(nil), cc.platforms...),
			})
			id++
		}
	}
	return items
}

// Interactions generates biased view events over the given products,
// de-duplicated on (profile, item). Each profile gets one preferred category
// and views it with probability PreferenceBias, otherwise any product.
func (g *Generator) Interactions(products []catalog.Item) []catalog.Interaction {
	if len(products) == 0 {
		return nil
	}

	byCategory := make(map[string][]catalog.Item)
	for _, it := range products {
		byCategory[it.Category] = append(byCategory[it.Category], it)
	}

	preferences := make(map[int]string, g.opts.Profiles)
	profiles := make([]int, 0, g.opts.Profiles)
	for p := g.opts.ProfileStart; p < g.opts.ProfileStart+g.opts.Profiles; p++ {
		preferences[p] = categoryConfigs[g.rng.Intn(len(categoryConfigs))].name
		profiles = append(profiles, p)
	}

	var out []catalog.Interaction
	seen := make(map[catalog.Interaction]struct{})
	for i := 0; i < g.opts.Interactions; i++ {
		profile := profiles[g.rng.Intn(len(profiles))]

		pool := products
		if g.rng.Float64() < g.opts.PreferenceBias {
			if preferred := byCategory[preferences[profile]]; len(preferred) > 0 {
				pool = preferred
			}
		}

		rec := catalog.Interaction{
			ProfileID: profile,
			ItemID:    pool[g.rng.Intn(len(pool))].ID,
		}
		if _, dup := seen[rec]; dup {
			continue
		}
		seen[rec] = struct{}{}
		out = append(out, rec)
	}
	return out
}

// imageURL builds the placeholder image reference for a product name.
func imageURL(name string) string {
	return fmt.Sprintf("https://placehold.co/600x400/0c1021/e0e0e0?text=%s",
		strings.ReplaceAll(name, " ", "+"))
}
