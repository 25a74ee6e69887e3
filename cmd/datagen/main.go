// Suggestio - Collaborative Product Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/suggestio

// Package main generates the synthetic catalog and interaction CSVs the
// server loads at startup.
//
// Usage:
//
//	datagen [-out data] [-products 200] [-interactions 1200] [-seed 0]
package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/tomtom215/suggestio/internal/datagen"
	"github.com/tomtom215/suggestio/internal/logging"
)

func main() {
	var (
		outDir       = flag.String("out", "data", "output directory for the CSV files")
		products     = flag.Int("products", 200, "number of products to generate")
		profiles     = flag.Int("profiles", 50, "number of synthetic profiles")
		profileStart = flag.Int("profile-start", 101, "first profile id")
		interactions = flag.Int("interactions", 1200, "number of view events to draw")
		bias         = flag.Float64("bias", 0.8, "probability a view lands in the profile's preferred category")
		seed         = flag.Int64("seed", 0, "random seed (0 = time-based)")
	)
	flag.Parse()

	logging.Init(logging.Config{Level: "info", Format: "console"})

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		logging.Fatal().Err(err).Str("dir", *outDir).Msg("Failed to create output directory")
	}

	g := datagen.New(datagen.Options{
		Products:       *products,
		Profiles:       *profiles,
		ProfileStart:   *profileStart,
		Interactions:   *interactions,
		PreferenceBias: *bias,
		Seed:           *seed,
	})

	items := g.Products()
	views := g.Interactions(items)

	productsPath := filepath.Join(*outDir, "products.csv")
	if err := datagen.WriteProducts(productsPath, items); err != nil {
		logging.Fatal().Err(err).Msg("Failed to write product catalog")
	}
	logging.Info().Int("products", len(items)).Str("path", productsPath).Msg("Product catalog written")

	behaviorPath := filepath.Join(*outDir, "user_behavior.csv")
	if err := datagen.WriteBehavior(behaviorPath, views); err != nil {
		logging.Fatal().Err(err).Msg("Failed to write interaction log")
	}
	logging.Info().Int("interactions", len(views)).Str("path", behaviorPath).Msg("Interaction log written")
}
