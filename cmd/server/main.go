// Suggestio - Collaborative Product Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/suggestio

// Package main is the entry point for the Suggestio server.
//
// Suggestio serves anonymous, cookie-keyed product recommendations over a
// static catalog. Startup initializes components in order:
//
//  1. Configuration: environment variables and optional config file (Koanf v2)
//  2. Data: the product catalog and interaction log CSVs, loaded once into
//     memory (a missing or malformed file is fatal)
//  3. Recommendation engine: the tiered collaborative filter
//  4. Explainer chain: Gemini client behind a circuit breaker and an LRU
//     cache, or the placeholder-only path when disabled
//  5. HTTP server: chi router under a suture supervision tree
//
// # Configuration
//
// All settings have defaults; common overrides:
//
//	export PORT=8080
//	export PRODUCTS_PATH=data/products.csv
//	export BEHAVIOR_PATH=data/user_behavior.csv
//	export EXPLAIN_ENABLED=true
//	export GEMINI_API_KEY=your-api-key
//	export CORS_ORIGINS=https://shop.example
//
// # Signal Handling
//
// SIGINT and SIGTERM trigger graceful shutdown: the listener stops accepting
// connections and in-flight requests get the configured shutdown timeout to
// drain.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/tomtom215/suggestio/internal/api"
	"github.com/tomtom215/suggestio/internal/cache"
	"github.com/tomtom215/suggestio/internal/catalog"
	"github.com/tomtom215/suggestio/internal/config"
	"github.com/tomtom215/suggestio/internal/explain"
	"github.com/tomtom215/suggestio/internal/identity"
	"github.com/tomtom215/suggestio/internal/logging"
	"github.com/tomtom215/suggestio/internal/recommend"
	"github.com/tomtom215/suggestio/internal/supervisor"
	"github.com/tomtom215/suggestio/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings.
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", api.Version).
		Str("addr", cfg.Server.Addr()).
		Msg("Starting Suggestio")

	// Load the static tables. Serving over partial data would skew every
	// recommendation, so any load failure is fatal.
	store, err := catalog.LoadStore(cfg.Data.ProductsPath)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Data.ProductsPath).Msg("Failed to load product catalog")
	}
	log, err := catalog.LoadLog(cfg.Data.BehaviorPath)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Data.BehaviorPath).Msg("Failed to load interaction log")
	}
	logging.Info().
		Int("products", store.Len()).
		Int("profiles_with_history", log.Len()).
		Msg("Data loaded")

	resolver := identity.NewResolver(cfg.Profiles.Count, cfg.Profiles.Start)
	engine := recommend.NewEngine(cfg.Recommend.K, store, log, cfg.Recommend.Seed)
	explainer := buildExplainer(cfg)

	handler := api.NewHandler(cfg, resolver, engine, explainer, store, log)
	router := api.NewRouter(cfg, handler)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.Config{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.Add(services.NewHTTPService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", cfg.Server.Addr()).Msg("HTTP server listening")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Fatal().Err(err).Msg("Supervisor tree exited with error")
	}
	logging.Info().Msg("Shutdown complete")
}

// buildExplainer assembles the explanation chain from configuration:
// Gemini -> circuit breaker -> LRU cache. When generation is disabled the
// chain collapses to the placeholder-only explainer.
func buildExplainer(cfg *config.Config) explain.Explainer {
	if !cfg.Explain.Enabled {
		logging.Info().Msg("Explanation generation disabled, serving placeholders")
		return explain.Disabled{}
	}

	gemini := explain.NewGeminiClient(explain.GeminiOptions{
		BaseURL:         cfg.Explain.BaseURL,
		Model:           cfg.Explain.Model,
		APIKey:          cfg.Explain.APIKey,
		Mode:            cfg.Explain.Mode,
		Timeout:         cfg.Explain.Timeout,
		PerItemInterval: cfg.Explain.PerItemInterval,
	})

	logging.Info().
		Str("model", cfg.Explain.Model).
		Str("mode", cfg.Explain.Mode).
		Msg("Explanation generation enabled")

	return explain.NewCached(
		explain.NewBreaker(gemini),
		cache.NewLRU(cfg.Explain.CacheSize, cfg.Explain.CacheTTL),
	)
}
