package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"smartsignals/internal/engine"
	"smartsignals/internal/logger"
	"smartsignals/internal/marketdata"
	"smartsignals/internal/metrics"
	"smartsignals/internal/news"
	"smartsignals/internal/store"
	"smartsignals/internal/trace"
)

// initializeSystem initializes logger and tracer
func initializeSystem() error {
	// Load environment variables
	_ = godotenv.Load()

	// Initialize logger
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Initialize tracer
	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}

	return nil
}

// loadConfig loads and returns the configuration
func loadConfig(ctx context.Context) (*store.Config, error) {
	path := os.Getenv("SIGNALS_CONFIG")
	if path == "" {
		path = "config.yaml"
	}
	cfg, err := store.LoadConfig(path)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err)
		return nil, err
	}
	return cfg, nil
}

// initializeEngine wires providers, analyzer and metrics into the signal engine
func initializeEngine(ctx context.Context, cfg *store.Config) *engine.Engine {
	prices := marketdata.NewProvider(ctx, cfg)

	switch cfg.DataSource {
	case "KITE":
		logger.Info(ctx, "Using Zerodha Kite historical candles")
	case "YAHOO":
		logger.Info(ctx, "Using Yahoo Finance chart data")
	default:
		logger.Info(ctx, "Using STATIC mock candle data for testing")
	}

	headlines := news.NewService(cfg)
	analyzer := news.NewLexiconAnalyzer()
	rec := metrics.New()

	return engine.New(cfg, prices, headlines, analyzer, rec)
}
