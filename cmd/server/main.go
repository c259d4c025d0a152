package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smartsignals/internal/logger"
	"smartsignals/internal/server"
	"smartsignals/internal/trace"
)

func main() {
	if err := initializeSystem(); err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := loadConfig(ctx)
	if err != nil {
		os.Exit(1)
	}

	eng := initializeEngine(ctx, cfg)

	srv := server.New(cfg, eng)
	srv.Start(ctx)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)

	// Background refresher keeps /api/signal/last fresh between requests.
	var tickC <-chan time.Time
	if cfg.PollSeconds > 0 {
		tick := time.NewTicker(time.Duration(cfg.PollSeconds) * time.Second)
		defer tick.Stop()
		tickC = tick.C
		eng.Compute(ctx)
	}

	logger.Info(ctx, "Service started", "name", cfg.Name, "data_source", cfg.DataSource)

	for {
		select {
		case <-tickC:
			eng.Compute(ctx)
		case <-sigc:
			logger.Info(ctx, "Shutting down...")
			if err := srv.Stop(ctx); err != nil {
				logger.ErrorWithErr(ctx, "Server shutdown failed", err)
			}
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			_ = trace.Shutdown(shutdownCtx)
			shutdownCancel()
			return
		case <-ctx.Done():
			return
		}
	}
}
