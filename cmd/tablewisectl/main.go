package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/tablewise/tablewise/internal/cli/tablewisectl"
	"github.com/tablewise/tablewise/internal/config"
	"github.com/tablewise/tablewise/internal/observability"
)

func main() {
	cfg, err := config.LoadFromEnv("tablewisectl")
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	code := tablewisectl.Run(ctx, os.Args[1:], tablewisectl.Options{
		URL:     cfg.Engine.URL,
		Timeout: cfg.Engine.OpTimeout,
		Archive: cfg.Archive,
		Logger:  logger,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	})
	stop()
	os.Exit(code)
}
