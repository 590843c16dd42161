package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/cityzen/tripbuddy/internal/client/cli"
	"github.com/cityzen/tripbuddy/internal/client/config"
	"github.com/cityzen/tripbuddy/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, logging.ParseLevel(cfg.LogLevel))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "failed to start", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
