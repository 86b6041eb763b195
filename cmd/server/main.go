package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/Xausdorf/pix-brcode/internal/app"
	"github.com/Xausdorf/pix-brcode/internal/infrastructure/config"
	"github.com/Xausdorf/pix-brcode/internal/infrastructure/logging"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(os.Getenv("BRCODE_CONFIG"))
	if err != nil {
		log.Error().Err(err).Msg("config load failed")
		cancel()
		os.Exit(1)
	}

	logger := logging.Init(cfg.Log.Level, cfg.Log.Format, os.Stdout)

	if err := app.Run(ctx, cfg, logger); err != nil {
		logger.Error().Err(err).Msg("server stopped")
		cancel()
		os.Exit(1)
	}
}
