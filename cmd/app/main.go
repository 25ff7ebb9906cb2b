package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"usertodo/config"
	"usertodo/di"
	"usertodo/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title usertodo API
// @version 1.0
// @description Users and their todos over PostgreSQL.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("Service stopped with an error")
	}
}

func run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err //nolint:wrapcheck
	}

	server, cleanup, err := di.InitializeService()
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Serve(ctx) //nolint:wrapcheck
}
