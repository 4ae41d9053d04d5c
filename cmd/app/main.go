package main

import (
	"github.com/rs/zerolog/log"

	"tzbot/config"
	"tzbot/di"
	"tzbot/shared/logger"
)

// @title tzbot API
// @version 1.0
// @description Stores a timezone per user and tells their local time.
// @BasePath /
func main() {
	logger.InitLogger(nil)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	http, cleanup, err := di.InitializeService(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}
	defer cleanup()

	if err := http.Serve(); err != nil {
		logger.ErrorWithStack(err)
		log.Error().Err(err).Msg("HTTP server stopped")
	}
}
