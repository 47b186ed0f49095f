package main

import (
	"github.com/osse101/slotengine/internal/config"
	"github.com/osse101/slotengine/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	logger.InitLogger(logger.ForEnvironment(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
	))
}
