package bootstrap

import (
	"io"
	"log/slog"

	"github.com/osse101/BoobaMarket_Go/internal/config"
	"github.com/osse101/BoobaMarket_Go/internal/logger"
)

// SetupLogger installs the process-wide logger described by cfg and writing to w.
// Source locations are only attached in development.
func SetupLogger(cfg *config.Config, w io.Writer) {
	logger.InitLoggerWithWriter(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDevelopment(),
	), w)

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	slog.Info(LogMsgStartingBoobaMarket,
		"environment", cfg.Environment,
		"version", cfg.Version)
	slog.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"api_key_enabled", cfg.APIKey != "")
}
