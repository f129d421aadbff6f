// @title Booba Market API
// @version 1.0
// @description Marketplace for trading collectible Boobas for in-game currency.
// @BasePath /api/v1
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/BoobaMarket_Go/internal/bootstrap"
	"github.com/osse101/BoobaMarket_Go/internal/config"
	"github.com/osse101/BoobaMarket_Go/internal/database/postgres"
	"github.com/osse101/BoobaMarket_Go/internal/handler"
	"github.com/osse101/BoobaMarket_Go/internal/marketplace"
	"github.com/osse101/BoobaMarket_Go/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("%v", err)
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}

	bootstrap.SetupLogger(cfg, os.Stdout)
	for _, w := range warnings {
		slog.Warn(bootstrap.LogMsgConfigWarning, "warning", w)
	}

	handler.InitValidator()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := bootstrap.ConnectDatabase(ctx, cfg)
	if err != nil {
		slog.Error("Database startup failed", "error", err)
		os.Exit(1)
	}

	repo := postgres.NewMarketplaceRepository(dbPool)
	market := marketplace.NewService(repo)

	srv := server.NewServer(server.Options{
		Port:               cfg.Port,
		APIKey:             cfg.APIKey,
		TrustedProxies:     cfg.TrustedProxies,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		Version:            cfg.Version,
	}, dbPool, market)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	exitCode := 0
	select {
	case <-ctx.Done():
	case err, ok := <-serverErr:
		if ok {
			slog.Error("Server failed", "error", err)
			exitCode = 1
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		DBPool: dbPool,
	})

	if exitCode != 0 {
		cancel()
		os.Exit(exitCode)
	}
}
