// Command slotd serves the slot machine engine over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/slotengine/internal/bootstrap"
	"github.com/osse101/slotengine/internal/config"
	"github.com/osse101/slotengine/internal/logger"
	"github.com/osse101/slotengine/internal/machine"
	"github.com/osse101/slotengine/internal/server"
)

func main() {
	if err := run(); err != nil {
		logger.Error("slotd exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	initLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings()
	for _, w := range warnings {
		logger.Warn(w)
	}
	if err != nil {
		return err
	}

	logger.Info("Starting slotd",
		"environment", cfg.Environment,
		"version", cfg.Version,
		"store", cfg.StoreDriver,
		"port", cfg.Port)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}

	svc := machine.NewService(store,
		machine.WithCacheConfig(machine.CacheConfig{Size: cfg.EngineCacheSize, TTL: cfg.EngineCacheTTL}),
		machine.WithMaxSimulationWorkers(cfg.SimulationWorker),
	)
	if err := bootstrap.SeedDefaultMachine(ctx, svc, cfg); err != nil {
		_ = store.Close()
		return err
	}

	srv := server.NewServer(server.Options{
		Port:            cfg.Port,
		APIKey:          cfg.APIKey,
		TrustedProxies:  cfg.TrustedProxies,
		MaxRequestBytes: cfg.MaxRequestBytes,
	}, svc)

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		_ = store.Close()
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{Server: srv, Store: store})
	return nil
}
