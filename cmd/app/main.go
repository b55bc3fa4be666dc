// @title Project Life API
// @version 1.0
// @description Turns goals into quest chains and tracks level, gold, HP and SP.
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/ProjectLife_Go/internal/bootstrap"
	"github.com/osse101/ProjectLife_Go/internal/concurrency"
	"github.com/osse101/ProjectLife_Go/internal/config"
	"github.com/osse101/ProjectLife_Go/internal/logger"
	"github.com/osse101/ProjectLife_Go/internal/progression"
	"github.com/osse101/ProjectLife_Go/internal/server"
	"github.com/osse101/ProjectLife_Go/internal/sse"
	"github.com/osse101/ProjectLife_Go/internal/user"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	warnings, _ := cfg.ValidateWithWarnings()
	for _, w := range warnings {
		logger.Warn(bootstrap.LogMsgConfigurationWarning, "warning", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.InitializeStore(ctx, cfg)
	if err != nil {
		return err
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		store.Close()
		return err
	}

	hub := sse.NewHub()
	hub.Start()

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{EventBus: bus, SSEHub: hub}); err != nil {
		hub.Stop()
		_ = publisher.Shutdown(context.Background())
		store.Close()
		return err
	}

	goalPlanner, err := bootstrap.InitializePlanner(ctx, cfg)
	if err != nil {
		hub.Stop()
		_ = publisher.Shutdown(context.Background())
		store.Close()
		return err
	}

	// One lock manager so user recovery and quest completion serialize per user
	locks := concurrency.NewLockManager()
	userService := user.NewService(store, locks, publisher, user.CacheConfig{
		Size: cfg.UserCacheSize,
		TTL:  cfg.UserCacheTTL,
	})
	engine := progression.NewEngine(store, locks, publisher, userService)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
	}, store, userService, engine, goalPlanner, hub)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case err, ok := <-serverErr:
		if ok {
			logger.Error("Server failed", "error", err)
			runErr = err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		SSEHub:             hub,
		Planner:            goalPlanner,
		ResilientPublisher: publisher,
		Store:              store,
	})
	return runErr
}
