// Package main implements the entry point for the Tasks API server,
// a task-tracking HTTP service persisting to a local JSON file with an
// optional Redis read-through cache.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/phrazzld/tasks-api/internal/api"
	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/platform/rediscache"
	"github.com/phrazzld/tasks-api/internal/service"
	"github.com/phrazzld/tasks-api/internal/store"
)

// shutdownTimeout bounds how long in-flight requests may take to drain
// after a termination signal.
const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

// run loads configuration, sets up logging, wires dependencies, and serves
// until a termination signal arrives.
func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Set up structured logging using the configured log level
	appLogger := logger.Setup(cfg.Server)

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"data_file", cfg.Storage.DataFile,
		"cache_ttl_seconds", cfg.Cache.TTLSeconds)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bootstrap the file store; this creates the data directory and an
	// empty task list on first startup.
	taskStore, err := store.NewFileStore(cfg.Storage.DataFile)
	if err != nil {
		return fmt.Errorf("failed to initialize task store: %w", err)
	}

	// Establish the process-wide cache handle. A nil handle means the
	// cache backend was unreachable and the service runs without it.
	var listCache service.ListCache
	if cache := rediscache.Connect(ctx, cfg.Cache.RedisURL, appLogger); cache != nil {
		listCache = cache
		defer func() {
			if err := cache.Close(); err != nil {
				slog.Warn("failed to close cache handle", "error", err)
			}
		}()
	}

	// Inject dependencies into the service and handlers.
	taskService := service.NewTaskService(
		taskStore,
		listCache,
		time.Duration(cfg.Cache.TTLSeconds)*time.Second,
		appLogger,
	)

	router := api.NewRouter(
		api.NewTaskHandler(taskService, appLogger),
		api.NewHealthHandler(taskService),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", srv.Addr)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutdown signal received, draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
