package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"room-sync/clock"
	"room-sync/contract"
	"room-sync/domain"
	"room-sync/infrastructure/grpc/server"
	"room-sync/infrastructure/storage"
	"room-sync/infrastructure/websocket"
	"room-sync/internal"
	"room-sync/observability"
	"room-sync/runtime"
	"room-sync/runtime/workers"
	"syscall"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const shutdownTimeout = 10 * time.Second

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component, serves until a signal or a fatal error, then
// shuts down in reverse order so deferred cleanup always runs.
func run() (int, error) {
	// 1. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, err
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Storage
	captures := storage.NewCaptureRepository(config.CaptureRoot, logger)
	metadata, closeMetadata, err := openMetadata(ctx, config, logger)
	if err != nil {
		return exitRuntime, err
	}
	defer closeMetadata()

	// 3. Engine & Orchestration
	realClock := clock.Real()
	stats := observability.NewEngineStats()
	// Clients get pinged well within the pong wait.
	hub := websocket.NewHub(logger, config.ConnectionBufferSize, config.WriteTimeout, config.PingTimeout*9/10)
	persister := workers.NewPersistenceWorker(logger, config.PersistenceBufferSize, config.PersistenceTimeout)
	activity := runtime.NewActivityMonitor(realClock)
	repair := runtime.NewRepairCenter(logger, activity, config.MinRepairWaitTime)
	engine := runtime.NewSyncEngine(
		logger, realClock, hub, repair, activity,
		persister, captures, metadata, stats,
		runtime.EngineConfig{
			ServerName:               config.ServerName,
			ReconnectOnUnknownReason: config.ReconnectOnUnknownReason,
		})

	sup := workers.NewSupervisor(logger, config.RestartInterval)
	orchestrator := runtime.NewOrchestrator(logger, sup, engine, config.CommandBufferSize)
	player := workers.NewPlaybackWorker(logger, realClock, captures, orchestrator, config.PlaybackBufferSize)
	engine.SetPlayer(player)
	orchestrator.Add(
		persister,
		player,
		workers.NewStatsReporter(logger, stats, config.StatsInterval),
	)

	errChan := make(chan error, 3)

	// The orchestrator outlives the signal context so Stop can flush it.
	go func() {
		logger.Info("Starting orchestrator...")
		if err := orchestrator.Start(context.WithoutCancel(ctx)); err != nil {
			errChan <- fmt.Errorf("orchestrator error: %w", err)
		}
	}()

	// 4. WebSocket server
	mux := http.NewServeMux()
	mux.Handle("/ws", websocket.NewHandler(logger, hub, orchestrator, websocket.HandlerConfig{
		ReadLimit:   config.ReadLimit,
		PingTimeout: config.PingTimeout,
	}))
	if logger.Enabled(ctx, slog.LevelDebug) {
		inspector := internal.DebugInspector{
			Stats: func() any { return stats.Snapshot() },
			Captures: func(context.Context) ([]domain.Capture, error) {
				return captures.List()
			},
		}
		if metadata != nil {
			inspector.Captures = metadata.ListCaptures
			inspector.Events = metadata.ListConnectionEvents
		}
		inspector.Register(mux, "/debug")
		logger.Info("Debug inspector available", "url", fmt.Sprintf("http://%s:%d/debug/stats", config.Host, config.Port))
	}
	httpServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", config.Host, config.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("Starting websocket server", "address", httpServer.Addr, "server_name", config.ServerName)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 5. Health server
	healthAddress := fmt.Sprintf("%s:%d", config.Host, config.HealthPort)
	listener, err := net.Listen("tcp", healthAddress)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", healthAddress, err)
	}
	health := server.NewHealthServer(logger, orchestrator, time.Second)
	go func() {
		if err := health.Serve(ctx, listener); err != nil {
			errChan <- err
		}
	}()

	// 6. Wait for Stop or Error
	code := exitOK
	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case runErr = <-errChan:
		code = exitRuntime
	}

	// 7. Graceful shutdown
	logger.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP shutdown incomplete", "error", err)
	}
	health.GracefulStop()
	stop()
	if err := orchestrator.Stop(shutdownCtx); err != nil {
		logger.Warn("Orchestrator shutdown incomplete", "error", err)
	}
	logger.Info("Program stopped cleanly")

	return code, runErr
}

// openMetadata returns the configured metadata store, or nil when the
// driver is "none".
func openMetadata(ctx context.Context, config internal.Config, logger *slog.Logger) (contract.IMetadataStore, func(), error) {
	switch config.MetadataDriver {
	case internal.DriverSQLite:
		store, err := storage.NewSQLiteMetadataStore(config.SQLitePath, config.SQLitePoolSize, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("sqlite opening failed: %w", err)
		}
		return store, func() {
			logger.Info("Closing SQLite...")
			_ = store.Close()
		}, nil
	case internal.DriverBadger:
		db, err := badger.Open(buildBadgerOpts(ctx, config, logger))
		if err != nil {
			return nil, nil, fmt.Errorf("database opening failed: %w", err)
		}
		return storage.NewBadgerMetadataStore(db, logger), func() {
			logger.Info("Closing BadgerDB...")
			_ = db.Close()
		}, nil
	}
	return nil, func() {}, nil
}

func buildBadgerOpts(ctx context.Context, config internal.Config, logger *slog.Logger) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)
	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG)
	} else {
		options = options.WithLoggingLevel(badger.WARNING)
	}
	return options
}
