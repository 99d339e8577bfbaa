package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"funds-mover/internal/config"
	"funds-mover/internal/database"
	"funds-mover/internal/handlers"
	"funds-mover/internal/logger"
	"funds-mover/internal/middleware"
	"funds-mover/internal/repositories"
	"funds-mover/internal/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Log, os.Stdout)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn("failed to close balance store", "error", err)
		}
	}()

	metrics := services.NewPrometheusMetrics()

	ledger := services.NewLedgerService(store, cfg.Storage.Key, log).WithMetrics(metrics)
	loaded, err := ledger.Initialize()
	if err != nil {
		return fmt.Errorf("failed to initialize ledger: %w", err)
	}
	log.Info("ledger ready",
		"backend", cfg.Storage.Backend,
		"used_defaults", loaded.UsedDefaults,
		"defaulted_accounts", loaded.DefaultedAccounts,
	)

	transfers := services.NewTransferFlowService(ledger, services.NewPinVerifier(), metrics, log)

	limiter := middleware.NewRateLimiter(cfg.Security)
	go limiter.RunCleanup(ctx)

	e := newEcho(cfg, log, limiter)

	routes := &handlers.Routes{
		Accounts:     handlers.NewAccountHandler(ledger, log),
		Transfers:    handlers.NewTransferHandler(transfers, ledger, log),
		Transactions: handlers.NewTransactionHandler(services.NewHistoryService(), log),
		Health:       handlers.NewHealthCheckHandler(ledger, log),
	}
	routes.Register(e)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("starting server", "address", server.Addr, "environment", cfg.Server.Environment)
		if err := e.StartServer(server); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server", "timeout", cfg.Server.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

func newEcho(cfg *config.Config, log *slog.Logger, limiter *middleware.RateLimiter) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewErrorHandler(log, prometheus.DefaultRegisterer).Handle

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(middleware.PanicRecovery(log))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost},
		AllowHeaders: []string{echo.HeaderContentType, middleware.TraceIDHeader},
	}))
	e.Use(echomiddleware.BodyLimit("64K"))
	e.Use(limiter.Middleware())

	return e
}

// openStore returns the balance store for the configured backend and a func
// that releases it
func openStore(cfg *config.Config, log *slog.Logger) (repositories.KeyValueStoreInterface, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Storage.Backend {
	case config.StorageBackendMemory:
		log.Warn("using in-memory balance store, balances are lost on restart")
		return repositories.NewMemoryStore(), noop, nil

	case config.StorageBackendFile:
		return repositories.NewFileStore(cfg.Storage.FilePath), noop, nil

	case config.StorageBackendSQLite:
		db, err := database.InitializeSQLite(cfg.Storage.SQLitePath, log)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return withBreaker(repositories.NewGormKeyValueStore(db.DB), cfg.Storage), db.Close, nil

	case config.StorageBackendPostgres:
		db, err := database.Initialize(cfg, log)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open postgres store: %w", err)
		}
		return withBreaker(repositories.NewGormKeyValueStore(db.DB), cfg.Storage), db.Close, nil

	default:
		return nil, nil, fmt.Errorf("unsupported storage backend %q", cfg.Storage.Backend)
	}
}

// withBreaker stops hammering a database that keeps failing. A non-positive
// failure threshold disables it.
func withBreaker(store repositories.KeyValueStoreInterface, cfg config.StorageConfig) repositories.KeyValueStoreInterface {
	if cfg.BreakerMaxFailures <= 0 {
		return store
	}

	breaker := repositories.DefaultBreakerConfig()
	breaker.MaxFailures = cfg.BreakerMaxFailures
	breaker.ResetTimeout = cfg.BreakerResetTimeout

	return repositories.NewBreakerStore(store, breaker)
}
