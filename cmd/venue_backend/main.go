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
	"time"

	"github.com/SscSPs/venue_ledger_app/internal/core/services"
	"github.com/SscSPs/venue_ledger_app/internal/handlers"
	"github.com/SscSPs/venue_ledger_app/internal/middleware"
	"github.com/SscSPs/venue_ledger_app/internal/platform/config"
	"github.com/SscSPs/venue_ledger_app/internal/repositories/memory"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// @title Venue Ledger API
// @version 1.0
// @description Booking calendar and income/expense ledger for a single venue.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Server stopped")
}

// run serves the API until ctx is cancelled, then drains in-flight requests.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	engine, err := newEngine(cfg, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.Bool("production", cfg.IsProduction))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("Shutdown signal received", slog.Duration("timeout", cfg.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// newEngine wires the in-memory ledgers into a gin engine with the global middleware chain.
func newEngine(cfg *config.Config, logger *slog.Logger) (*gin.Engine, error) {
	repos := memory.NewRepositoryProvider()
	serviceContainer := services.NewServiceContainer(repos)

	rateLimiter, err := middleware.NewMemoryLimiter(cfg.RateLimit)
	if err != nil {
		return nil, err
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.FrontendBaseURL),
		middleware.RateLimit(rateLimiter),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("set trusted proxies: %w", err)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Routes registered")
	return r, nil
}
