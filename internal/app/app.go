package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/kincaid/internal/config"
	"github.com/heartmarshall/kincaid/internal/metrics"
	"github.com/heartmarshall/kincaid/internal/service/analysis"
	"github.com/heartmarshall/kincaid/internal/transport/middleware"
	"github.com/heartmarshall/kincaid/internal/transport/rest"
	"github.com/heartmarshall/kincaid/pkg/readability"
)

// Run is the application entry point. It loads configuration, builds the
// analyzer and HTTP stack, and serves until ctx is canceled, then shuts
// the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	srv, cleanup, err := NewServer(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	return Serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// NewServer wires the analyzer, metrics, handlers and middleware into an
// http.Server. cleanup releases background resources and must be called
// after the server stops.
func NewServer(cfg *config.Config, logger *slog.Logger) (*http.Server, func(), error) {
	analyzer, err := readability.New()
	if err != nil {
		return nil, nil, fmt.Errorf("build analyzer: %w", err)
	}
	catalog := analyzer.Catalog()

	m := metrics.New()

	svc := analysis.NewService(logger, analyzer, m, cfg.Limits)

	readabilityHandler := rest.NewReadabilityHandler(svc, logger, cfg.Limits.MaxBodyBytes)
	healthHandler := rest.NewHealthHandler(svc, catalog, BuildVersion())

	mux := rest.NewRouter(readabilityHandler, healthHandler, m.Handler())

	cleanup := func() {}
	var limit middleware.Middleware
	if !cfg.RateLimit.Disabled {
		rl := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.RateLimit.IdleTTL)
		limit = rl.Limit()
		cleanup = rl.Stop
	}

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.Metrics(m),
		middleware.CORS(cfg.CORS),
		limit,
	)(mux)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("analyzer ready",
		slog.Int("add_patterns", len(catalog.AddPatterns())),
		slog.Int("deduct_patterns", len(catalog.DeductPatterns())),
		slog.Bool("rate_limit", !cfg.RateLimit.Disabled),
	)

	return srv, cleanup, nil
}

// Serve runs srv until ctx is canceled or the listener fails.
func Serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("http server stopped")
	return nil
}
