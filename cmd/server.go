package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/omdb"
	"movie-catalog/internal/usecase"
	"movie-catalog/internal/wire"
	"movie-catalog/pkg/database"
	"movie-catalog/pkg/observability"
	"movie-catalog/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	shutdownTimeout = 10 * time.Second
	sessionSweep    = time.Hour
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Starts the movie catalog API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return runServer(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}

func runServer(ctx context.Context) error {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		logger, _ = zap.NewProduction()
		logger.Warn("Failed to init file logger, using stdout", zap.Error(err))
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	shutdownTracing, err := observability.InitTracing(ctx, config.App.Name, config.Tracing, logger)
	if err != nil {
		logger.Warn("Tracing disabled", zap.Error(err))
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("Tracer shutdown failed", zap.Error(err))
		}
	}()

	// Connect to database
	db, err := database.InitDB(ctx, config.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()
	logger.Info("Database connected successfully")

	if err := database.MigrateUp(config.Database); err != nil {
		return err
	}

	metadata, closeCache := newMetadataClient(ctx, config, logger)
	defer closeCache()

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(db, repos, metadata, config, logger)

	go sweepSessions(ctx, app.Service.Auth, logger)

	srv := &http.Server{
		Addr:              ":" + config.App.Port,
		Handler:           app.Router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", srv.Addr))
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
	case <-ctx.Done():
		logger.Info("Shutting down HTTP server")
	}

	drainCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(drainCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}

// newMetadataClient builds the OMDb client, backed by Redis when REDIS_ADDR is set.
func newMetadataClient(ctx context.Context, config *utils.Config, logger *zap.Logger) (*omdb.Client, func()) {
	if !config.Redis.Enabled() {
		return omdb.NewClient(config.OMDb, nil, logger), func() {}
	}

	cache, err := omdb.NewRedisCache(ctx, config.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, metadata responses will not be cached", zap.Error(err))
		return omdb.NewClient(config.OMDb, nil, logger), func() {}
	}

	logger.Info("Metadata cache enabled", zap.String("redis", config.Redis.Addr))
	return omdb.NewClient(config.OMDb, cache, logger), func() {
		if err := cache.Close(); err != nil {
			logger.Warn("Failed to close redis", zap.Error(err))
		}
	}
}

// sweepSessions deletes expired sessions until ctx is cancelled.
func sweepSessions(ctx context.Context, auth usecase.AuthService, logger *zap.Logger) {
	ticker := time.NewTicker(sessionSweep)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := auth.CleanExpiredSessions(ctx)
			if err != nil {
				logger.Warn("Session cleanup failed", zap.Error(err))
				continue
			}
			if n > 0 {
				logger.Info("Expired sessions removed", zap.Int64("count", n))
			}
		}
	}
}
