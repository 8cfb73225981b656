package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpadapter "github.com/sentivora/mlr-automation/internal/adapter/http"
	"github.com/sentivora/mlr-automation/internal/adapter/planwriter"
	"github.com/sentivora/mlr-automation/internal/adapter/postgres"
	"github.com/sentivora/mlr-automation/internal/adapter/storage"
	"github.com/sentivora/mlr-automation/internal/adapter/usecase"
	"github.com/sentivora/mlr-automation/internal/config"
	"github.com/sentivora/mlr-automation/internal/core/port"
	"github.com/sentivora/mlr-automation/internal/db"
	"github.com/sentivora/mlr-automation/internal/images"
)

// main is the entry point of the deck-assembly service. It loads
// configuration, optionally runs database migrations, initializes the
// database pool, storage backend and assembly pipeline, then starts the
// HTTP server. On receiving a termination signal it gracefully shuts the
// server down.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// A local .env is optional; environment variables win.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// The geometry catalog must be internally consistent before any
	// request is served.
	if err = usecase.ValidateCatalog(); err != nil {
		logger.Error("geometry catalog invalid", slog.Any("error", err))
		os.Exit(1)
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	var blobs port.BlobStorage
	switch cfg.Storage.Backend {
	case "minio":
		blobs, err = storage.NewMinio(ctx,
			cfg.Storage.MinioEndpoint,
			cfg.Storage.MinioAccessKey,
			cfg.Storage.MinioSecretKey,
			cfg.Storage.MinioBucket,
			cfg.Storage.MinioUseSSL)
	default:
		blobs, err = storage.NewLocal(cfg.Storage.Dir)
	}
	if err != nil {
		logger.Error("storage init error", slog.Any("error", err))
		os.Exit(1)
	}

	runs := postgres.NewRunRepository(pool)
	svc := usecase.NewAssemblyUseCase(runs, planwriter.New(), blobs,
		images.Dimensions, cfg.Assembly.MaxConcurrent, logger)

	handler := httpadapter.NewHandler(svc, blobs, cfg.Storage.UploadDir, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
