package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/kwfilter/internal/config"
	dbRedis "github.com/kailas-cloud/kwfilter/internal/db/redis"
	"github.com/kailas-cloud/kwfilter/internal/domain/search/keyword"
	logpkg "github.com/kailas-cloud/kwfilter/internal/logger"
	"github.com/kailas-cloud/kwfilter/internal/metrics"
	resultrepo "github.com/kailas-cloud/kwfilter/internal/repository/result"
	chiTransport "github.com/kailas-cloud/kwfilter/internal/transport/chi"
	cataloguc "github.com/kailas-cloud/kwfilter/internal/usecase/catalog"
	filteruc "github.com/kailas-cloud/kwfilter/internal/usecase/filter"
	healthuc "github.com/kailas-cloud/kwfilter/internal/usecase/health"
	"github.com/kailas-cloud/kwfilter/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting kwfilter API server",
		zap.String("version", version.String()),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Password: cfg.Database.Password,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	metrics.Register()

	repo := resultrepo.New(store, cfg.Storage.KeyPrefix)

	// Pass a nil interface, not a typed nil pointer, when detection is off.
	var annotator filteruc.Annotator
	if cfg.Features.Detect {
		annotator = keyword.NewDetector(cfg.Features.Sources, cfg.Features.Extensions)
		logger.Info("Feature detection enabled",
			zap.Strings("sources", cfg.Features.Sources),
			zap.Strings("extensions", cfg.Features.Extensions),
		)
	}

	filterSvc := filteruc.New(repo, annotator).
		WithLimits(cfg.Search.DefaultLimit, cfg.Search.MaxLimit)
	catalogSvc := cataloguc.New(repo).WithMaxBatchSize(cfg.Storage.MaxBatchSize)
	healthSvc := healthuc.New(store)

	server := chiTransport.NewServer(filterSvc, catalogSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(chiTransport.JSONRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(chiTransport.WideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}
