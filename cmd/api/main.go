package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/media-ingest/internal/adapter/handler"
	"github.com/marcos-nsantos/media-ingest/internal/adapter/repository"
	"github.com/marcos-nsantos/media-ingest/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/media-ingest/internal/bootstrap"
	"github.com/marcos-nsantos/media-ingest/internal/infrastructure/cache"
	"github.com/marcos-nsantos/media-ingest/internal/infrastructure/config"
	"github.com/marcos-nsantos/media-ingest/internal/infrastructure/database"
	"github.com/marcos-nsantos/media-ingest/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/media-ingest/internal/infrastructure/observability"
	"github.com/marcos-nsantos/media-ingest/internal/infrastructure/server"
	"github.com/marcos-nsantos/media-ingest/internal/usecase/audit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log, "media-ingest")
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// Audit trail
	var pool *pgxpool.Pool
	var records repository.IngestionRepository
	if cfg.Database.Enabled {
		pool, err = database.NewPostgresPool(ctx, cfg.Database)
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		defer pool.Close()

		if err := database.RunMigrations(ctx, pool, cfg.Database.MigrationsPath); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
		records = postgres.NewIngestionRepo(pool)
	}

	// Pipeline
	pipeline, err := bootstrap.NewPipeline(ctx, cfg, records, logger)
	if err != nil {
		logger.Fatal("failed to build ingest pipeline", zap.Error(err))
	}

	// Handlers
	ingestHandler := handler.NewIngestHandler(pipeline.Ingest, logger.Named("http"))

	var ingestionHandler *handler.IngestionHandler
	if records != nil {
		ingestionHandler = handler.NewIngestionHandler(audit.NewService(records))
	}

	// Middleware
	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisClient.Close()
		rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit, logger)
	}

	// Router
	router := server.NewRouter(server.RouterConfig{
		IngestHandler:    ingestHandler,
		IngestionHandler: ingestionHandler,
		RateLimiter:      rateLimiter,
		Logger:           logger,
		Environment:      cfg.Server.Environment,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Handler:         router.Engine(),
		Logger:          logger,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit

	if err := srv.Shutdown(context.Background()); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}
