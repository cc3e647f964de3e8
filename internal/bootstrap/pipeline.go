// Package bootstrap assembles the ingestion pipeline from configuration. It
// is shared by the HTTP server and the one-shot CLI.
package bootstrap

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	adaptermoderation "github.com/marcos-nsantos/media-ingest/internal/adapter/moderation"
	"github.com/marcos-nsantos/media-ingest/internal/adapter/repository"
	adapterstorage "github.com/marcos-nsantos/media-ingest/internal/adapter/storage"
	"github.com/marcos-nsantos/media-ingest/internal/infrastructure/cloud"
	"github.com/marcos-nsantos/media-ingest/internal/infrastructure/config"
	"github.com/marcos-nsantos/media-ingest/internal/infrastructure/moderation"
	"github.com/marcos-nsantos/media-ingest/internal/infrastructure/storage"
	"github.com/marcos-nsantos/media-ingest/internal/usecase/ingest"
	moderationUC "github.com/marcos-nsantos/media-ingest/internal/usecase/moderation"
)

// Pipeline holds the wired orchestrator and the store it writes to.
type Pipeline struct {
	Ingest *ingest.Service
	Store  adapterstorage.ObjectStore
}

// NewPipeline builds the orchestrator. records may be nil.
func NewPipeline(ctx context.Context, cfg *config.Config, records repository.IngestionRepository, logger *zap.Logger) (*Pipeline, error) {
	store, detector, err := newBackends(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	moderator := moderationUC.NewService(
		detector,
		cfg.Moderation.MinConfidence,
		cfg.Moderation.Timeout,
		logger.Named("moderation"),
	)

	svc := ingest.NewService(
		store,
		storage.NewImageCodec(),
		storage.NewRenditionPlanner(),
		moderator,
		records,
		IngestConfig(cfg.Ingest),
		logger.Named("ingest"),
	)

	return &Pipeline{Ingest: svc, Store: store}, nil
}

// IngestConfig maps the environment settings onto the orchestrator's config.
func IngestConfig(cfg config.IngestConfig) ingest.Config {
	return ingest.Config{
		QuarantineBucket: cfg.QuarantineBucket,
		Renditions:       cfg.Renditions,
		Quality:          cfg.Quality,
		Concurrency:      cfg.Concurrency,
	}
}

func newBackends(ctx context.Context, cfg *config.Config, logger *zap.Logger) (adapterstorage.ObjectStore, adaptermoderation.LabelDetector, error) {
	needsAWS := cfg.Ingest.StorageBackend == config.StorageBackendS3 || cfg.Moderation.Enabled

	var store adapterstorage.ObjectStore
	var detector adaptermoderation.LabelDetector = moderation.NoopDetector{}

	if !needsAWS {
		logger.Warn("running with in-memory storage and moderation disabled")
		return storage.NewMemoryStore(), detector, nil
	}

	awsCfg, err := cloud.LoadAWSConfig(ctx, cfg.AWS)
	if err != nil {
		return nil, nil, fmt.Errorf("configuring aws: %w", err)
	}

	switch cfg.Ingest.StorageBackend {
	case config.StorageBackendMemory:
		logger.Warn("using in-memory object store")
		store = storage.NewMemoryStore()
	default:
		store = storage.NewS3Store(awsCfg, cfg.S3)
	}

	if cfg.Moderation.Enabled {
		detector = moderation.NewRekognitionDetector(awsCfg, cfg.Moderation)
	} else {
		logger.Warn("moderation disabled, every image will be approved")
	}

	return store, detector, nil
}
