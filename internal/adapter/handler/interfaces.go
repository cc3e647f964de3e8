package handler

import (
	"context"

	"github.com/marcos-nsantos/media-ingest/internal/domain/entity"
	"github.com/marcos-nsantos/media-ingest/internal/pkg/pagination"
	"github.com/marcos-nsantos/media-ingest/internal/usecase/audit"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type IngestService interface {
	Handle(ctx context.Context, addrs []entity.ObjectAddress) *entity.Summary
}

type AuditService interface {
	List(ctx context.Context, input audit.ListInput) ([]entity.IngestionRecord, *pagination.Info, error)
}
