package repository

import (
	"context"

	"github.com/marcos-nsantos/media-ingest/internal/domain/entity"
	"github.com/marcos-nsantos/media-ingest/internal/pkg/pagination"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/repository_mocks.go -package=mocks

type IngestionRepository interface {
	Create(ctx context.Context, record *entity.IngestionRecord) error
	List(ctx context.Context, params IngestionListParams) ([]entity.IngestionRecord, *pagination.Info, error)
}

type IngestionListParams struct {
	Pagination  pagination.Params
	Disposition entity.Disposition
	Bucket      string
}
