package audit

import (
	"context"
	"fmt"

	"github.com/marcos-nsantos/media-ingest/internal/adapter/repository"
	"github.com/marcos-nsantos/media-ingest/internal/domain"
	"github.com/marcos-nsantos/media-ingest/internal/domain/entity"
	"github.com/marcos-nsantos/media-ingest/internal/pkg/pagination"
)

// Service exposes the recorded ingestion outcomes, mostly so quarantined
// objects can be reviewed.
type Service struct {
	records repository.IngestionRepository
}

func NewService(records repository.IngestionRepository) *Service {
	return &Service{records: records}
}

type ListInput struct {
	Page        int
	PerPage     int
	Disposition string
	Bucket      string
}

func (s *Service) List(ctx context.Context, input ListInput) ([]entity.IngestionRecord, *pagination.Info, error) {
	disposition := entity.Disposition(input.Disposition)
	if disposition != "" && !disposition.IsValid() {
		return nil, nil, fmt.Errorf("%w: %q", domain.ErrInvalidDisposition, input.Disposition)
	}

	params := repository.IngestionListParams{
		Pagination:  pagination.NewParams(input.Page, input.PerPage),
		Disposition: disposition,
		Bucket:      input.Bucket,
	}

	records, pageInfo, err := s.records.List(ctx, params)
	if err != nil {
		return nil, nil, fmt.Errorf("listing ingestions: %w", err)
	}

	return records, pageInfo, nil
}
