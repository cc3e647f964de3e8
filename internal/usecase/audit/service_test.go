package audit_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/marcos-nsantos/media-ingest/internal/adapter/repository"
	"github.com/marcos-nsantos/media-ingest/internal/domain"
	"github.com/marcos-nsantos/media-ingest/internal/domain/entity"
	"github.com/marcos-nsantos/media-ingest/internal/mocks"
	"github.com/marcos-nsantos/media-ingest/internal/pkg/pagination"
	"github.com/marcos-nsantos/media-ingest/internal/usecase/audit"
)

func TestService_List(t *testing.T) {
	t.Run("lists quarantined records", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockIngestionRepository(ctrl)
		svc := audit.NewService(repo)

		records := []entity.IngestionRecord{
			{ID: uuid.New(), Bucket: "media", Key: "uploads/bad.png", Disposition: entity.DispositionQuarantined},
		}
		info := pagination.NewParams(2, 10).Info(11)

		repo.EXPECT().List(gomock.Any(), repository.IngestionListParams{
			Pagination:  pagination.Params{Page: 2, PerPage: 10},
			Disposition: entity.DispositionQuarantined,
			Bucket:      "media",
		}).Return(records, info, nil)

		got, gotInfo, err := svc.List(context.Background(), audit.ListInput{
			Page:        2,
			PerPage:     10,
			Disposition: "quarantined",
			Bucket:      "media",
		})

		require.NoError(t, err)
		assert.Equal(t, records, got)
		assert.Equal(t, info, gotInfo)
	})

	t.Run("applies default pagination", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockIngestionRepository(ctrl)
		svc := audit.NewService(repo)

		repo.EXPECT().List(gomock.Any(), repository.IngestionListParams{
			Pagination: pagination.Params{Page: pagination.DefaultPage, PerPage: pagination.DefaultPerPage},
		}).Return(nil, pagination.NewParams(1, 20).Info(0), nil)

		_, info, err := svc.List(context.Background(), audit.ListInput{})

		require.NoError(t, err)
		assert.Equal(t, 1, info.TotalPages)
	})

	t.Run("rejects unknown dispositions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockIngestionRepository(ctrl)
		svc := audit.NewService(repo)

		_, _, err := svc.List(context.Background(), audit.ListInput{Disposition: "deleted"})

		assert.ErrorIs(t, err, domain.ErrInvalidDisposition)
	})

	t.Run("wraps repository errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockIngestionRepository(ctrl)
		svc := audit.NewService(repo)

		cause := errors.New("connection refused")
		repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil, cause)

		_, _, err := svc.List(context.Background(), audit.ListInput{})

		assert.ErrorIs(t, err, cause)
	})
}
