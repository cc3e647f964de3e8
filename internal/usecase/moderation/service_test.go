package moderation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/marcos-nsantos/media-ingest/internal/domain/entity"
	"github.com/marcos-nsantos/media-ingest/internal/mocks"
	"github.com/marcos-nsantos/media-ingest/internal/usecase/moderation"
)

func TestService_Check(t *testing.T) {
	addr := entity.NewObjectAddress("media", "uploads/photo.jpg")

	t.Run("approves when no labels are returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		detector := mocks.NewMockLabelDetector(ctrl)
		svc := moderation.NewService(detector, 70, time.Second, zap.NewNop())

		detector.EXPECT().DetectLabels(gomock.Any(), addr, 70.0).Return(nil, nil)

		verdict := svc.Check(context.Background(), addr)

		approved, ok := verdict.(entity.Approved)
		require.True(t, ok)
		assert.Equal(t, 95.0, approved.Confidence)
		assert.False(t, approved.Fallback)
		assert.Equal(t, "approved", verdict.Status())
	})

	t.Run("rejects with label names and maximum confidence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		detector := mocks.NewMockLabelDetector(ctrl)
		svc := moderation.NewService(detector, 70, time.Second, zap.NewNop())

		detector.EXPECT().DetectLabels(gomock.Any(), addr, 70.0).Return([]entity.ModerationLabel{
			{Name: "Explicit", Confidence: 92},
			{Name: "Violence", Confidence: 81.5},
		}, nil)

		verdict := svc.Check(context.Background(), addr)

		rejected, ok := verdict.(entity.Rejected)
		require.True(t, ok)
		assert.Equal(t, []string{"Explicit", "Violence"}, rejected.Labels)
		assert.Equal(t, 92.0, rejected.Confidence)
	})

	t.Run("ignores labels below the threshold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		detector := mocks.NewMockLabelDetector(ctrl)
		svc := moderation.NewService(detector, 70, time.Second, zap.NewNop())

		detector.EXPECT().DetectLabels(gomock.Any(), addr, 70.0).Return([]entity.ModerationLabel{
			{Name: "Suggestive", Confidence: 69.9},
		}, nil)

		verdict := svc.Check(context.Background(), addr)

		assert.Equal(t, entity.Approved{Confidence: 95}, verdict)
	})

	t.Run("accepts a label exactly at the threshold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		detector := mocks.NewMockLabelDetector(ctrl)
		svc := moderation.NewService(detector, 70, time.Second, zap.NewNop())

		detector.EXPECT().DetectLabels(gomock.Any(), addr, 70.0).Return([]entity.ModerationLabel{
			{Name: "Suggestive", Confidence: 70},
		}, nil)

		verdict := svc.Check(context.Background(), addr)

		assert.Equal(t, entity.Rejected{Labels: []string{"Suggestive"}, Confidence: 70}, verdict)
	})

	t.Run("falls back to approval when the service fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		core, logs := observer.New(zapcore.InfoLevel)
		detector := mocks.NewMockLabelDetector(ctrl)
		svc := moderation.NewService(detector, 70, time.Second, zap.New(core))

		detector.EXPECT().DetectLabels(gomock.Any(), addr, 70.0).Return(nil, errors.New("connection refused"))

		verdict := svc.Check(context.Background(), addr)

		assert.Equal(t, entity.Approved{Confidence: 50, Fallback: true}, verdict)

		fallback := logs.FilterMessage("moderation fallback applied")
		require.Equal(t, 1, fallback.Len())
		assert.Equal(t, zapcore.WarnLevel, fallback.All()[0].Level)
		assert.Zero(t, logs.FilterMessage("moderation approved image").Len())
	})

	t.Run("falls back when the service times out", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		detector := mocks.NewMockLabelDetector(ctrl)
		svc := moderation.NewService(detector, 70, 10*time.Millisecond, zap.NewNop())

		detector.EXPECT().DetectLabels(gomock.Any(), addr, 70.0).DoAndReturn(
			func(ctx context.Context, _ entity.ObjectAddress, _ float64) ([]entity.ModerationLabel, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			},
		)

		verdict := svc.Check(context.Background(), addr)

		assert.Equal(t, entity.Approved{Confidence: 50, Fallback: true}, verdict)
	})

	t.Run("genuine approval is logged apart from fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		core, logs := observer.New(zapcore.InfoLevel)
		detector := mocks.NewMockLabelDetector(ctrl)
		svc := moderation.NewService(detector, 70, time.Second, zap.New(core))

		detector.EXPECT().DetectLabels(gomock.Any(), addr, 70.0).Return(nil, nil)

		svc.Check(context.Background(), addr)

		assert.Equal(t, 1, logs.FilterMessage("moderation approved image").Len())
		assert.Zero(t, logs.FilterMessage("moderation fallback applied").Len())
	})
}
