package entity_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/marcos-nsantos/media-ingest/internal/domain/entity"
)

func TestNewSummary(t *testing.T) {
	batchID := uuid.New()
	outcomes := []entity.Outcome{
		{Disposition: entity.DispositionApproved},
		{Disposition: entity.DispositionQuarantined},
		{Disposition: entity.DispositionSkipped},
		{Disposition: entity.DispositionFailed},
		{Disposition: entity.DispositionApproved},
	}

	summary := entity.NewSummary(batchID, outcomes)

	assert.Equal(t, batchID, summary.BatchID)
	assert.Equal(t, 3, summary.Processed)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 1, summary.Failed)
}

func TestNewIngestionRecord(t *testing.T) {
	batchID := uuid.New()

	t.Run("rejected outcome carries labels and quarantine address", func(t *testing.T) {
		q := entity.NewObjectAddress("quarantine-bucket", "quarantine/bad.png")
		o := &entity.Outcome{
			Address:     entity.NewObjectAddress("media", "uploads/bad.png"),
			Disposition: entity.DispositionQuarantined,
			Verdict:     entity.Rejected{Labels: []string{"Explicit"}, Confidence: 92},
			Quarantine:  &q,
		}

		rec := entity.NewIngestionRecord(batchID, o)

		assert.Equal(t, batchID, rec.BatchID)
		assert.Equal(t, "rejected", rec.ModerationStatus)
		assert.Equal(t, []string{"Explicit"}, rec.Labels)
		assert.Equal(t, 92.0, *rec.ModerationConfidence)
		assert.Equal(t, "quarantine-bucket", rec.QuarantineBucket)
		assert.Equal(t, "quarantine/bad.png", rec.QuarantineKey)
		assert.Empty(t, rec.Renditions)
	})

	t.Run("skipped outcome has no moderation data", func(t *testing.T) {
		o := &entity.Outcome{
			Address:     entity.NewObjectAddress("media", "uploads/doc.pdf"),
			Disposition: entity.DispositionSkipped,
		}

		rec := entity.NewIngestionRecord(batchID, o)

		assert.Empty(t, rec.ModerationStatus)
		assert.Nil(t, rec.ModerationConfidence)
	})
}
