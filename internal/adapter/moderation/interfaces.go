package moderation

import (
	"context"

	"github.com/marcos-nsantos/media-ingest/internal/domain/entity"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/moderation_mocks.go -package=mocks

// LabelDetector asks the remote moderation capability for labels on a stored
// object. Only labels at or above minConfidence are returned.
type LabelDetector interface {
	DetectLabels(ctx context.Context, addr entity.ObjectAddress, minConfidence float64) ([]entity.ModerationLabel, error)
}

// Moderator turns a detection into a verdict. It never fails.
type Moderator interface {
	Check(ctx context.Context, addr entity.ObjectAddress) entity.Verdict
}
