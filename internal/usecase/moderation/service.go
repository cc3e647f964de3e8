package moderation

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/media-ingest/internal/adapter/moderation"
	"github.com/marcos-nsantos/media-ingest/internal/domain/entity"
)

const (
	DefaultMinConfidence = 70.0
	DefaultTimeout       = 5 * time.Second

	// ApprovedConfidence is reported when the service returns no labels.
	ApprovedConfidence = 95.0
	// FallbackConfidence is reported when the service could not be asked.
	FallbackConfidence = 50.0
)

type Service struct {
	detector      moderation.LabelDetector
	minConfidence float64
	timeout       time.Duration
	logger        *zap.Logger
}

func NewService(detector moderation.LabelDetector, minConfidence float64, timeout time.Duration, logger *zap.Logger) *Service {
	if minConfidence <= 0 {
		minConfidence = DefaultMinConfidence
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Service{
		detector:      detector,
		minConfidence: minConfidence,
		timeout:       timeout,
		logger:        logger,
	}
}

// Check never fails. When the moderation service is unreachable the image is
// approved with FallbackConfidence so ingestion keeps flowing; that verdict
// is flagged and logged at warn level.
func (s *Service) Check(ctx context.Context, addr entity.ObjectAddress) entity.Verdict {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	labels, err := s.detector.DetectLabels(ctx, addr, s.minConfidence)
	if err != nil {
		s.logger.Warn("moderation fallback applied",
			zap.String("bucket", addr.Bucket),
			zap.String("key", addr.Key),
			zap.Float64("confidence", FallbackConfidence),
			zap.Error(err),
		)
		return entity.Approved{Confidence: FallbackConfidence, Fallback: true}
	}

	var names []string
	var top float64
	for _, l := range labels {
		if l.Confidence < s.minConfidence {
			continue
		}
		names = append(names, l.Name)
		top = max(top, l.Confidence)
	}

	if len(names) > 0 {
		s.logger.Warn("moderation rejected image",
			zap.String("bucket", addr.Bucket),
			zap.String("key", addr.Key),
			zap.Strings("labels", names),
			zap.Float64("confidence", top),
		)
		return entity.Rejected{Labels: names, Confidence: top}
	}

	s.logger.Info("moderation approved image",
		zap.String("bucket", addr.Bucket),
		zap.String("key", addr.Key),
		zap.Float64("confidence", ApprovedConfidence),
	)
	return entity.Approved{Confidence: ApprovedConfidence}
}
