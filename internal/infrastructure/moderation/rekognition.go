package moderation

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"

	"github.com/marcos-nsantos/media-ingest/internal/domain"
	"github.com/marcos-nsantos/media-ingest/internal/domain/entity"
	"github.com/marcos-nsantos/media-ingest/internal/infrastructure/config"
)

// RekognitionAPI is the subset of the Rekognition client the detector uses.
type RekognitionAPI interface {
	DetectModerationLabels(ctx context.Context, params *rekognition.DetectModerationLabelsInput, optFns ...func(*rekognition.Options)) (*rekognition.DetectModerationLabelsOutput, error)
}

// RekognitionDetector reads the image straight from S3, the bytes never pass
// through this process.
type RekognitionDetector struct {
	client RekognitionAPI
}

func NewRekognitionDetector(awsCfg aws.Config, cfg config.ModerationConfig) *RekognitionDetector {
	client := rekognition.NewFromConfig(awsCfg, func(o *rekognition.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return NewRekognitionDetectorWithClient(client)
}

func NewRekognitionDetectorWithClient(client RekognitionAPI) *RekognitionDetector {
	return &RekognitionDetector{client: client}
}

func (d *RekognitionDetector) DetectLabels(ctx context.Context, addr entity.ObjectAddress, minConfidence float64) ([]entity.ModerationLabel, error) {
	out, err := d.client.DetectModerationLabels(ctx, &rekognition.DetectModerationLabelsInput{
		Image: &types.Image{
			S3Object: &types.S3Object{
				Bucket: aws.String(addr.Bucket),
				Name:   aws.String(addr.Key),
			},
		},
		MinConfidence: aws.Float32(float32(minConfidence)),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrModerationFailed, err)
	}

	labels := make([]entity.ModerationLabel, 0, len(out.ModerationLabels))
	for _, l := range out.ModerationLabels {
		confidence := float64(aws.ToFloat32(l.Confidence))
		if confidence < minConfidence {
			continue
		}
		labels = append(labels, entity.ModerationLabel{
			Name:       aws.ToString(l.Name),
			Parent:     aws.ToString(l.ParentName),
			Confidence: confidence,
		})
	}
	return labels, nil
}

// NoopDetector reports every image as clean. It is used when moderation is
// switched off or no remote service is reachable in local runs.
type NoopDetector struct{}

func (NoopDetector) DetectLabels(context.Context, entity.ObjectAddress, float64) ([]entity.ModerationLabel, error) {
	return nil, nil
}
