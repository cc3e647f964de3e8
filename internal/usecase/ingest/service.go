package ingest

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/marcos-nsantos/media-ingest/internal/adapter/moderation"
	"github.com/marcos-nsantos/media-ingest/internal/adapter/repository"
	"github.com/marcos-nsantos/media-ingest/internal/adapter/storage"
	"github.com/marcos-nsantos/media-ingest/internal/domain"
	"github.com/marcos-nsantos/media-ingest/internal/domain/entity"
	"github.com/marcos-nsantos/media-ingest/internal/pkg/apperror"
)

const (
	DefaultQuality     = 85
	DefaultConcurrency = 4
	QuarantinePrefix   = "quarantine/"
	processedDir       = "processed"
)

const (
	ReasonNotImage          = "not an image"
	ReasonDerived           = "derived object"
	ReasonSourceNotFound    = "source not found"
	ReasonPartialRenditions = "partial renditions"
)

var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".bmp":  {},
	".webp": {},
}

// IsImageKey reports whether key has one of the accepted image extensions.
func IsImageKey(key string) bool {
	_, ok := imageExtensions[strings.ToLower(path.Ext(key))]
	return ok
}

type Config struct {
	// QuarantineBucket receives rejected objects; empty means the source bucket.
	QuarantineBucket string
	Renditions       entity.RenditionSpecs
	// Quality is the JPEG quality, 1-100. Zero selects DefaultQuality.
	Quality     int
	Concurrency int
}

type Service struct {
	store     storage.ObjectStore
	codec     storage.ImageCodec
	planner   storage.RenditionPlanner
	moderator moderation.Moderator
	records   repository.IngestionRepository
	cfg       Config
	logger    *zap.Logger
}

// NewService builds the orchestrator. records may be nil when no audit store
// is configured.
func NewService(
	store storage.ObjectStore,
	codec storage.ImageCodec,
	planner storage.RenditionPlanner,
	moderator moderation.Moderator,
	records repository.IngestionRepository,
	cfg Config,
	logger *zap.Logger,
) *Service {
	if len(cfg.Renditions) == 0 {
		cfg.Renditions = entity.DefaultRenditionSpecs()
	}
	if cfg.Quality == 0 {
		cfg.Quality = DefaultQuality
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = DefaultConcurrency
	}
	return &Service{
		store:     store,
		codec:     codec,
		planner:   planner,
		moderator: moderator,
		records:   records,
		cfg:       cfg,
		logger:    logger,
	}
}

// Handle processes a batch of object notifications. Objects are independent
// and run in parallel; a failing object only affects its own outcome.
func (s *Service) Handle(ctx context.Context, addrs []entity.ObjectAddress) *entity.Summary {
	batchID := uuid.New()
	logger := s.logger.With(zap.String("batch_id", batchID.String()))
	logger.Info("starting image processing", zap.Int("objects", len(addrs)))

	outcomes := make([]entity.Outcome, len(addrs))

	var g errgroup.Group
	g.SetLimit(s.cfg.Concurrency)
	for i, addr := range addrs {
		g.Go(func() error {
			out := s.processObject(ctx, logger, addr)
			s.record(ctx, logger, batchID, out)
			outcomes[i] = *out
			return nil
		})
	}
	_ = g.Wait()

	summary := entity.NewSummary(batchID, outcomes)
	logger.Info("image processing completed",
		zap.Int("processed", summary.Processed),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
	)
	return summary
}

func (s *Service) processObject(ctx context.Context, logger *zap.Logger, addr entity.ObjectAddress) (out *entity.Outcome) {
	out = entity.NewOutcome(addr)
	log := logger.With(zap.String("bucket", addr.Bucket), zap.String("key", addr.Key))

	defer func() {
		if r := recover(); r != nil {
			log.Error("panic while processing object", zap.Any("panic", r))
			out.Disposition = entity.DispositionFailed
			out.Reason = "internal error"
			out.AddError(fmt.Errorf("panic: %v", r))
		}
	}()

	if addr.IsZero() {
		return s.fail(out, log, apperror.New(apperror.StageFetch, addr.Key, domain.ErrInvalidNotification))
	}

	if !IsImageKey(addr.Key) {
		log.Warn("object is not an image, skipping")
		return skip(out, ReasonNotImage)
	}

	if s.isDerivedKey(addr.Key) {
		log.Debug("object is a rendition or quarantine copy, skipping")
		return skip(out, ReasonDerived)
	}

	data, err := s.store.Get(ctx, addr)
	if err != nil {
		if errors.Is(err, domain.ErrObjectNotFound) {
			log.Info("source object no longer exists, skipping")
			return skip(out, ReasonSourceNotFound)
		}
		return s.fail(out, log, apperror.New(apperror.StageFetch, addr.Key, err))
	}

	asset, err := s.codec.Decode(addr, data)
	if err != nil {
		return s.fail(out, log, apperror.New(apperror.StageDecode, addr.Key, err))
	}
	out.Width, out.Height = asset.Width, asset.Height
	log.Info("decoded image",
		zap.String("format", asset.Format),
		zap.String("dimensions", asset.Dimensions()),
	)

	verdict := s.moderator.Check(ctx, addr)
	out.Verdict = verdict

	switch v := verdict.(type) {
	case entity.Approved:
		s.approve(ctx, log, asset, v, out)
	case entity.Rejected:
		s.quarantine(ctx, log, addr, v, out)
	default:
		return s.fail(out, log, apperror.New(apperror.StageRender, addr.Key, fmt.Errorf("unknown verdict %T", verdict)))
	}
	return out
}

func (s *Service) approve(ctx context.Context, log *zap.Logger, asset *entity.ImageAsset, verdict entity.Approved, out *entity.Outcome) {
	records, errs := s.renderAll(ctx, log, asset)
	for i := range records {
		if errs[i] != nil {
			out.AddError(errs[i])
			continue
		}
		out.Renditions = append(out.Renditions, *records[i])
	}

	if len(out.Renditions) == 0 {
		s.fail(out, log, apperror.New(apperror.StageUpload, asset.Address.Key, domain.ErrNoRenditions))
		return
	}

	out.Disposition = entity.DispositionApproved
	if len(out.Renditions) < len(s.cfg.Renditions) {
		out.Reason = ReasonPartialRenditions
	}

	meta := entity.NewApprovedMetadata(asset, out.RenditionNames(), verdict)
	if err := s.store.ReplaceMetadata(ctx, asset.Address, meta); err != nil {
		stageErr := apperror.New(apperror.StageMetadata, asset.Address.Key, err)
		log.Warn("failed to update metadata", zap.Error(err))
		out.AddError(stageErr)
	}

	log.Info("image processed successfully",
		zap.Int("versions", len(out.Renditions)),
		zap.Bool("moderation_fallback", verdict.Fallback),
	)
}

// renderAll resizes, encodes and uploads every configured rendition. Each
// rendition runs on its own; one failing does not stop its siblings.
func (s *Service) renderAll(ctx context.Context, log *zap.Logger, asset *entity.ImageAsset) ([]*entity.RenditionRecord, []error) {
	specs := s.cfg.Renditions
	records := make([]*entity.RenditionRecord, len(specs))
	errs := make([]error, len(specs))

	var g errgroup.Group
	for i, spec := range specs {
		g.Go(func() error {
			records[i], errs[i] = s.renderOne(ctx, log, asset, spec)
			return nil
		})
	}
	_ = g.Wait()

	return records, errs
}

func (s *Service) renderOne(ctx context.Context, log *zap.Logger, asset *entity.ImageAsset, spec entity.RenditionSpec) (rec *entity.RenditionRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = apperror.New(apperror.StageRender, spec.Name, fmt.Errorf("panic: %v", r))
		}
	}()

	img := s.planner.Plan(asset, spec)
	data, err := s.codec.Encode(img, s.cfg.Quality)
	if err != nil {
		log.Error("rendition encode failed", zap.String("rendition", spec.Name), zap.Error(err))
		return nil, apperror.New(apperror.StageRender, spec.Name, err)
	}

	bounds := img.Bounds()
	result := entity.NewRenditionResult(spec, spec.KeyFor(asset.Address), data, bounds.Dx(), bounds.Dy())
	dst := entity.NewObjectAddress(asset.Address.Bucket, result.Key)

	if err := s.store.Put(ctx, dst, result.Data, entity.RenditionContentType, entity.RenditionCacheControl); err != nil {
		log.Error("rendition upload failed",
			zap.String("rendition", spec.Name),
			zap.String("rendition_key", result.Key),
			zap.Error(err),
		)
		return nil, apperror.New(apperror.StageUpload, result.Key, err)
	}

	log.Debug("rendition uploaded",
		zap.String("rendition", spec.Name),
		zap.String("rendition_key", result.Key),
		zap.Int("width", result.Width),
		zap.Int("height", result.Height),
		zap.Int("size_bytes", result.SizeBytes),
	)

	return &entity.RenditionRecord{
		Name:      spec.Name,
		Key:       result.Key,
		Width:     result.Width,
		Height:    result.Height,
		SizeBytes: result.SizeBytes,
	}, nil
}

// quarantine copies the source aside and deletes it only once the copy has
// succeeded. Re-running it after the source is gone is a no-op.
func (s *Service) quarantine(ctx context.Context, log *zap.Logger, src entity.ObjectAddress, verdict entity.Rejected, out *entity.Outcome) {
	dst := s.QuarantineAddress(src)
	log = log.With(
		zap.Strings("labels", verdict.Labels),
		zap.Float64("confidence", verdict.Confidence),
		zap.String("quarantine", dst.String()),
	)
	log.Warn("image failed moderation")

	if err := s.store.Copy(ctx, src, dst); err != nil {
		// The source was read moments ago, so a missing source here usually
		// means a concurrent run already moved it. The check is best-effort:
		// it matches on the quarantine key only, and another object with the
		// same basename would satisfy it too.
		if errors.Is(err, domain.ErrObjectNotFound) {
			if exists, exErr := s.store.Exists(ctx, dst); exErr == nil && exists {
				log.Info("image already quarantined")
				out.Disposition = entity.DispositionQuarantined
				out.Quarantine = &dst
				return
			}
		}
		s.fail(out, log, apperror.New(apperror.StageQuarantineCopy, src.Key, fmt.Errorf("%w: %w", domain.ErrQuarantineCopy, err)))
		return
	}
	out.Quarantine = &dst
	log.Info("image copied to quarantine")

	if err := s.store.Delete(ctx, src); err != nil {
		s.fail(out, log, apperror.New(apperror.StageQuarantineDelete, src.Key, err))
		return
	}

	out.Disposition = entity.DispositionQuarantined
	log.Info("inappropriate image moved to quarantine")
}

func (s *Service) QuarantineAddress(src entity.ObjectAddress) entity.ObjectAddress {
	bucket := s.cfg.QuarantineBucket
	if bucket == "" {
		bucket = src.Bucket
	}
	return entity.NewObjectAddress(bucket, QuarantinePrefix+src.Base())
}

// isDerivedKey matches keys this service writes itself, so their storage
// events do not feed back into the pipeline.
func (s *Service) isDerivedKey(key string) bool {
	if strings.HasPrefix(key, QuarantinePrefix) {
		return true
	}
	parts := strings.Split(key, "/")
	if len(parts) < 3 || parts[len(parts)-3] != processedDir {
		return false
	}
	name := parts[len(parts)-2]
	for _, spec := range s.cfg.Renditions {
		if spec.Name == name {
			return true
		}
	}
	return false
}

func (s *Service) record(ctx context.Context, log *zap.Logger, batchID uuid.UUID, out *entity.Outcome) {
	if s.records == nil || out.Reason == ReasonDerived {
		return
	}
	if err := s.records.Create(ctx, entity.NewIngestionRecord(batchID, out)); err != nil {
		log.Warn("failed to record ingestion outcome",
			zap.String("key", out.Address.Key),
			zap.Error(apperror.New(apperror.StageRecord, out.Address.Key, err)),
		)
	}
}

func (s *Service) fail(out *entity.Outcome, log *zap.Logger, err *apperror.StageError) *entity.Outcome {
	log.Error("failed to process image", zap.String("stage", string(err.Stage)), zap.Error(err.Err))
	out.Disposition = entity.DispositionFailed
	out.Reason = string(err.Stage)
	out.AddError(err)
	return out
}

func skip(out *entity.Outcome, reason string) *entity.Outcome {
	out.Disposition = entity.DispositionSkipped
	out.Reason = reason
	return out
}
