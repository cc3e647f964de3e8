// Command ingest runs the ingestion pipeline once over the given keys, for
// backfills and reprocessing without an event notification.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/media-ingest/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/media-ingest/internal/bootstrap"
	"github.com/marcos-nsantos/media-ingest/internal/domain/entity"
	"github.com/marcos-nsantos/media-ingest/internal/infrastructure/config"
	"github.com/marcos-nsantos/media-ingest/internal/infrastructure/observability"
)

type options struct {
	bucket           string
	quarantineBucket string
	renditions       string
	quality          int
	concurrency      int
	noModeration     bool
	keys             []string
}

func main() {
	failed, err := run(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func parseFlags(args []string) (*options, error) {
	var opts options

	flagSet := pflag.NewFlagSet("ingest", pflag.ContinueOnError)
	flagSet.StringVarP(&opts.bucket, "bucket", "b", "", "bucket holding the source objects (required)")
	flagSet.StringVar(&opts.quarantineBucket, "quarantine-bucket", "", "bucket receiving rejected objects (default: $QUARANTINE_BUCKET or the source bucket)")
	flagSet.StringVar(&opts.renditions, "renditions", "", "rendition table as name:WxH,... (default: $RENDITION_SIZES)")
	flagSet.IntVar(&opts.quality, "quality", 0, "JPEG quality 1-100 (default: $RENDITION_QUALITY)")
	flagSet.IntVarP(&opts.concurrency, "concurrency", "c", 0, "objects processed in parallel (default: $INGEST_CONCURRENCY)")
	flagSet.BoolVar(&opts.noModeration, "no-moderation", false, "skip the moderation call and approve every image")
	flagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ingest --bucket BUCKET KEY [KEY...]\n\n")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		return nil, err
	}

	opts.keys = flagSet.Args()
	if opts.bucket == "" {
		return nil, errors.New("--bucket is required")
	}
	if len(opts.keys) == 0 {
		return nil, errors.New("at least one key is required")
	}
	return &opts, nil
}

// apply overrides the environment configuration with explicit flags.
func (o *options) apply(cfg *config.Config) error {
	if o.quarantineBucket != "" {
		cfg.Ingest.QuarantineBucket = o.quarantineBucket
	}
	if o.renditions != "" {
		specs, err := entity.ParseRenditionSpecs(o.renditions)
		if err != nil {
			return err
		}
		cfg.Ingest.Renditions = specs
	}
	if o.quality != 0 {
		if o.quality < 1 || o.quality > 100 {
			return fmt.Errorf("--quality must be within 1-100, got %d", o.quality)
		}
		cfg.Ingest.Quality = o.quality
	}
	if o.concurrency != 0 {
		if o.concurrency < 0 {
			return fmt.Errorf("--concurrency must be positive, got %d", o.concurrency)
		}
		cfg.Ingest.Concurrency = o.concurrency
	}
	if o.noModeration {
		cfg.Moderation.Enabled = false
	}
	return nil
}

func (o *options) addresses() []entity.ObjectAddress {
	addrs := make([]entity.ObjectAddress, len(o.keys))
	for i, key := range o.keys {
		addrs[i] = entity.NewObjectAddress(o.bucket, key)
	}
	return addrs
}

func run(args []string) (int, error) {
	opts, err := parseFlags(args)
	if err != nil {
		return 0, err
	}

	cfg, err := config.Load()
	if err != nil {
		return 0, err
	}
	if err := opts.apply(cfg); err != nil {
		return 0, err
	}

	logger, err := observability.NewLogger(cfg.Log, "ingest-cli")
	if err != nil {
		return 0, err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The CLI does not write to the audit trail.
	pipeline, err := bootstrap.NewPipeline(ctx, cfg, nil, logger)
	if err != nil {
		return 0, err
	}

	summary := pipeline.Ingest.Handle(ctx, opts.addresses())
	logger.Debug("batch finished", zap.String("batch_id", summary.BatchID.String()))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(response.IngestFromSummary(summary)); err != nil {
		return summary.Failed, fmt.Errorf("writing summary: %w", err)
	}

	return summary.Failed, nil
}
