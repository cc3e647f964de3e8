package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/media-ingest/internal/domain/entity"
	"github.com/marcos-nsantos/media-ingest/internal/infrastructure/config"
)

func TestParseFlags(t *testing.T) {
	t.Run("parses bucket and keys", func(t *testing.T) {
		opts, err := parseFlags([]string{"--bucket", "media", "-c", "2", "uploads/a.jpg", "uploads/b.png"})

		require.NoError(t, err)
		assert.Equal(t, "media", opts.bucket)
		assert.Equal(t, 2, opts.concurrency)
		assert.Equal(t, []entity.ObjectAddress{
			entity.NewObjectAddress("media", "uploads/a.jpg"),
			entity.NewObjectAddress("media", "uploads/b.png"),
		}, opts.addresses())
	})

	t.Run("requires a bucket", func(t *testing.T) {
		_, err := parseFlags([]string{"uploads/a.jpg"})
		assert.Error(t, err)
	})

	t.Run("requires keys", func(t *testing.T) {
		_, err := parseFlags([]string{"--bucket", "media"})
		assert.Error(t, err)
	})
}

func TestOptionsApply(t *testing.T) {
	t.Run("overrides configuration", func(t *testing.T) {
		cfg := &config.Config{
			Ingest:     config.IngestConfig{Quality: 85, Concurrency: 4, Renditions: entity.DefaultRenditionSpecs()},
			Moderation: config.ModerationConfig{Enabled: true},
		}
		opts := &options{
			quarantineBucket: "review",
			renditions:       "thumb:100x100",
			quality:          60,
			concurrency:      1,
			noModeration:     true,
		}

		require.NoError(t, opts.apply(cfg))

		assert.Equal(t, "review", cfg.Ingest.QuarantineBucket)
		assert.Equal(t, []string{"thumb"}, cfg.Ingest.Renditions.Names())
		assert.Equal(t, 60, cfg.Ingest.Quality)
		assert.Equal(t, 1, cfg.Ingest.Concurrency)
		assert.False(t, cfg.Moderation.Enabled)
	})

	t.Run("keeps configuration without flags", func(t *testing.T) {
		cfg := &config.Config{Ingest: config.IngestConfig{Quality: 85, Concurrency: 4}}

		require.NoError(t, (&options{}).apply(cfg))

		assert.Equal(t, 85, cfg.Ingest.Quality)
		assert.Equal(t, 4, cfg.Ingest.Concurrency)
	})

	t.Run("rejects bad values", func(t *testing.T) {
		assert.Error(t, (&options{renditions: "broken"}).apply(&config.Config{}))
		assert.Error(t, (&options{quality: 150}).apply(&config.Config{}))
		assert.Error(t, (&options{quality: -1}).apply(&config.Config{}))
		assert.Error(t, (&options{concurrency: -1}).apply(&config.Config{}))
	})
}
