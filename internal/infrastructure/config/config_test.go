package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/media-ingest/internal/domain/entity"
	"github.com/marcos-nsantos/media-ingest/internal/infrastructure/config"
)

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		cfg, err := config.Load()

		require.NoError(t, err)
		assert.Equal(t, entity.DefaultRenditionSpecs(), cfg.Ingest.Renditions)
		assert.Equal(t, 85, cfg.Ingest.Quality)
		assert.Equal(t, 70.0, cfg.Moderation.MinConfidence)
		assert.Equal(t, 5*time.Second, cfg.Moderation.Timeout)
		assert.Equal(t, config.StorageBackendS3, cfg.Ingest.StorageBackend)
		assert.Empty(t, cfg.Ingest.QuarantineBucket)
	})

	t.Run("reads overrides from the environment", func(t *testing.T) {
		t.Setenv("QUARANTINE_BUCKET", "review")
		t.Setenv("RENDITION_SIZES", "thumb:64x64")
		t.Setenv("STORAGE_BACKEND", "memory")

		cfg, err := config.Load()

		require.NoError(t, err)
		assert.Equal(t, "review", cfg.Ingest.QuarantineBucket)
		assert.Equal(t, entity.RenditionSpecs{{Name: "thumb", MaxWidth: 64, MaxHeight: 64}}, cfg.Ingest.Renditions)
		assert.Equal(t, config.StorageBackendMemory, cfg.Ingest.StorageBackend)
	})

	t.Run("rejects unknown storage backend", func(t *testing.T) {
		t.Setenv("STORAGE_BACKEND", "ftp")

		_, err := config.Load()

		assert.Error(t, err)
	})

	t.Run("rejects quality outside 1-100", func(t *testing.T) {
		for _, q := range []string{"0", "101", "-5"} {
			t.Setenv("RENDITION_QUALITY", q)

			_, err := config.Load()

			assert.Error(t, err, "quality %s", q)
		}
	})

	t.Run("rejects malformed rendition table", func(t *testing.T) {
		t.Setenv("RENDITION_SIZES", "thumb:big")

		_, err := config.Load()

		assert.Error(t, err)
	})
}
