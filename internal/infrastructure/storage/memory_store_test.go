package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/media-ingest/internal/domain"
	"github.com/marcos-nsantos/media-ingest/internal/domain/entity"
	"github.com/marcos-nsantos/media-ingest/internal/infrastructure/storage"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	src := entity.NewObjectAddress("media", "uploads/photo.jpg")
	dst := entity.NewObjectAddress("review", "quarantine/photo.jpg")

	t.Run("get of a missing object", func(t *testing.T) {
		store := storage.NewMemoryStore()

		_, err := store.Get(ctx, src)

		assert.ErrorIs(t, err, domain.ErrObjectNotFound)
	})

	t.Run("put then get returns an independent copy", func(t *testing.T) {
		store := storage.NewMemoryStore()
		data := []byte("abc")
		require.NoError(t, store.Put(ctx, src, data, "image/jpeg", "no-cache"))
		data[0] = 'x'

		got, err := store.Get(ctx, src)
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), got)

		obj, ok := store.Object(src)
		require.True(t, ok)
		assert.Equal(t, "image/jpeg", obj.ContentType)
		assert.Equal(t, "no-cache", obj.CacheControl)
	})

	t.Run("copy keeps the source and fails when it is missing", func(t *testing.T) {
		store := storage.NewMemoryStore()
		require.NoError(t, store.Put(ctx, src, []byte("abc"), "image/jpeg", ""))

		require.NoError(t, store.Copy(ctx, src, dst))
		exists, _ := store.Exists(ctx, dst)
		assert.True(t, exists)
		exists, _ = store.Exists(ctx, src)
		assert.True(t, exists)

		err := store.Copy(ctx, entity.NewObjectAddress("media", "nope.jpg"), dst)
		assert.ErrorIs(t, err, domain.ErrObjectNotFound)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		store := storage.NewMemoryStore()
		require.NoError(t, store.Put(ctx, src, []byte("abc"), "image/jpeg", ""))

		require.NoError(t, store.Delete(ctx, src))
		require.NoError(t, store.Delete(ctx, src))
		assert.Empty(t, store.Keys("media"))
	})

	t.Run("replace metadata overwrites every key", func(t *testing.T) {
		store := storage.NewMemoryStore()
		require.NoError(t, store.Put(ctx, src, []byte("abc"), "image/jpeg", ""))
		require.NoError(t, store.ReplaceMetadata(ctx, src, entity.ObjectMetadata{"old": "1"}))

		require.NoError(t, store.ReplaceMetadata(ctx, src, entity.ObjectMetadata{"processed": "true"}))

		obj, _ := store.Object(src)
		assert.Equal(t, entity.ObjectMetadata{"processed": "true"}, obj.Metadata)
		assert.Equal(t, "image/jpeg", obj.ContentType)

		err := store.ReplaceMetadata(ctx, dst, entity.ObjectMetadata{})
		assert.ErrorIs(t, err, domain.ErrObjectNotFound)
	})
}
