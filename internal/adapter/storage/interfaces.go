package storage

import (
	"context"
	"image"

	"github.com/marcos-nsantos/media-ingest/internal/domain/entity"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/storage_mocks.go -package=mocks

// ObjectStore reads and writes whole objects by address. Copy returning nil
// means the destination is durable; callers rely on that before deleting.
type ObjectStore interface {
	Get(ctx context.Context, addr entity.ObjectAddress) ([]byte, error)
	Put(ctx context.Context, addr entity.ObjectAddress, data []byte, contentType, cacheControl string) error
	Copy(ctx context.Context, src, dst entity.ObjectAddress) error
	Delete(ctx context.Context, addr entity.ObjectAddress) error
	ReplaceMetadata(ctx context.Context, addr entity.ObjectAddress, metadata entity.ObjectMetadata) error
	Exists(ctx context.Context, addr entity.ObjectAddress) (bool, error)
}

type ImageCodec interface {
	Decode(addr entity.ObjectAddress, data []byte) (*entity.ImageAsset, error)
	Encode(img image.Image, quality int) ([]byte, error)
}

type RenditionPlanner interface {
	Plan(asset *entity.ImageAsset, spec entity.RenditionSpec) image.Image
}
