package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	// Decoders for every extension the ingest pipeline accepts.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/marcos-nsantos/media-ingest/internal/domain"
	"github.com/marcos-nsantos/media-ingest/internal/domain/entity"
)

// ImageCodecImpl decodes any supported source format and encodes JPEG.
type ImageCodecImpl struct{}

func NewImageCodec() *ImageCodecImpl {
	return &ImageCodecImpl{}
}

func (c *ImageCodecImpl) Decode(addr entity.ObjectAddress, data []byte) (*entity.ImageAsset, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty payload", domain.ErrDecodeImage)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDecodeImage, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("%w: empty image bounds %v", domain.ErrDecodeImage, bounds)
	}

	return &entity.ImageAsset{
		Address: addr,
		Width:   bounds.Dx(),
		Height:  bounds.Dy(),
		Format:  format,
		Image:   img,
	}, nil
}

func (c *ImageCodecImpl) Encode(img image.Image, quality int) ([]byte, error) {
	if quality < 1 || quality > 100 {
		return nil, fmt.Errorf("%w: quality %d out of range", domain.ErrEncodeImage, quality)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, flatten(img), imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEncodeImage, err)
	}
	return buf.Bytes(), nil
}

// flatten composites translucent images onto white, JPEG has no alpha channel.
func flatten(img image.Image) image.Image {
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return img
	}
	bounds := img.Bounds()
	bg := imaging.New(bounds.Dx(), bounds.Dy(), color.White)
	return imaging.Overlay(bg, img, image.Pt(0, 0), 1.0)
}
