package storage

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/marcos-nsantos/media-ingest/internal/domain/entity"
)

type RenditionPlannerImpl struct {
	filter imaging.ResampleFilter
}

func NewRenditionPlanner() *RenditionPlannerImpl {
	return &RenditionPlannerImpl{filter: imaging.Lanczos}
}

// Plan fits the asset inside spec's box, keeping the aspect ratio. Small
// sources are scaled up when the box is larger than they are.
func (p *RenditionPlannerImpl) Plan(asset *entity.ImageAsset, spec entity.RenditionSpec) image.Image {
	width, height := FitDimensions(asset.Width, asset.Height, spec.MaxWidth, spec.MaxHeight)
	return imaging.Resize(asset.Image, width, height, p.filter)
}

// FitDimensions computes floor(w*scale) x floor(h*scale) with
// scale = min(maxW/w, maxH/h). Integer arithmetic keeps the binding side
// exactly on the box edge.
func FitDimensions(width, height, maxWidth, maxHeight int) (int, int) {
	w, h := int64(width), int64(height)
	mw, mh := int64(maxWidth), int64(maxHeight)

	var nw, nh int64
	if mw*h <= mh*w {
		nw = mw
		nh = h * mw / w
	} else {
		nh = mh
		nw = w * mh / h
	}

	return max(int(nw), 1), max(int(nh), 1)
}
