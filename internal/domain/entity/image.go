package entity

import "image"

// ImageAsset is a decoded source image. It belongs to the call that decoded it.
type ImageAsset struct {
	Address ObjectAddress
	Width   int
	Height  int
	Format  string
	Image   image.Image
}

func (a *ImageAsset) Dimensions() string {
	return dimensions(a.Width, a.Height)
}
