// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

import (
	"math"

	"github.com/gogpu/sketch/raster"
)

// Image places a raster in a target frame. The frame, not the raster's
// native size, defines the bounds.
type Image struct {
	frame
	raster *raster.Raster
}

// NewImage creates an image geometry at (x, y). With a non-nil raster the
// frame takes the raster's native size; otherwise it is empty.
func NewImage(x, y float64, r *raster.Raster) *Image {
	img := &Image{frame: newFrame(x, y, 0, 0)}
	img.SetRaster(r)
	return img
}

// Raster returns the displayed raster, or nil.
func (img *Image) Raster() *raster.Raster { return img.raster }

// SetRaster replaces the raster. An empty frame adopts the raster's
// native size; a non-empty frame is kept and the raster is resampled to
// fit it.
func (img *Image) SetRaster(r *raster.Raster) {
	img.raster = r
	if r == nil {
		return
	}
	if img.r.Width == 0 && img.r.Height == 0 {
		w, h := r.Size()
		img.r.Width, img.r.Height = float64(w), float64(h)
	}
	img.warm()
}

// PixelSize returns the frame extent rounded to whole pixels.
func (img *Image) PixelSize() (w, h int) {
	return int(math.Round(img.r.Width)), int(math.Round(img.r.Height))
}

// warm resamples the raster to the current frame ahead of the next paint.
func (img *Image) warm() {
	if img.raster != nil {
		img.raster.Scaled(img.PixelSize())
	}
}

// Kind implements Geometry.
func (*Image) Kind() Kind { return KindImage }

// Contains implements Geometry.
func (img *Image) Contains(p Point) bool { return img.r.Contains(p) }

// Intersects implements Geometry.
func (img *Image) Intersects(r Rect) bool { return img.r.Intersects(r) }

// ResizeWidth sets the frame width and resamples the raster.
func (img *Image) ResizeWidth(w float64) {
	img.frame.ResizeWidth(w)
	img.warm()
}

// ResizeHeight sets the frame height and resamples the raster.
func (img *Image) ResizeHeight(h float64) {
	img.frame.ResizeHeight(h)
	img.warm()
}

// SetFrame replaces the frame and resamples the raster.
func (img *Image) SetFrame(r Rect) {
	img.frame.SetFrame(r)
	img.warm()
}

// Clone implements Geometry. The raster is shared.
func (img *Image) Clone() Geometry {
	c := *img
	return &c
}

func (*Image) geometry() {}
