// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sketch

import (
	"github.com/gogpu/sketch/geom"
	"github.com/gogpu/sketch/raster"
)

// Image is a drawable that displays a raster scaled to its frame. Like
// every drawable it starts with a 1px black stroke, which outlines the
// frame; set the stroke width to zero for a borderless image.
type Image struct {
	Drawable
}

// NewImage creates an image at (x, y) with no raster. Until a raster is
// set it has an empty frame and paints nothing.
func NewImage(x, y float64) *Image {
	return NewImageWithRaster(x, y, nil)
}

// NewImageWithRaster creates an image at (x, y) showing r at its native
// size.
func NewImageWithRaster(x, y float64, r *raster.Raster) *Image {
	img := &Image{}
	img.init(img, geom.NewImage(x, y, r))
	return img
}

// LoadImage creates an image at (x, y) from the file at path. A missing
// or undecodable file returns a *raster.ResourceNotFoundError together
// with the raster-less image.
func LoadImage(path string, x, y float64) (*Image, error) {
	img := NewImage(x, y)
	return img, img.Load(raster.FileLoader{}, path)
}

func (img *Image) image() *geom.Image {
	return geometryAs(&img.Drawable, img, func() *geom.Image { return geom.NewImage(0, 0, nil) })
}

// Load replaces the raster with the one l resolves for path. On error
// the current raster is kept.
func (img *Image) Load(l raster.Loader, path string) error {
	r, err := l.Load(path)
	if err != nil {
		return err
	}
	img.SetRaster(r)
	return nil
}

// Raster returns the displayed raster, or nil.
func (img *Image) Raster() *raster.Raster { return img.image().Raster() }

// SetRaster replaces the raster. An image with an empty frame takes the
// raster's native size; otherwise the raster is scaled to the frame.
func (img *Image) SetRaster(r *raster.Raster) { img.image().SetRaster(r) }

// Frame returns the target frame.
func (img *Image) Frame() geom.Rect { return img.image().Frame() }

// SetFrame replaces the target frame.
func (img *Image) SetFrame(x, y, w, h float64) { img.image().SetFrame(geom.R(x, y, w, h)) }

// Path returns the resource path the raster was loaded from, or "".
func (img *Image) Path() string {
	if r := img.Raster(); r != nil {
		return r.Path()
	}
	return ""
}
