// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

import (
	"image"
	"testing"

	"github.com/gogpu/sketch/raster"
)

func TestImageAdoptsNativeSize(t *testing.T) {
	r := raster.New(image.NewRGBA(image.Rect(0, 0, 32, 16)))
	img := NewImage(5, 6, r)
	if got, want := img.Bounds(), R(5, 6, 32, 16); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestImageBoundsIndependentOfRaster(t *testing.T) {
	img := NewImage(0, 0, nil)
	img.SetFrame(R(0, 0, 100, 50))
	img.SetRaster(raster.New(image.NewRGBA(image.Rect(0, 0, 8, 8))))

	if got, want := img.Bounds(), R(0, 0, 100, 50); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	if s := img.Raster().Scaled(img.PixelSize()); s.Bounds().Dx() != 100 || s.Bounds().Dy() != 50 {
		t.Errorf("Scaled size = %v, want 100x50", s.Bounds())
	}
}

func TestImageResizeKeepsOrigin(t *testing.T) {
	img := NewImage(7, 9, raster.New(image.NewRGBA(image.Rect(0, 0, 10, 10))))
	img.ResizeWidth(40)
	img.ResizeHeight(20)
	if got, want := img.Bounds(), R(7, 9, 40, 20); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestImageWithoutRaster(t *testing.T) {
	img := NewImage(1, 2, nil)
	if img.Raster() != nil {
		t.Error("Raster() != nil")
	}
	if !img.Bounds().IsEmpty() {
		t.Errorf("Bounds() = %v, want empty", img.Bounds())
	}
}
