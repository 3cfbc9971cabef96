// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster holds the decoded images that image drawables display.
//
// A [Raster] keeps the source pixels at their native size and resamples
// them with bicubic filtering whenever a different target size is asked
// for. The last resampled copy is cached, so repeated paints at the same
// size cost nothing.
package raster

import (
	"image"
	"sync"

	"github.com/anthonynsimon/bild/clone"
	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
)

// Raster is an immutable source image plus a cache of its last resample.
// It is safe for concurrent use.
type Raster struct {
	src  *image.RGBA
	path string

	mu     sync.Mutex
	w, h   int
	scaled *image.RGBA
	buf    *gg.ImageBuf
}

// New creates a Raster from img. The pixels are copied.
func New(img image.Image) *Raster {
	return &Raster{src: clone.AsRGBA(img)}
}

func newWithPath(img image.Image, path string) *Raster {
	r := New(img)
	r.path = path
	return r
}

// Path returns the resource path the raster was loaded from, if any.
func (r *Raster) Path() string { return r.path }

// Size returns the native pixel size.
func (r *Raster) Size() (width, height int) {
	b := r.src.Bounds()
	return b.Dx(), b.Dy()
}

// Source returns the native-size pixels. Callers must not modify them.
func (r *Raster) Source() *image.RGBA { return r.src }

// Scaled returns the raster resampled to w×h, or nil if either extent is
// not positive. The result is shared; callers must not modify it.
func (r *Raster) Scaled(w, h int) *image.RGBA {
	img, _ := r.scale(w, h, false)
	return img
}

// Buffer returns the raster at w×h as a buffer ready to draw on a gg
// context, or nil if either extent is not positive.
func (r *Raster) Buffer(w, h int) *gg.ImageBuf {
	_, buf := r.scale(w, h, true)
	return buf
}

func (r *Raster) scale(w, h int, wantBuf bool) (*image.RGBA, *gg.ImageBuf) {
	if w <= 0 || h <= 0 {
		return nil, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.scaled == nil || r.w != w || r.h != h {
		nw, nh := r.Size()
		if w == nw && h == nh {
			r.scaled = r.src
		} else {
			dst := image.NewRGBA(image.Rect(0, 0, w, h))
			xdraw.CatmullRom.Scale(dst, dst.Bounds(), r.src, r.src.Bounds(), xdraw.Src, nil)
			r.scaled = dst
		}
		r.w, r.h = w, h
		r.buf = nil
	}
	if wantBuf && r.buf == nil {
		r.buf = gg.ImageBufFromImage(r.scaled)
	}
	return r.scaled, r.buf
}
