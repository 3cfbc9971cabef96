// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sketch

import "github.com/gogpu/gg"

// Default scene settings.
const (
	DefaultWidth  = 600
	DefaultHeight = 400
)

// SceneOption configures a Scene during creation.
//
// Example:
//
//	s := sketch.NewScene(
//	    sketch.WithSize(800, 600),
//	    sketch.WithBackground(gg.Hex("#202020")),
//	)
type SceneOption func(*sceneOptions)

// sceneOptions holds optional configuration for Scene creation.
type sceneOptions struct {
	width, height int
	background    gg.RGBA
	rasterizer    gg.RasterizerMode
}

// defaultSceneOptions returns the default scene options.
func defaultSceneOptions() sceneOptions {
	return sceneOptions{
		width:      DefaultWidth,
		height:     DefaultHeight,
		background: gg.White,
		rasterizer: gg.RasterizerAuto,
	}
}

// WithSize sets the surface size. Non-positive extents keep the default.
func WithSize(width, height int) SceneOption {
	return func(o *sceneOptions) {
		if width > 0 {
			o.width = width
		}
		if height > 0 {
			o.height = height
		}
	}
}

// WithBackground sets the color each render pass clears to.
func WithBackground(c gg.RGBA) SceneOption {
	return func(o *sceneOptions) {
		o.background = c
	}
}

// WithRasterizerMode sets the rasterizer hint applied at the start of each
// render pass. The default, gg.RasterizerAuto, lets gg pick per path.
func WithRasterizerMode(m gg.RasterizerMode) SceneOption {
	return func(o *sceneOptions) {
		o.rasterizer = m
	}
}

// SnapshotOption configures Snapshot and SaveAs.
type SnapshotOption func(*snapshotOptions)

type snapshotOptions struct {
	transparent   bool
	quality       int
	width, height int
}

func defaultSnapshotOptions() snapshotOptions {
	return snapshotOptions{quality: 90}
}

// Transparent renders the snapshot over a fully transparent background
// instead of the scene background.
func Transparent() SnapshotOption {
	return func(o *snapshotOptions) {
		o.transparent = true
	}
}

// WithJPEGQuality sets the quality (1-100) used when SaveAs writes JPEG.
func WithJPEGQuality(q int) SnapshotOption {
	return func(o *snapshotOptions) {
		o.quality = min(max(q, 1), 100)
	}
}

// WithSnapshotSize sets the size SaveAs renders at, and the size Snapshot
// falls back to for non-positive arguments. Non-positive extents keep the
// scene size.
func WithSnapshotSize(width, height int) SnapshotOption {
	return func(o *snapshotOptions) {
		o.width, o.height = max(width, 0), max(height, 0)
	}
}
