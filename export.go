// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sketch

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/clone"
	"github.com/gogpu/gg"
)

// Snapshot renders the scene into a new width×height image, independent of
// the scene's own surface size. Non-positive extents fall back to
// WithSnapshotSize, then to the scene size. Members that fail to paint
// are skipped as in RenderPass.
func (s *Scene) Snapshot(width, height int, opts ...SnapshotOption) *image.RGBA {
	o := defaultSnapshotOptions()
	for _, opt := range opts {
		opt(&o)
	}
	dc := s.snapshot(width, height, o)
	defer func() {
		_ = dc.Close()
	}()
	img := dc.Image()
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	return clone.AsRGBA(img)
}

func (s *Scene) snapshot(width, height int, o snapshotOptions) *gg.Context {
	if width <= 0 {
		width = o.width
	}
	if height <= 0 {
		height = o.height
	}
	sw, sh := s.Size()
	if width <= 0 {
		width = sw
	}
	if height <= 0 {
		height = sh
	}
	dc := gg.NewContext(width, height)

	var bg *gg.RGBA
	if o.transparent {
		t := gg.Transparent
		bg = &t
	}
	// Skipped members were already logged.
	_ = s.render(dc, bg)
	return dc
}

// SaveAs renders the scene at its surface size, or the WithSnapshotSize
// size, and writes it to path. The
// format follows the extension: .png (or none) for PNG, .jpg or .jpeg for
// JPEG. Failures are returned as *ExportError.
func (s *Scene) SaveAs(path string, opts ...SnapshotOption) error {
	o := defaultSnapshotOptions()
	for _, opt := range opts {
		opt(&o)
	}

	err := s.save(path, o)
	if err != nil {
		Logger().Warn("sketch: export failed", "path", path, "err", err)
		return &ExportError{Path: path, Err: err}
	}
	Logger().Debug("sketch: exported", "path", path)
	return nil
}

func (s *Scene) save(path string, o snapshotOptions) (err error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case "", ".png", ".jpg", ".jpeg":
	default:
		return ErrUnsupportedFormat
	}

	dc := s.snapshot(0, 0, o)
	defer func() {
		_ = dc.Close()
	}()

	if ext == ".jpg" || ext == ".jpeg" {
		f, ferr := os.Create(path) //nolint:gosec // path is user-provided intentionally
		if ferr != nil {
			return ferr
		}
		defer func() {
			err = errors.Join(err, f.Close())
		}()
		return dc.EncodeJPEG(f, o.quality)
	}
	return dc.SavePNG(path)
}
