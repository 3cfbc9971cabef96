// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sketch

import (
	"errors"
	"fmt"

	"github.com/gogpu/sketch/geom"
)

var (
	// ErrGeometryUndefined is returned when a drawable with no geometry is
	// attached to a scene or rendered.
	ErrGeometryUndefined = errors.New("sketch: geometry not defined")

	// ErrNilScene is returned when a drawable is attached to a nil scene.
	ErrNilScene = errors.New("sketch: nil scene")

	// ErrGeometryKindMismatch is matched by every *GeometryKindMismatchError.
	ErrGeometryKindMismatch = errors.New("sketch: geometry kind mismatch")

	// ErrNoOutline is returned when a path is requested from a geometry
	// that has no vector outline.
	ErrNoOutline = errors.New("sketch: geometry has no outline")

	// ErrNoFontFace is returned when text is rendered in a font with no
	// font source.
	ErrNoFontFace = errors.New("sketch: text font has no face")

	// ErrUnsupportedFormat is returned by SaveAs for an unknown file
	// extension.
	ErrUnsupportedFormat = errors.New("sketch: unsupported image format")
)

// GeometryKindMismatchError reports an attempt to give a drawable a
// geometry of a different kind than the one it was declared with.
type GeometryKindMismatchError struct {
	Want, Got geom.Kind
}

func (e *GeometryKindMismatchError) Error() string {
	return fmt.Sprintf("sketch: cannot replace %s geometry with %s", e.Want, e.Got)
}

// Is reports whether target is ErrGeometryKindMismatch.
func (e *GeometryKindMismatchError) Is(target error) bool {
	return target == ErrGeometryKindMismatch
}

// ExportError reports a scene that could not be written to an image file.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("sketch: export %s: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }
