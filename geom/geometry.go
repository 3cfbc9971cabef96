// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

// Kind identifies a Geometry variant.
type Kind uint8

const (
	// KindUndefined is the kind of a drawable that has no geometry yet.
	KindUndefined Kind = iota
	KindRectangle
	KindEllipse
	KindRoundedRectangle
	KindArc
	KindLine
	KindQuadCurve
	KindCubicCurve
	KindPath
	KindText
	KindImage
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "Undefined"
	case KindRectangle:
		return "Rectangle"
	case KindEllipse:
		return "Ellipse"
	case KindRoundedRectangle:
		return "RoundedRectangle"
	case KindArc:
		return "Arc"
	case KindLine:
		return "Line"
	case KindQuadCurve:
		return "QuadCurve"
	case KindCubicCurve:
		return "CubicCurve"
	case KindPath:
		return "Path"
	case KindText:
		return "Text"
	case KindImage:
		return "Image"
	default:
		return "Unknown"
	}
}

// Geometry is the shape data behind a drawable.
//
// The set of implementations is closed: every variant lives in this
// package.
type Geometry interface {
	// Kind returns the variant tag.
	Kind() Kind

	// Bounds returns the axis-aligned bounding box.
	Bounds() Rect

	// Contains reports whether p lies in the filled interior.
	// Open outlines such as lines have no interior.
	Contains(p Point) bool

	// Intersects reports whether the geometry overlaps the interior of r.
	Intersects(r Rect) bool

	// Translate moves the geometry by (dx, dy).
	Translate(dx, dy float64)

	// ResizeWidth changes the horizontal extent, anchored at the left
	// edge of the bounds.
	ResizeWidth(w float64)

	// ResizeHeight changes the vertical extent, anchored at the top edge
	// of the bounds.
	ResizeHeight(h float64)

	// Clone returns an independent deep copy.
	Clone() Geometry

	geometry()
}

// Outliner is a geometry with a vector outline.
type Outliner interface {
	Geometry

	// ToPath returns a new path tracing the outline.
	ToPath() *Path
}

// Framed is an outline geometry described by an axis-aligned frame.
type Framed interface {
	Outliner

	// Frame returns the defining frame.
	Frame() Rect

	// SetFrame replaces the defining frame.
	SetFrame(r Rect)
}

var (
	_ Framed   = (*Rectangle)(nil)
	_ Framed   = (*Ellipse)(nil)
	_ Framed   = (*RoundedRectangle)(nil)
	_ Framed   = (*Arc)(nil)
	_ Outliner = (*Line)(nil)
	_ Outliner = (*QuadCurve)(nil)
	_ Outliner = (*CubicCurve)(nil)
	_ Outliner = (*Path)(nil)
	_ Geometry = (*Text)(nil)
	_ Geometry = (*Image)(nil)
)
