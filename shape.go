// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sketch

import "github.com/gogpu/sketch/geom"

// Shape is a drawable described by an axis-aligned frame: a rectangle,
// ellipse, rounded rectangle or arc. Shapes translate and resize but do
// not rotate or shear; convert to a Path with ToPath for that.
//
// A Shape's kind is chosen by its constructor. The zero Shape has no
// geometry: its frame is empty and ToPath gives an empty path.
type Shape struct {
	Drawable
}

func newShape(g geom.Framed) *Shape {
	s := &Shape{}
	s.init(s, g)
	return s
}

// NewRectangle creates a rectangle shape.
func NewRectangle(x, y, w, h float64) *Shape {
	return newShape(geom.NewRectangle(x, y, w, h))
}

// NewEllipse creates the ellipse inscribed in the given frame.
func NewEllipse(x, y, w, h float64) *Shape {
	return newShape(geom.NewEllipse(x, y, w, h))
}

// NewCircle creates a circle of radius r centered at (cx, cy).
func NewCircle(cx, cy, r float64) *Shape {
	return NewEllipse(cx-r, cy-r, 2*r, 2*r)
}

// NewRoundedRectangle creates a rectangle whose corners are quarter
// ellipses arcWidth wide and arcHeight tall.
func NewRoundedRectangle(x, y, w, h, arcWidth, arcHeight float64) *Shape {
	return newShape(geom.NewRoundedRectangle(x, y, w, h, arcWidth, arcHeight))
}

// NewArc creates a pie slice of the ellipse inscribed in the frame,
// starting at start degrees and sweeping extent degrees counter-clockwise.
func NewArc(x, y, w, h, start, extent float64) *Shape {
	return newShape(geom.NewArc(x, y, w, h, start, extent))
}

func (s *Shape) framed() geom.Framed {
	f, _ := s.geometry.(geom.Framed)
	return f
}

// Frame returns the defining frame.
func (s *Shape) Frame() geom.Rect {
	if f := s.framed(); f != nil {
		return f.Frame()
	}
	return geom.Rect{}
}

// SetFrame replaces the defining frame.
func (s *Shape) SetFrame(x, y, w, h float64) {
	if f := s.framed(); f != nil {
		f.SetFrame(geom.R(x, y, w, h))
	}
}

// Angles returns the start angle and the angular extent, in degrees, of
// an arc shape. Other shapes report false.
func (s *Shape) Angles() (start, extent float64, ok bool) {
	a, ok := s.geometry.(*geom.Arc)
	if !ok {
		return 0, 0, false
	}
	return a.Start, a.Extent, true
}

// SetAngles changes the start angle and the angular extent, in degrees, of
// an arc shape. It does nothing for other shapes.
func (s *Shape) SetAngles(start, extent float64) {
	if a, ok := s.geometry.(*geom.Arc); ok {
		a.Start, a.Extent = start, extent
	}
}

// ToPath returns a new Path tracing the shape's outline, with the same
// stroke and fill style. The path is not attached to any scene. A shape
// without geometry gives an empty path.
func (s *Shape) ToPath() *Path {
	f := s.framed()
	if f == nil {
		return pathFrom(&s.Drawable, geom.NewPath())
	}
	return pathFrom(&s.Drawable, f.ToPath())
}
