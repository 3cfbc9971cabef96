// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

import "math"

// Line is a straight segment from P1 to P2.
type Line struct {
	P1, P2 Point
}

// NewLine creates a line from (x1, y1) to (x2, y2).
func NewLine(x1, y1, x2, y2 float64) *Line {
	return &Line{P1: Pt(x1, y1), P2: Pt(x2, y2)}
}

// Kind implements Geometry.
func (*Line) Kind() Kind { return KindLine }

// Bounds implements Geometry.
func (l *Line) Bounds() Rect { return boundsOf(l.P1, l.P2) }

// Contains always reports false: a line has no interior.
func (*Line) Contains(Point) bool { return false }

// Intersects reports whether the segment touches the interior of r.
func (l *Line) Intersects(r Rect) bool {
	return !r.IsEmpty() && segmentHitsRect(l.P1, l.P2, r)
}

// Translate implements Geometry.
func (l *Line) Translate(dx, dy float64) {
	transformPoints(Translate(dx, dy), &l.P1, &l.P2)
}

// ResizeWidth implements Geometry.
func (l *Line) ResizeWidth(w float64) {
	resizePoints(l.Bounds(), w, true, &l.P1, &l.P2)
}

// ResizeHeight implements Geometry.
func (l *Line) ResizeHeight(h float64) {
	resizePoints(l.Bounds(), h, false, &l.P1, &l.P2)
}

// ToPath implements Outliner.
func (l *Line) ToPath() *Path {
	p := NewPath()
	p.MoveTo(l.P1.X, l.P1.Y)
	p.LineTo(l.P2.X, l.P2.Y)
	return p
}

// Clone implements Geometry.
func (l *Line) Clone() Geometry {
	c := *l
	return &c
}

func (*Line) geometry() {}

// QuadCurve is a quadratic Bézier curve from P1 to P2 with control point
// Ctrl.
type QuadCurve struct {
	P1, Ctrl, P2 Point
}

// NewQuadCurve creates a quadratic curve.
func NewQuadCurve(x1, y1, cx, cy, x2, y2 float64) *QuadCurve {
	return &QuadCurve{P1: Pt(x1, y1), Ctrl: Pt(cx, cy), P2: Pt(x2, y2)}
}

// Kind implements Geometry.
func (*QuadCurve) Kind() Kind { return KindQuadCurve }

// Bounds encloses the end points and the control point.
func (q *QuadCurve) Bounds() Rect { return boundsOf(q.P1, q.Ctrl, q.P2) }

// Contains reports whether p lies in the region enclosed by the curve and
// its chord.
func (q *QuadCurve) Contains(p Point) bool {
	path := q.ToPath()
	path.Close()
	return path.Contains(p)
}

// Intersects reports whether the curve itself touches the interior of r.
func (q *QuadCurve) Intersects(r Rect) bool {
	return intersectsOutline(q.ToPath(), r, false)
}

// Translate implements Geometry.
func (q *QuadCurve) Translate(dx, dy float64) {
	transformPoints(Translate(dx, dy), &q.P1, &q.Ctrl, &q.P2)
}

// ResizeWidth implements Geometry.
func (q *QuadCurve) ResizeWidth(w float64) {
	resizePoints(q.Bounds(), w, true, &q.P1, &q.Ctrl, &q.P2)
}

// ResizeHeight implements Geometry.
func (q *QuadCurve) ResizeHeight(h float64) {
	resizePoints(q.Bounds(), h, false, &q.P1, &q.Ctrl, &q.P2)
}

// ToPath implements Outliner.
func (q *QuadCurve) ToPath() *Path {
	p := NewPath()
	p.MoveTo(q.P1.X, q.P1.Y)
	p.QuadTo(q.Ctrl.X, q.Ctrl.Y, q.P2.X, q.P2.Y)
	return p
}

// Clone implements Geometry.
func (q *QuadCurve) Clone() Geometry {
	c := *q
	return &c
}

func (*QuadCurve) geometry() {}

// CubicCurve is a cubic Bézier curve from P1 to P2 with control points
// Ctrl1 and Ctrl2.
type CubicCurve struct {
	P1, Ctrl1, Ctrl2, P2 Point
}

// NewCubicCurve creates a cubic curve.
func NewCubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *CubicCurve {
	return &CubicCurve{P1: Pt(x1, y1), Ctrl1: Pt(c1x, c1y), Ctrl2: Pt(c2x, c2y), P2: Pt(x2, y2)}
}

// Kind implements Geometry.
func (*CubicCurve) Kind() Kind { return KindCubicCurve }

// Bounds encloses the end points and both control points.
func (c *CubicCurve) Bounds() Rect { return boundsOf(c.P1, c.Ctrl1, c.Ctrl2, c.P2) }

// Contains reports whether p lies in the region enclosed by the curve and
// its chord.
func (c *CubicCurve) Contains(p Point) bool {
	path := c.ToPath()
	path.Close()
	return path.Contains(p)
}

// Intersects reports whether the curve itself touches the interior of r.
func (c *CubicCurve) Intersects(r Rect) bool {
	return intersectsOutline(c.ToPath(), r, false)
}

// Translate implements Geometry.
func (c *CubicCurve) Translate(dx, dy float64) {
	transformPoints(Translate(dx, dy), &c.P1, &c.Ctrl1, &c.Ctrl2, &c.P2)
}

// ResizeWidth implements Geometry.
func (c *CubicCurve) ResizeWidth(w float64) {
	resizePoints(c.Bounds(), w, true, &c.P1, &c.Ctrl1, &c.Ctrl2, &c.P2)
}

// ResizeHeight implements Geometry.
func (c *CubicCurve) ResizeHeight(h float64) {
	resizePoints(c.Bounds(), h, false, &c.P1, &c.Ctrl1, &c.Ctrl2, &c.P2)
}

// ToPath implements Outliner.
func (c *CubicCurve) ToPath() *Path {
	p := NewPath()
	p.MoveTo(c.P1.X, c.P1.Y)
	p.CubicTo(c.Ctrl1.X, c.Ctrl1.Y, c.Ctrl2.X, c.Ctrl2.Y, c.P2.X, c.P2.Y)
	return p
}

// Clone implements Geometry.
func (c *CubicCurve) Clone() Geometry {
	cc := *c
	return &cc
}

func (*CubicCurve) geometry() {}

// resizePoints scales pts along one axis so that the extent of b along
// that axis becomes size, anchored at b's origin. A zero extent cannot be
// scaled and is left alone.
func resizePoints(b Rect, size float64, horizontal bool, pts ...*Point) {
	size = math.Max(size, 0)
	var m Affine
	if horizontal {
		if b.Width == 0 {
			return
		}
		m = ScaleAbout(size/b.Width, 1, b.X, b.Y)
	} else {
		if b.Height == 0 {
			return
		}
		m = ScaleAbout(1, size/b.Height, b.X, b.Y)
	}
	transformPoints(m, pts...)
}
