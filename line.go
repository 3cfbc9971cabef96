// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sketch

import "github.com/gogpu/sketch/geom"

// Line is a straight segment drawable.
type Line struct {
	Drawable
}

// NewLine creates a line from (x1, y1) to (x2, y2).
func NewLine(x1, y1, x2, y2 float64) *Line {
	l := &Line{}
	l.init(l, geom.NewLine(x1, y1, x2, y2))
	return l
}

func (l *Line) line() *geom.Line {
	return geometryAs(&l.Drawable, l, func() *geom.Line { return geom.NewLine(0, 0, 0, 0) })
}

// Endpoints returns the start and end points.
func (l *Line) Endpoints() (p1, p2 geom.Point) {
	g := l.line()
	return g.P1, g.P2
}

// SetEndpoints moves both end points.
func (l *Line) SetEndpoints(x1, y1, x2, y2 float64) {
	g := l.line()
	g.P1, g.P2 = geom.Pt(x1, y1), geom.Pt(x2, y2)
}

// ToPath returns a new Path tracing the line, styled like it.
func (l *Line) ToPath() *Path { return pathFrom(&l.Drawable, l.line().ToPath()) }

// QuadCurve is a quadratic Bézier curve drawable.
type QuadCurve struct {
	Drawable
}

// NewQuadCurve creates a quadratic curve from (x1, y1) to (x2, y2) with
// control point (cx, cy).
func NewQuadCurve(x1, y1, cx, cy, x2, y2 float64) *QuadCurve {
	q := &QuadCurve{}
	q.init(q, geom.NewQuadCurve(x1, y1, cx, cy, x2, y2))
	return q
}

// Curve returns the underlying geometry for direct editing of its points.
func (q *QuadCurve) Curve() *geom.QuadCurve {
	return geometryAs(&q.Drawable, q, func() *geom.QuadCurve { return geom.NewQuadCurve(0, 0, 0, 0, 0, 0) })
}

// SetCurve moves the end points and the control point.
func (q *QuadCurve) SetCurve(x1, y1, cx, cy, x2, y2 float64) {
	*q.Curve() = *geom.NewQuadCurve(x1, y1, cx, cy, x2, y2)
}

// ToPath returns a new Path tracing the curve, styled like it.
func (q *QuadCurve) ToPath() *Path { return pathFrom(&q.Drawable, q.Curve().ToPath()) }

// CubicCurve is a cubic Bézier curve drawable.
type CubicCurve struct {
	Drawable
}

// NewCubicCurve creates a cubic curve from (x1, y1) to (x2, y2) with
// control points (c1x, c1y) and (c2x, c2y).
func NewCubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *CubicCurve {
	c := &CubicCurve{}
	c.init(c, geom.NewCubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2))
	return c
}

// Curve returns the underlying geometry for direct editing of its points.
func (c *CubicCurve) Curve() *geom.CubicCurve {
	return geometryAs(&c.Drawable, c, func() *geom.CubicCurve {
		return geom.NewCubicCurve(0, 0, 0, 0, 0, 0, 0, 0)
	})
}

// SetCurve moves the end points and both control points.
func (c *CubicCurve) SetCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) {
	*c.Curve() = *geom.NewCubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2)
}

// ToPath returns a new Path tracing the curve, styled like it.
func (c *CubicCurve) ToPath() *Path { return pathFrom(&c.Drawable, c.Curve().ToPath()) }
