// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sketch

import "github.com/gogpu/sketch/geom"

// Path is a drawable built from line and Bézier segments. Unlike shapes,
// paths can be rotated, scaled and sheared.
//
// Spatial edits transform every point of the path. Scale and Shear act
// about the coordinate origin and so move the path as well as resize it;
// use ScaleAbout and ShearAbout to keep a point fixed.
//
// The zero Path becomes an empty non-zero path on first use, with no
// stroke and a transparent fill. The zero values of the other drawable
// types behave the same way: each adopts a degenerate geometry of its kind
// when first edited.
type Path struct {
	Drawable
}

// NewPath creates an empty path using the non-zero fill rule.
func NewPath() *Path {
	return newPath(geom.NewPath())
}

// NewPathWithRule creates an empty path with the given fill rule.
func NewPathWithRule(rule geom.FillRule) *Path {
	return newPath(geom.NewPathWithRule(rule))
}

func newPath(g *geom.Path) *Path {
	p := &Path{}
	p.init(p, g)
	return p
}

// pathFrom wraps g in a new Path styled like src.
func pathFrom(src *Drawable, g *geom.Path) *Path {
	p := newPath(g)
	p.copyStyle(src)
	return p
}

// NewPathFrom returns a new Path tracing the outline of it transformed
// by m, styled like it. Text and images have no outline and return
// ErrNoOutline.
func NewPathFrom(it Item, m geom.Affine) (*Path, error) {
	d := asDrawable(it)
	if d == nil || d.geometry == nil {
		return nil, ErrGeometryUndefined
	}
	o, ok := d.geometry.(geom.Outliner)
	if !ok {
		return nil, ErrNoOutline
	}
	g := o.ToPath()
	g.Transform(m)
	return pathFrom(d, g), nil
}

func (p *Path) path() *geom.Path {
	return geometryAs(&p.Drawable, p, geom.NewPath)
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) { p.path().MoveTo(x, y) }

// LineTo adds a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) { p.path().LineTo(x, y) }

// QuadTo adds a quadratic Bézier segment.
func (p *Path) QuadTo(cx, cy, x, y float64) { p.path().QuadTo(cx, cy, x, y) }

// CurveTo adds a cubic Bézier segment.
func (p *Path) CurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.path().CubicTo(c1x, c1y, c2x, c2y, x, y)
}

// Close closes the current subpath back to its starting point.
func (p *Path) Close() { p.path().Close() }

// Err returns the first construction error, such as drawing before any
// MoveTo.
func (p *Path) Err() error { return p.path().Err() }

// Segments returns a copy of the segment sequence.
func (p *Path) Segments() []geom.Segment { return p.path().Segments() }

// FillRule returns the fill rule.
func (p *Path) FillRule() geom.FillRule { return p.path().FillRule() }

// SetFillRule sets the fill rule.
func (p *Path) SetFillRule(rule geom.FillRule) { p.path().SetFillRule(rule) }

// Transform applies m to every point of the path.
func (p *Path) Transform(m geom.Affine) { p.path().Transform(m) }

// Rotate turns the path by theta radians about (ax, ay). Positive angles
// turn clockwise on screen.
func (p *Path) Rotate(theta, ax, ay float64) {
	p.Transform(geom.RotateAbout(theta, ax, ay))
}

// Scale scales the path about the coordinate origin.
func (p *Path) Scale(sx, sy float64) { p.Transform(geom.Scale(sx, sy)) }

// ScaleAbout scales the path about (ax, ay).
func (p *Path) ScaleAbout(sx, sy, ax, ay float64) {
	p.Transform(geom.ScaleAbout(sx, sy, ax, ay))
}

// Shear shears the path about the coordinate origin.
func (p *Path) Shear(kx, ky float64) { p.Transform(geom.Shear(kx, ky)) }

// ShearAbout shears the path about (ax, ay).
func (p *Path) ShearAbout(kx, ky, ax, ay float64) {
	p.Transform(geom.ShearAbout(kx, ky, ax, ay))
}
