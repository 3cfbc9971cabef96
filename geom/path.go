// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

import (
	"errors"
	"math"

	"github.com/gogpu/gg"
)

// ErrNoCurrentPoint is recorded by a path when a drawing verb other than
// MoveTo is issued before any MoveTo.
var ErrNoCurrentPoint = errors.New("geom: path has no current point")

// FillRule selects how a path interior is determined.
type FillRule = gg.FillRule

const (
	// NonZero fills points with a non-zero winding number.
	NonZero = gg.FillRuleNonZero
	// EvenOdd fills points crossed an odd number of times.
	EvenOdd = gg.FillRuleEvenOdd
)

// Verb is a path segment command.
type Verb uint8

const (
	VerbMoveTo Verb = iota
	VerbLineTo
	VerbQuadTo
	VerbCubicTo
	VerbClose
)

// PointCount returns the number of points the verb consumes.
func (v Verb) PointCount() int {
	switch v {
	case VerbMoveTo, VerbLineTo:
		return 1
	case VerbQuadTo:
		return 2
	case VerbCubicTo:
		return 3
	default:
		return 0
	}
}

// String returns the verb name.
func (v Verb) String() string {
	switch v {
	case VerbMoveTo:
		return "MoveTo"
	case VerbLineTo:
		return "LineTo"
	case VerbQuadTo:
		return "QuadTo"
	case VerbCubicTo:
		return "CubicTo"
	case VerbClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// Segment is one path command. Only the first Verb.PointCount() entries
// of Points are meaningful; control points come before the end point.
type Segment struct {
	Verb   Verb
	Points [3]Point
}

// Pts returns the meaningful points of the segment.
func (s *Segment) Pts() []Point {
	return s.Points[:s.Verb.PointCount()]
}

// Path is an ordered sequence of segments with a fill rule.
//
// The builder methods never panic. Issuing a drawing verb with no current
// point records ErrNoCurrentPoint; the first recorded error is kept and
// reported by Err, and offending calls leave the path unchanged.
type Path struct {
	segs       []Segment
	rule       FillRule
	start      Point
	current    Point
	hasCurrent bool
	err        error
}

// NewPath creates an empty path using the non-zero fill rule.
func NewPath() *Path {
	return &Path{rule: NonZero}
}

// NewPathWithRule creates an empty path with the given fill rule.
func NewPathWithRule(rule FillRule) *Path {
	return &Path{rule: rule}
}

func (p *Path) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

// Err returns the first builder error recorded on the path.
func (p *Path) Err() error { return p.err }

// FillRule returns the path's fill rule.
func (p *Path) FillRule() FillRule { return p.rule }

// SetFillRule sets the path's fill rule.
func (p *Path) SetFillRule(rule FillRule) { p.rule = rule }

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.segs = append(p.segs, Segment{Verb: VerbMoveTo, Points: [3]Point{pt}})
	p.start, p.current, p.hasCurrent = pt, pt, true
}

// LineTo adds a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) {
	if !p.hasCurrent {
		p.fail(ErrNoCurrentPoint)
		return
	}
	pt := Pt(x, y)
	p.segs = append(p.segs, Segment{Verb: VerbLineTo, Points: [3]Point{pt}})
	p.current = pt
}

// QuadTo adds a quadratic Bézier segment with control point (cx, cy)
// ending at (x, y).
func (p *Path) QuadTo(cx, cy, x, y float64) {
	if !p.hasCurrent {
		p.fail(ErrNoCurrentPoint)
		return
	}
	pt := Pt(x, y)
	p.segs = append(p.segs, Segment{Verb: VerbQuadTo, Points: [3]Point{Pt(cx, cy), pt}})
	p.current = pt
}

// CubicTo adds a cubic Bézier segment with control points (c1x, c1y) and
// (c2x, c2y) ending at (x, y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !p.hasCurrent {
		p.fail(ErrNoCurrentPoint)
		return
	}
	pt := Pt(x, y)
	p.segs = append(p.segs, Segment{Verb: VerbCubicTo, Points: [3]Point{Pt(c1x, c1y), Pt(c2x, c2y), pt}})
	p.current = pt
}

// Close closes the current subpath with a straight segment back to the
// point of the most recent MoveTo.
func (p *Path) Close() {
	if !p.hasCurrent {
		p.fail(ErrNoCurrentPoint)
		return
	}
	p.segs = append(p.segs, Segment{Verb: VerbClose})
	p.current = p.start
}

// CurrentPoint returns the current point and whether one exists.
func (p *Path) CurrentPoint() (Point, bool) {
	return p.current, p.hasCurrent
}

// Len returns the number of segments.
func (p *Path) Len() int { return len(p.segs) }

// Segments returns a copy of the segment sequence.
func (p *Path) Segments() []Segment {
	out := make([]Segment, len(p.segs))
	copy(out, p.segs)
	return out
}

// Append adds every segment of o to p.
func (p *Path) Append(o *Path) {
	for i := range o.segs {
		s := o.segs[i]
		switch s.Verb {
		case VerbMoveTo:
			p.MoveTo(s.Points[0].X, s.Points[0].Y)
		case VerbLineTo:
			p.LineTo(s.Points[0].X, s.Points[0].Y)
		case VerbQuadTo:
			p.QuadTo(s.Points[0].X, s.Points[0].Y, s.Points[1].X, s.Points[1].Y)
		case VerbCubicTo:
			p.CubicTo(s.Points[0].X, s.Points[0].Y, s.Points[1].X, s.Points[1].Y, s.Points[2].X, s.Points[2].Y)
		case VerbClose:
			p.Close()
		}
	}
}

// Transform applies m to every point of the path.
func (p *Path) Transform(m Affine) {
	for i := range p.segs {
		s := &p.segs[i]
		for j := range s.Verb.PointCount() {
			s.Points[j] = m.TransformPoint(s.Points[j])
		}
	}
	transformPoints(m, &p.start, &p.current)
}

// Kind implements Geometry.
func (p *Path) Kind() Kind { return KindPath }

// Bounds returns the smallest box enclosing every end point and control
// point of every segment. For curves this may be looser than the curve
// itself.
func (p *Path) Bounds() Rect {
	if len(p.segs) == 0 {
		return Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := range p.segs {
		for _, pt := range p.segs[i].Pts() {
			minX = math.Min(minX, pt.X)
			minY = math.Min(minY, pt.Y)
			maxX = math.Max(maxX, pt.X)
			maxY = math.Max(maxY, pt.Y)
		}
	}
	if math.IsInf(minX, 1) {
		return Rect{}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Contains reports whether pt lies inside the path according to its fill
// rule. Open subpaths are treated as implicitly closed.
func (p *Path) Contains(pt Point) bool {
	if !p.Bounds().Contains(pt) {
		return false
	}
	return filled(p.rule, windingAt(p.segs, pt))
}

// Intersects reports whether the filled path overlaps the interior of r.
func (p *Path) Intersects(r Rect) bool {
	return intersectsOutline(p, r, true)
}

// Translate moves every point of the path by (dx, dy).
func (p *Path) Translate(dx, dy float64) {
	p.Transform(Translate(dx, dy))
}

// ResizeWidth scales the path horizontally so its bounds become w wide,
// keeping the left edge of the bounds in place.
func (p *Path) ResizeWidth(w float64) {
	b := p.Bounds()
	if b.Width == 0 {
		return
	}
	p.Transform(ScaleAbout(math.Max(w, 0)/b.Width, 1, b.X, b.Y))
}

// ResizeHeight scales the path vertically so its bounds become h tall,
// keeping the top edge of the bounds in place.
func (p *Path) ResizeHeight(h float64) {
	b := p.Bounds()
	if b.Height == 0 {
		return
	}
	p.Transform(ScaleAbout(1, math.Max(h, 0)/b.Height, b.X, b.Y))
}

// ToPath returns a copy of the path.
func (p *Path) ToPath() *Path { return p.clone() }

// Clone implements Geometry.
func (p *Path) Clone() Geometry { return p.clone() }

func (p *Path) clone() *Path {
	c := *p
	c.segs = append([]Segment(nil), p.segs...)
	return &c
}

func (*Path) geometry() {}
