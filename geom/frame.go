// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

import "math"

// frame is the origin and extent shared by frame-based geometries.
type frame struct {
	r Rect
}

func newFrame(x, y, w, h float64) frame {
	return frame{r: Rect{X: x, Y: y, Width: math.Max(w, 0), Height: math.Max(h, 0)}}
}

// Bounds returns the frame.
func (f *frame) Bounds() Rect { return f.r }

// Frame returns the frame.
func (f *frame) Frame() Rect { return f.r }

// SetFrame replaces the frame. Negative extents are clamped to zero.
func (f *frame) SetFrame(r Rect) {
	r.Width = math.Max(r.Width, 0)
	r.Height = math.Max(r.Height, 0)
	f.r = r
}

// Translate moves the frame origin.
func (f *frame) Translate(dx, dy float64) {
	f.r.X += dx
	f.r.Y += dy
}

// ResizeWidth sets the frame width. The origin does not move.
func (f *frame) ResizeWidth(w float64) { f.r.Width = math.Max(w, 0) }

// ResizeHeight sets the frame height. The origin does not move.
func (f *frame) ResizeHeight(h float64) { f.r.Height = math.Max(h, 0) }

// Rectangle is an axis-aligned rectangle.
type Rectangle struct {
	frame
}

// NewRectangle creates a rectangle with the given frame.
func NewRectangle(x, y, w, h float64) *Rectangle {
	return &Rectangle{frame: newFrame(x, y, w, h)}
}

// Kind implements Geometry.
func (*Rectangle) Kind() Kind { return KindRectangle }

// Contains implements Geometry.
func (r *Rectangle) Contains(p Point) bool { return r.r.Contains(p) }

// Intersects implements Geometry.
func (r *Rectangle) Intersects(o Rect) bool { return r.r.Intersects(o) }

// ToPath traces the rectangle clockwise from its top-left corner.
func (r *Rectangle) ToPath() *Path {
	p := NewPath()
	f := r.r
	p.MoveTo(f.X, f.Y)
	p.LineTo(f.X+f.Width, f.Y)
	p.LineTo(f.X+f.Width, f.Y+f.Height)
	p.LineTo(f.X, f.Y+f.Height)
	p.Close()
	return p
}

// Clone implements Geometry.
func (r *Rectangle) Clone() Geometry {
	c := *r
	return &c
}

func (*Rectangle) geometry() {}

// Ellipse is the ellipse inscribed in its frame.
type Ellipse struct {
	frame
}

// NewEllipse creates an ellipse inscribed in the given frame.
func NewEllipse(x, y, w, h float64) *Ellipse {
	return &Ellipse{frame: newFrame(x, y, w, h)}
}

// Kind implements Geometry.
func (*Ellipse) Kind() Kind { return KindEllipse }

// Contains implements Geometry.
func (e *Ellipse) Contains(p Point) bool {
	return insideEllipse(e.r, p)
}

// Intersects implements Geometry.
func (e *Ellipse) Intersects(r Rect) bool {
	if e.r.IsEmpty() {
		return false
	}
	return intersectsOutline(e.ToPath(), r, true)
}

// ToPath traces the ellipse with four cubic segments, starting at the
// rightmost point.
func (e *Ellipse) ToPath() *Path {
	p := NewPath()
	f := e.r
	c := f.Center()
	rx, ry := f.Width/2, f.Height/2
	p.MoveTo(c.X+rx, c.Y)
	appendArc(p, c.X, c.Y, rx, ry, 0, 360)
	p.Close()
	return p
}

// Clone implements Geometry.
func (e *Ellipse) Clone() Geometry {
	c := *e
	return &c
}

func (*Ellipse) geometry() {}

// RoundedRectangle is a rectangle whose corners are quarter ellipses of
// ArcWidth by ArcHeight.
type RoundedRectangle struct {
	frame
	ArcWidth, ArcHeight float64
}

// NewRoundedRectangle creates a rounded rectangle with the given frame and
// corner arc extents.
func NewRoundedRectangle(x, y, w, h, arcWidth, arcHeight float64) *RoundedRectangle {
	return &RoundedRectangle{
		frame:     newFrame(x, y, w, h),
		ArcWidth:  math.Max(arcWidth, 0),
		ArcHeight: math.Max(arcHeight, 0),
	}
}

// radii returns the corner radii, limited to half the frame.
func (rr *RoundedRectangle) radii() (rx, ry float64) {
	rx = math.Min(rr.ArcWidth, rr.r.Width) / 2
	ry = math.Min(rr.ArcHeight, rr.r.Height) / 2
	return math.Max(rx, 0), math.Max(ry, 0)
}

// Kind implements Geometry.
func (*RoundedRectangle) Kind() Kind { return KindRoundedRectangle }

// Contains implements Geometry.
func (rr *RoundedRectangle) Contains(p Point) bool {
	f := rr.r
	if !f.Contains(p) {
		return false
	}
	rx, ry := rr.radii()
	if rx == 0 || ry == 0 {
		return true
	}
	// Outside the corner boxes the rectangle test is enough.
	var cx, cy float64
	switch {
	case p.X < f.X+rx:
		cx = f.X + rx
	case p.X > f.X+f.Width-rx:
		cx = f.X + f.Width - rx
	default:
		return true
	}
	switch {
	case p.Y < f.Y+ry:
		cy = f.Y + ry
	case p.Y > f.Y+f.Height-ry:
		cy = f.Y + f.Height - ry
	default:
		return true
	}
	return insideEllipse(Rect{X: cx - rx, Y: cy - ry, Width: 2 * rx, Height: 2 * ry}, p)
}

// Intersects implements Geometry.
func (rr *RoundedRectangle) Intersects(r Rect) bool {
	if rr.r.IsEmpty() {
		return false
	}
	return intersectsOutline(rr.ToPath(), r, true)
}

// ToPath traces the rounded rectangle clockwise, starting at the left end
// of the top edge.
func (rr *RoundedRectangle) ToPath() *Path {
	f := rr.r
	rx, ry := rr.radii()
	if rx == 0 || ry == 0 {
		return (&Rectangle{frame: rr.frame}).ToPath()
	}
	right, bottom := f.X+f.Width, f.Y+f.Height

	p := NewPath()
	p.MoveTo(f.X+rx, f.Y)
	p.LineTo(right-rx, f.Y)
	appendArc(p, right-rx, f.Y+ry, rx, ry, 90, -90)
	p.LineTo(right, bottom-ry)
	appendArc(p, right-rx, bottom-ry, rx, ry, 0, -90)
	p.LineTo(f.X+rx, bottom)
	appendArc(p, f.X+rx, bottom-ry, rx, ry, -90, -90)
	p.LineTo(f.X, f.Y+ry)
	appendArc(p, f.X+rx, f.Y+ry, rx, ry, 180, -90)
	p.Close()
	return p
}

// Clone implements Geometry.
func (rr *RoundedRectangle) Clone() Geometry {
	c := *rr
	return &c
}

func (*RoundedRectangle) geometry() {}

// Arc is a pie slice of the ellipse inscribed in its frame. Start and
// Extent are in degrees; angles grow counter-clockwise on screen and a
// negative Extent sweeps clockwise.
type Arc struct {
	frame
	Start, Extent float64
}

// NewArc creates a pie-slice arc.
func NewArc(x, y, w, h, start, extent float64) *Arc {
	return &Arc{frame: newFrame(x, y, w, h), Start: start, Extent: extent}
}

// Kind implements Geometry.
func (*Arc) Kind() Kind { return KindArc }

// Contains implements Geometry.
func (a *Arc) Contains(p Point) bool {
	if !insideEllipse(a.r, p) {
		return false
	}
	if math.Abs(a.Extent) >= 360 {
		return true
	}
	c := a.r.Center()
	rx, ry := a.r.Width/2, a.r.Height/2
	if p == c {
		return true
	}
	phi := math.Atan2(-(p.Y-c.Y)/ry, (p.X-c.X)/rx) * 180 / math.Pi
	if a.Extent >= 0 {
		return normDeg(phi-a.Start) <= a.Extent
	}
	return normDeg(a.Start-phi) <= -a.Extent
}

// Intersects implements Geometry.
func (a *Arc) Intersects(r Rect) bool {
	if a.r.IsEmpty() {
		return false
	}
	return intersectsOutline(a.ToPath(), r, true)
}

// ToPath traces the pie slice: center, start point, the arc, and back to
// the center.
func (a *Arc) ToPath() *Path {
	p := NewPath()
	c := a.r.Center()
	rx, ry := a.r.Width/2, a.r.Height/2
	start := ellipsePoint(c, rx, ry, a.Start)
	extent := math.Max(-360, math.Min(360, a.Extent))
	p.MoveTo(c.X, c.Y)
	p.LineTo(start.X, start.Y)
	appendArc(p, c.X, c.Y, rx, ry, a.Start, extent)
	p.Close()
	return p
}

// Clone implements Geometry.
func (a *Arc) Clone() Geometry {
	c := *a
	return &c
}

func (*Arc) geometry() {}

// insideEllipse reports whether p lies in the ellipse inscribed in f.
func insideEllipse(f Rect, p Point) bool {
	if f.IsEmpty() {
		return false
	}
	c := f.Center()
	nx := (p.X - c.X) / (f.Width / 2)
	ny := (p.Y - c.Y) / (f.Height / 2)
	return nx*nx+ny*ny <= 1
}

// normDeg maps an angle in degrees to [0, 360).
func normDeg(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// ellipsePoint returns the point of the ellipse centered at c at the
// given angle in degrees, counter-clockwise on screen.
func ellipsePoint(c Point, rx, ry, deg float64) Point {
	t := deg * math.Pi / 180
	return Point{X: c.X + rx*math.Cos(t), Y: c.Y - ry*math.Sin(t)}
}

// appendArc adds cubic segments tracing the elliptical arc from start
// through start+extent degrees. The path's current point must already be
// at the arc's start point.
func appendArc(p *Path, cx, cy, rx, ry, start, extent float64) {
	if extent == 0 {
		return
	}
	n := int(math.Ceil(math.Abs(extent)/90 - 1e-9))
	step := extent / float64(n) * math.Pi / 180
	// Tangent length for a cubic approximating a circular arc of step radians.
	k := 4.0 / 3.0 * math.Tan(step/4)

	t0 := start * math.Pi / 180
	for range n {
		t1 := t0 + step
		cos0, sin0 := math.Cos(t0), math.Sin(t0)
		cos1, sin1 := math.Cos(t1), math.Sin(t1)
		// d/dt of (cos t, -sin t) is (-sin t, -cos t).
		p.CubicTo(
			cx+rx*(cos0-k*sin0), cy-ry*(sin0+k*cos0),
			cx+rx*(cos1+k*sin1), cy-ry*(sin1-k*cos1),
			cx+rx*cos1, cy-ry*sin1,
		)
		t0 = t1
	}
}
