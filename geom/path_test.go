// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

func TestPathBounds(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)

	if got, want := p.Bounds(), R(0, 0, 10, 10); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestPathBoundsIncludeControlPoints(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.QuadTo(5, 20, 10, 0)
	p.CubicTo(12, -8, 30, 4, 20, 0)

	// The curve itself never reaches y=20 or x=30; the control points do.
	if got, want := p.Bounds(), R(0, -8, 30, 28); !got.ApproxEqual(want, eps) {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestPathEmptyBounds(t *testing.T) {
	if got := NewPath().Bounds(); got != (Rect{}) {
		t.Errorf("empty path Bounds() = %v, want zero", got)
	}
}

func TestPathNoCurrentPoint(t *testing.T) {
	tests := []struct {
		name string
		op   func(p *Path)
	}{
		{"LineTo", func(p *Path) { p.LineTo(1, 1) }},
		{"QuadTo", func(p *Path) { p.QuadTo(1, 1, 2, 2) }},
		{"CubicTo", func(p *Path) { p.CubicTo(1, 1, 2, 2, 3, 3) }},
		{"Close", func(p *Path) { p.Close() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPath()
			tt.op(p)
			if !errors.Is(p.Err(), ErrNoCurrentPoint) {
				t.Errorf("Err() = %v, want ErrNoCurrentPoint", p.Err())
			}
			if p.Len() != 0 {
				t.Errorf("Len() = %d, want 0", p.Len())
			}

			// The error is sticky but later valid calls still build.
			p.MoveTo(0, 0)
			p.LineTo(5, 5)
			if p.Len() != 2 {
				t.Errorf("Len() after recovery = %d, want 2", p.Len())
			}
			if p.Err() == nil {
				t.Error("Err() cleared, want sticky error")
			}
		})
	}
}

func TestPathCloseReturnsToSubpathStart(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 2)
	p.LineTo(5, 2)
	p.Close()

	cur, ok := p.CurrentPoint()
	if !ok || cur != Pt(1, 2) {
		t.Errorf("CurrentPoint() = %v, %v, want (1,2), true", cur, ok)
	}
}

func TestPathScaleAboutOrigin(t *testing.T) {
	p := NewPath()
	p.MoveTo(100, 100)
	p.LineTo(150, 100)
	p.LineTo(150, 150)
	p.LineTo(100, 150)
	p.Close()

	p.Transform(Scale(1.1, 1.1))

	want := R(110, 110, 55, 55)
	if got := p.Bounds(); !got.ApproxEqual(want, 1e-9) {
		t.Errorf("Bounds() after Scale(1.1) = %v, want %v", got, want)
	}
}

func TestPathScaleAboutAnchorKeepsAnchor(t *testing.T) {
	p := NewPath()
	p.MoveTo(100, 100)
	p.LineTo(150, 150)

	p.Transform(ScaleAbout(2, 2, 100, 100))

	if got, want := p.Bounds(), R(100, 100, 100, 100); !got.ApproxEqual(want, eps) {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestPathRotateAbout(t *testing.T) {
	p := NewPath()
	p.MoveTo(10, 0)
	p.LineTo(20, 0)

	p.Transform(RotateAbout(math.Pi/2, 10, 0))

	// +x turns toward +y.
	segs := p.Segments()
	end := segs[1].Points[0]
	if math.Abs(end.X-10) > eps || math.Abs(end.Y-10) > eps {
		t.Errorf("end after rotation = %v, want (10,10)", end)
	}
}

func TestPathTranslateRoundTrip(t *testing.T) {
	p := NewPath()
	p.MoveTo(3, 4)
	p.CubicTo(10, 20, 30, -5, 40, 12)
	before := p.Bounds()

	p.Translate(7.25, -3.5)
	p.Translate(-7.25, 3.5)

	if got := p.Bounds(); !got.ApproxEqual(before, eps) {
		t.Errorf("Bounds() after round trip = %v, want %v", got, before)
	}
}

func TestPathResizeAnchoredAtBoundsOrigin(t *testing.T) {
	p := NewPath()
	p.MoveTo(20, 30)
	p.LineTo(60, 30)
	p.LineTo(60, 50)

	p.ResizeWidth(80)
	if got, want := p.Bounds(), R(20, 30, 80, 20); !got.ApproxEqual(want, eps) {
		t.Errorf("after ResizeWidth(80) Bounds() = %v, want %v", got, want)
	}
	p.ResizeHeight(10)
	if got, want := p.Bounds(), R(20, 30, 80, 10); !got.ApproxEqual(want, eps) {
		t.Errorf("after ResizeHeight(10) Bounds() = %v, want %v", got, want)
	}
}

func TestPathResizeZeroExtentIsNoop(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 5)
	p.LineTo(10, 5)

	p.ResizeHeight(20)

	if got, want := p.Bounds(), R(0, 5, 10, 0); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func square(rule FillRule, x, y, size float64) *Path {
	p := NewPathWithRule(rule)
	p.MoveTo(x, y)
	p.LineTo(x+size, y)
	p.LineTo(x+size, y+size)
	p.LineTo(x, y+size)
	p.Close()
	return p
}

func TestPathContainsFillRules(t *testing.T) {
	// Two nested squares traced in the same direction.
	build := func(rule FillRule) *Path {
		p := square(rule, 0, 0, 100)
		p.Append(square(rule, 25, 25, 50))
		p.SetFillRule(rule)
		return p
	}

	tests := []struct {
		name string
		rule FillRule
		pt   Point
		want bool
	}{
		{"nonzero outer ring", NonZero, Pt(10, 10), true},
		{"nonzero hole", NonZero, Pt(50, 50), true},
		{"evenodd outer ring", EvenOdd, Pt(10, 10), true},
		{"evenodd hole", EvenOdd, Pt(50, 50), false},
		{"outside", NonZero, Pt(150, 50), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := build(tt.rule).Contains(tt.pt); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}
}

func TestPathContainsImplicitClose(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(100, 0)
	p.LineTo(100, 100)

	if !p.Contains(Pt(80, 20)) {
		t.Error("Contains(80,20) = false, want true for open triangle")
	}
	if p.Contains(Pt(20, 80)) {
		t.Error("Contains(20,80) = true, want false")
	}
}

func TestPathIntersects(t *testing.T) {
	p := square(NonZero, 0, 0, 100)

	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"overlapping edge", R(90, 40, 20, 20), true},
		{"inside", R(40, 40, 10, 10), true},
		{"enclosing", R(-10, -10, 200, 200), true},
		{"disjoint", R(200, 200, 10, 10), false},
		{"empty", R(50, 50, 0, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Intersects(tt.r); got != tt.want {
				t.Errorf("Intersects(%v) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestPathCloneIsIndependent(t *testing.T) {
	p := square(EvenOdd, 0, 0, 10)
	c := p.Clone().(*Path)

	c.Translate(5, 5)
	c.LineTo(100, 100)

	if got, want := p.Bounds(), R(0, 0, 10, 10); got != want {
		t.Errorf("original Bounds() = %v, want %v", got, want)
	}
	if p.Len() == c.Len() {
		t.Error("clone shares segment storage with original")
	}
	if c.FillRule() != EvenOdd {
		t.Errorf("clone FillRule() = %v, want EvenOdd", c.FillRule())
	}
}

func TestVerbPointCount(t *testing.T) {
	tests := []struct {
		v    Verb
		want int
	}{
		{VerbMoveTo, 1},
		{VerbLineTo, 1},
		{VerbQuadTo, 2},
		{VerbCubicTo, 3},
		{VerbClose, 0},
	}
	for _, tt := range tests {
		if got := tt.v.PointCount(); got != tt.want {
			t.Errorf("%v.PointCount() = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestPathContainsCurvedOutline(t *testing.T) {
	frame := R(0, 0, 80, 40)
	p := NewEllipse(frame.X, frame.Y, frame.Width, frame.Height).ToPath()

	for y := 0.5; y < 40; y++ {
		for x := 0.5; x < 80; x++ {
			pt := Pt(x, y)
			nx, ny := (x-40)/40, (y-20)/20
			// Skip the band where curve approximation may round either way.
			if d := math.Abs(math.Sqrt(nx*nx+ny*ny) - 1); d < 0.02 {
				continue
			}
			if got, want := p.Contains(pt), insideEllipse(frame, pt); got != want {
				t.Fatalf("Contains(%v) = %v, want %v", pt, got, want)
			}
		}
	}
}

func TestPathContainsAfterClose(t *testing.T) {
	// The second triangle continues from the start of the first subpath
	// without a MoveTo and is implicitly closed.
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(0, 10)
	p.Close()
	p.LineTo(-10, 0)
	p.LineTo(0, -10)

	tests := []struct {
		pt   Point
		want bool
	}{
		{Pt(2, 2), true},
		{Pt(-2, -2), true},
		{Pt(2, -2), false},
		{Pt(-2, 2), false},
	}
	for _, tt := range tests {
		if got := p.Contains(tt.pt); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.pt, got, tt.want)
		}
	}
}

func TestSubpathsClosing(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	p.MoveTo(20, 20)
	p.QuadTo(30, 10, 40, 20)

	open := subpaths(p.segs, false)
	if len(open) != 2 {
		t.Fatalf("subpaths(open) = %d, want 2", len(open))
	}
	if pts := open[0].Flatten(flatTolerance); len(pts) != 3 {
		t.Errorf("open subpath flattens to %d points, want 3", len(pts))
	}
	closed := subpaths(p.segs, true)
	if pts := closed[0].Flatten(flatTolerance); len(pts) != 4 || pts[3] != Pt(0, 0) {
		t.Errorf("closed subpath = %v, want a return to (0,0)", pts)
	}
}
