// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sketch

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/sketch/font"
	"github.com/gogpu/sketch/geom"
)

func TestRectangleLifecycle(t *testing.T) {
	s := NewScene()
	r := NewRectangle(10, 10, 50, 30)

	if err := r.Attach(s); err != nil {
		t.Fatalf("Attach() error = %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}

	r.Translate(5, 5)
	if got, want := r.Bounds(), geom.R(15, 15, 50, 30); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}

	r.Detach()
	if s.Len() != 0 {
		t.Errorf("Len() after Detach = %d, want 0", s.Len())
	}
	if r.Scene() != nil {
		t.Error("Scene() != nil after Detach")
	}

	// Still usable after detaching.
	r.ResizeWidth(10)
	if err := r.Attach(s); err != nil {
		t.Fatalf("re-Attach() error = %v", err)
	}
	if got, want := r.Bounds(), geom.R(15, 15, 10, 30); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestAttachUndefinedGeometry(t *testing.T) {
	s := NewScene()
	d := NewDrawable(geom.KindRectangle)

	err := d.Attach(s)
	if !errors.Is(err, ErrGeometryUndefined) {
		t.Fatalf("Attach() error = %v, want ErrGeometryUndefined", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	if d.Scene() != nil {
		t.Error("Scene() != nil after failed Attach")
	}
	if err := s.Add(&Drawable{}); !errors.Is(err, ErrGeometryUndefined) {
		t.Errorf("Add(zero Drawable) error = %v, want ErrGeometryUndefined", err)
	}
}

func TestSetGeometry(t *testing.T) {
	d := NewDrawable(geom.KindEllipse)
	if err := d.SetGeometry(geom.NewEllipse(0, 0, 4, 4)); err != nil {
		t.Fatalf("SetGeometry(ellipse) error = %v", err)
	}

	err := d.SetGeometry(geom.NewRectangle(0, 0, 4, 4))
	var mismatch *GeometryKindMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("SetGeometry(rectangle) error = %v, want *GeometryKindMismatchError", err)
	}
	if mismatch.Want != geom.KindEllipse || mismatch.Got != geom.KindRectangle {
		t.Errorf("mismatch = %+v", mismatch)
	}
	if !errors.Is(err, ErrGeometryKindMismatch) {
		t.Error("errors.Is(err, ErrGeometryKindMismatch) = false")
	}
	if d.Kind() != geom.KindEllipse {
		t.Errorf("Kind() = %v, want Ellipse", d.Kind())
	}
	if err := d.SetGeometry(nil); !errors.Is(err, ErrGeometryUndefined) {
		t.Errorf("SetGeometry(nil) error = %v, want ErrGeometryUndefined", err)
	}
}

func TestUndeclaredDrawableTakesFirstKind(t *testing.T) {
	d := NewDrawable(geom.KindUndefined)
	if err := d.SetGeometry(geom.NewLine(0, 0, 1, 1)); err != nil {
		t.Fatalf("SetGeometry() error = %v", err)
	}
	if d.Kind() != geom.KindLine {
		t.Errorf("Kind() = %v, want Line", d.Kind())
	}
}

func TestDefaultStyle(t *testing.T) {
	d := NewRectangle(0, 0, 1, 1)
	if d.Stroke().Width != 1 {
		t.Errorf("stroke width = %v, want 1", d.Stroke().Width)
	}
	if d.StrokeColor() != gg.Black {
		t.Errorf("StrokeColor() = %v, want black", d.StrokeColor())
	}
	if d.FillColor().A != 0 {
		t.Errorf("FillColor() = %v, want transparent", d.FillColor())
	}
}

func allItems() []Item {
	p := NewPath()
	p.MoveTo(1, 2)
	p.CurveTo(10, 20, 30, -4, 12, 7)
	p.Close()

	txt := NewTextWithFont("hi", 5, 30, font.Font{}.WithSize(12))
	txt.SetMeasurer(font.Monospace())

	return []Item{
		NewRectangle(10, 10, 50, 30),
		NewEllipse(0, 0, 20, 10),
		NewRoundedRectangle(3, 4, 30, 20, 6, 6),
		NewArc(0, 0, 40, 40, 45, 200),
		NewLine(1, 2, 30, 40),
		NewQuadCurve(0, 0, 5, 10, 10, 0),
		NewCubicCurve(0, 0, 1, 5, 9, 5, 10, 0),
		p,
		txt,
		NewImage(7, 8),
	}
}

func TestTranslateRoundTrip(t *testing.T) {
	for _, it := range allItems() {
		d := it.AsDrawable()
		t.Run(d.Kind().String(), func(t *testing.T) {
			before := d.Bounds()
			d.Translate(12.5, -7.25)
			d.Translate(-12.5, 7.25)
			if got := d.Bounds(); !got.ApproxEqual(before, 1e-9) {
				t.Errorf("Bounds() = %v, want %v", got, before)
			}
		})
	}
}

func TestRelocate(t *testing.T) {
	for _, it := range allItems() {
		d := it.AsDrawable()
		t.Run(d.Kind().String(), func(t *testing.T) {
			size := d.Bounds()
			d.Relocate(100, 200)
			got := d.Bounds()
			if math.Abs(got.X-100) > 1e-9 || math.Abs(got.Y-200) > 1e-9 {
				t.Errorf("Bounds() origin = (%v,%v), want (100,200)", got.X, got.Y)
			}
			if math.Abs(got.Width-size.Width) > 1e-9 || math.Abs(got.Height-size.Height) > 1e-9 {
				t.Errorf("Bounds() size = %vx%v, want %vx%v", got.Width, got.Height, size.Width, size.Height)
			}
		})
	}
}

func TestLocationAccessors(t *testing.T) {
	r := NewRectangle(10, 20, 30, 40)
	if r.X() != 10 || r.Y() != 20 || r.Width() != 30 || r.Height() != 40 {
		t.Fatalf("X,Y,Width,Height = %v,%v,%v,%v, want 10,20,30,40", r.X(), r.Y(), r.Width(), r.Height())
	}

	r.SetX(-5)
	if got, want := r.Bounds(), geom.R(-5, 20, 30, 40); got != want {
		t.Errorf("after SetX Bounds() = %v, want %v", got, want)
	}
	r.SetY(7)
	if got, want := r.Bounds(), geom.R(-5, 7, 30, 40); got != want {
		t.Errorf("after SetY Bounds() = %v, want %v", got, want)
	}

	for _, it := range allItems() {
		d := it.AsDrawable()
		t.Run(d.Kind().String(), func(t *testing.T) {
			d.SetX(50)
			d.SetY(60)
			if math.Abs(d.X()-50) > 1e-9 || math.Abs(d.Y()-60) > 1e-9 {
				t.Errorf("X,Y = %v,%v, want 50,60", d.X(), d.Y())
			}
		})
	}

	var none Drawable
	if none.X() != 0 || none.Width() != 0 {
		t.Error("drawable without geometry has non-zero extent")
	}
	none.SetX(5)
}

func TestFrameResizeAnchoring(t *testing.T) {
	for _, s := range []*Shape{
		NewRectangle(10, 20, 30, 40),
		NewEllipse(10, 20, 30, 40),
		NewRoundedRectangle(10, 20, 30, 40, 5, 5),
		NewArc(10, 20, 30, 40, 0, 90),
	} {
		t.Run(s.Kind().String(), func(t *testing.T) {
			s.ResizeWidth(70)
			b := s.Bounds()
			if b.Width != 70 || b.X != 10 || b.Y != 20 {
				t.Errorf("Bounds() = %v, want x=10 y=20 width=70", b)
			}
		})
	}
}

func TestDetachWhenDetached(t *testing.T) {
	r := NewRectangle(0, 0, 1, 1)
	r.Detach()
	r.Detach()
	if r.Scene() != nil {
		t.Error("Scene() != nil")
	}
}

func TestAttachMovesBetweenScenes(t *testing.T) {
	a, b := NewScene(), NewScene()
	r := NewRectangle(0, 0, 1, 1)

	_ = r.Attach(a)
	_ = r.Attach(b)

	if a.Len() != 0 || b.Len() != 1 {
		t.Errorf("a.Len() = %d, b.Len() = %d, want 0 and 1", a.Len(), b.Len())
	}
	if r.Scene() != b {
		t.Error("Scene() is not the second scene")
	}
}

func TestIDStable(t *testing.T) {
	a, b := NewRectangle(0, 0, 1, 1), NewRectangle(0, 0, 1, 1)
	if a.ID() != a.ID() {
		t.Error("ID() changed between calls")
	}
	if a.ID() == b.ID() {
		t.Error("two drawables share an ID")
	}
}

func TestContainsAndIntersects(t *testing.T) {
	e := NewEllipse(0, 0, 100, 100)
	if !e.Contains(50, 50) || e.Contains(2, 2) {
		t.Error("ellipse Contains() gave wrong results")
	}
	if !e.Intersects(geom.R(40, 40, 5, 5)) {
		t.Error("ellipse Intersects() = false for inner box")
	}
	var d Drawable
	if d.Contains(0, 0) || d.Intersects(geom.R(0, 0, 10, 10)) {
		t.Error("zero Drawable reports a hit")
	}
}

func TestZeroValueDrawables(t *testing.T) {
	s := NewScene()

	var p Path
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	p.Close()
	if p.Kind() != geom.KindPath {
		t.Errorf("zero Path kind = %v, want %v", p.Kind(), geom.KindPath)
	}
	if got, want := p.Bounds(), geom.R(0, 0, 10, 10); got != want {
		t.Errorf("zero Path bounds = %v, want %v", got, want)
	}
	if err := p.Attach(s); err != nil {
		t.Fatalf("Attach zero Path: %v", err)
	}
	if m := s.Members(); len(m) != 1 || m[0] != Item(&p) {
		t.Errorf("Members = %v, want the *Path", m)
	}

	var sh Shape
	if got := sh.Frame(); got != (geom.Rect{}) {
		t.Errorf("zero Shape frame = %v, want empty", got)
	}
	sh.SetFrame(1, 2, 3, 4)
	if _, _, ok := sh.Angles(); ok {
		t.Error("zero Shape reports arc angles")
	}
	if segs := sh.ToPath().Segments(); len(segs) != 0 {
		t.Errorf("zero Shape ToPath has %d segments, want 0", len(segs))
	}
	if err := sh.Attach(s); !errors.Is(err, ErrGeometryUndefined) {
		t.Errorf("Attach zero Shape = %v, want ErrGeometryUndefined", err)
	}

	var l Line
	l.SetEndpoints(1, 1, 4, 5)
	if p1, p2 := l.Endpoints(); p1 != geom.Pt(1, 1) || p2 != geom.Pt(4, 5) {
		t.Errorf("zero Line endpoints = %v %v", p1, p2)
	}
	var q QuadCurve
	q.SetCurve(0, 0, 5, 10, 10, 0)
	if q.Kind() != geom.KindQuadCurve {
		t.Errorf("zero QuadCurve kind = %v", q.Kind())
	}
	var c CubicCurve
	c.SetCurve(0, 0, 0, 10, 10, 10, 10, 0)
	if c.Kind() != geom.KindCubicCurve {
		t.Errorf("zero CubicCurve kind = %v", c.Kind())
	}

	var txt Text
	txt.SetContent("hi")
	if txt.Content() != "hi" || txt.Kind() != geom.KindText {
		t.Errorf("zero Text = %q kind %v", txt.Content(), txt.Kind())
	}
	var img Image
	if img.Raster() != nil || img.Kind() != geom.KindImage {
		t.Errorf("zero Image raster = %v kind %v", img.Raster(), img.Kind())
	}
}

func TestPathEditsIgnoreForeignGeometry(t *testing.T) {
	var p Path
	r := geom.NewRectangle(0, 0, 10, 10)
	if err := p.SetGeometry(r); err != nil {
		t.Fatal(err)
	}
	p.MoveTo(50, 50)
	p.LineTo(60, 60)
	if got := p.Geometry(); got != geom.Geometry(r) {
		t.Errorf("geometry replaced by path edits: %v", got)
	}
	if got, want := p.Bounds(), geom.R(0, 0, 10, 10); got != want {
		t.Errorf("Bounds = %v, want %v", got, want)
	}
}
