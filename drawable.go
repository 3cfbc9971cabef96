// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sketch

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/gg"
	"github.com/google/uuid"

	"github.com/gogpu/sketch/geom"
)

// Item is anything that can be a scene member. Every drawable type in
// this package embeds *Drawable's value and so implements Item.
type Item interface {
	AsDrawable() *Drawable
}

// Drawable is the base of every scene member: a geometry plus stroke and
// fill style and a reference to the scene it belongs to.
//
// A drawable's kind is fixed by the first geometry it is given. Geometry
// parameters may change at any time, including while the drawable is
// being painted; a visual tear is the worst outcome.
//
// Drawables are created by the New* constructors. The zero value has no
// geometry, no stroke and transparent colors.
type Drawable struct {
	geometry    geom.Geometry
	kind        geom.Kind
	stroke      gg.Stroke
	strokeColor gg.RGBA
	fillColor   gg.RGBA

	// scene is written only while holding the mutex of the scene being
	// joined or left.
	scene atomic.Pointer[Scene]

	// owner is the value that embeds this Drawable, reported to scenes
	// so that Members returns the concrete types callers created.
	owner Item

	idOnce sync.Once
	id     uuid.UUID
}

// NewDrawable creates a drawable declared to carry geometry of the given
// kind. It has no geometry until SetGeometry is called and cannot be
// attached to a scene before then.
func NewDrawable(kind geom.Kind) *Drawable {
	d := &Drawable{}
	d.init(nil, nil)
	d.kind = kind
	return d
}

// NewDrawableWith creates a drawable carrying g, which may be any
// geometry variant.
func NewDrawableWith(g geom.Geometry) *Drawable {
	d := &Drawable{}
	d.init(nil, g)
	return d
}

// init applies the default style: a 1px black stroke and no fill.
func (d *Drawable) init(owner Item, g geom.Geometry) {
	d.owner = owner
	d.geometry = g
	if g != nil {
		d.kind = g.Kind()
	}
	d.stroke = gg.DefaultStroke()
	d.strokeColor = gg.Black
	d.fillColor = gg.Transparent
}

// AsDrawable implements Item.
func (d *Drawable) AsDrawable() *Drawable { return d }

// geometryAs returns d's geometry as a T. A drawable with no geometry
// yet adopts fresh() on behalf of owner; one holding another kind gets a
// detached fresh() so edits go nowhere.
func geometryAs[T geom.Geometry](d *Drawable, owner Item, fresh func() T) T {
	if d.geometry == nil {
		g := fresh()
		d.owner, d.geometry, d.kind = owner, g, g.Kind()
		return g
	}
	if g, ok := d.geometry.(T); ok {
		return g
	}
	return fresh()
}

// item returns the value scenes should hold for d.
func (d *Drawable) item() Item {
	if d.owner != nil {
		return d.owner
	}
	return d
}

// ID returns a random identifier assigned on first use. It appears in log
// records about the drawable.
func (d *Drawable) ID() uuid.UUID {
	d.idOnce.Do(func() { d.id = uuid.New() })
	return d.id
}

// Kind returns the declared geometry kind.
func (d *Drawable) Kind() geom.Kind { return d.kind }

// Geometry returns the current geometry, or nil.
func (d *Drawable) Geometry() geom.Geometry { return d.geometry }

// SetGeometry replaces the geometry. The first geometry fixes the
// drawable's kind; later geometries must be of the same kind or a
// *GeometryKindMismatchError is returned.
func (d *Drawable) SetGeometry(g geom.Geometry) error {
	if g == nil {
		return ErrGeometryUndefined
	}
	if d.kind != geom.KindUndefined && g.Kind() != d.kind {
		return &GeometryKindMismatchError{Want: d.kind, Got: g.Kind()}
	}
	d.kind = g.Kind()
	d.geometry = g
	return nil
}

// Bounds returns the bounding box of the geometry, or the zero Rect if
// there is none.
func (d *Drawable) Bounds() geom.Rect {
	if d.geometry == nil {
		return geom.Rect{}
	}
	return d.geometry.Bounds()
}

// Contains reports whether (x, y) lies in the geometry's interior.
func (d *Drawable) Contains(x, y float64) bool {
	return d.geometry != nil && d.geometry.Contains(geom.Pt(x, y))
}

// Intersects reports whether the geometry overlaps the interior of r.
func (d *Drawable) Intersects(r geom.Rect) bool {
	return d.geometry != nil && d.geometry.Intersects(r)
}

// Translate moves the geometry by (dx, dy), preserving its shape.
func (d *Drawable) Translate(dx, dy float64) {
	if d.geometry != nil {
		d.geometry.Translate(dx, dy)
	}
}

// Relocate moves the geometry so the top-left corner of its bounds lands
// on (x, y).
func (d *Drawable) Relocate(x, y float64) {
	b := d.Bounds()
	d.Translate(x-b.X, y-b.Y)
}

// X returns the left edge of the bounds.
func (d *Drawable) X() float64 { return d.Bounds().X }

// Y returns the top edge of the bounds.
func (d *Drawable) Y() float64 { return d.Bounds().Y }

// Width returns the width of the bounds.
func (d *Drawable) Width() float64 { return d.Bounds().Width }

// Height returns the height of the bounds.
func (d *Drawable) Height() float64 { return d.Bounds().Height }

// SetX moves the drawable horizontally so its bounds start at x.
func (d *Drawable) SetX(x float64) { d.Relocate(x, d.Y()) }

// SetY moves the drawable vertically so its bounds start at y.
func (d *Drawable) SetY(y float64) { d.Relocate(d.X(), y) }

// ResizeWidth changes the horizontal extent, keeping the left edge of the
// bounds in place.
func (d *Drawable) ResizeWidth(w float64) {
	if d.geometry != nil {
		d.geometry.ResizeWidth(w)
	}
}

// ResizeHeight changes the vertical extent, keeping the top edge of the
// bounds in place.
func (d *Drawable) ResizeHeight(h float64) {
	if d.geometry != nil {
		d.geometry.ResizeHeight(h)
	}
}

// Stroke returns the stroke style.
func (d *Drawable) Stroke() gg.Stroke { return d.stroke }

// SetStroke replaces the stroke style. A zero width disables stroking.
func (d *Drawable) SetStroke(s gg.Stroke) { d.stroke = s }

// SetStrokeWidth sets the stroke width, keeping cap, join and dash.
func (d *Drawable) SetStrokeWidth(w float64) { d.stroke.Width = max(w, 0) }

// StrokeColor returns the stroke color. Text is drawn in this color.
func (d *Drawable) StrokeColor() gg.RGBA { return d.strokeColor }

// SetStrokeColor sets the stroke color.
func (d *Drawable) SetStrokeColor(c gg.RGBA) { d.strokeColor = c }

// FillColor returns the fill color.
func (d *Drawable) FillColor() gg.RGBA { return d.fillColor }

// SetFillColor sets the fill color. A fully transparent color disables
// filling.
func (d *Drawable) SetFillColor(c gg.RGBA) { d.fillColor = c }

// copyStyle copies stroke and fill style from src.
func (d *Drawable) copyStyle(src *Drawable) {
	d.stroke = src.stroke
	if src.stroke.Dash != nil {
		d.stroke.Dash = src.stroke.Dash.Clone()
	}
	d.strokeColor = src.strokeColor
	d.fillColor = src.fillColor
}

// Scene returns the scene the drawable belongs to, or nil.
func (d *Drawable) Scene() *Scene { return d.scene.Load() }

// Attach makes the drawable the front-most member of s, leaving any scene
// it was in before. Attaching to the scene it is already in brings it to
// the front. A drawable without geometry returns ErrGeometryUndefined and
// stays where it was; a nil s returns ErrNilScene.
func (d *Drawable) Attach(s *Scene) error {
	return s.insert(d.item(), true)
}

// Detach removes the drawable from its scene. Detaching a drawable that
// is in no scene does nothing. The drawable stays valid and can be
// attached again.
func (d *Drawable) Detach() {
	if s := d.scene.Load(); s != nil {
		s.Remove(d.item())
	}
}
