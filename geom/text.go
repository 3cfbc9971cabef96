// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

import (
	"github.com/gogpu/sketch/font"
	"golang.org/x/text/unicode/norm"
)

// Text is a single line of text anchored at the left end of its baseline.
// Its bounds are derived from a font.Measurer; no metric is computed here.
type Text struct {
	// Origin is the left end of the baseline.
	Origin Point

	content  string
	font     font.Font
	measurer font.Measurer
}

// NewText creates a text geometry. A nil measurer measures everything as
// zero.
func NewText(content string, x, y float64, f font.Font, m font.Measurer) *Text {
	t := &Text{Origin: Pt(x, y), font: f, measurer: m}
	t.SetContent(content)
	return t
}

// Content returns the string.
func (t *Text) Content() string { return t.content }

// SetContent replaces the string. It is stored in Unicode normalization
// form C so that equal strings measure equally.
func (t *Text) SetContent(s string) { t.content = norm.NFC.String(s) }

// Font returns the font.
func (t *Text) Font() font.Font { return t.font }

// SetFont replaces the font.
func (t *Text) SetFont(f font.Font) { t.font = f }

// Measurer returns the metrics service.
func (t *Text) Measurer() font.Measurer { return t.measurer }

// SetMeasurer replaces the metrics service.
func (t *Text) SetMeasurer(m font.Measurer) { t.measurer = m }

// Metrics measures the current content in the current font.
func (t *Text) Metrics() font.Metrics {
	if t.measurer == nil {
		return font.Metrics{}
	}
	return t.measurer.Measure(t.font, t.content)
}

// Kind implements Geometry.
func (*Text) Kind() Kind { return KindText }

// Bounds spans the advance horizontally and the line height vertically,
// with the top at the ascent line.
func (t *Text) Bounds() Rect {
	m := t.Metrics()
	return Rect{X: t.Origin.X, Y: t.Origin.Y - m.Ascent, Width: m.Advance, Height: m.LineHeight}
}

// Contains reports whether p lies in the bounds.
func (t *Text) Contains(p Point) bool { return t.Bounds().Contains(p) }

// Intersects reports whether the bounds overlap r.
func (t *Text) Intersects(r Rect) bool { return t.Bounds().Intersects(r) }

// Translate moves the baseline origin.
func (t *Text) Translate(dx, dy float64) {
	t.Origin.X += dx
	t.Origin.Y += dy
}

// ResizeWidth scales the font size so the advance becomes about w.
func (t *Text) ResizeWidth(w float64) {
	t.scaleFont(w, t.Bounds().Width)
}

// ResizeHeight scales the font size so the line height becomes about h.
func (t *Text) ResizeHeight(h float64) {
	t.scaleFont(h, t.Bounds().Height)
}

func (t *Text) scaleFont(want, have float64) {
	if have <= 0 {
		return
	}
	t.font = t.font.WithSize(t.font.Size() * max(want, 0) / have)
}

// Clone implements Geometry. The font and measurer are shared.
func (t *Text) Clone() Geometry {
	c := *t
	return &c
}

func (*Text) geometry() {}
