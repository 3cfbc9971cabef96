// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sketch

import (
	"sync/atomic"

	"github.com/gogpu/sketch/font"
	"github.com/gogpu/sketch/geom"
)

var defaultMeasurer atomic.Pointer[font.Measurer]

func init() {
	var m font.Measurer = font.FaceMeasurer{}
	defaultMeasurer.Store(&m)
}

// SetDefaultMeasurer sets the metrics service given to text created
// afterwards. Pass nil to restore font.FaceMeasurer.
func SetDefaultMeasurer(m font.Measurer) {
	if m == nil {
		m = font.FaceMeasurer{}
	}
	defaultMeasurer.Store(&m)
}

// DefaultMeasurer returns the metrics service given to new text.
func DefaultMeasurer() font.Measurer {
	return *defaultMeasurer.Load()
}

// Text is a single line of text drawn in its stroke color with the left
// end of its baseline at the origin.
type Text struct {
	Drawable
}

// NewText creates text in font.Default() with its baseline starting at
// (x, y).
func NewText(content string, x, y float64) *Text {
	return NewTextWithFont(content, x, y, font.Default())
}

// NewTextWithFont creates text in the given font.
func NewTextWithFont(content string, x, y float64, f font.Font) *Text {
	t := &Text{}
	t.init(t, geom.NewText(content, x, y, f, DefaultMeasurer()))
	return t
}

func (t *Text) text() *geom.Text {
	return geometryAs(&t.Drawable, t, func() *geom.Text {
		return geom.NewText("", 0, 0, font.Default(), DefaultMeasurer())
	})
}

// Content returns the string.
func (t *Text) Content() string { return t.text().Content() }

// SetContent replaces the string.
func (t *Text) SetContent(s string) { t.text().SetContent(s) }

// Font returns the font.
func (t *Text) Font() font.Font { return t.text().Font() }

// SetFont replaces the font.
func (t *Text) SetFont(f font.Font) { t.text().SetFont(f) }

// SetFontSize keeps the font face and changes its size.
func (t *Text) SetFontSize(size float64) {
	g := t.text()
	g.SetFont(g.Font().WithSize(size))
}

// SetMeasurer replaces the metrics service used for bounds.
func (t *Text) SetMeasurer(m font.Measurer) { t.text().SetMeasurer(m) }

// Origin returns the left end of the baseline.
func (t *Text) Origin() geom.Point { return t.text().Origin }

// Ascent returns the distance from the baseline to the top of the line.
func (t *Text) Ascent() float64 { return t.text().Metrics().Ascent }

// Descent returns the distance from the baseline to the bottom of the
// line.
func (t *Text) Descent() float64 { return t.text().Metrics().Descent }
