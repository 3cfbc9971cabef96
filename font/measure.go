// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package font

import (
	"bytes"
	"sync"
	"unicode/utf8"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/math/fixed"
)

// Metrics describes a string set in a font.
type Metrics struct {
	// Advance is the horizontal advance of the whole string.
	Advance float64

	// Ascent is the distance from the baseline to the top of the line (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the line (positive).
	Descent float64

	// LineHeight is the recommended distance between baselines.
	LineHeight float64
}

// Measurer computes metrics for a string set in a font.
// Implementations must be safe for concurrent use.
type Measurer interface {
	Measure(f Font, s string) Metrics
}

// MeasurerFunc adapts a function to the Measurer interface.
type MeasurerFunc func(f Font, s string) Metrics

// Measure calls fn(f, s).
func (fn MeasurerFunc) Measure(f Font, s string) Metrics { return fn(f, s) }

// FaceMeasurer measures with the font's own glyph advances and vertical
// metrics. It does not apply kerning or ligatures.
type FaceMeasurer struct{}

// Measure implements Measurer. The zero Font measures as zero.
func (FaceMeasurer) Measure(f Font, s string) Metrics {
	face := f.Face()
	if face == nil {
		return Metrics{}
	}
	return faceMetrics(face, s)
}

func faceMetrics(face text.Face, s string) Metrics {
	m := face.Metrics()
	return Metrics{
		Advance:    face.Advance(s),
		Ascent:     m.Ascent,
		Descent:    m.Descent,
		LineHeight: m.LineHeight(),
	}
}

// FixedMeasurer measures every rune with the same advance. All fields are
// fractions of the font size. It needs no font data, which makes it
// useful for headless layout and tests.
type FixedMeasurer struct {
	Advance float64
	Ascent  float64
	Descent float64
	LineGap float64
}

// Monospace returns a FixedMeasurer with typical monospace proportions.
func Monospace() FixedMeasurer {
	return FixedMeasurer{Advance: 0.6, Ascent: 0.8, Descent: 0.2}
}

// Measure implements Measurer.
func (m FixedMeasurer) Measure(f Font, s string) Metrics {
	size := f.Size()
	asc, desc := m.Ascent*size, m.Descent*size
	return Metrics{
		Advance:    m.Advance * size * float64(utf8.RuneCountInString(s)),
		Ascent:     asc,
		Descent:    desc,
		LineHeight: asc + desc + m.LineGap*size,
	}
}

// ShapingMeasurer measures shaped text with go-text/typesetting, so
// kerning and ligatures are reflected in the advance.
//
// ShapingMeasurer is safe for concurrent use. It caches one parsed font
// per source and pools shapers.
type ShapingMeasurer struct {
	pool sync.Pool

	mu    sync.RWMutex
	fonts map[*text.FontSource]*gotext.Font
}

// NewShapingMeasurer creates a ShapingMeasurer.
func NewShapingMeasurer() *ShapingMeasurer {
	return &ShapingMeasurer{
		pool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
		fonts: make(map[*text.FontSource]*gotext.Font),
	}
}

// Measure implements Measurer. Fonts that go-text cannot parse fall back
// to FaceMeasurer.
func (m *ShapingMeasurer) Measure(f Font, s string) Metrics {
	face := f.Face()
	if face == nil {
		return Metrics{}
	}
	if s == "" {
		return faceMetrics(face, s)
	}
	parsed, err := m.parse(f)
	if err != nil {
		return faceMetrics(face, s)
	}

	runes := []rune(s)
	in := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gotext.NewFace(parsed),
		Size:      fixed.Int26_6(f.Size() * 64),
		Script:    scriptOf(runes),
		Language:  language.NewLanguage("en"),
	}
	hb := m.pool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(in)
	m.pool.Put(hb)

	// Shaped line bounds carry no line gap; take it from the face.
	vm := face.Metrics()
	asc := fixedToFloat(out.LineBounds.Ascent)
	desc := fixedToFloat(out.LineBounds.Descent)
	if desc < 0 {
		desc = -desc
	}
	return Metrics{
		Advance:    fixedToFloat(out.Advance),
		Ascent:     asc,
		Descent:    desc,
		LineHeight: asc + desc + vm.LineGap,
	}
}

func (m *ShapingMeasurer) parse(f Font) (*gotext.Font, error) {
	src := f.Source()

	m.mu.RLock()
	parsed, ok := m.fonts[src]
	m.mu.RUnlock()
	if ok {
		return parsed, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if parsed, ok := m.fonts[src]; ok {
		return parsed, nil
	}
	face, err := gotext.ParseTTF(bytes.NewReader(f.raw))
	if err != nil {
		return nil, err
	}
	m.fonts[src] = face.Font
	return face.Font, nil
}

// scriptOf returns the script of the first non-space rune.
func scriptOf(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
