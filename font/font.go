// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package font describes the fonts text drawables are set in and the
// metrics services that measure them.
//
// A [Font] is an immutable value: a parsed font source plus a point size.
// Metrics come from a [Measurer], which is injected rather than fetched
// from a live surface, so text bounds can be computed headless.
package font

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultSize is the point size used when none is given.
const DefaultSize = 20

// Font is a font source at a given size.
//
// The zero Font has no source and no size. Font{}.WithSize(n) has no
// source but can still be measured by size-only measurers such as
// [FixedMeasurer].
type Font struct {
	src  *text.FontSource
	raw  []byte
	size float64
}

// Parse parses TTF or OTF data into a Font of DefaultSize.
func Parse(data []byte) (Font, error) {
	src, err := text.NewFontSource(data)
	if err != nil {
		return Font{}, fmt.Errorf("font: parse: %w", err)
	}
	return Font{src: src, raw: bytes.Clone(data), size: DefaultSize}, nil
}

// Open reads and parses the font file at path.
func Open(path string) (Font, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return Font{}, fmt.Errorf("font: open: %w", err)
	}
	return Parse(data)
}

var defaultFont = sync.OnceValue(func() Font {
	f, err := Parse(goregular.TTF)
	if err != nil {
		return Font{size: DefaultSize}
	}
	return f
})

// Default returns the Go Regular font at DefaultSize.
func Default() Font {
	return defaultFont()
}

// IsZero reports whether f has no font source.
func (f Font) IsZero() bool { return f.src == nil }

// Name returns the font family name, or "" for the zero Font.
func (f Font) Name() string {
	if f.src == nil {
		return ""
	}
	return f.src.Name()
}

// Size returns the point size.
func (f Font) Size() float64 { return f.size }

// WithSize returns f at the given size.
func (f Font) WithSize(size float64) Font {
	f.size = max(size, 0)
	return f
}

// Source returns the underlying font source, or nil.
func (f Font) Source() *text.FontSource { return f.src }

// Face returns a face of f at its size, or nil for the zero Font.
func (f Font) Face() text.Face {
	if f.src == nil {
		return nil
	}
	return f.src.Face(f.Size())
}

// String returns a short description such as "Go Regular 20pt".
func (f Font) String() string {
	name := f.Name()
	if name == "" {
		name = "<none>"
	}
	return fmt.Sprintf("%s %gpt", name, f.Size())
}
