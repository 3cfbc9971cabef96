// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sketch

import (
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Canvas is the drawing surface a render pass paints on.
// *gg.Context implements it; tests substitute recording canvases.
type Canvas interface {
	SetRasterizerMode(mode gg.RasterizerMode)
	ClearWithColor(c gg.RGBA)

	ClearPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()

	SetFillRule(rule gg.FillRule)
	SetColor(c color.Color)
	SetStroke(s gg.Stroke)
	FillPreserve() error
	Stroke() error

	SetFont(face text.Face)
	DrawString(s string, x, y float64)
	DrawImage(img *gg.ImageBuf, x, y float64)
}

var _ Canvas = (*gg.Context)(nil)
