// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sketch

import (
	"errors"
	"fmt"
	"image/color"
	"slices"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// recordCanvas is a Canvas that records the calls made on it.
type recordCanvas struct {
	mu      sync.Mutex
	ops     []string
	fillErr error
}

func (c *recordCanvas) rec(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ops = append(c.ops, fmt.Sprintf(format, args...))
}

// calls returns the recorded calls, optionally keeping only those whose
// name is in keep.
func (c *recordCanvas) calls(keep ...string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []string
	for _, op := range c.ops {
		name := op
		for i, r := range op {
			if r == '(' {
				name = op[:i]
				break
			}
		}
		if len(keep) == 0 || slices.Contains(keep, name) {
			out = append(out, op)
		}
	}
	return out
}

func (c *recordCanvas) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ops = nil
}

func colorString(col color.Color) string {
	r, g, b, a := col.RGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", r>>8, g>>8, b>>8, a>>8)
}

func (c *recordCanvas) SetRasterizerMode(m gg.RasterizerMode) {
	c.rec("SetRasterizerMode(%v)", m)
}

func (c *recordCanvas) ClearWithColor(col gg.RGBA) {
	c.rec("Clear(%s)", colorString(col.Color()))
}

func (c *recordCanvas) ClearPath() {
	c.rec("ClearPath()")
}

func (c *recordCanvas) MoveTo(x, y float64) {
	c.rec("MoveTo(%g,%g)", x, y)
}

func (c *recordCanvas) LineTo(x, y float64) {
	c.rec("LineTo(%g,%g)", x, y)
}

func (c *recordCanvas) QuadraticTo(cx, cy, x, y float64) {
	c.rec("QuadTo(%g,%g,%g,%g)", cx, cy, x, y)
}

func (c *recordCanvas) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.rec("CubicTo(%g,%g,%g,%g,%g,%g)", c1x, c1y, c2x, c2y, x, y)
}

func (c *recordCanvas) ClosePath() {
	c.rec("ClosePath()")
}

func (c *recordCanvas) SetFillRule(r gg.FillRule) {
	name := "NonZero"
	if r == gg.FillRuleEvenOdd {
		name = "EvenOdd"
	}
	c.rec("SetFillRule(%s)", name)
}

func (c *recordCanvas) SetColor(col color.Color) {
	c.rec("SetColor(%s)", colorString(col))
}

func (c *recordCanvas) SetStroke(s gg.Stroke) {
	c.rec("SetStroke(%g)", s.Width)
}

func (c *recordCanvas) SetFont(face text.Face) {
	c.rec("SetFont(%g)", face.Size())
}

func (c *recordCanvas) DrawString(s string, x, y float64) {
	c.rec("DrawString(%s,%g,%g)", s, x, y)
}

func (c *recordCanvas) DrawImage(img *gg.ImageBuf, x, y float64) {
	c.rec("DrawImage(%dx%d,%g,%g)", img.Width(), img.Height(), x, y)
}

func (c *recordCanvas) FillPreserve() error {
	c.rec("Fill()")
	return c.fillErr
}

func (c *recordCanvas) Stroke() error {
	c.rec("Stroke()")
	return nil
}

var errFill = errors.New("fill failed")
