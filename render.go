// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sketch

import (
	"fmt"

	"github.com/gogpu/sketch/geom"
)

// Render paints the drawable on c: the fill first, if the fill color is
// visible, then the stroke, if it has width and a visible color.
//
// Text is drawn in the stroke color over its filled bounds. An image is
// drawn between its filled and stroked frame, and paints nothing at all
// until it has a raster.
func (d *Drawable) Render(c Canvas) error {
	switch g := d.geometry.(type) {
	case nil:
		return ErrGeometryUndefined
	case *geom.Rectangle, *geom.Ellipse, *geom.RoundedRectangle, *geom.Arc,
		*geom.Line, *geom.QuadCurve, *geom.CubicCurve:
		return d.renderOutline(c, g.(geom.Outliner).ToPath())
	case *geom.Path:
		return d.renderOutline(c, g)
	case *geom.Text:
		return d.renderText(c, g)
	case *geom.Image:
		return d.renderImage(c, g)
	default:
		return fmt.Errorf("sketch: cannot render %s geometry", g.Kind())
	}
}

func (d *Drawable) fillVisible() bool   { return d.fillColor.A > 0 }
func (d *Drawable) strokeVisible() bool { return d.stroke.Width > 0 && d.strokeColor.A > 0 }

func (d *Drawable) renderOutline(c Canvas, p *geom.Path) error {
	return d.paint(c, p, d.fillVisible(), d.strokeVisible())
}

// paint traces p on c and fills and strokes it as requested.
func (d *Drawable) paint(c Canvas, p *geom.Path, fill, stroke bool) error {
	if !fill && !stroke {
		return nil
	}
	c.ClearPath()
	defer c.ClearPath()

	tracePath(c, p)
	if fill {
		c.SetFillRule(p.FillRule())
		c.SetColor(d.fillColor.Color())
		if err := c.FillPreserve(); err != nil {
			return err
		}
	}
	if stroke {
		c.SetStroke(d.stroke)
		c.SetColor(d.strokeColor.Color())
		if err := c.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

func (d *Drawable) renderText(c Canvas, t *geom.Text) error {
	face := t.Font().Face()
	if face == nil {
		return ErrNoFontFace
	}
	if d.fillVisible() {
		b := t.Bounds()
		if err := d.paint(c, geom.NewRectangle(b.X, b.Y, b.Width, b.Height).ToPath(), true, false); err != nil {
			return err
		}
	}
	if d.strokeColor.A > 0 {
		c.SetFont(face)
		c.SetColor(d.strokeColor.Color())
		c.DrawString(t.Content(), t.Origin.X, t.Origin.Y)
	}
	return nil
}

func (d *Drawable) renderImage(c Canvas, img *geom.Image) error {
	r := img.Raster()
	if r == nil {
		return nil
	}
	f := img.Frame()
	outline := geom.NewRectangle(f.X, f.Y, f.Width, f.Height).ToPath()
	if err := d.paint(c, outline, d.fillVisible(), false); err != nil {
		return err
	}
	if buf := r.Buffer(img.PixelSize()); buf != nil {
		c.DrawImage(buf, f.X, f.Y)
	}
	return d.paint(c, outline, false, d.strokeVisible())
}

// tracePath replays the segments of p as canvas path commands.
func tracePath(c Canvas, p *geom.Path) {
	for _, s := range p.Segments() {
		pts := s.Points
		switch s.Verb {
		case geom.VerbMoveTo:
			c.MoveTo(pts[0].X, pts[0].Y)
		case geom.VerbLineTo:
			c.LineTo(pts[0].X, pts[0].Y)
		case geom.VerbQuadTo:
			c.QuadraticTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y)
		case geom.VerbCubicTo:
			c.CubicTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case geom.VerbClose:
			c.ClosePath()
		}
	}
}
