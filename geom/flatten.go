// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

import "github.com/gogpu/gg"

// flatTolerance is the largest distance allowed between a curve and the
// polyline standing in for it during hit tests.
const flatTolerance = 0.05

// subpaths splits segs into one gg path per subpath. With closed set every
// subpath ends in a Close, the way a filled outline is painted.
func subpaths(segs []Segment, closed bool) []*gg.Path {
	var (
		out      []*gg.Path
		cur      *gg.Path
		start    Point
		hasStart bool
		open     bool
	)
	finish := func() {
		if cur == nil {
			return
		}
		if closed && open {
			cur.Close()
		}
		out = append(out, cur)
		cur, open = nil, false
	}
	begin := func(pt Point) {
		cur = gg.NewPath()
		cur.MoveTo(pt.X, pt.Y)
		open = true
	}

	for i := range segs {
		s := &segs[i]
		if s.Verb == VerbMoveTo {
			finish()
			start, hasStart = s.Points[0], true
			begin(start)
			continue
		}
		if !hasStart {
			continue
		}
		if cur == nil {
			if s.Verb == VerbClose {
				continue
			}
			// Drawing after a Close continues from the subpath start.
			begin(start)
		}
		switch s.Verb {
		case VerbLineTo:
			cur.LineTo(s.Points[0].X, s.Points[0].Y)
		case VerbQuadTo:
			cur.QuadraticTo(s.Points[0].X, s.Points[0].Y, s.Points[1].X, s.Points[1].Y)
		case VerbCubicTo:
			cur.CubicTo(s.Points[0].X, s.Points[0].Y, s.Points[1].X, s.Points[1].Y,
				s.Points[2].X, s.Points[2].Y)
		case VerbClose:
			cur.Close()
			open = false
			finish()
		}
	}
	finish()
	return out
}

// windingAt returns the winding number of segs around pt, every subpath
// closed.
func windingAt(segs []Segment, pt Point) int {
	w := 0
	for _, sp := range subpaths(segs, true) {
		w += sp.Winding(pt)
	}
	return w
}

// filled applies rule to a winding number.
func filled(rule FillRule, w int) bool {
	if rule == EvenOdd {
		return w%2 != 0
	}
	return w != 0
}

// segmentHitsRect reports whether segment a→b touches r, using
// Liang-Barsky clipping.
func segmentHitsRect(a, b Point, r Rect) bool {
	t0, t1 := 0.0, 1.0
	dx, dy := b.X-a.X, b.Y-a.Y
	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return false
			}
			if t < t1 {
				t1 = t
			}
		}
		return true
	}
	return clip(-dx, a.X-r.X) && clip(dx, r.X+r.Width-a.X) &&
		clip(-dy, a.Y-r.Y) && clip(dy, r.Y+r.Height-a.Y)
}

// intersectsOutline reports whether the outline of p, or its interior
// when fill is set, overlaps r.
func intersectsOutline(p *Path, r Rect, fill bool) bool {
	if r.IsEmpty() || !p.Bounds().touches(r) {
		return false
	}
	for _, sp := range subpaths(p.segs, fill) {
		pts := sp.Flatten(flatTolerance)
		if len(pts) == 1 && r.Contains(pts[0]) {
			return true
		}
		for i := 1; i < len(pts); i++ {
			if segmentHitsRect(pts[i-1], pts[i], r) {
				return true
			}
		}
	}
	if !fill {
		return false
	}
	// No edge touches r, so r is either wholly inside or wholly outside.
	return filled(p.rule, windingAt(p.segs, r.Center()))
}
