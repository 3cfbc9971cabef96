// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

import "github.com/gogpu/gg"

// Point is a 2D point. It is the rendering library's point type, so
// geometry coordinates flow to a canvas without conversion.
type Point = gg.Point

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return gg.Pt(x, y)
}

// Affine is a 2D affine transform:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// a.Multiply(b) yields the transform that applies b first, then a.
type Affine = gg.Matrix

// Identity returns the identity transform.
func Identity() Affine { return gg.Identity() }

// Translate returns a translation by (dx, dy).
func Translate(dx, dy float64) Affine { return gg.Translate(dx, dy) }

// Scale returns a scale about the coordinate origin.
func Scale(sx, sy float64) Affine { return gg.Scale(sx, sy) }

// Rotate returns a rotation by theta radians about the coordinate origin.
// Positive angles turn the +x axis toward +y, which is clockwise on screen.
func Rotate(theta float64) Affine { return gg.Rotate(theta) }

// Shear returns a shear about the coordinate origin: x' = x + kx*y and
// y' = y + ky*x.
func Shear(kx, ky float64) Affine { return gg.Shear(kx, ky) }

// About anchors m at (ax, ay): the anchor is moved to the origin, m is
// applied, and the anchor is moved back.
func About(m Affine, ax, ay float64) Affine {
	return gg.Translate(ax, ay).Multiply(m).Multiply(gg.Translate(-ax, -ay))
}

// RotateAbout returns a rotation by theta radians about (ax, ay).
func RotateAbout(theta, ax, ay float64) Affine {
	return About(gg.Rotate(theta), ax, ay)
}

// ScaleAbout returns a scale about (ax, ay).
func ScaleAbout(sx, sy, ax, ay float64) Affine {
	return About(gg.Scale(sx, sy), ax, ay)
}

// ShearAbout returns a shear about (ax, ay).
func ShearAbout(kx, ky, ax, ay float64) Affine {
	return About(gg.Shear(kx, ky), ax, ay)
}

func transformPoints(m Affine, pts ...*Point) {
	for _, p := range pts {
		*p = m.TransformPoint(*p)
	}
}
