// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package geom defines the geometries a sketch drawable can carry.
//
// Every geometry is a variant of the sealed [Geometry] interface. The
// variants fall into four families:
//
//   - frame-based: [Rectangle], [Ellipse], [RoundedRectangle], [Arc]
//   - endpoint-based: [Line], [QuadCurve], [CubicCurve]
//   - free-form: [Path]
//   - content: [Text], [Image]
//
// Geometries are plain mutable values. They know nothing about scenes,
// styles or rendering; the sketch package layers those on top.
//
// # Coordinates
//
// All coordinates are float64 in a y-down space: the origin is the
// top-left corner of the surface and y grows downward. Angles given to
// [Arc] are in degrees, measured counter-clockwise as seen on screen.
// Angles given to [Rotate] are in radians.
//
// # Resizing
//
// Frame-based geometries resize by changing the frame extent; the frame
// origin stays put. Endpoint-based geometries and paths scale their points
// along one axis, anchored at the left (or top) edge of their bounds. A
// resize to a positive extent of a geometry whose current extent along
// that axis is zero is a no-op, since there is no scale factor to apply.
package geom
