// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package sketch is a retained-mode 2D scene graph for small animations
// and teaching programs, drawn with gg.
//
// # Overview
//
// A [Scene] holds an ordered list of drawables and paints them back to
// front. Drawables are long-lived objects: create one, attach it to a
// scene, and mutate its geometry or style from any goroutine. Each render
// pass paints whatever the scene holds at that moment.
//
//	s := sketch.NewScene(sketch.WithSize(400, 300))
//
//	ball := sketch.NewCircle(50, 150, 20)
//	ball.SetFillColor(gg.Hex("#e63946"))
//	_ = ball.Attach(s)
//
//	ball.Translate(10, 0)
//	_ = s.SaveAs("frame.png")
//
// # Drawables
//
// Every drawable embeds [Drawable], which owns a geometry from package
// geom together with a stroke style, a stroke color and a fill color. The
// concrete types add operations that only make sense for their geometry:
//
//   - [Shape]: rectangles, ellipses, rounded rectangles and pie arcs.
//     Shapes translate and resize but keep their frame axis-aligned.
//   - [Path]: free-form outlines that also rotate, scale and shear.
//   - [Line], [QuadCurve], [CubicCurve]: open strokes.
//   - [Text]: a line of text whose bounds come from a font.Measurer.
//   - [Image]: a raster scaled to a frame.
//
// Call ToPath on a shape, line or curve to get an independent [Path] with
// the same outline and style.
//
// # Paint order
//
// Attach appends a drawable at the front of its scene, removing it from
// any scene it was in. Attaching a drawable to the scene it is already in
// brings it to the front without disturbing the order of other members.
// [Scene.Add] differs only in leaving an existing member where it is.
//
// # Concurrency
//
// Scene membership changes and render passes are mutually exclusive.
// Changes to a drawable's geometry or style are not synchronized; a change
// made while a pass is painting may show up half applied in that frame.
// The app package runs a simulation loop and a render loop over one scene.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package sketch
