// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command sketchfig renders a showcase sketch and saves it as PNG or JPEG.
//
// With -frames it first runs a short headless animation and saves the
// final frame.
package main

import (
	"context"
	"flag"
	"log"
	"math"
	"os"

	"github.com/gogpu/gg"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/app"
	"github.com/gogpu/sketch/config"
)

func main() {
	var (
		cfgPath     = flag.String("config", "", "TOML settings file")
		output      = flag.String("output", "sketch.png", "output file (.png, .jpg)")
		width       = flag.Int("width", 0, "image width (overrides config)")
		height      = flag.Int("height", 0, "image height (overrides config)")
		transparent = flag.Bool("transparent", false, "render without the background")
		frames      = flag.Int("frames", 0, "animate for this many frames before saving")
	)
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	sketch.SetLogger(cfg.Logger(os.Stderr))

	var s *sketch.Scene
	if *frames > 0 {
		s, err = animate(cfg, *frames)
	} else {
		s = sketch.NewScene(cfg.SceneOptions()...)
		_, err = showcase(s)
	}
	if err != nil {
		log.Fatalf("Failed to build sketch: %v", err)
	}

	var opts []sketch.SnapshotOption
	if *transparent {
		opts = append(opts, sketch.Transparent())
	}
	if err := s.SaveAs(*output, opts...); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	w, h := s.Size()
	log.Printf("Sketch saved to %s (%dx%d, %d drawables)\n", *output, w, h, s.Len())
}

// showcase fills s with one drawable of each family and returns the ball
// the animation moves.
func showcase(s *sketch.Scene) (*sketch.Shape, error) {
	w, h := s.Size()
	fw, fh := float64(w), float64(h)

	ground := sketch.NewRectangle(0, fh*0.75, fw, fh*0.25)
	ground.SetFillColor(gg.Hex("#3b7d3b"))
	ground.SetStrokeWidth(0)

	sun := sketch.NewCircle(fw*0.85, fh*0.18, fh*0.1)
	sun.SetFillColor(gg.Hex("#ffcc33"))
	sun.SetStrokeColor(gg.Hex("#e69900"))
	sun.SetStrokeWidth(3)

	house := sketch.NewRoundedRectangle(fw*0.1, fh*0.5, fw*0.2, fh*0.25, 12, 12)
	house.SetFillColor(gg.Hex("#c8553d"))

	// The roof starts as a pie slice and is tilted as a path.
	slice := sketch.NewArc(fw*0.08, fh*0.38, fw*0.24, fh*0.24, 30, 120)
	slice.SetFillColor(gg.Hex("#6b2737"))
	roof := slice.ToPath()
	c := roof.Bounds().Center()
	roof.Rotate(-math.Pi/36, c.X, c.Y)

	path := sketch.NewPath()
	path.MoveTo(fw*0.4, fh*0.75)
	path.QuadTo(fw*0.5, fh*0.55, fw*0.6, fh*0.75)
	path.CurveTo(fw*0.65, fh*0.85, fw*0.7, fh*0.65, fw*0.75, fh*0.75)
	path.SetStrokeColor(gg.Hex("#2d4059"))
	path.SetStrokeWidth(4)

	wire := sketch.NewLine(0, fh*0.3, fw*0.7, fh*0.25)
	wire.SetStrokeColor(gg.RGBA{R: 0.2, G: 0.2, B: 0.2, A: 0.6})

	label := sketch.NewText("sketch", fw*0.4, fh*0.2)
	label.SetFontSize(fh * 0.08)
	label.SetStrokeColor(gg.Hex("#2d4059"))

	ball := sketch.NewCircle(fw*0.45, fh*0.6, fh*0.04)
	ball.SetFillColor(gg.Hex("#ea5455"))

	for _, it := range []sketch.Item{ground, sun, house, roof, path, wire, label, ball} {
		if err := it.AsDrawable().Attach(s); err != nil {
			return nil, err
		}
	}
	return ball, nil
}

// animate bounces the showcase ball across the ground for n frames.
func animate(cfg config.Config, n int) (*sketch.Scene, error) {
	var (
		ball   *sketch.Shape
		dx, dy = 3.0, -4.0
	)
	prog := app.Funcs{
		OnSetup: func(s *sketch.Scene) (err error) {
			ball, err = showcase(s)
			return err
		},
		OnStep: func(s *sketch.Scene) app.StepResult {
			w, h := s.Size()
			b := ball.Bounds()
			if b.X+dx < 0 || b.Max().X+dx > float64(w) {
				dx = -dx
			}
			if b.Y+dy < 0 || b.Max().Y+dy > float64(h)*0.75 {
				dy = -dy
			}
			ball.Translate(dx, dy)
			app.Sleep(app.DefaultRepaintInterval)
			return app.StepContinue
		},
	}

	a := app.New(prog, cfg.AppOptions()...)
	host, ok := a.Host().(*app.Offscreen)
	if ok {
		host.SetFrameLimit(n)
	}
	if err := a.Run(context.Background()); err != nil {
		return nil, err
	}
	return a.Scene(), nil
}
