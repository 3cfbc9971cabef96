// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package app runs a sketch program against a host surface.
//
// A [Program] populates a scene once in Setup and then advances it one Step
// at a time. [App.Run] drives two schedules concurrently: a render schedule
// that asks the [Host] to repaint the scene at a fixed interval, and a
// simulation schedule that ticks the program until it stops. Rendering
// outlives the simulation so the final frame stays on screen until the
// host closes or the context is cancelled.
//
// Basic usage:
//
//	prog := app.Funcs{
//	    OnSetup: func(s *sketch.Scene) error {
//	        ball = sketch.NewCircle(20, 20, 10)
//	        return ball.Attach(s)
//	    },
//	    OnStep: func(*sketch.Scene) app.StepResult {
//	        ball.Translate(2, 1)
//	        app.Sleep(16 * time.Millisecond)
//	        return app.StepContinue
//	    },
//	}
//	host := app.NewOffscreen(320, 240)
//	host.SetFrameLimit(60)
//	err := app.New(prog, app.WithHost(host)).Run(ctx)
package app
