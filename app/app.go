// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/sketch"
)

// DefaultRepaintInterval is the render schedule period.
const DefaultRepaintInterval = 10 * time.Millisecond

// App couples a Program with a scene and a host.
type App struct {
	prog       Program
	host       Host
	scene      *sketch.Scene
	loop       *Loop
	sceneOpts  []sketch.SceneOption
	interval   time.Duration
	log        *slog.Logger
	title      string
	fullscreen bool
}

// Option configures an App during creation.
type Option func(*App)

// New creates an app for prog. Without WithHost it renders into an
// Offscreen host of the default scene size that never closes on its own.
func New(prog Program, opts ...Option) *App {
	a := &App{prog: prog, interval: DefaultRepaintInterval}
	for _, opt := range opts {
		opt(a)
	}
	if a.host == nil {
		a.host = NewOffscreen(sketch.DefaultWidth, sketch.DefaultHeight)
	}
	if a.scene == nil {
		w, h := a.host.Size()
		a.scene = sketch.NewScene(append([]sketch.SceneOption{sketch.WithSize(w, h)}, a.sceneOpts...)...)
	}
	a.loop = NewLoop(prog, a.scene)
	return a
}

// WithHost sets the render surface.
func WithHost(h Host) Option {
	return func(a *App) {
		a.host = h
	}
}

// WithScene runs the program against an existing scene.
func WithScene(s *sketch.Scene) Option {
	return func(a *App) {
		a.scene = s
	}
}

// WithSceneOptions creates the app scene with opts. The scene is sized to
// the host unless opts set a size. It is ignored when WithScene is given.
func WithSceneOptions(opts ...sketch.SceneOption) Option {
	return func(a *App) {
		a.sceneOpts = append(a.sceneOpts, opts...)
	}
}

// WithRepaintInterval sets the render schedule period. Non-positive values
// keep DefaultRepaintInterval.
func WithRepaintInterval(d time.Duration) Option {
	return func(a *App) {
		if d > 0 {
			a.interval = d
		}
	}
}

// WithLogger sets the logger. The default is sketch.Logger() at the time
// Run is called.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		a.log = l
	}
}

// WithTitle sets the window title passed to hosts implementing Configurer.
func WithTitle(title string) Option {
	return func(a *App) {
		a.title = title
	}
}

// WithFullscreen requests a fullscreen surface from hosts implementing
// Configurer.
func WithFullscreen(on bool) Option {
	return func(a *App) {
		a.fullscreen = on
	}
}

// Scene returns the scene the program runs against.
func (a *App) Scene() *sketch.Scene { return a.scene }

// Host returns the render surface.
func (a *App) Host() Host { return a.host }

// Loop returns the simulation loop.
func (a *App) Loop() *Loop { return a.loop }

func (a *App) logger() *slog.Logger {
	if a.log != nil {
		return a.log
	}
	return sketch.Logger()
}

// Run runs Setup, then renders and simulates concurrently until the host
// is done or ctx is cancelled. A finished simulation leaves rendering
// running.
//
// Run returns the Setup error wrapped, ctx.Err() on cancellation, or nil
// when the host closed. Cancellation is cooperative: a step in progress
// finishes before the simulation notices.
func (a *App) Run(ctx context.Context) error {
	log := a.logger()
	if c, ok := a.host.(Configurer); ok {
		c.Configure(a.title, a.fullscreen)
	}
	if err := a.prog.Setup(a.scene); err != nil {
		return fmt.Errorf("app: setup: %w", err)
	}
	log.Info("sketch: setup done", "title", a.title, "members", a.scene.Len())

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		defer cancel()
		return a.render(ctx, gctx)
	})
	g.Go(func() error {
		a.simulate(gctx)
		return nil
	})
	return g.Wait()
}

// render repaints at the configured interval. It returns nil when the
// host is done and the parent's error when parent is cancelled.
func (a *App) render(parent, ctx context.Context) error {
	t := time.NewTicker(a.interval)
	defer t.Stop()

	a.host.Repaint(a.scene)
	for {
		select {
		case <-a.host.Done():
			return nil
		case <-ctx.Done():
			return parent.Err()
		case <-t.C:
			a.host.Repaint(a.scene)
		}
	}
}

func (a *App) simulate(ctx context.Context) {
	start := time.Now()
	for ctx.Err() == nil && a.loop.Tick() {
	}
	a.logger().Info("sketch: simulation stopped",
		"steps", a.loop.Steps(),
		"elapsed", time.Since(start),
		"cancelled", ctx.Err() != nil)
}
