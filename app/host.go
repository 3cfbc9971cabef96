// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package app

import (
	"image"
	"sync"

	"github.com/gogpu/gg"

	"github.com/gogpu/sketch"
)

// Host is the surface an App renders into.
type Host interface {
	// Size returns the surface size in pixels.
	Size() (width, height int)
	// Repaint renders one frame of s.
	Repaint(s *sketch.Scene)
	// Done is closed when the surface goes away.
	Done() <-chan struct{}
}

// Configurer is implemented by hosts that accept window settings. App
// calls Configure once before Setup.
type Configurer interface {
	Configure(title string, fullscreen bool)
}

// Offscreen is a headless Host backed by a gg.Context. It counts frames
// and can close itself after a fixed number of them.
type Offscreen struct {
	mu         sync.Mutex
	dc         *gg.Context
	last       image.Image
	frames     int
	limit      int
	err        error
	title      string
	fullscreen bool
	closed     bool
	done       chan struct{}
}

var (
	_ Host       = (*Offscreen)(nil)
	_ Configurer = (*Offscreen)(nil)
)

// NewOffscreen creates a headless host of the given size. Non-positive
// extents become 1.
func NewOffscreen(width, height int) *Offscreen {
	return &Offscreen{
		dc:   gg.NewContext(max(width, 1), max(height, 1)),
		done: make(chan struct{}),
	}
}

// Size implements Host.
func (o *Offscreen) Size() (width, height int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.dc.Width(), o.dc.Height()
}

// Configure implements Configurer.
func (o *Offscreen) Configure(title string, fullscreen bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.title, o.fullscreen = title, fullscreen
}

// Title returns the configured title.
func (o *Offscreen) Title() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.title
}

// Fullscreen reports whether fullscreen was requested.
func (o *Offscreen) Fullscreen() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.fullscreen
}

// SetFrameLimit makes the host close after n frames. Zero or less removes
// the limit.
func (o *Offscreen) SetFrameLimit(n int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.limit = max(n, 0)
	if o.limit > 0 && o.frames >= o.limit {
		o.closeLocked()
	}
}

// Repaint implements Host. The surface follows the scene size. After Close
// it does nothing.
func (o *Offscreen) Repaint(s *sketch.Scene) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}
	if w, h := s.Size(); w != o.dc.Width() || h != o.dc.Height() {
		if err := o.dc.Resize(w, h); err != nil {
			o.err = err
			return
		}
	}
	o.err = s.RenderPass(o.dc)
	o.frames++
	if o.limit > 0 && o.frames >= o.limit {
		o.closeLocked()
	}
}

// Frames returns the number of frames rendered.
func (o *Offscreen) Frames() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.frames
}

// Err returns the error of the most recent frame, nil if every drawable
// painted.
func (o *Offscreen) Err() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.err
}

// Snapshot returns a copy of the last rendered frame. After Close it
// returns the final frame.
func (o *Offscreen) Snapshot() image.Image {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return o.last
	}
	return o.dc.Image()
}

// Done implements Host.
func (o *Offscreen) Done() <-chan struct{} { return o.done }

// Close releases the surface and closes Done. It is safe to call more
// than once.
func (o *Offscreen) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.closeLocked()
}

func (o *Offscreen) closeLocked() error {
	if o.closed {
		return nil
	}
	o.closed = true
	o.last = o.dc.Image()
	close(o.done)
	return o.dc.Close()
}
