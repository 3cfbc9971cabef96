// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sketch

import (
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/gogpu/gg"
)

// Scene is an ordered set of drawables painted back to front onto a
// surface. Membership changes and render passes exclude each other, so a
// scene may be mutated by a simulation goroutine while another goroutine
// renders it.
type Scene struct {
	mu         sync.RWMutex
	members    []Item
	background gg.RGBA
	width      int
	height     int
	rasterizer gg.RasterizerMode
}

// NewScene creates an empty scene.
func NewScene(opts ...SceneOption) *Scene {
	o := defaultSceneOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Scene{
		background: o.background,
		width:      o.width,
		height:     o.height,
		rasterizer: o.rasterizer,
	}
}

// Add appends it at the front of the paint order. Adding a current member
// does nothing; adding a member of another scene moves it here. A drawable
// without geometry, or a nil item, returns ErrGeometryUndefined. Adding to
// a nil scene returns ErrNilScene.
func (s *Scene) Add(it Item) error {
	return s.insert(it, false)
}

// insert adds it to s. With front set an existing member is moved to the
// front instead of being left in place.
func (s *Scene) insert(it Item, front bool) error {
	if s == nil {
		return ErrNilScene
	}
	d := asDrawable(it)
	if d == nil || d.geometry == nil {
		return ErrGeometryUndefined
	}
	for {
		prev := d.scene.Load()
		if prev != nil && prev != s {
			prev.Remove(it)
			continue
		}

		s.mu.Lock()
		if !d.scene.CompareAndSwap(prev, s) {
			// Joined another scene meanwhile.
			s.mu.Unlock()
			continue
		}
		if i := s.indexOf(d); i >= 0 {
			if !front {
				s.mu.Unlock()
				return nil
			}
			s.members = slices.Delete(s.members, i, i+1)
		}
		s.members = append(s.members, d.item())
		n := len(s.members)
		s.mu.Unlock()

		Logger().Debug("sketch: drawable attached", "id", d.ID(), "kind", d.kind, "members", n)
		return nil
	}
}

func asDrawable(it Item) *Drawable {
	if it == nil {
		return nil
	}
	return it.AsDrawable()
}

// indexOf returns the paint-order index of d, or -1. s.mu must be held.
func (s *Scene) indexOf(d *Drawable) int {
	return slices.IndexFunc(s.members, func(m Item) bool {
		return m.AsDrawable() == d
	})
}

// Remove takes it out of the scene and reports whether it was a member.
func (s *Scene) Remove(it Item) bool {
	d := asDrawable(it)
	if d == nil {
		return false
	}

	s.mu.Lock()
	i := s.indexOf(d)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.members = slices.Delete(s.members, i, i+1)
	d.scene.CompareAndSwap(s, nil)
	n := len(s.members)
	s.mu.Unlock()

	Logger().Debug("sketch: drawable detached", "id", d.ID(), "kind", d.kind, "members", n)
	return true
}

// Clear detaches every member, front-most first. Former members remain
// valid and may be attached again.
func (s *Scene) Clear() {
	for {
		s.mu.Lock()
		n := len(s.members)
		if n == 0 {
			s.mu.Unlock()
			return
		}
		d := s.members[n-1].AsDrawable()
		s.members[n-1] = nil
		s.members = s.members[:n-1]
		d.scene.CompareAndSwap(s, nil)
		s.mu.Unlock()
	}
}

// Len returns the number of members.
func (s *Scene) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.members)
}

// Members returns the members in paint order, back-most first.
func (s *Scene) Members() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.members)
}

// Contains reports whether it is a member.
func (s *Scene) Contains(it Item) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d := asDrawable(it)
	return d != nil && s.indexOf(d) >= 0
}

// Hit returns the front-most member whose interior contains (x, y), or
// nil.
func (s *Scene) Hit(x, y float64) Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := len(s.members) - 1; i >= 0; i-- {
		if s.members[i].AsDrawable().Contains(x, y) {
			return s.members[i]
		}
	}
	return nil
}

// Size returns the surface size.
func (s *Scene) Size() (width, height int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height
}

// Resize changes the surface size. Non-positive extents are ignored.
func (s *Scene) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if width > 0 {
		s.width = width
	}
	if height > 0 {
		s.height = height
	}
}

// Background returns the background color.
func (s *Scene) Background() gg.RGBA {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.background
}

// SetBackground sets the background color.
func (s *Scene) SetBackground(c gg.RGBA) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.background = c
}

// RenderPass clears c to the background and paints every member in paint
// order. A member that fails to paint is skipped with a warning and the
// pass goes on; the failures are returned joined.
func (s *Scene) RenderPass(c Canvas) error {
	return s.render(c, nil)
}

// render is RenderPass with an optional background override.
func (s *Scene) render(c Canvas, background *gg.RGBA) error {
	start := time.Now()

	s.mu.RLock()
	defer s.mu.RUnlock()

	c.SetRasterizerMode(s.rasterizer)
	bg := s.background
	if background != nil {
		bg = *background
	}
	c.ClearWithColor(bg)

	var errs []error
	for _, m := range s.members {
		d := m.AsDrawable()
		if err := d.Render(c); err != nil {
			Logger().Warn("sketch: drawable skipped", "id", d.ID(), "kind", d.kind, "err", err)
			errs = append(errs, err)
		}
	}

	Logger().Debug("sketch: render pass", "members", len(s.members), "skipped", len(errs), "elapsed", time.Since(start))
	return errors.Join(errs...)
}
