// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package app

import (
	"sync/atomic"
	"time"

	"github.com/gogpu/sketch"
)

// StepResult tells the loop whether to keep stepping.
type StepResult int

const (
	// StepContinue asks for another step.
	StepContinue StepResult = iota
	// StepStop ends the simulation after the current step.
	StepStop
)

// String returns the result name.
func (r StepResult) String() string {
	switch r {
	case StepContinue:
		return "Continue"
	case StepStop:
		return "Stop"
	default:
		return "Unknown"
	}
}

// Program is the user code driven by an App.
//
// Setup runs once before any frame is rendered. Step runs repeatedly on the
// simulation goroutine, concurrently with rendering; it may mutate drawable
// geometry and scene membership freely. Done is checked before every step
// and ends the simulation when it reports true.
type Program interface {
	Setup(s *sketch.Scene) error
	Step(s *sketch.Scene) StepResult
	Done() bool
}

// Funcs adapts plain functions to a Program. Nil fields behave as no-ops,
// except that a nil OnStep stops the simulation immediately.
type Funcs struct {
	OnSetup func(*sketch.Scene) error
	OnStep  func(*sketch.Scene) StepResult
	OnDone  func() bool
}

// Setup implements Program.
func (f Funcs) Setup(s *sketch.Scene) error {
	if f.OnSetup == nil {
		return nil
	}
	return f.OnSetup(s)
}

// Step implements Program.
func (f Funcs) Step(s *sketch.Scene) StepResult {
	if f.OnStep == nil {
		return StepStop
	}
	return f.OnStep(s)
}

// Done implements Program.
func (f Funcs) Done() bool {
	return f.OnDone != nil && f.OnDone()
}

// Loop steps a program deterministically, one Tick at a time. Once stopped
// it never steps again.
//
// Tick must be called from a single goroutine; Steps and Stopped may be
// read from any goroutine.
type Loop struct {
	prog    Program
	scene   *sketch.Scene
	steps   atomic.Int64
	stopped atomic.Bool
}

// NewLoop creates a loop stepping prog against s.
func NewLoop(prog Program, s *sketch.Scene) *Loop {
	return &Loop{prog: prog, scene: s}
}

// Tick runs at most one step. It reports whether the loop can step again:
// false once the program is done or a step returned StepStop.
func (l *Loop) Tick() bool {
	if l.stopped.Load() {
		return false
	}
	if l.prog.Done() {
		l.stopped.Store(true)
		return false
	}
	r := l.prog.Step(l.scene)
	l.steps.Add(1)
	if r == StepStop {
		l.stopped.Store(true)
		return false
	}
	return true
}

// Steps returns the number of steps run so far.
func (l *Loop) Steps() int64 { return l.steps.Load() }

// Stopped reports whether the loop has stopped.
func (l *Loop) Stopped() bool { return l.stopped.Load() }

// Sleep pauses the calling step for d. Steps pace themselves with it; no
// scene lock is held while a step runs, so rendering continues meanwhile.
func Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	<-t.C
}
