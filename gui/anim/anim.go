// Package anim interpolates scalar values over time. Animations are advanced
// by the task loop tick; nothing here runs on its own.
package anim

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Path maps progress in [0, 1] to an interpolation factor. Factors outside
// [0, 1] overshoot the end points.
type Path func(p float32) float32

// Linear is the identity path.
func Linear(p float32) float32 { return p }

// Ease adapts a gween easing curve to a Path.
func Ease(fn ease.TweenFunc) Path {
	return func(p float32) float32 { return fn(p, 0, 1, 1) }
}

// PingPong runs p forward over the first half of the progress and backward
// over the second, so a repeating animation ends where it started.
func PingPong(p Path) Path {
	return func(q float32) float32 {
		q *= 2
		if q > 1 {
			q = 2 - q
		}
		return p(q)
	}
}

// RepeatForever restarts the animation every time it ends until it is freed.
const RepeatForever = -1

// Animation drives Callback from Start to End over Duration milliseconds.
type Animation struct {
	Start, End int32
	Duration   uint32
	Elapsed    uint32
	// Delay is waited out before Elapsed starts counting.
	Delay uint32
	// Repeat is the number of extra runs after the first one.
	Repeat int
	Path   Path
	// Data is a back reference for the callback, typically the driven node.
	Data     any
	Callback func(a *Animation, value int32)

	waited uint32
	runs   int
	freed  bool
	ended  bool
	sched  *Scheduler
}

// Reset rewinds the animation to its first run.
func (a *Animation) Reset() {
	a.Elapsed = 0
	a.waited = 0
	a.runs = 0
	a.freed = false
	a.ended = false
}

// Progress is Elapsed/Duration clamped to [0, 1].
func (a *Animation) Progress() float32 {
	if a.Duration == 0 || a.Elapsed >= a.Duration {
		return 1
	}
	return float32(a.Elapsed) / float32(a.Duration)
}

// Value is the interpolated value at the current progress. It is exactly
// Start at p=0, and End at p=1 unless the path ends somewhere else.
func (a *Animation) Value() int32 {
	p := a.Progress()
	path := a.Path
	if path == nil {
		if p >= 1 {
			return a.End
		}
		path = Linear
	}
	span := int64(a.End) - int64(a.Start)
	v := int64(a.Start) + int64(math.Round(float64(path(p))*float64(span)))
	return int32(min(max(v, math.MinInt32), math.MaxInt32))
}

// IsFinished reports whether the last run has reached its duration.
func (a *Animation) IsFinished() bool {
	return a.Elapsed >= a.Duration && !a.repeats()
}

func (a *Animation) repeats() bool {
	return a.Repeat == RepeatForever || a.runs < a.Repeat
}

// done is true once the final value has been reported.
func (a *Animation) done() bool { return a.ended && a.IsFinished() }

// Advance moves the animation dt milliseconds forward and reports the new
// value to Callback. A zero-duration animation reports End on its first
// advance. Freed and finished animations are left alone.
func (a *Animation) Advance(dt uint32) {
	if a.freed || a.done() {
		return
	}
	if a.waited < a.Delay {
		step := min(dt, a.Delay-a.waited)
		a.waited += step
		dt -= step
		if a.waited < a.Delay || dt == 0 {
			return
		}
	}
	if a.Elapsed >= a.Duration && a.repeats() {
		a.runs++
		a.Elapsed = 0
	}
	a.Elapsed = uint32(min(uint64(a.Elapsed)+uint64(dt), uint64(a.Duration)))
	a.ended = a.IsFinished()
	if a.Callback != nil {
		a.Callback(a, a.Value())
	}
}

// Scheduler advances every started animation once per tick.
type Scheduler struct {
	active []*Animation
	snap   []*Animation
}

// Start rewinds a and registers it. Starting an active animation restarts it.
func (s *Scheduler) Start(a *Animation) {
	a.Reset()
	if a.sched == s {
		return
	}
	if a.sched != nil {
		a.sched.detach(a)
	}
	a.sched = s
	s.active = append(s.active, a)
}

// Free detaches a. It is never advanced again until restarted.
func (s *Scheduler) Free(a *Animation) {
	a.freed = true
	if a.sched == s {
		s.detach(a)
	}
}

func (s *Scheduler) detach(a *Animation) {
	for i, b := range s.active {
		if b == a {
			s.active = append(s.active[:i], s.active[i+1:]...)
			break
		}
	}
	a.sched = nil
}

// Advance moves every active animation dt milliseconds forward. Animations
// that finish are detached after their final callback.
func (s *Scheduler) Advance(dt uint32) {
	s.snap = append(s.snap[:0], s.active...)
	for _, a := range s.snap {
		if a.sched == s {
			a.Advance(dt)
		}
	}
	clear(s.snap)
	live := s.active[:0]
	for _, a := range s.active {
		if a.done() {
			a.sched = nil
			continue
		}
		live = append(live, a)
	}
	clear(s.active[len(live):])
	s.active = live
}

// Active is the number of registered animations.
func (s *Scheduler) Active() int { return len(s.active) }

// IsFinished reports whether a has completed.
func (s *Scheduler) IsFinished(a *Animation) bool { return a.IsFinished() }
