package anim

import (
	"time"

	"golang.org/x/time/rate"
)

// Simulation is the per-tick work of a demo. Advance always runs before
// Render within a tick.
type Simulation interface {
	Advance(now time.Time)
	Render()
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithMinInterval keeps ticks at least d apart. A frame that arrives early is
// passed over and the tick runs on a later frame.
func WithMinInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.limiter = rate.NewLimiter(rate.Every(d), 1)
		}
	}
}

// Scheduler runs a Simulation once per frame between Start and Stop.
type Scheduler struct {
	frames  Frames
	sim     Simulation
	limiter *rate.Limiter

	running bool
	handle  FrameHandle
	ticks   uint64
}

// NewScheduler returns a stopped scheduler.
func NewScheduler(frames Frames, sim Simulation, opts ...Option) *Scheduler {
	s := &Scheduler{frames: frames, sim: sim}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins ticking on the next frame. It is a no-op while running.
func (s *Scheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	s.request()
}

// Stop cancels the pending frame. No tick starts after Stop returns, even
// when Stop is called from inside a tick.
func (s *Scheduler) Stop() {
	if !s.running {
		return
	}
	s.running = false
	if s.handle != 0 {
		s.frames.CancelFrame(s.handle)
		s.handle = 0
	}
}

// Running reports whether the scheduler is between Start and Stop.
func (s *Scheduler) Running() bool { return s.running }

// Ticks returns the number of completed ticks.
func (s *Scheduler) Ticks() uint64 { return s.ticks }

func (s *Scheduler) request() {
	s.handle = s.frames.RequestFrame(s.tick)
}

func (s *Scheduler) tick(now time.Time) {
	s.handle = 0
	if !s.running {
		return
	}
	if s.limiter != nil && !s.limiter.AllowN(now, 1) {
		s.request()
		return
	}

	s.sim.Advance(now)
	s.sim.Render()
	s.ticks++

	// A Stop then Start inside the tick has already requested the next frame.
	if s.running && s.handle == 0 {
		s.request()
	}
}
