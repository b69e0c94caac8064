package page

import (
	"fmt"

	"gallery/hal"
	"gallery/sketch/anim"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session tracks everything a demo registers while mounted so that End can
// undo it.
type Session struct {
	host  *Host
	route string
	id    uuid.UUID
	log   *zap.Logger

	removers []func()
	sched    *anim.Scheduler
	ended    bool
}

// Begin validates the host and opens a session for route.
func Begin(h *Host, route string) (*Session, error) {
	if h == nil || h.Surface == nil {
		return nil, fmt.Errorf("mount %s: %w", route, ErrMissingSurface)
	}
	if h.Frames == nil {
		return nil, fmt.Errorf("mount %s: %w", route, ErrNoFrames)
	}
	if h.Events == nil {
		h.Events = NewDispatcher()
	}

	log := h.Log
	if log == nil {
		log = zap.NewNop()
	}
	id := uuid.New()
	s := &Session{
		host:  h,
		route: route,
		id:    id,
		log:   log.With(zap.String("route", route), zap.String("mount", id.String())),
	}
	s.log.Debug("demo mounted")
	return s, nil
}

// ID is the mount id logged as the mount field.
func (s *Session) ID() uuid.UUID { return s.id }

// Log returns the session's logger, tagged with route and mount id.
func (s *Session) Log() *zap.Logger { return s.log }

// Listen registers an input listener that End removes.
func (s *Session) Listen(kind hal.EventKind, fn func(hal.Event)) {
	if s.ended {
		return
	}
	s.removers = append(s.removers, s.host.Events.Listen(kind, fn))
}

// Run starts a scheduler for sim on the host's frame queue. A scheduler from
// an earlier Run is stopped first.
func (s *Session) Run(sim anim.Simulation, opts ...anim.Option) *anim.Scheduler {
	if s.sched != nil {
		s.sched.Stop()
	}
	s.sched = anim.NewScheduler(s.host.Frames, sim, opts...)
	if !s.ended {
		s.sched.Start()
	}
	return s.sched
}

// End removes all listeners, then stops the scheduler. It is idempotent.
func (s *Session) End() {
	if s == nil || s.ended {
		return
	}
	s.ended = true
	for i := len(s.removers) - 1; i >= 0; i-- {
		s.removers[i]()
	}
	s.removers = nil

	var ticks uint64
	if s.sched != nil {
		s.sched.Stop()
		ticks = s.sched.Ticks()
	}
	s.log.Debug("demo unmounted", zap.Uint64("ticks", ticks))
}
