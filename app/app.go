// Package app wires the host, the shared drawing surface and the demo router
// into a per-frame step function.
package app

import (
	"errors"
	"time"

	"gallery/hal"
	"gallery/internal/config"
	"gallery/sketch/anim"
	"gallery/sketch/entity"
	"gallery/sketch/page"
	"gallery/sketch/surface"

	"go.uber.org/zap"
)

// App is the gallery shell. Step is called once per display refresh from a
// single goroutine.
type App struct {
	h      hal.HAL
	log    *zap.Logger
	now    func() time.Time
	in     <-chan hal.Event
	fb     *surface.Framebuffer
	frames *anim.FrameQueue
	events *page.Dispatcher
	router *Router

	steps uint64
}

// New builds the shell and mounts cfg.Start. A missing framebuffer is logged
// and leaves every demo unmountable; it is not an error.
func New(h hal.HAL, cfg *config.Config, log *zap.Logger, now func() time.Time) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	a := &App{
		h:      h,
		log:    log,
		now:    now,
		frames: anim.NewFrameQueue(),
		events: page.NewDispatcher(),
	}
	if in := h.Input(); in != nil {
		a.in = in.Events()
	}

	host := &page.Host{
		Frames: a.frames,
		Events: a.events,
		Rand:   newRand(cfg.Seed, now),
		Log:    log,
	}
	if fb, err := surface.New(h.Display()); err != nil {
		log.Error("no drawing surface", zap.Error(err))
	} else {
		a.fb = fb
		host.Surface = fb
	}

	demos, err := buildDemos(cfg)
	if err != nil {
		return nil, err
	}
	a.router = NewRouter(host, log, demos...)

	start := cfg.Start
	if start == "" {
		start = "/"
	}
	if err := a.router.Navigate(start); err != nil {
		if !errors.Is(err, ErrUnknownRoute) {
			return a, nil
		}
		log.Warn("unknown start route", zap.String("route", start))
		if err := a.router.Navigate("/"); err != nil {
			log.Warn("home unavailable", zap.Error(err))
		}
	}
	return a, nil
}

// NewApp adapts New to the hal runner signature.
func NewApp(cfg *config.Config, log *zap.Logger) hal.NewApp {
	return func(h hal.HAL) (func() error, error) {
		a, err := New(h, cfg, log, time.Now)
		if err != nil {
			return nil, err
		}
		return a.Step, nil
	}
}

// Step drains pending input, runs one frame of the mounted demo and presents
// the framebuffer. It returns hal.ErrQuit when asked to quit.
func (a *App) Step() error {
	a.steps++
	if quit := a.drainInput(); quit {
		a.router.Close()
		a.log.Info("quit requested", zap.Uint64("steps", a.steps))
		return hal.ErrQuit
	}
	a.flush(a.now())
	if a.fb != nil {
		return a.fb.Present()
	}
	return nil
}

// Router exposes the shell's router.
func (a *App) Router() *Router { return a.router }

func (a *App) drainInput() (quit bool) {
	for {
		select {
		case ev := <-a.in:
			if ev.Kind == hal.EventKey {
				handled, q := a.router.HandleKey(ev)
				if q {
					return true
				}
				if handled {
					continue
				}
			}
			a.events.Dispatch(ev)
		default:
			return false
		}
	}
}

func newRand(seed uint64, now func() time.Time) entity.Rand {
	if seed == 0 {
		seed = uint64(now().UnixNano())
	}
	return entity.NewRand(seed)
}
