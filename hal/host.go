package hal

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// Config sizes the host framebuffer and event queue.
type Config struct {
	Width  int
	Height int
	// EventBuffer is the input queue capacity.
	EventBuffer int
}

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 800
	}
	if c.EventBuffer <= 0 {
		c.EventBuffer = 256
	}
	return c
}

type hostHAL struct {
	log *zap.Logger
	fb  *hostFramebuffer
	in  *hostInput

	offX atomic.Int64
	offY atomic.Int64
}

// New returns a host HAL implementation.
func New(cfg Config, log *zap.Logger) HAL {
	return newHost(cfg, log)
}

func newHost(cfg Config, log *zap.Logger) *hostHAL {
	cfg = cfg.withDefaults()
	if log == nil {
		log = zap.NewNop()
	}
	return &hostHAL{
		log: log,
		fb:  newHostFramebuffer(cfg.Width, cfg.Height),
		in:  &hostInput{ch: make(chan Event, cfg.EventBuffer)},
	}
}

func (h *hostHAL) Display() Display { return hostDisplay{h: h} }
func (h *hostHAL) Input() Input     { return h.in }

// setViewport centres the framebuffer in a viewport of the given size and
// reports the change as a resize event.
func (h *hostHAL) setViewport(w, vh int) {
	x := (w - h.fb.width) / 2
	y := (vh - h.fb.height) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	h.offX.Store(int64(x))
	h.offY.Store(int64(y))
	h.in.emit(Event{Kind: EventResize, X: w, Y: vh})
	h.log.Debug("viewport resized", zap.Int("width", w), zap.Int("height", vh), zap.Int("offset_x", x), zap.Int("offset_y", y))
}

type hostDisplay struct {
	h *hostHAL
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.h.fb }

func (d hostDisplay) Offset() (x, y int) {
	return int(d.h.offX.Load()), int(d.h.offY.Load())
}

type hostInput struct {
	ch      chan Event
	dropped atomic.Uint64
}

func (in *hostInput) Events() <-chan Event { return in.ch }

func (in *hostInput) emit(ev Event) {
	select {
	case in.ch <- ev:
	default:
		in.dropped.Add(1)
	}
}

// stopped logs the end of a runner with the number of input events dropped
// because the queue was full.
func (h *hostHAL) stopped(runner string) {
	h.log.Info("runner stopped", zap.String("runner", runner), zap.Uint64("dropped_events", h.in.dropped.Load()))
}

// logicalSize returns the viewport, in framebuffer pixels, for a window of
// outW×outH. The framebuffer is scaled up by the largest factor that still
// fits, never below 1.
func logicalSize(outW, outH, fbW, fbH int) (w, h int) {
	if fbW <= 0 || fbH <= 0 {
		return outW, outH
	}
	k := min(float64(outW)/float64(fbW), float64(outH)/float64(fbH))
	if k <= 1 {
		return outW, outH
	}
	return int(float64(outW) / k), int(float64(outH) / k)
}
