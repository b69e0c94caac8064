package vectorgrid

import (
	"errors"
	"math"
	"testing"
	"time"

	"gallery/hal"
	"gallery/sketch/anim"
	"gallery/sketch/field"
	"gallery/sketch/geom"
	"gallery/sketch/page"
	"gallery/sketch/surface/surfacetest"
)

type fixture struct {
	demo   *Demo
	rec    *surfacetest.Recorder
	frames *anim.FrameQueue
	events *page.Dispatcher
}

func mount(t *testing.T, cfg Config) *fixture {
	t.Helper()
	f := &fixture{
		demo:   New(cfg),
		rec:    surfacetest.New(800, 800),
		frames: anim.NewFrameQueue(),
		events: page.NewDispatcher(),
	}
	f.rec.SetOffset(geom.Vec(50, 30))
	if err := f.demo.Mount(&page.Host{Surface: f.rec, Frames: f.frames, Events: f.events}); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	return f
}

func (f *fixture) tick() {
	f.rec.Reset()
	f.frames.Flush(time.Unix(0, 0))
}

func TestTargetStartsAtCentre(t *testing.T) {
	f := mount(t, DefaultConfig())
	defer f.demo.Unmount()

	if got, want := f.demo.Target(), geom.Vec(400, 400); got != want {
		t.Fatalf("Target() = %v, want %v", got, want)
	}
	if got := len(f.demo.Field().Points()); got != 100 {
		t.Fatalf("points = %d, want 100", got)
	}
}

func TestClearEveryTick(t *testing.T) {
	f := mount(t, DefaultConfig())
	defer f.demo.Unmount()

	for i := 0; i < 3; i++ {
		f.tick()
		ops := f.rec.Ops()
		if len(ops) == 0 || ops[0].Kind != surfacetest.OpClear {
			t.Fatalf("tick %d did not start with a clear", i)
		}
		// No pointer events between ticks: still cleared and redrawn.
		if f.demo.Drawn() != 100 {
			t.Fatalf("tick %d drew %d arrows, want 100", i, f.demo.Drawn())
		}
	}
}

func TestPointerSetsTargetWithoutDrawing(t *testing.T) {
	f := mount(t, DefaultConfig())
	defer f.demo.Unmount()

	f.rec.Reset()
	f.events.Dispatch(hal.Event{Kind: hal.EventPointerMove, X: 180, Y: 160})
	if len(f.rec.Ops()) != 0 {
		t.Fatal("pointer event drew")
	}
	// The first grid point is (130, 130); (180, 160) minus the (50, 30) corner.
	if got, want := f.demo.Target(), geom.Vec(130, 130); got != want {
		t.Fatalf("Target() = %v, want %v", got, want)
	}

	f.tick()
	if f.demo.Drawn() != 99 {
		t.Fatalf("Drawn() = %d, want 99 (point on target skipped)", f.demo.Drawn())
	}
	texts := f.rec.Filter(surfacetest.OpText)
	if len(texts) == 0 || texts[0].Text != "Mouse Position: (180, 160)" {
		t.Fatalf("HUD = %v", texts)
	}
}

func TestResizeRereadsCorner(t *testing.T) {
	f := mount(t, DefaultConfig())
	defer f.demo.Unmount()

	f.events.Dispatch(hal.Event{Kind: hal.EventPointerMove, X: 500, Y: 500})
	f.rec.SetOffset(geom.Vec(0, 0))
	if got, want := f.demo.Target(), geom.Vec(450, 470); got != want {
		t.Fatalf("Target() before resize = %v, want %v", got, want)
	}
	f.events.Dispatch(hal.Event{Kind: hal.EventResize, X: 800, Y: 800})
	if got, want := f.demo.Target(), geom.Vec(500, 500); got != want {
		t.Fatalf("Target() after resize = %v, want %v", got, want)
	}
}

func TestRowsRegenerateBeforeNextRender(t *testing.T) {
	f := mount(t, DefaultConfig())
	defer f.demo.Unmount()

	f.events.Dispatch(hal.Event{Kind: hal.EventKey, Key: hal.KeyUp})
	if f.demo.Field().Rows() != 11 || len(f.demo.Field().Points()) != 121 {
		t.Fatalf("rows=%d points=%d, want 11/121", f.demo.Field().Rows(), len(f.demo.Field().Points()))
	}
	f.tick()
	if f.demo.Drawn() != 121 {
		t.Fatalf("Drawn() = %d, want 121", f.demo.Drawn())
	}

	for i := 0; i < 200; i++ {
		f.events.Dispatch(hal.Event{Kind: hal.EventKey, Key: hal.KeyDown})
	}
	if f.demo.Field().Rows() != 1 {
		t.Fatalf("rows = %d, want clamp at 1", f.demo.Field().Rows())
	}
}

func TestMagnitudeScalesArrows(t *testing.T) {
	f := mount(t, DefaultConfig())
	defer f.demo.Unmount()

	for i := 0; i < 10; i++ {
		f.events.Dispatch(hal.Event{Kind: hal.EventKey, Key: hal.KeyRight})
	}
	if math.Abs(f.demo.Magnitude()-0.6) > 1e-9 {
		t.Fatalf("Magnitude() = %g, want 0.6", f.demo.Magnitude())
	}
	f.tick()
	for _, op := range f.rec.Filter(surfacetest.OpLine)[:100] {
		if l := op.P2.Sub(op.P1).Len(); math.Abs(l-36) > 1e-9 {
			t.Fatalf("arrow length = %g, want 36", l)
		}
	}
}

func TestMountRejectsInvalidRows(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows = 0
	d := New(cfg)
	events := page.NewDispatcher()
	err := d.Mount(&page.Host{Surface: surfacetest.New(800, 800), Frames: anim.NewFrameQueue(), Events: events})
	if !errors.Is(err, field.ErrInvalidRows) {
		t.Fatalf("Mount() err = %v, want ErrInvalidRows", err)
	}
	if events.Len() != 0 {
		t.Fatal("failed mount left listeners behind")
	}
}
