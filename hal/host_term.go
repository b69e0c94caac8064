package hal

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// TerminalConfig controls the terminal runner.
type TerminalConfig struct {
	Hz int
	// Screen overrides the terminal screen; tests pass a simulation screen.
	Screen tcell.Screen
}

// RunTerminal draws the framebuffer into the terminal with half-block cells
// (two pixel rows per cell) and forwards mouse and key events. The framebuffer
// is downsampled to fit; pointer events are reported in that same pixel space.
func RunTerminal(ctx context.Context, cfg Config, newApp NewApp, tcfg TerminalConfig, log *zap.Logger) error {
	if tcfg.Hz <= 0 {
		tcfg.Hz = 30
	}
	if log == nil {
		log = zap.NewNop()
	}

	screen := tcfg.Screen
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("terminal: %w", err)
		}
		screen = s
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: init: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	h := newHost(cfg, log)
	view := &termView{h: h, screen: screen}
	view.resize()

	step, err := newApp(h)
	if err != nil {
		screen.Fini()
		return err
	}

	errStop := errors.New("terminal closed")
	events := make(chan tcell.Event, 64)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-gctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer screen.Fini()
		t := time.NewTicker(time.Second / time.Duration(tcfg.Hz))
		defer t.Stop()
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case ev := <-events:
				view.handle(ev)
			case <-t.C:
				if step != nil {
					if err := step(); err != nil {
						if errors.Is(err, ErrQuit) {
							return errStop
						}
						return err
					}
				}
				view.draw()
			}
		}
	})

	log.Info("terminal runner started", zap.Int("hz", tcfg.Hz))
	err = g.Wait()
	h.stopped("terminal")
	if errors.Is(err, errStop) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

type termView struct {
	h      *hostHAL
	screen tcell.Screen
	img    *image.RGBA

	cols  int
	rows  int
	scale int
}

// resize picks the smallest integer scale at which the framebuffer fits the
// terminal, then centres it in the viewport measured in scaled pixels.
func (v *termView) resize() {
	v.cols, v.rows = v.screen.Size()
	if v.cols < 1 {
		v.cols = 1
	}
	if v.rows < 1 {
		v.rows = 1
	}
	fbW, fbH := v.h.fb.width, v.h.fb.height
	sx := (fbW + v.cols - 1) / v.cols
	sy := (fbH + 2*v.rows - 1) / (2 * v.rows)
	v.scale = max(sx, sy, 1)
	v.h.setViewport(v.cols*v.scale, 2*v.rows*v.scale)
}

func (v *termView) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.resize()
		v.screen.Sync()
	case *tcell.EventMouse:
		x, y := ev.Position()
		v.h.in.emit(Event{Kind: EventPointerMove, X: x*v.scale + v.scale/2, Y: y*2*v.scale + v.scale})
	case *tcell.EventKey:
		if e, ok := termKey(ev); ok {
			v.h.in.emit(e)
		}
	}
}

func termKey(ev *tcell.EventKey) (Event, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return Event{Kind: EventKey, Rune: ev.Rune()}, true
	case tcell.KeyUp:
		return Event{Kind: EventKey, Key: KeyUp}, true
	case tcell.KeyDown:
		return Event{Kind: EventKey, Key: KeyDown}, true
	case tcell.KeyLeft:
		return Event{Kind: EventKey, Key: KeyLeft}, true
	case tcell.KeyRight:
		return Event{Kind: EventKey, Key: KeyRight}, true
	case tcell.KeyEnter:
		return Event{Kind: EventKey, Key: KeyEnter}, true
	case tcell.KeyEscape:
		return Event{Kind: EventKey, Key: KeyEscape}, true
	case tcell.KeyHome:
		return Event{Kind: EventKey, Key: KeyHome}, true
	case tcell.KeyF1:
		return Event{Kind: EventKey, Key: KeyF1}, true
	case tcell.KeyF2:
		return Event{Kind: EventKey, Key: KeyF2}, true
	case tcell.KeyF3:
		return Event{Kind: EventKey, Key: KeyF3}, true
	case tcell.KeyCtrlC:
		return Event{Kind: EventKey, Key: KeyInterrupt}, true
	}
	return Event{}, false
}

func (v *termView) draw() {
	v.img = SnapshotRGBA(v.h.fb, v.img)
	offX, offY := v.h.Display().Offset()
	for cy := 0; cy < v.rows; cy++ {
		for cx := 0; cx < v.cols; cx++ {
			px := cx*v.scale + v.scale/2 - offX
			top := v.sample(px, 2*cy*v.scale+v.scale/2-offY)
			bottom := v.sample(px, (2*cy+1)*v.scale+v.scale/2-offY)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			v.screen.SetContent(cx, cy, '▀', nil, style)
		}
	}
	v.screen.Show()
}

func (v *termView) sample(x, y int) tcell.Color {
	if x < 0 || y < 0 || x >= v.img.Bounds().Dx() || y >= v.img.Bounds().Dy() {
		return tcell.ColorBlack
	}
	i := y*v.img.Stride + x*4
	p := v.img.Pix[i : i+3 : i+3]
	return tcell.NewRGBColor(int32(p[0]), int32(p[1]), int32(p[2]))
}
