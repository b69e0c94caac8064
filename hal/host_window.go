//go:build cgo

package hal

import (
	"errors"
	"image"

	"gallery/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title string
	Scale int
	Hz    int
}

// RunWindow starts a desktop window that displays the framebuffer and forwards
// pointer and keyboard input. It blocks until the window closes.
func RunWindow(cfg Config, newApp NewApp, wcfg WindowConfig, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	h := newHost(cfg, log)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	if wcfg.Scale <= 0 {
		wcfg.Scale = 1
	}
	if wcfg.Hz <= 0 {
		wcfg.Hz = 60
	}
	if wcfg.Title == "" {
		wcfg.Title = "Gallery"
	}

	g := &hostGame{h: h, step: step, cursorX: -1, cursorY: -1}
	ebiten.SetWindowTitle(wcfg.Title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*wcfg.Scale, h.fb.height*wcfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(wcfg.Hz)
	log.Info("window runner started", zap.Int("hz", wcfg.Hz), zap.Int("scale", wcfg.Scale))

	err = ebiten.RunGame(g)
	h.stopped("window")
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type hostGame struct {
	h     *hostHAL
	img   *image.RGBA
	fbImg *ebiten.Image
	step  func() error
	shown uint64

	viewW   int
	viewH   int
	cursorX int
	cursorY int
}

func (g *hostGame) Update() error {
	g.pollInput()
	if g.step != nil {
		if err := g.step(); err != nil {
			if errors.Is(err, ErrQuit) {
				return ebiten.Termination
			}
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.fbImg == nil || g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
		g.img = nil
	}
	if gen := fb.generation(); g.img == nil || gen != g.shown {
		g.shown = gen
		g.img = SnapshotRGBA(fb, g.img)
		g.fbImg.WritePixels(g.img.Pix)
	}

	x, y := g.h.Display().Offset()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(g.fbImg, op)
}

// Layout returns a logical screen in framebuffer pixels that ebiten scales up
// to the window, so a scaled window shows a scaled framebuffer and the cursor
// stays in framebuffer pixels. The framebuffer is centred in what is left over.
func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := logicalSize(outsideWidth, outsideHeight, g.h.fb.width, g.h.fb.height)
	if w != g.viewW || h != g.viewH {
		g.viewW, g.viewH = w, h
		g.h.setViewport(w, h)
	}
	return w, h
}

func (g *hostGame) pollInput() {
	x, y := ebiten.CursorPosition()
	if x != g.cursorX || y != g.cursorY {
		g.cursorX, g.cursorY = x, y
		g.h.in.emit(Event{Kind: EventPointerMove, X: x, Y: y})
	}
	pollKeys(g.h.in)
}
