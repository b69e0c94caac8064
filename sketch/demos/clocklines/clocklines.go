// Package clocklines animates dots sliding along lines through a common
// centre, each driven by the same clock at a different phase.
package clocklines

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"gallery/hal"
	"gallery/sketch/entity"
	"gallery/sketch/geom"
	"gallery/sketch/page"
	"gallery/sketch/surface"
	"gallery/sketch/widget"

	"go.uber.org/zap"
)

const Route = "/trigonometry"

const (
	dotRadius = 5
	// lineReach extends each track past the dot's turning points.
	lineReach = 1.1
)

var (
	background = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	lineColor  = color.RGBA{A: 0xFF}
	textColor  = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xFF}
)

type Config struct {
	Dots    int
	MaxDots int
	Radius  float64
	// ClockStep is the clock increment per tick, in radians.
	ClockStep  float64
	Offset     float64
	OffsetMax  float64
	OffsetStep float64
}

func DefaultConfig() Config {
	return Config{
		Dots:       20,
		MaxDots:    100,
		Radius:     200,
		ClockStep:  math.Pi / 180,
		Offset:     1,
		OffsetMax:  4,
		OffsetStep: 0.05,
	}
}

type Demo struct {
	cfg Config

	sess *page.Session
	surf surface.Surface

	set    *entity.OscillatorSet
	dots   *widget.Slider
	offset *widget.Slider
}

func New(cfg Config) *Demo {
	return &Demo{cfg: cfg}
}

func (d *Demo) Route() string { return Route }
func (d *Demo) Title() string { return "Trigonometry" }

func (d *Demo) Mount(h *page.Host) error {
	sess, err := page.Begin(h, Route)
	if err != nil {
		return err
	}
	set, err := entity.NewOscillatorSet(d.cfg.Dots, d.cfg.Radius, d.cfg.ClockStep, d.cfg.Offset)
	if err != nil {
		sess.End()
		return fmt.Errorf("clocklines: %w", err)
	}

	d.dots = widget.NewSlider("Dots", 1, float64(max(d.cfg.MaxDots, 1)), 1)
	d.dots.Format = "%.0f"
	d.dots.Set(float64(d.cfg.Dots))
	d.offset = widget.NewSlider("Offset", 0, d.cfg.OffsetMax, d.cfg.OffsetStep)
	d.offset.Format = "%.2f"
	d.offset.Set(d.cfg.Offset)

	d.sess = sess
	d.surf = h.Surface
	d.set = set

	sess.Listen(hal.EventKey, d.onKey)
	sess.Run(d)
	return nil
}

func (d *Demo) Unmount() {
	d.sess.End()
	d.sess = nil
}

func (d *Demo) Advance(time.Time) {
	d.set.Advance()
}

// Render draws the static tracks, then every dot at its current phase, with
// the origin at the surface centre.
func (d *Demo) Render() {
	s := d.surf
	bounds := s.Bounds()
	surface.Reset(s)
	s.SetBackground(background)
	s.Clear(bounds)

	s.SetOrigin(bounds.Center())
	for _, o := range d.set.Members() {
		l := o.Line(lineReach)
		s.DrawLine(l.P1, l.P2, lineColor)
	}
	for i, o := range d.set.Members() {
		s.FillCircle(o.Dot(d.set.Phase(i)), dotRadius, o.Color.RGBA())
	}

	s.SetOrigin(geom.Vector2{})
	d.dots.Draw(s, geom.Vec(8, 8), 160, textColor)
	d.offset.Draw(s, geom.Vec(8, 8+2*surface.LineHeight+8), 160, textColor)
}

// onKey adjusts the dot count (up/down) and the offset multiplier
// (left/right). Both apply on the next tick without resetting the clock.
func (d *Demo) onKey(ev hal.Event) {
	switch ev.Key {
	case hal.KeyUp:
		d.setDots(1)
	case hal.KeyDown:
		d.setDots(-1)
	case hal.KeyRight:
		if d.offset.Nudge(1) {
			d.set.Offset = d.offset.Value()
		}
	case hal.KeyLeft:
		if d.offset.Nudge(-1) {
			d.set.Offset = d.offset.Value()
		}
	}
}

func (d *Demo) setDots(delta int) {
	if !d.dots.Nudge(delta) {
		return
	}
	if err := d.set.Rebuild(d.dots.Int()); err != nil {
		d.sess.Log().Warn("rebuild oscillators", zap.Error(err))
		return
	}
	d.sess.Log().Debug("oscillators rebuilt", zap.Int("dots", d.set.Len()))
}

func (d *Demo) Set() *entity.OscillatorSet { return d.set }
