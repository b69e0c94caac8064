// Package vectorgrid draws a centred grid of arrows that all point at the
// pointer.
package vectorgrid

import (
	"fmt"
	"image/color"
	"time"

	"gallery/hal"
	"gallery/sketch/field"
	"gallery/sketch/geom"
	"gallery/sketch/page"
	"gallery/sketch/surface"
	"gallery/sketch/widget"

	"go.uber.org/zap"
)

const Route = "/vector-grid"

var (
	background = color.RGBA{R: 0x12, G: 0x14, B: 0x1A, A: 0xFF}
	arrowColor = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	textColor  = color.RGBA{R: 0xC8, G: 0xC8, B: 0xC8, A: 0xFF}
)

type Config struct {
	Rows          int
	MaxRows       int
	Magnitude     float64
	MagnitudeStep float64
	// GridSize is the side of the square region the grid covers.
	GridSize float64
}

func DefaultConfig() Config {
	return Config{
		Rows:          10,
		MaxRows:       100,
		Magnitude:     0.5,
		MagnitudeStep: 0.01,
		GridSize:      600,
	}
}

type Demo struct {
	cfg Config

	sess *page.Session
	surf surface.Surface

	field     *field.Field
	rows      *widget.Slider
	magnitude *widget.Slider

	// pointer is in viewport coordinates; corner is the surface's offset in
	// the viewport, refreshed on resize.
	pointer geom.Vector2
	corner  geom.Vector2
	drawn   int
}

func New(cfg Config) *Demo {
	return &Demo{cfg: cfg}
}

func (d *Demo) Route() string { return Route }
func (d *Demo) Title() string { return "Vector Grid" }

func (d *Demo) Mount(h *page.Host) error {
	sess, err := page.Begin(h, Route)
	if err != nil {
		return err
	}
	bounds := h.Surface.Bounds()
	f, err := field.New(bounds.Size, geom.Vec(d.cfg.GridSize, d.cfg.GridSize), d.cfg.Rows)
	if err != nil {
		sess.End()
		return fmt.Errorf("vectorgrid: %w", err)
	}

	d.rows = widget.NewSlider("Vectors per row", 1, float64(max(d.cfg.MaxRows, 1)), 1)
	d.rows.Format = "%.0f"
	d.rows.Set(float64(d.cfg.Rows))
	d.magnitude = widget.NewSlider("Vector Magnitude", 0, 1, d.cfg.MagnitudeStep)
	d.magnitude.Format = "%.2f"
	d.magnitude.Set(d.cfg.Magnitude)

	d.sess = sess
	d.surf = h.Surface
	d.field = f
	d.corner = h.Surface.BoundingOffset()
	d.pointer = bounds.Center().Add(d.corner)
	d.drawn = 0

	sess.Listen(hal.EventPointerMove, d.onPointer)
	sess.Listen(hal.EventResize, d.onResize)
	sess.Listen(hal.EventKey, d.onKey)
	sess.Run(d)
	return nil
}

func (d *Demo) Unmount() {
	d.sess.End()
	d.sess = nil
}

// Advance has nothing to move; the field is a pure function of the target.
func (d *Demo) Advance(time.Time) {}

// Render clears and redraws every arrow, then the HUD.
func (d *Demo) Render() {
	s := d.surf
	surface.Reset(s)
	s.SetBackground(background)
	d.drawn = d.field.Render(s, d.Target(), d.magnitude.Value(), arrowColor)

	rows := d.field.Rows()
	lines := []string{
		fmt.Sprintf("Mouse Position: (%.0f, %.0f)", d.pointer.X, d.pointer.Y),
		fmt.Sprintf("Number of Vectors: %d", rows*rows),
	}
	p := geom.Vec(8, 8)
	for _, l := range lines {
		s.DrawText(p, l, textColor)
		p.Y += surface.LineHeight
	}
	d.rows.Draw(s, p.Add(geom.Vec(0, 4)), 160, textColor)
	d.magnitude.Draw(s, p.Add(geom.Vec(0, 4+2*surface.LineHeight+8)), 160, textColor)
}

// Target is the pointer in surface coordinates.
func (d *Demo) Target() geom.Vector2 {
	return d.pointer.Sub(d.corner)
}

func (d *Demo) Field() *field.Field { return d.field }
func (d *Demo) Magnitude() float64  { return d.magnitude.Value() }
func (d *Demo) Drawn() int          { return d.drawn }

func (d *Demo) onPointer(ev hal.Event) {
	d.pointer = geom.Vec(float64(ev.X), float64(ev.Y))
}

func (d *Demo) onResize(hal.Event) {
	d.corner = d.surf.BoundingOffset()
}

// onKey changes the row count (up/down), regenerating the grid at once, and
// the magnitude (left/right), which only affects the next render.
func (d *Demo) onKey(ev hal.Event) {
	switch ev.Key {
	case hal.KeyUp:
		d.setRows(1)
	case hal.KeyDown:
		d.setRows(-1)
	case hal.KeyRight:
		d.magnitude.Nudge(1)
	case hal.KeyLeft:
		d.magnitude.Nudge(-1)
	}
}

func (d *Demo) setRows(delta int) {
	if !d.rows.Nudge(delta) {
		return
	}
	if err := d.field.SetRows(d.rows.Int()); err != nil {
		d.sess.Log().Warn("regenerate grid", zap.Error(err))
		return
	}
	d.sess.Log().Debug("grid regenerated", zap.Int("rows", d.field.Rows()), zap.Int("points", len(d.field.Points())))
}
