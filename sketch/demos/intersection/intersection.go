// Package intersection drops a row of squares through a line anchored at a
// fixed point and marks where the line crosses their edges.
package intersection

import (
	"fmt"
	"image/color"
	"time"

	"gallery/hal"
	"gallery/sketch/anim"
	"gallery/sketch/entity"
	"gallery/sketch/geom"
	"gallery/sketch/page"
	"gallery/sketch/surface"

	"go.uber.org/zap"
)

const Route = "/intersection"

const dotRadius = 5

var (
	background = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	lineColor  = color.RGBA{R: 0xFF, A: 0xFF}
	textColor  = color.RGBA{A: 0xFF}
)

// Config holds the demo's tunables.
type Config struct {
	SquaresPerRow int
	// Threshold is the respawn line; zero means the surface height.
	Threshold float64
	// MinInterval keeps ticks at least this far apart.
	MinInterval time.Duration
	Anchor      geom.Vector2
	Composite   surface.Composite
}

func DefaultConfig() Config {
	return Config{
		SquaresPerRow: 10,
		MinInterval:   10 * time.Millisecond,
		Anchor:        geom.Vec(400, 400),
		Composite:     surface.CompositeDarken,
	}
}

// Demo is the intersection page.
type Demo struct {
	cfg Config

	sess  *page.Session
	surf  surface.Surface
	rand  entity.Rand
	rules entity.SquareRules

	squares []*entity.Square
	line    geom.Segment
	corner  geom.Vector2
	hits    []geom.Vector2
}

func New(cfg Config) *Demo {
	return &Demo{cfg: cfg}
}

func (d *Demo) Route() string { return Route }
func (d *Demo) Title() string { return "Intersection" }

func (d *Demo) Mount(h *page.Host) error {
	sess, err := page.Begin(h, Route)
	if err != nil {
		return err
	}

	bounds := h.Surface.Bounds()
	threshold := d.cfg.Threshold
	if threshold <= 0 {
		threshold = bounds.Size.Y
	}
	rng := h.Rand
	if rng == nil {
		rng = entity.NewRand(uint64(time.Now().UnixNano()))
	}
	rules := entity.DefaultSquareRules(threshold)
	squares, err := entity.NewSquareRow(rng, d.cfg.SquaresPerRow, bounds.Size.X, 50, rules)
	if err != nil {
		sess.End()
		return fmt.Errorf("intersection: %w", err)
	}

	d.sess = sess
	d.surf = h.Surface
	d.rand = rng
	d.rules = rules
	d.squares = squares
	d.line = geom.Segment{P1: d.cfg.Anchor}
	d.corner = h.Surface.BoundingOffset()
	d.hits = d.hits[:0]

	sess.Listen(hal.EventPointerMove, d.onPointer)
	sess.Listen(hal.EventResize, d.onResize)
	sess.Run(d, anim.WithMinInterval(d.cfg.MinInterval))
	sess.Log().Info("intersection started",
		zap.Int("squares", len(squares)),
		zap.Float64("threshold", threshold),
		zap.Stringer("composite", d.cfg.Composite))
	return nil
}

func (d *Demo) Unmount() {
	d.sess.End()
	d.sess = nil
}

// Advance moves every square, then recomputes where the line crosses their
// edges.
func (d *Demo) Advance(time.Time) {
	for _, s := range d.squares {
		s.Advance(d.rand, d.rules)
	}
	d.hits = d.hits[:0]
	for _, s := range d.squares {
		for _, e := range s.Edges() {
			if p, ok := d.line.Intersect(e); ok {
				d.hits = append(d.hits, p)
			}
		}
	}
}

func (d *Demo) Render() {
	s := d.surf
	surface.Reset(s)
	s.SetBackground(background)
	s.Clear(s.Bounds())

	s.SetComposite(d.cfg.Composite)
	for _, sq := range d.squares {
		b := sq.Bounds()
		s.FillRect(b.Min, b.Size, sq.Color().RGBA())
	}
	s.SetComposite(surface.CompositeNormal)

	s.DrawLine(d.line.P1, d.line.P2, lineColor)
	for _, p := range d.hits {
		s.FillCircle(p, dotRadius, lineColor)
	}
	s.DrawText(geom.Vec(8, 8), fmt.Sprintf("Intersections: %d", len(d.hits)), textColor)
}

func (d *Demo) onPointer(ev hal.Event) {
	d.line.P2 = geom.Vec(float64(ev.X), float64(ev.Y)).Sub(d.corner)
}

func (d *Demo) onResize(hal.Event) {
	d.corner = d.surf.BoundingOffset()
}

func (d *Demo) Squares() []*entity.Square { return d.squares }
func (d *Demo) Line() geom.Segment        { return d.line }

// Hits returns the intersection points found by the last tick.
func (d *Demo) Hits() []geom.Vector2 { return d.hits }
