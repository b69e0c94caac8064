// Package field computes a lattice of direction vectors that all point toward
// a moving target.
package field

import (
	"errors"
	"fmt"
	"image/color"

	"gallery/sketch/geom"
	"gallery/sketch/surface"
)

// ErrInvalidRows is returned for a row count below one.
var ErrInvalidRows = errors.New("invalid row count")

// Field is a centred grid of points. The target and magnitude are owned by the
// caller and passed in on every computation.
type Field struct {
	outer  geom.Vector2
	region geom.Vector2

	rows   int
	tile   geom.Vector2
	points []geom.Vector2
	arrows []geom.Segment
}

// New returns a field of rows×rows points covering region, centred in outer.
func New(outer, region geom.Vector2, rows int) (*Field, error) {
	f := &Field{outer: outer, region: region}
	if err := f.SetRows(rows); err != nil {
		return nil, err
	}
	return f, nil
}

// SetRows regenerates the whole grid for a new row count. The previous grid is
// kept when rows is invalid.
func (f *Field) SetRows(rows int) error {
	if rows < 1 {
		return fmt.Errorf("field: rows %d: %w", rows, ErrInvalidRows)
	}
	tile := geom.TileSize(f.region, rows)
	f.rows = rows
	f.tile = tile
	f.points = geom.BuildGrid(f.outer, f.region, tile)
	return nil
}

// Rows returns the points per row.
func (f *Field) Rows() int { return f.rows }

// Tile is the spacing between neighbouring points.
func (f *Field) Tile() geom.Vector2     { return f.tile }
func (f *Field) Points() []geom.Vector2 { return f.points }

// Direction returns the vector from p toward target with length scale.
// ok is false when p and target coincide.
func Direction(p, target geom.Vector2, scale float64) (geom.Vector2, bool) {
	unit, ok := target.Sub(p).Unit()
	if !ok {
		return geom.Vector2{}, false
	}
	return unit.Scale(scale), true
}

// Scale returns the arrow length for a magnitude: magnitude * tile width.
func (f *Field) Scale(magnitude float64) float64 {
	return magnitude * f.tile.X
}

// Arrows appends one segment per grid point, from the point toward target.
// Points that coincide with target have no direction and are skipped.
func (f *Field) Arrows(dst []geom.Segment, target geom.Vector2, magnitude float64) []geom.Segment {
	s := f.Scale(magnitude)
	for _, p := range f.points {
		d, ok := Direction(p, target, s)
		if !ok {
			continue
		}
		dst = append(dst, geom.Segment{P1: p, P2: p.Add(d)})
	}
	return dst
}

// Render clears the whole outer area and draws every arrow. It returns the
// number of arrows drawn; a zero magnitude draws none.
func (f *Field) Render(s surface.Surface, target geom.Vector2, magnitude float64, c color.RGBA) int {
	s.Clear(geom.Rect{Size: f.outer})
	if f.Scale(magnitude) == 0 {
		return 0
	}
	f.arrows = f.Arrows(f.arrows[:0], target, magnitude)
	for _, a := range f.arrows {
		s.DrawLine(a.P1, a.P2, c)
	}
	return len(f.arrows)
}
