// Package widget holds the bounded numeric inputs the demos expose.
package widget

import (
	"fmt"
	"image/color"
	"math"

	"gallery/sketch/geom"
	"gallery/sketch/surface"
)

// Slider is a numeric input bounded to [Min, Max] in increments of Step.
type Slider struct {
	Label string
	Min   float64
	Max   float64
	Step  float64
	// Format renders the value for Draw; defaults to %g.
	Format string

	value float64
}

// NewSlider returns a slider resting at the midpoint of its range.
func NewSlider(label string, min, max, step float64) *Slider {
	if max < min {
		min, max = max, min
	}
	s := &Slider{Label: label, Min: min, Max: max, Step: step}
	s.value = s.snap(min + (max-min)/2)
	return s
}

// Value returns the current, already snapped, value.
func (s *Slider) Value() float64 { return s.value }

// Int returns the value rounded to the nearest integer.
func (s *Slider) Int() int { return int(math.Round(s.value)) }

// Set clamps v to the range and snaps it to the step grid. It reports whether
// the value changed. NaN is ignored.
func (s *Slider) Set(v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	v = s.snap(v)
	if v == s.value {
		return false
	}
	s.value = v
	return true
}

// Nudge moves the value by n steps.
func (s *Slider) Nudge(n int) bool {
	step := s.Step
	if step <= 0 {
		step = 1
	}
	return s.Set(s.value + float64(n)*step)
}

// Fraction returns the value's position in the range, 0..1.
func (s *Slider) Fraction() float64 {
	if s.Max == s.Min {
		return 0
	}
	return (s.value - s.Min) / (s.Max - s.Min)
}

func (s *Slider) String() string {
	f := s.Format
	if f == "" {
		f = "%g"
	}
	return fmt.Sprintf("%s: "+f, s.Label, s.value)
}

func (s *Slider) snap(v float64) float64 {
	if v < s.Min {
		v = s.Min
	}
	if v > s.Max {
		v = s.Max
	}
	if s.Step > 0 {
		k := math.Round((v - s.Min) / s.Step)
		v = s.Min + k*s.Step
		if v > s.Max {
			v = s.Max
		}
	}
	return v
}

// Draw renders the label above a track of the given width with a knob at the
// current value. p is the top-left corner.
func (s *Slider) Draw(dst surface.Surface, p geom.Vector2, width float64, c color.RGBA) {
	dst.DrawText(p, s.String(), c)
	y := p.Y + surface.LineHeight + 4
	dst.DrawLine(geom.Vec(p.X, y), geom.Vec(p.X+width, y), c)
	dst.FillCircle(geom.Vec(p.X+width*s.Fraction(), y), 3, c)
}
