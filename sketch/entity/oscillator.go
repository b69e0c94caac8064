package entity

import (
	"errors"
	"fmt"
	"math"

	"gallery/sketch/geom"
)

// Tau is a full turn in radians.
const Tau = 2 * math.Pi

// ErrInvalidCount is returned when an entity set is asked for fewer than one member.
var ErrInvalidCount = errors.New("invalid entity count")

func invalidCount(what string, n int) error {
	return fmt.Errorf("%s: count %d: %w", what, n, ErrInvalidCount)
}

// Oscillator is a dot moving back and forth along a fixed line through the
// origin at the given angle.
type Oscillator struct {
	Angle float64
	Color HSL

	// sin and cos are pre-scaled by the radius.
	sin float64
	cos float64
}

// NewOscillator returns an oscillator whose line reaches radius at phase ±1.
func NewOscillator(angle, radius float64, c HSL) Oscillator {
	return Oscillator{
		Angle: angle,
		Color: c,
		sin:   math.Sin(angle) * radius,
		cos:   math.Cos(angle) * radius,
	}
}

// Axis returns (cos*R, sin*R).
func (o Oscillator) Axis() geom.Vector2 { return geom.Vec(o.cos, o.sin) }

// Dot returns the dot position for a phase scalar in [-1, 1].
func (o Oscillator) Dot(phase float64) geom.Vector2 {
	return geom.Vec(o.cos*phase, o.sin*phase)
}

// Line returns the oscillator's track extended by factor on both sides.
func (o Oscillator) Line(factor float64) geom.Segment {
	return geom.Segment{P1: o.Axis().Scale(factor), P2: o.Axis().Scale(-factor)}
}

// BuildOscillators returns count oscillators with angles evenly spaced over
// [0, π) and hues evenly spaced over the hue circle.
func BuildOscillators(count int, radius float64) ([]Oscillator, error) {
	if count < 1 {
		return nil, invalidCount("oscillators", count)
	}
	angleStep := math.Pi / float64(count)
	hueStep := 360 / float64(count)
	out := make([]Oscillator, count)
	for i := range out {
		c := HSL{H: hueStep * float64(i), S: 100, L: 40}
		out[i] = NewOscillator(angleStep*float64(i), radius, c)
	}
	return out, nil
}

// PhaseScalar is sin(index*angleStep*offset + clock).
func PhaseScalar(index int, angleStep, offset, clock float64) float64 {
	return math.Sin(float64(index)*angleStep*offset + clock)
}

// OscillatorSet is a full set of oscillators plus the shared clock angle.
type OscillatorSet struct {
	Radius    float64
	ClockStep float64

	// Offset distorts the phase relationship between oscillators; 1 keeps them
	// in step with their angular spacing.
	Offset float64

	members   []Oscillator
	angleStep float64
	clock     float64
}

// NewOscillatorSet builds count oscillators with the clock at zero.
func NewOscillatorSet(count int, radius, clockStep, offset float64) (*OscillatorSet, error) {
	s := &OscillatorSet{Radius: radius, ClockStep: clockStep, Offset: offset}
	if err := s.Rebuild(count); err != nil {
		return nil, err
	}
	return s, nil
}

// Rebuild replaces every member. The clock angle is kept.
func (s *OscillatorSet) Rebuild(count int) error {
	members, err := BuildOscillators(count, s.Radius)
	if err != nil {
		return err
	}
	s.members = members
	s.angleStep = math.Pi / float64(count)
	return nil
}

// Len returns the member count.
func (s *OscillatorSet) Len() int { return len(s.members) }

// Members returns the oscillators in index order. The slice is shared.
func (s *OscillatorSet) Members() []Oscillator { return s.members }

// AngleStep is the angle between neighbouring members, π/count.
func (s *OscillatorSet) AngleStep() float64 { return s.angleStep }

// Clock returns the current clock angle, reduced modulo 2π.
func (s *OscillatorSet) Clock() float64      { return s.clock }
func (s *OscillatorSet) At(i int) Oscillator { return s.members[i] }

// Advance moves the clock angle forward by ClockStep, modulo 2π.
func (s *OscillatorSet) Advance() {
	s.clock = math.Mod(s.clock+s.ClockStep, Tau)
}

// Phase returns member i's phase scalar for the current clock.
func (s *OscillatorSet) Phase(i int) float64 {
	return PhaseScalar(i, s.angleStep, s.Offset, s.clock)
}

// Dots returns every member's current dot position, appended to dst.
func (s *OscillatorSet) Dots(dst []geom.Vector2) []geom.Vector2 {
	for i, o := range s.members {
		dst = append(dst, o.Dot(s.Phase(i)))
	}
	return dst
}
