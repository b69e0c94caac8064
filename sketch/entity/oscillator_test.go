package entity

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestBuildOscillatorsFour(t *testing.T) {
	set, err := BuildOscillators(4, 200)
	if err != nil {
		t.Fatalf("BuildOscillators: %v", err)
	}

	var angles, hues []float64
	for _, o := range set {
		angles = append(angles, o.Angle)
		hues = append(hues, o.Color.H)
	}
	approx := cmpopts.EquateApprox(0, 1e-12)
	if diff := cmp.Diff([]float64{0, math.Pi / 4, math.Pi / 2, 3 * math.Pi / 4}, angles, approx); diff != "" {
		t.Fatalf("angles (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{0, 90, 180, 270}, hues, approx); diff != "" {
		t.Fatalf("hues (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(200.0, set[2].Axis().Y, approx); diff != "" {
		t.Fatalf("axis of π/2 (-want +got):\n%s", diff)
	}
}

func TestBuildOscillatorsInvalid(t *testing.T) {
	for _, n := range []int{0, -3} {
		if _, err := BuildOscillators(n, 200); !errors.Is(err, ErrInvalidCount) {
			t.Fatalf("BuildOscillators(%d) err = %v, want ErrInvalidCount", n, err)
		}
	}
}

func TestOscillatorDotAndLine(t *testing.T) {
	o := NewOscillator(0, 200, HSL{})
	if got := o.Dot(0.5); math.Abs(got.X-100) > 1e-12 || math.Abs(got.Y) > 1e-12 {
		t.Fatalf("Dot(0.5) = %v, want (100, 0)", got)
	}
	l := o.Line(1.1)
	if math.Abs(l.P1.X-220) > 1e-9 || math.Abs(l.P2.X+220) > 1e-9 {
		t.Fatalf("Line(1.1) = %v, want ±220 on x", l)
	}
}

func TestOscillatorSetClock(t *testing.T) {
	step := math.Pi / 180
	s, err := NewOscillatorSet(20, 200, step, 1)
	if err != nil {
		t.Fatalf("NewOscillatorSet: %v", err)
	}

	for i := 0; i < 360; i++ {
		s.Advance()
		if s.Clock() < 0 || s.Clock() >= Tau {
			t.Fatalf("clock %v outside [0, 2π)", s.Clock())
		}
	}
	// A full turn wraps to (nearly) zero or (nearly) 2π depending on rounding.
	if c := s.Clock(); c > 1e-9 && Tau-c > 1e-9 {
		t.Fatalf("clock after 360 steps = %v, want a full turn", c)
	}
}

func TestOscillatorSetRebuildKeepsClock(t *testing.T) {
	s, err := NewOscillatorSet(20, 200, 0.1, 1)
	if err != nil {
		t.Fatalf("NewOscillatorSet: %v", err)
	}
	for i := 0; i < 5; i++ {
		s.Advance()
	}
	clock := s.Clock()

	if err := s.Rebuild(4); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	if s.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", s.Len())
	}
	if s.Clock() != clock {
		t.Fatalf("Clock() = %v after rebuild, want %v", s.Clock(), clock)
	}
	if got, want := s.AngleStep(), math.Pi/4; math.Abs(got-want) > 1e-12 {
		t.Fatalf("AngleStep() = %v, want %v", got, want)
	}
	if err := s.Rebuild(0); err == nil {
		t.Fatal("Rebuild(0) err = nil")
	}
	if s.Len() != 4 {
		t.Fatalf("failed rebuild changed set: Len() = %d", s.Len())
	}
}

func TestPhaseScalarOffset(t *testing.T) {
	step := math.Pi / 4
	clock := 0.3
	if got, want := PhaseScalar(2, step, 1, clock), math.Sin(2*step+clock); got != want {
		t.Fatalf("PhaseScalar(offset=1) = %v, want %v", got, want)
	}
	if got, want := PhaseScalar(2, step, 0, clock), math.Sin(clock); got != want {
		t.Fatalf("PhaseScalar(offset=0) = %v, want %v", got, want)
	}

	s, _ := NewOscillatorSet(4, 200, 0, 2)
	if got, want := s.Phase(1), math.Sin(step*2); math.Abs(got-want) > 1e-12 {
		t.Fatalf("Phase(1) with offset 2 = %v, want %v", got, want)
	}
	dots := s.Dots(nil)
	if len(dots) != 4 {
		t.Fatalf("len(Dots()) = %d, want 4", len(dots))
	}
}
