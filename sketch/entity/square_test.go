package entity

import (
	"testing"

	"gallery/sketch/geom"
)

// seqRand replays fixed values, clamped into the requested range.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) Between(lo, hi int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func TestSquareAdvanceFalls(t *testing.T) {
	rules := DefaultSquareRules(800)
	s := NewSquare(geom.Vec(80, 0), 50, 3, HSL{H: 10, S: 60, L: 40})

	for i := 1; i <= 100; i++ {
		prev := s.Origin().Y
		if respawned := s.Advance(NewRand(1), rules); respawned {
			t.Fatalf("step %d: unexpected respawn at y=%v", i, prev)
		}
		if got, want := s.Origin().Y, prev+3; got != want {
			t.Fatalf("step %d: y = %v, want %v", i, got, want)
		}
	}

	v := s.Vertices()
	want := [4]geom.Vector2{geom.Vec(80, 300), geom.Vec(130, 300), geom.Vec(130, 350), geom.Vec(80, 350)}
	if v != want {
		t.Fatalf("Vertices() = %v, want %v", v, want)
	}
}

func TestSquareRespawn(t *testing.T) {
	rules := DefaultSquareRules(800)
	s := NewSquare(geom.Vec(160, 795), 40, 5, HSL{H: 0, S: 60, L: 40})
	r := &seqRand{vals: []int{70, 2, 123}}

	if s.Advance(r, rules) {
		t.Fatal("respawned at y=795")
	}
	if got := s.Origin().Y; got != 800 {
		t.Fatalf("y = %v, want 800", got)
	}
	// 800 is not past the threshold yet.
	if s.Advance(r, rules) {
		t.Fatal("respawned at y=800")
	}
	if !s.Advance(r, rules) {
		t.Fatal("expected respawn past threshold")
	}

	if got, want := s.Size(), 70.0; got != want {
		t.Fatalf("Size() = %v, want %v", got, want)
	}
	if got, want := s.Velocity(), 2.0; got != want {
		t.Fatalf("Velocity() = %v, want %v", got, want)
	}
	if got, want := s.Color(), (HSL{H: 123, S: 60, L: 40}); got != want {
		t.Fatalf("Color() = %v, want %v", got, want)
	}
	if got, want := s.Origin(), geom.Vec(160, -70); got != want {
		t.Fatalf("Origin() = %v, want %v", got, want)
	}
	if got, want := s.Vertices()[2], geom.Vec(230, 0); got != want {
		t.Fatalf("bottom-right vertex = %v, want %v", got, want)
	}
}

func TestSquareRecyclingKeepsX(t *testing.T) {
	rules := DefaultSquareRules(800)
	r := NewRand(42)
	s := NewSquare(geom.Vec(240, 0), 60, 5, HSL{})

	respawns := 0
	for i := 0; i < 5000; i++ {
		if s.Advance(r, rules) {
			respawns++
			if s.Origin().Y >= 0 {
				t.Fatalf("respawned at y=%v, want negative", s.Origin().Y)
			}
			if s.Origin().Y != -s.Size() {
				t.Fatalf("respawned at y=%v, want %v", s.Origin().Y, -s.Size())
			}
			if s.Size() < 5 || s.Size() > 100 {
				t.Fatalf("size %v outside [5,100]", s.Size())
			}
			if s.Velocity() < 1 || s.Velocity() > 5 {
				t.Fatalf("velocity %v outside [1,5]", s.Velocity())
			}
		}
		if s.Origin().X != 240 {
			t.Fatalf("x = %v, want 240", s.Origin().X)
		}
	}
	if respawns == 0 {
		t.Fatal("no respawns in 5000 steps")
	}
}

func TestSquareSeededReproducible(t *testing.T) {
	rules := DefaultSquareRules(800)
	a, err := NewSquareRow(NewRand(7), 10, 800, 50, rules)
	if err != nil {
		t.Fatalf("NewSquareRow: %v", err)
	}
	b, err := NewSquareRow(NewRand(7), 10, 800, 50, rules)
	if err != nil {
		t.Fatalf("NewSquareRow: %v", err)
	}
	for i := range a {
		if a[i].Origin() != b[i].Origin() || a[i].Size() != b[i].Size() || a[i].Color() != b[i].Color() {
			t.Fatalf("square %d differs for equal seeds", i)
		}
		if got, want := a[i].Origin(), geom.Vec(80*float64(i), 0); got != want {
			t.Fatalf("square %d origin = %v, want %v", i, got, want)
		}
		if a[i].Size() < 50 || a[i].Size() > 100 {
			t.Fatalf("square %d initial size %v outside [50,100]", i, a[i].Size())
		}
	}
}

func TestNewSquareRowInvalid(t *testing.T) {
	if _, err := NewSquareRow(NewRand(1), 0, 800, 50, DefaultSquareRules(800)); err == nil {
		t.Fatal("NewSquareRow(0) err = nil")
	}
}

func TestSquareEdges(t *testing.T) {
	s := NewSquare(geom.Vec(0, 0), 10, 1, HSL{})
	e := s.Edges()
	if e[3].P1 != geom.Vec(0, 10) || e[3].P2 != geom.Vec(0, 0) {
		t.Fatalf("closing edge = %v", e[3])
	}
}
