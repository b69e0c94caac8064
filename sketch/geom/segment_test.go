package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestIntersectCrossing(t *testing.T) {
	a := Seg(0, 0, 10, 10)
	b := Seg(0, 10, 10, 0)

	got, ok := Intersect(a, b)
	if !ok {
		t.Fatal("Intersect() ok = false")
	}
	if diff := cmp.Diff(Vec(5, 5), got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("Intersect() mismatch (-want +got):\n%s", diff)
	}
}

func TestIntersectPointOnFirstSegment(t *testing.T) {
	// The pointer line of the intersection demo against a square's top edge.
	line := Seg(400, 400, 0, 0)
	edge := Seg(100, 200, 300, 200)

	got, ok := line.Intersect(edge)
	if !ok {
		t.Fatal("Intersect() ok = false")
	}
	if diff := cmp.Diff(Vec(200, 200), got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("Intersect() mismatch (-want +got):\n%s", diff)
	}
}

func TestIntersectOutsideRange(t *testing.T) {
	tests := []struct {
		name string
		a, b Segment
	}{
		{"lines cross beyond a", Seg(0, 0, 1, 1), Seg(0, 10, 10, 0)},
		{"lines cross beyond b", Seg(0, 0, 10, 10), Seg(0, 10, 1, 9)},
		{"disjoint", Seg(0, 0, 1, 0), Seg(5, 5, 6, 9)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if p, ok := Intersect(tc.a, tc.b); ok {
				t.Fatalf("Intersect() = %v, want no intersection", p)
			}
		})
	}
}

func TestIntersectParallelAndDegenerate(t *testing.T) {
	tests := []struct {
		name string
		a, b Segment
	}{
		{"parallel", Seg(0, 0, 10, 0), Seg(0, 1, 10, 1)},
		{"collinear overlapping", Seg(0, 0, 10, 0), Seg(5, 0, 15, 0)},
		{"zero length a", Seg(3, 3, 3, 3), Seg(0, 0, 10, 10)},
		{"zero length both", Seg(1, 1, 1, 1), Seg(1, 1, 1, 1)},
		{"nan endpoint", Seg(math.NaN(), 0, 10, 10), Seg(0, 10, 10, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, ok := Intersect(tc.a, tc.b)
			if ok {
				t.Fatalf("Intersect() = %v, want no intersection", p)
			}
			if p != (Vector2{}) {
				t.Fatalf("Intersect() point = %v, want zero value", p)
			}
		})
	}
}

func TestIntersectBoundsAndSymmetry(t *testing.T) {
	// Deterministic pseudo-random segments; checks that every reported point
	// lies inside both segments' bounding boxes and that t, u are in [0, 1].
	seed := uint32(12345)
	next := func() float64 {
		seed = seed*1664525 + 1013904223
		return float64(seed%800) + float64(seed%7)/7
	}

	hits := 0
	for i := 0; i < 2000; i++ {
		a := Seg(next(), next(), next(), next())
		b := Seg(next(), next(), next(), next())

		p, ok := Intersect(a, b)
		_, okSwapped := Intersect(b, a)
		if ok != okSwapped {
			t.Fatalf("Intersect(%v, %v) ok = %v, swapped ok = %v", a, b, ok, okSwapped)
		}
		if !ok {
			continue
		}
		hits++

		tt, u, _ := Params(a, b)
		if tt < 0 || tt > 1 || u < 0 || u > 1 {
			t.Fatalf("Params(%v, %v) = (%v, %v), want within [0,1]", a, b, tt, u)
		}
		for _, s := range []Segment{a, b} {
			const eps = 1e-6
			if p.X < math.Min(s.P1.X, s.P2.X)-eps || p.X > math.Max(s.P1.X, s.P2.X)+eps ||
				p.Y < math.Min(s.P1.Y, s.P2.Y)-eps || p.Y > math.Max(s.P1.Y, s.P2.Y)+eps {
				t.Fatalf("Intersect(%v, %v) = %v, outside %v", a, b, p, s)
			}
		}
	}
	if hits == 0 {
		t.Fatal("no intersections generated; test data is degenerate")
	}
}

func TestParamsSwapExact(t *testing.T) {
	a := Seg(12.3, 45.6, 789.1, 23.4)
	b := Seg(300.5, 0.25, 310.75, 799.5)

	t1, u1, ok1 := Params(a, b)
	t2, u2, ok2 := Params(b, a)
	if !ok1 || !ok2 {
		t.Fatal("Params() ok = false")
	}
	if t1 != u2 || u1 != t2 {
		t.Fatalf("Params swap: (%v, %v) vs (%v, %v)", t1, u1, t2, u2)
	}
}
