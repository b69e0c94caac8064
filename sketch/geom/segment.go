package geom

import "math"

// Segment is a line segment between two endpoints. Endpoints may be mutated in
// place (a segment can track a live pointer) and may coincide.
type Segment struct {
	P1 Vector2
	P2 Vector2
}

// Seg is shorthand for a segment from (x1, y1) to (x2, y2).
func Seg(x1, y1, x2, y2 float64) Segment {
	return Segment{P1: Vec(x1, y1), P2: Vec(x2, y2)}
}

// Delta returns P2 - P1.
func (s Segment) Delta() Vector2 { return s.P2.Sub(s.P1) }

// Len returns the segment length.
func (s Segment) Len() float64 { return s.Delta().Len() }

// At returns the point at parameter t along the segment: P1 + t*(P2-P1).
func (s Segment) At(t float64) Vector2 {
	return s.P1.Add(s.Delta().Scale(t))
}

// Params solves for t along a and u along b where the infinite lines through
// both segments cross. ok is false when the lines are parallel or collinear
// (zero denominator), which also covers degenerate zero-length segments.
//
// Swapping a and b swaps t and u exactly: every product is formed from the same
// coordinate differences, so existence of an intersection never depends on
// argument order.
func Params(a, b Segment) (t, u float64, ok bool) {
	x1, y1 := a.P1.X, a.P1.Y
	x2, y2 := a.P2.X, a.P2.Y
	x3, y3 := b.P1.X, b.P1.Y
	x4, y4 := b.P2.X, b.P2.Y

	den := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if den == 0 || math.IsNaN(den) {
		return 0, 0, false
	}
	t = ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / den
	u = -((x1-x2)*(y1-y3) - (y1-y2)*(x1-x3)) / den
	return t, u, true
}

// Intersect returns the point where a and b meet. The point is expressed on a's
// parametrization. ok is false for parallel, collinear or degenerate input, or
// when the crossing lies outside either segment.
func Intersect(a, b Segment) (Vector2, bool) {
	t, u, ok := Params(a, b)
	if !ok {
		return Vector2{}, false
	}
	// Written so NaN parameters fail the range test.
	if !(t >= 0 && t <= 1) || !(u >= 0 && u <= 1) {
		return Vector2{}, false
	}
	return a.At(t), true
}

// Intersect is the method form of Intersect(s, o).
func (s Segment) Intersect(o Segment) (Vector2, bool) {
	return Intersect(s, o)
}
