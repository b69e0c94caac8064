package entity

import "gallery/sketch/geom"

// SquareRules are the recycling parameters shared by a set of falling squares.
type SquareRules struct {
	// Threshold is the y coordinate past which a square respawns above the top edge.
	Threshold float64

	MinSize     int
	MaxSize     int
	MinVelocity int
	MaxVelocity int

	Saturation float64
	Lightness  float64
}

// DefaultSquareRules returns the gallery's rules for a region of the given height.
func DefaultSquareRules(threshold float64) SquareRules {
	return SquareRules{
		Threshold:   threshold,
		MinSize:     5,
		MaxSize:     100,
		MinVelocity: 1,
		MaxVelocity: 5,
		Saturation:  60,
		Lightness:   40,
	}
}

// Square is an axis-aligned square falling at a constant vertical velocity.
// It is never destroyed; Advance recycles it in place.
type Square struct {
	origin   geom.Vector2
	size     float64
	velocity float64
	color    HSL

	vertices [4]geom.Vector2
}

// NewSquare returns a square with its top-left corner at origin.
func NewSquare(origin geom.Vector2, size, velocity float64, c HSL) *Square {
	s := &Square{size: size, velocity: velocity, color: c}
	s.moveTo(origin)
	return s
}

// Origin returns the top-left corner.
func (s *Square) Origin() geom.Vector2 { return s.origin }

// Size is the side length.
func (s *Square) Size() float64 { return s.size }

// Velocity is the fall distance per tick.
func (s *Square) Velocity() float64 { return s.velocity }
func (s *Square) Color() HSL        { return s.color }

// Vertices returns the corners clockwise from the top-left.
func (s *Square) Vertices() [4]geom.Vector2 { return s.vertices }

// Edges returns the four sides, each from a vertex to the next one clockwise.
func (s *Square) Edges() [4]geom.Segment {
	var e [4]geom.Segment
	for i := range s.vertices {
		e[i] = geom.Segment{P1: s.vertices[i], P2: s.vertices[(i+1)%4]}
	}
	return e
}

// Bounds returns the square as a rect.
func (s *Square) Bounds() geom.Rect {
	return geom.Rect{Min: s.origin, Size: geom.Vec(s.size, s.size)}
}

// Advance moves the square down by its velocity. Once its top edge is past
// the threshold it respawns instead: new size, velocity and colour, same x,
// y = -size. It reports whether a respawn happened.
func (s *Square) Advance(r Rand, rules SquareRules) bool {
	if s.origin.Y > rules.Threshold {
		s.size = float64(r.Between(rules.MinSize, rules.MaxSize))
		s.velocity = float64(r.Between(rules.MinVelocity, rules.MaxVelocity))
		s.color = RandomHSL(r, rules.Saturation, rules.Lightness)
		s.moveTo(geom.Vec(s.origin.X, -s.size))
		return true
	}
	s.moveTo(s.origin.Add(geom.Vec(0, s.velocity)))
	return false
}

func (s *Square) moveTo(origin geom.Vector2) {
	s.origin = origin
	w := s.size
	s.vertices = [4]geom.Vector2{
		origin,
		origin.Add(geom.Vec(w, 0)),
		origin.Add(geom.Vec(w, w)),
		origin.Add(geom.Vec(0, w)),
	}
}

// NewSquareRow returns n squares spread evenly across width at y = 0. Initial
// sizes are drawn from [minSize, rules.MaxSize]; velocity and colour follow rules.
func NewSquareRow(r Rand, n int, width float64, minSize int, rules SquareRules) ([]*Square, error) {
	if n < 1 {
		return nil, invalidCount("square row", n)
	}
	squares := make([]*Square, 0, n)
	for i := 0; i < n; i++ {
		x := width / float64(n) * float64(i)
		size := float64(r.Between(minSize, rules.MaxSize))
		velocity := float64(r.Between(rules.MinVelocity, rules.MaxVelocity))
		c := RandomHSL(r, rules.Saturation, rules.Lightness)
		squares = append(squares, NewSquare(geom.Vec(x, 0), size, velocity, c))
	}
	return squares, nil
}
