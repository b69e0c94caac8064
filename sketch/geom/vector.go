package geom

import "math"

// Vector2 is an immutable 2D vector. Every operation returns a new value.
type Vector2 struct {
	X float64
	Y float64
}

// Vec is shorthand for Vector2{X: x, Y: y}.
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns v + w.
func (v Vector2) Add(w Vector2) Vector2 {
	return Vector2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v - w.
func (v Vector2) Sub(w Vector2) Vector2 {
	return Vector2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Scale returns v with both components multiplied by k.
func (v Vector2) Scale(k float64) Vector2 {
	return Vector2{X: v.X * k, Y: v.Y * k}
}

// Div divides both components by k.
//
// Division by zero is not an error: it follows IEEE-754 and yields ±Inf, or NaN
// for a zero component. Callers that need a finite result must guard k.
func (v Vector2) Div(k float64) Vector2 {
	return Vector2{X: v.X / k, Y: v.Y / k}
}

// Len returns the Euclidean length.
func (v Vector2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Cross returns the z component of the 3D cross product with z=0.
func (v Vector2) Cross(w Vector2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Unit returns v scaled to length 1. ok is false for a zero or non-finite length.
func (v Vector2) Unit() (Vector2, bool) {
	l := v.Len()
	if l == 0 || math.IsInf(l, 0) || math.IsNaN(l) {
		return Vector2{}, false
	}
	return v.Div(l), true
}

// Finite reports whether both components are finite.
func (v Vector2) Finite() bool {
	return !math.IsInf(v.X, 0) && !math.IsNaN(v.X) && !math.IsInf(v.Y, 0) && !math.IsNaN(v.Y)
}

// Round returns the nearest integer pixel coordinates.
func (v Vector2) Round() (x, y int) {
	return int(math.Round(v.X)), int(math.Round(v.Y))
}

// Add, Sub, Scale and Div mirror the methods for call sites that read better as functions.

// Function forms of the Vector2 methods.
func Add(a, b Vector2) Vector2           { return a.Add(b) }
func Sub(a, b Vector2) Vector2           { return a.Sub(b) }
func Scale(v Vector2, k float64) Vector2 { return v.Scale(k) }
func Div(v Vector2, k float64) Vector2   { return v.Div(k) }

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	Min  Vector2
	Size Vector2
}

// RectOf returns a rect from corner and size components.
func RectOf(x, y, w, h float64) Rect {
	return Rect{Min: Vec(x, y), Size: Vec(w, h)}
}

// Max returns the bottom-right corner.
func (r Rect) Max() Vector2 { return r.Min.Add(r.Size) }

// Center returns the midpoint of the rect.
func (r Rect) Center() Vector2 { return r.Min.Add(r.Size.Div(2)) }

// Contains reports whether p lies inside r, edges inclusive.
func (r Rect) Contains(p Vector2) bool {
	max := r.Max()
	return p.X >= r.Min.X && p.X <= max.X && p.Y >= r.Min.Y && p.Y <= max.Y
}
