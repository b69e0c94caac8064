// Package surface defines the 2D drawing contract the demos render through and
// a software implementation over an RGB565 framebuffer.
package surface

import (
	"image/color"

	"gallery/sketch/geom"
)

// Composite selects how drawn pixels combine with what is already there.
type Composite uint8

const (
	CompositeNormal Composite = iota
	// CompositeDarken keeps the darker of source and destination per channel.
	CompositeDarken
)

func (c Composite) String() string {
	switch c {
	case CompositeNormal:
		return "normal"
	case CompositeDarken:
		return "darken"
	default:
		return "unknown"
	}
}

// ParseComposite maps a configuration name to a Composite.
func ParseComposite(s string) (Composite, bool) {
	switch s {
	case "", "normal", "source-over":
		return CompositeNormal, true
	case "darken":
		return CompositeDarken, true
	}
	return CompositeNormal, false
}

// LineHeight is the vertical advance for DrawText lines.
const LineHeight = 12

// Surface is a 2D drawing target.
//
// Drawing calls take coordinates relative to the origin set by SetOrigin.
// Clear and Bounds always use untranslated surface coordinates.
type Surface interface {
	Bounds() geom.Rect
	// BoundingOffset is the surface's top-left corner in viewport coordinates.
	// Subtract it from pointer positions to get surface coordinates.
	BoundingOffset() geom.Vector2

	SetOrigin(o geom.Vector2)
	SetComposite(c Composite)
	SetBackground(c color.RGBA)

	Clear(r geom.Rect)
	DrawLine(p1, p2 geom.Vector2, c color.RGBA)
	FillRect(origin, size geom.Vector2, c color.RGBA)
	FillCircle(center geom.Vector2, radius float64, c color.RGBA)
	// DrawText draws s with its top-left corner at p.
	DrawText(p geom.Vector2, s string, c color.RGBA)

	Present() error
}

// Reset restores the default drawing state: no translation, normal compositing.
func Reset(s Surface) {
	s.SetOrigin(geom.Vector2{})
	s.SetComposite(CompositeNormal)
}
