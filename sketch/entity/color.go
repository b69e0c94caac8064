package entity

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HSL is a colour given as hue in degrees and saturation/lightness in percent,
// the way the demos describe their palettes.
type HSL struct {
	H float64
	S float64
	L float64
}

// RGBA converts the colour to an opaque sRGB value.
func (c HSL) RGBA() color.RGBA {
	r, g, b := colorful.Hsl(c.H, c.S/100, c.L/100).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

func (c HSL) String() string {
	return fmt.Sprintf("hsl(%g, %g%%, %g%%)", c.H, c.S, c.L)
}

// RandomHSL picks a uniformly random integer hue at fixed saturation and lightness.
func RandomHSL(r Rand, s, l float64) HSL {
	return HSL{H: float64(r.Between(0, 360)), S: s, L: l}
}
