package surface

import (
	"math"

	"gallery/sketch/geom"
)

func clearRGB565(buf []byte, pixel uint16) {
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i+1 < len(buf); i += 2 {
		buf[i] = lo
		buf[i+1] = hi
	}
}

// fillSpanRGB565 writes pixel to columns [x0, x1) of the row starting at byte
// offset row.
func fillSpanRGB565(buf []byte, row, x0, x1 int, pixel uint16) {
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for x := x0; x < x1; x++ {
		off := row + x*2
		if off < 0 || off+1 >= len(buf) {
			continue
		}
		buf[off] = lo
		buf[off+1] = hi
	}
}

// clampSpan clamps the half-open span [a, b) to [0, n).
func clampSpan(a, b, n int) (int, int) {
	if a < 0 {
		a = 0
	}
	if b > n {
		b = n
	}
	return a, b
}

// drawLine walks a Bresenham line from (x0, y0) to (x1, y1) inclusive.
func drawLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			if x0 == x1 {
				return
			}
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			if y0 == y1 {
				return
			}
			err += dx
			y0 += sy
		}
	}
}

// clipSegment clips p1→p2 to r (Liang–Barsky). ok is false when the segment
// lies entirely outside.
func clipSegment(p1, p2 geom.Vector2, r geom.Rect) (geom.Vector2, geom.Vector2, bool) {
	d := p2.Sub(p1)
	lo, hi := 0.0, 1.0
	maxP := r.Max()
	// Keep endpoints inside the last pixel row/column after rounding.
	maxP = geom.Vec(maxP.X-0.5, maxP.Y-0.5)

	edges := [4][2]float64{
		{-d.X, p1.X - r.Min.X},
		{d.X, maxP.X - p1.X},
		{-d.Y, p1.Y - r.Min.Y},
		{d.Y, maxP.Y - p1.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return p1, p2, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			lo = math.Max(lo, t)
		} else {
			hi = math.Min(hi, t)
		}
		if lo > hi {
			return p1, p2, false
		}
	}
	return p1.Add(d.Scale(lo)), p1.Add(d.Scale(hi)), true
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
