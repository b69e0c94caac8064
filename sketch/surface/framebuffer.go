package surface

import (
	"errors"
	"image/color"
	"math"

	"gallery/hal"
	"gallery/sketch/geom"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// ErrNoFramebuffer is returned when the display has no usable RGB565 framebuffer.
var ErrNoFramebuffer = errors.New("surface: no RGB565 framebuffer")

var _ drivers.Displayer = (*Framebuffer)(nil)

// Framebuffer draws into a hal framebuffer. It also satisfies
// drivers.Displayer so tinyfont can render into it.
type Framebuffer struct {
	disp hal.Display
	fb   hal.Framebuffer

	w, h int

	origin     geom.Vector2
	composite  Composite
	background color.RGBA
	font       tinyfont.Fonter
}

// New wraps the display's framebuffer.
func New(disp hal.Display) (*Framebuffer, error) {
	if disp == nil {
		return nil, ErrNoFramebuffer
	}
	fb := disp.Framebuffer()
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 || fb.Buffer() == nil {
		return nil, ErrNoFramebuffer
	}
	return &Framebuffer{
		disp:       disp,
		fb:         fb,
		w:          fb.Width(),
		h:          fb.Height(),
		background: color.RGBA{A: 0xFF},
		font:       &proggy.TinySZ8pt7b,
	}, nil
}

func (f *Framebuffer) Bounds() geom.Rect {
	return geom.RectOf(0, 0, float64(f.w), float64(f.h))
}

func (f *Framebuffer) BoundingOffset() geom.Vector2 {
	x, y := f.disp.Offset()
	return geom.Vec(float64(x), float64(y))
}

func (f *Framebuffer) SetOrigin(o geom.Vector2)   { f.origin = o }
func (f *Framebuffer) SetComposite(c Composite)   { f.composite = c }
func (f *Framebuffer) SetBackground(c color.RGBA) { f.background = c }

// Clear fills r with the background colour. Compositing does not apply.
func (f *Framebuffer) Clear(r geom.Rect) {
	x0, y0 := r.Min.Round()
	x1, y1 := r.Max().Round()
	x0, x1 = clampSpan(x0, x1, f.w)
	y0, y1 = clampSpan(y0, y1, f.h)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	pixel := hal.RGB565(f.background.R, f.background.G, f.background.B)
	if x0 == 0 && y0 == 0 && x1 == f.w && y1 == f.h {
		clearRGB565(f.fb.Buffer(), pixel)
		return
	}
	buf := f.fb.Buffer()
	stride := f.fb.StrideBytes()
	for y := y0; y < y1; y++ {
		fillSpanRGB565(buf, y*stride, x0, x1, pixel)
	}
}

// DrawLine draws a one pixel wide line, clipped to the surface.
func (f *Framebuffer) DrawLine(p1, p2 geom.Vector2, c color.RGBA) {
	p1, p2 = p1.Add(f.origin), p2.Add(f.origin)
	if !p1.Finite() || !p2.Finite() {
		return
	}
	p1, p2, ok := clipSegment(p1, p2, f.Bounds())
	if !ok {
		return
	}
	x0, y0 := p1.Round()
	x1, y1 := p2.Round()
	drawLine(x0, y0, x1, y1, func(x, y int) { f.plot(x, y, c) })
}

func (f *Framebuffer) FillRect(origin, size geom.Vector2, c color.RGBA) {
	origin = origin.Add(f.origin)
	if !origin.Finite() || !size.Finite() {
		return
	}
	x0, y0 := origin.Round()
	x1, y1 := origin.Add(size).Round()
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	x0, x1 = clampSpan(x0, x1, f.w)
	y0, y1 = clampSpan(y0, y1, f.h)
	for y := y0; y < y1; y++ {
		f.span(x0, x1, y, c)
	}
}

func (f *Framebuffer) FillCircle(center geom.Vector2, radius float64, c color.RGBA) {
	center = center.Add(f.origin)
	if !center.Finite() || radius < 0 || math.IsInf(radius, 0) || math.IsNaN(radius) {
		return
	}
	cx, cy := center.Round()
	r := int(math.Round(radius))
	for dy := -r; dy <= r; dy++ {
		y := cy + dy
		if y < 0 || y >= f.h {
			continue
		}
		dx := int(math.Sqrt(float64(r*r - dy*dy)))
		x0, x1 := clampSpan(cx-dx, cx+dx+1, f.w)
		f.span(x0, x1, y, c)
	}
}

func (f *Framebuffer) DrawText(p geom.Vector2, s string, c color.RGBA) {
	p = p.Add(f.origin)
	if !p.Finite() {
		return
	}
	x, y := p.Round()
	// tinyfont positions text by its baseline.
	tinyfont.WriteLine(f, f.font, int16(x), int16(y+LineHeight-3), s, c)
}

// TextWidth returns the rendered width of s in pixels.
func (f *Framebuffer) TextWidth(s string) int {
	_, w := tinyfont.LineWidth(f.font, s)
	return int(w)
}

func (f *Framebuffer) Present() error {
	return f.fb.Present()
}

// Size, SetPixel and Display implement drivers.Displayer.

func (f *Framebuffer) Size() (x, y int16) {
	return int16(f.w), int16(f.h)
}

func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	f.plot(int(x), int(y), c)
}

func (f *Framebuffer) Display() error { return nil }

func (f *Framebuffer) plot(x, y int, c color.RGBA) {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return
	}
	buf := f.fb.Buffer()
	off := y*f.fb.StrideBytes() + x*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	pixel := f.blend(uint16(buf[off])|uint16(buf[off+1])<<8, c)
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (f *Framebuffer) span(x0, x1, y int, c color.RGBA) {
	if x0 >= x1 {
		return
	}
	if f.composite == CompositeNormal {
		fillSpanRGB565(f.fb.Buffer(), y*f.fb.StrideBytes(), x0, x1, hal.RGB565(c.R, c.G, c.B))
		return
	}
	for x := x0; x < x1; x++ {
		f.plot(x, y, c)
	}
}

func (f *Framebuffer) blend(dst uint16, c color.RGBA) uint16 {
	switch f.composite {
	case CompositeDarken:
		r, g, b := hal.RGB888(dst)
		return hal.RGB565(min(r, c.R), min(g, c.G), min(b, c.B))
	default:
		return hal.RGB565(c.R, c.G, c.B)
	}
}
