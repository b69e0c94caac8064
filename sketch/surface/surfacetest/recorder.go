// Package surfacetest provides a Surface that records draw calls.
package surfacetest

import (
	"fmt"
	"image/color"

	"gallery/sketch/geom"
	"gallery/sketch/surface"
)

// OpKind identifies a recorded call.
type OpKind uint8

const (
	OpClear OpKind = iota + 1
	OpLine
	OpRect
	OpCircle
	OpText
	OpPresent
)

func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpLine:
		return "line"
	case OpRect:
		return "rect"
	case OpCircle:
		return "circle"
	case OpText:
		return "text"
	case OpPresent:
		return "present"
	default:
		return fmt.Sprintf("op(%d)", uint8(k))
	}
}

// Op is one recorded call. Points are stored after the origin translation,
// in surface coordinates.
type Op struct {
	Kind      OpKind
	Rect      geom.Rect
	P1, P2    geom.Vector2
	Radius    float64
	Text      string
	Color     color.RGBA
	Composite surface.Composite
}

func (o Op) String() string {
	switch o.Kind {
	case OpClear:
		return fmt.Sprintf("clear%v", o.Rect)
	case OpLine:
		return fmt.Sprintf("line%v-%v", o.P1, o.P2)
	case OpRect:
		return fmt.Sprintf("rect%v", o.Rect)
	case OpCircle:
		return fmt.Sprintf("circle%v r=%g", o.P1, o.Radius)
	case OpText:
		return fmt.Sprintf("text%v %q", o.P1, o.Text)
	default:
		return o.Kind.String()
	}
}

// Recorder implements surface.Surface by recording every call.
type Recorder struct {
	size   geom.Vector2
	offset geom.Vector2

	origin     geom.Vector2
	composite  surface.Composite
	background color.RGBA

	ops      []Op
	presents int
}

var _ surface.Surface = (*Recorder)(nil)

// New returns a recorder for a w×h surface.
func New(w, h float64) *Recorder {
	return &Recorder{size: geom.Vec(w, h), background: color.RGBA{A: 0xFF}}
}

// SetOffset sets the value reported by BoundingOffset.
func (r *Recorder) SetOffset(o geom.Vector2) { r.offset = o }

// Ops returns the calls recorded since the last Reset.
func (r *Recorder) Ops() []Op { return r.ops }

// Count returns how many recorded calls are of kind k.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Filter returns the recorded calls of kind k.
func (r *Recorder) Filter(k OpKind) []Op {
	var out []Op
	for _, op := range r.ops {
		if op.Kind == k {
			out = append(out, op)
		}
	}
	return out
}

// Reset drops recorded calls. Drawing state is kept.
func (r *Recorder) Reset() { r.ops = r.ops[:0] }

// Presents returns the number of Present calls.
func (r *Recorder) Presents() int { return r.presents }

func (r *Recorder) Origin() geom.Vector2         { return r.origin }
func (r *Recorder) Background() color.RGBA       { return r.background }
func (r *Recorder) Bounds() geom.Rect            { return geom.Rect{Size: r.size} }
func (r *Recorder) BoundingOffset() geom.Vector2 { return r.offset }

func (r *Recorder) SetOrigin(o geom.Vector2)         { r.origin = o }
func (r *Recorder) SetComposite(c surface.Composite) { r.composite = c }
func (r *Recorder) SetBackground(c color.RGBA)       { r.background = c }

func (r *Recorder) Clear(rect geom.Rect) {
	r.ops = append(r.ops, Op{Kind: OpClear, Rect: rect, Color: r.background})
}

func (r *Recorder) DrawLine(p1, p2 geom.Vector2, c color.RGBA) {
	r.add(Op{Kind: OpLine, P1: p1.Add(r.origin), P2: p2.Add(r.origin), Color: c})
}

func (r *Recorder) FillRect(origin, size geom.Vector2, c color.RGBA) {
	r.add(Op{Kind: OpRect, Rect: geom.Rect{Min: origin.Add(r.origin), Size: size}, Color: c})
}

func (r *Recorder) FillCircle(center geom.Vector2, radius float64, c color.RGBA) {
	r.add(Op{Kind: OpCircle, P1: center.Add(r.origin), Radius: radius, Color: c})
}

func (r *Recorder) DrawText(p geom.Vector2, s string, c color.RGBA) {
	r.add(Op{Kind: OpText, P1: p.Add(r.origin), Text: s, Color: c})
}

func (r *Recorder) Present() error {
	r.presents++
	return nil
}

func (r *Recorder) add(op Op) {
	op.Composite = r.composite
	r.ops = append(r.ops, op)
}
