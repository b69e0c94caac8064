package hal

import "errors"

// ErrQuit is returned by a step function to end the runner without error.
var ErrQuit = errors.New("quit")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
	// Offset is the framebuffer's top-left corner inside the host viewport,
	// in viewport pixels. Pointer events are reported in viewport pixels.
	Offset() (x, y int)
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyHome
	KeyF1
	KeyF2
	KeyF3
	KeyInterrupt
)

// EventKind tells which fields of an Event are set.
type EventKind uint8

const (
	// EventPointerMove carries the pointer position in X, Y (viewport pixels).
	EventPointerMove EventKind = iota + 1
	// EventResize carries the new viewport size in X, Y.
	EventResize
	// EventKey carries Key, or Rune for text input.
	EventKey
)

func (k EventKind) String() string {
	switch k {
	case EventPointerMove:
		return "pointer"
	case EventResize:
		return "resize"
	case EventKey:
		return "key"
	default:
		return "unknown"
	}
}

// Event is a single input event. Events share one queue so their delivery
// order is preserved across kinds.
type Event struct {
	Kind EventKind
	X    int
	Y    int
	Key  KeyCode
	Rune rune
}

// Input provides host events (best-effort on each platform). Producers never
// block; events are dropped when the queue is full.
type Input interface {
	Events() <-chan Event
}

// HAL provides the only contact point between the gallery and the outside world.
type HAL interface {
	Display() Display
	Input() Input
}

// NewApp builds the per-frame step function for a HAL. The step function runs
// once per host frame on the runner's goroutine.
type NewApp func(HAL) (step func() error, err error)
