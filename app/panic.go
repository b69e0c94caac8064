package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"time"
	"unicode/utf8"

	"gallery/sketch/geom"
	"gallery/sketch/surface"

	"go.uber.org/zap"
)

type panicInfo struct {
	route string
	value any
	stack []byte
}

var (
	panicBackground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	panicText       = color.RGBA{A: 0xFF}
)

// flush runs the frame queue. A panic inside a demo tick unmounts that demo
// and leaves a panic screen up; navigation keys keep working.
func (a *App) flush(now time.Time) {
	route := a.router.Route()
	defer func() {
		if v := recover(); v != nil {
			a.onPanic(panicInfo{route: route, value: v, stack: debug.Stack()})
		}
	}()
	a.frames.Flush(now)
}

func (a *App) onPanic(info panicInfo) {
	a.log.Error("demo panic",
		zap.String("route", info.route),
		zap.Any("panic", info.value),
		zap.ByteString("stack", info.stack))

	func() {
		defer func() {
			if v := recover(); v != nil {
				a.log.Error("unmount after panic", zap.Any("panic", v))
			}
		}()
		a.router.Close()
	}()

	if a.fb != nil {
		drawPanic(a.fb, info)
	}
}

func drawPanic(s *surface.Framebuffer, info panicInfo) {
	surface.Reset(s)
	s.SetBackground(panicBackground)
	s.Clear(s.Bounds())

	lines := []string{
		"Gallery Panic:",
		"route: " + info.route,
		fmt.Sprintf("panic: %v", info.value),
	}
	if len(info.stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(info.stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}
	lines = append(lines, "", "h home  q quit")

	bounds := s.Bounds()
	charWidth := max(s.TextWidth("0"), 1)
	cols := max(int(bounds.Size.X)/charWidth-1, 1)
	maxY := bounds.Size.Y - surface.LineHeight

	y := 0.0
	for _, line := range lines {
		for {
			if y > maxY {
				return
			}
			chunk, rest := takeRunes(line, cols)
			s.DrawText(geom.Vec(4, y), chunk, panicText)
			y += surface.LineHeight
			line = strings.TrimLeft(rest, " ")
			if line == "" {
				break
			}
		}
	}
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
