//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var windowKeys = []struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
	{ebiten.KeyEnter, KeyEnter},
	{ebiten.KeyEscape, KeyEscape},
	{ebiten.KeyHome, KeyHome},
	{ebiten.KeyF1, KeyF1},
	{ebiten.KeyF2, KeyF2},
	{ebiten.KeyF3, KeyF3},
}

// pollKeys emits presses only; the demos react to edges, not held keys.
// Held arrows repeat so sliders can be swept.
func pollKeys(in *hostInput) {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		in.emit(Event{Kind: EventKey, Key: KeyInterrupt})
		return
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		in.emit(Event{Kind: EventKey, Rune: r})
	}

	for _, k := range windowKeys {
		if inpututil.IsKeyJustPressed(k.key) || repeating(k.key) {
			in.emit(Event{Kind: EventKey, Key: k.code})
		}
	}
}

func repeating(key ebiten.Key) bool {
	switch key {
	case ebiten.KeyArrowUp, ebiten.KeyArrowDown, ebiten.KeyArrowLeft, ebiten.KeyArrowRight:
	default:
		return false
	}
	const (
		delay    = 30
		interval = 4
	)
	d := inpututil.KeyPressDuration(key)
	return d > delay && (d-delay)%interval == 0
}
