package hal

import (
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRunHeadlessTicks(t *testing.T) {
	defer goleak.VerifyNone(t)

	steps := 0
	newApp := func(h HAL) (func() error, error) {
		return func() error { steps++; return nil }, nil
	}
	err := RunHeadless(context.Background(), Config{Width: 16, Height: 16}, newApp, HeadlessConfig{Hz: 1000, Ticks: 5}, nil)
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 5 {
		t.Fatalf("steps = %d, want 5", steps)
	}
}

func TestRunHeadlessQuitAndErrors(t *testing.T) {
	defer goleak.VerifyNone(t)

	quit := func(h HAL) (func() error, error) {
		return func() error { return ErrQuit }, nil
	}
	if err := RunHeadless(context.Background(), Config{}, quit, HeadlessConfig{Hz: 1000}, nil); err != nil {
		t.Fatalf("RunHeadless(ErrQuit) = %v, want nil", err)
	}

	boom := errors.New("boom")
	fail := func(h HAL) (func() error, error) {
		return func() error { return boom }, nil
	}
	if err := RunHeadless(context.Background(), Config{}, fail, HeadlessConfig{Hz: 1000}, nil); !errors.Is(err, boom) {
		t.Fatalf("RunHeadless(step error) = %v, want %v", err, boom)
	}

	noApp := func(h HAL) (func() error, error) { return nil, boom }
	if err := RunHeadless(context.Background(), Config{}, noApp, HeadlessConfig{}, nil); !errors.Is(err, boom) {
		t.Fatalf("RunHeadless(newApp error) = %v, want %v", err, boom)
	}
}

func TestRunHeadlessContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	idle := func(h HAL) (func() error, error) { return func() error { return nil }, nil }
	if err := RunHeadless(ctx, Config{}, idle, HeadlessConfig{Hz: 100}, nil); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("RunHeadless() = %v, want deadline exceeded", err)
	}
}

func TestRunHeadlessSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	paint := func(h HAL) (func() error, error) {
		fb := h.Display().Framebuffer()
		return func() error { fb.ClearRGB(0xFF, 0, 0); return nil }, nil
	}
	if err := RunHeadless(context.Background(), Config{Width: 8, Height: 4}, paint, HeadlessConfig{Hz: 1000, Ticks: 1, Snapshot: path}, nil); err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open snapshot: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 4 {
		t.Fatalf("snapshot bounds = %v, want 8x4", b)
	}
	r, g, b, _ := img.At(3, 2).RGBA()
	if r>>8 != 0xFF || g != 0 || b != 0 {
		t.Fatalf("snapshot pixel = (%d,%d,%d), want red", r>>8, g>>8, b>>8)
	}
}

func TestHeadlessViewportOffset(t *testing.T) {
	var off [2]int
	capture := func(h HAL) (func() error, error) {
		off[0], off[1] = h.Display().Offset()
		return nil, nil
	}
	if err := RunHeadless(context.Background(), Config{Width: 8, Height: 8}, capture, HeadlessConfig{Hz: 1000, Ticks: 1}, nil); err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if off != [2]int{0, 0} {
		t.Fatalf("Offset() = %v, want (0, 0)", off)
	}
}

func TestRunHeadlessLogsDroppedEvents(t *testing.T) {
	defer goleak.VerifyNone(t)

	core, logs := observer.New(zapcore.InfoLevel)
	flood := func(h HAL) (func() error, error) {
		in := h.(*hostHAL).in
		for len(in.ch) > 0 {
			<-in.ch
		}
		for range 3 {
			in.emit(Event{Kind: EventKey, Rune: 'x'})
		}
		return nil, nil
	}
	cfg := Config{Width: 4, Height: 4, EventBuffer: 1}
	if err := RunHeadless(context.Background(), cfg, flood, HeadlessConfig{Hz: 1000, Ticks: 1}, zap.New(core)); err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}

	entries := logs.FilterMessage("runner stopped").All()
	if len(entries) != 1 {
		t.Fatalf("got %d runner stopped entries, want 1", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["runner"] != "headless" || ctx["dropped_events"] != uint64(2) {
		t.Fatalf("context = %v, want headless runner with 2 dropped events", ctx)
	}
}

func TestLogicalSize(t *testing.T) {
	tests := []struct {
		name       string
		outW, outH int
		wantW      int
		wantH      int
	}{
		{"exact", 800, 800, 800, 800},
		{"smaller window", 600, 500, 600, 500},
		{"double", 1600, 1600, 800, 800},
		{"double with margin", 1700, 1600, 850, 800},
		{"limited by height", 2400, 1200, 1600, 800},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, h := logicalSize(tc.outW, tc.outH, 800, 800)
			if w != tc.wantW || h != tc.wantH {
				t.Fatalf("logicalSize(%d, %d) = %dx%d, want %dx%d", tc.outW, tc.outH, w, h, tc.wantW, tc.wantH)
			}
		})
	}
}
