package hal

import "testing"

func TestRGB565RoundTrip(t *testing.T) {
	tests := []struct {
		r, g, b uint8
	}{
		{0, 0, 0},
		{0xFF, 0xFF, 0xFF},
		{0xFF, 0, 0},
		{0, 0xFF, 0},
		{0, 0, 0xFF},
	}
	for _, tc := range tests {
		r, g, b := RGB888(RGB565(tc.r, tc.g, tc.b))
		if r != tc.r || g != tc.g || b != tc.b {
			t.Fatalf("RGB888(RGB565(%d,%d,%d)) = (%d,%d,%d)", tc.r, tc.g, tc.b, r, g, b)
		}
	}
}

func TestSnapshotRGBAReusesBuffer(t *testing.T) {
	fb := NewFramebuffer(4, 2)
	fb.ClearRGB(0, 0xFF, 0)
	img := SnapshotRGBA(fb, nil)
	again := SnapshotRGBA(fb, img)
	if img != again {
		t.Fatal("SnapshotRGBA allocated a new image for matching bounds")
	}
	if p := img.RGBAAt(3, 1); p.G != 0xFF || p.R != 0 || p.A != 0xFF {
		t.Fatalf("pixel = %v, want opaque green", p)
	}
}

func TestPresentAdvancesGeneration(t *testing.T) {
	fb := newHostFramebuffer(2, 2)
	if g := fb.generation(); g != 0 {
		t.Fatalf("generation = %d, want 0", g)
	}
	for range 3 {
		if err := fb.Present(); err != nil {
			t.Fatal(err)
		}
	}
	if g := fb.generation(); g != 3 {
		t.Fatalf("generation = %d, want 3", g)
	}
}
