package hal

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// RGB565 packs an 8-bit-per-channel colour into 16 bits.
func RGB565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

// RGB888 expands a 16-bit colour to 8 bits per channel.
func RGB888(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// SnapshotRGBA converts an RGB565 framebuffer to RGBA, reusing dst when its
// bounds match.
func SnapshotRGBA(fb Framebuffer, dst *image.RGBA) *image.RGBA {
	w, h := fb.Width(), fb.Height()
	if dst == nil || dst.Bounds().Dx() != w || dst.Bounds().Dy() != h {
		dst = image.NewRGBA(image.Rect(0, 0, w, h))
	}

	var src []byte
	if hf, ok := fb.(*hostFramebuffer); ok {
		src = make([]byte, len(hf.buf))
		hf.snapshotRGB565(src)
	} else {
		src = fb.Buffer()
	}

	stride := fb.StrideBytes()
	for y := 0; y < h; y++ {
		row := y * stride
		for x := 0; x < w; x++ {
			off := row + x*2
			if off+1 >= len(src) {
				return dst
			}
			r, g, b := RGB888(uint16(src[off]) | uint16(src[off+1])<<8)
			j := y*dst.Stride + x*4
			dst.Pix[j+0] = r
			dst.Pix[j+1] = g
			dst.Pix[j+2] = b
			dst.Pix[j+3] = 0xFF
		}
	}
	return dst
}

// WritePNG saves the framebuffer contents to path.
func WritePNG(fb Framebuffer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := png.Encode(f, SnapshotRGBA(fb, nil)); err != nil {
		f.Close()
		return fmt.Errorf("snapshot: encode %s: %w", path, err)
	}
	return f.Close()
}
