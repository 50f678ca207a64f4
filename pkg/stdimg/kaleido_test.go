package stdimg

import (
	"image/color"
	"testing"
)

func TestKaleidoscopeRejectsBadWedges(t *testing.T) {
	src := makeSolid(8, 8, color.NRGBA{50, 50, 50, 255})
	if _, err := Kaleidoscope(src, 1, 0); err == nil {
		t.Fatalf("expected error for wedges < 2")
	}
	if _, err := Kaleidoscope(nil, 4, 0); err == nil {
		t.Fatalf("expected error for nil source")
	}
}

func TestKaleidoscopeSolidImageStaysSolid(t *testing.T) {
	src := makeSolid(16, 16, color.NRGBA{90, 120, 30, 255})
	out, err := Kaleidoscope(src, 6, 15)
	if err != nil {
		t.Fatalf("Kaleidoscope failed: %v", err)
	}
	if out.Bounds() != src.Bounds() {
		t.Fatalf("bounds changed: %v", out.Bounds())
	}
	for i := 0; i < len(out.Pix); i += 4 {
		if out.Pix[i] != 90 || out.Pix[i+1] != 120 || out.Pix[i+2] != 30 {
			t.Fatalf("solid image changed at byte %d: %d %d %d", i, out.Pix[i], out.Pix[i+1], out.Pix[i+2])
		}
	}
}

func TestKaleidoscopeIsMirrorSymmetric(t *testing.T) {
	// asymmetric source: one bright quadrant
	src := makeSolid(32, 32, color.NRGBA{20, 20, 20, 255})
	for y := 0; y < 16; y++ {
		for x := 16; x < 32; x++ {
			i := src.PixOffset(x, y)
			src.Pix[i+0] = 230
			src.Pix[i+1] = 230
			src.Pix[i+2] = 230
		}
	}
	out, err := Kaleidoscope(src, 4, 0)
	if err != nil {
		t.Fatalf("Kaleidoscope failed: %v", err)
	}
	// with 4 wedges and no rotation the result is mirror symmetric about
	// the horizontal axis through the center at (16,16)
	for _, p := range [][2]int{{20, 4}, {25, 9}, {4, 12}} {
		x, y := p[0], p[1]
		yi := 32 - y
		a := out.PixOffset(x, y)
		b := out.PixOffset(x, yi)
		if d := int(out.Pix[a]) - int(out.Pix[b]); d < -3 || d > 3 {
			t.Fatalf("pixels (%d,%d)=%d and (%d,%d)=%d not mirror symmetric", x, y, out.Pix[a], x, yi, out.Pix[b])
		}
	}
}
