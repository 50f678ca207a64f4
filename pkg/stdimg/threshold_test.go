package stdimg

import (
	"image"
	"image/color"
	"testing"
)

func makeSolid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = c.A
		}
	}
	return img
}

func TestThresholdPercentSplitsImage(t *testing.T) {
	// left half dark (40), right half bright (200)
	src := makeSolid(8, 4, color.NRGBA{40, 40, 40, 255})
	for y := 0; y < 4; y++ {
		for x := 4; x < 8; x++ {
			i := src.PixOffset(x, y)
			src.Pix[i+0] = 200
			src.Pix[i+1] = 200
			src.Pix[i+2] = 200
		}
	}
	out := ThresholdPercent(src, 50)
	if out == nil {
		t.Fatalf("ThresholdPercent returned nil")
	}
	li := out.PixOffset(0, 0)
	ri := out.PixOffset(7, 0)
	if out.Pix[li] != 0 {
		t.Fatalf("dark pixel became %d, want 0", out.Pix[li])
	}
	if out.Pix[ri] != 255 {
		t.Fatalf("bright pixel became %d, want 255", out.Pix[ri])
	}
	if out.Pix[li+3] != 255 {
		t.Fatalf("alpha not preserved")
	}
}

func TestThresholdPercentClampsRange(t *testing.T) {
	src := makeSolid(2, 2, color.NRGBA{128, 128, 128, 255})
	// negative percent: everything at or above 0 goes white
	out := ThresholdPercent(src, -10)
	if out.Pix[0] != 255 {
		t.Fatalf("percent below range should make mid-gray white, got %d", out.Pix[0])
	}
	// above-range percent: only pure white would pass
	out = ThresholdPercent(src, 150)
	if out.Pix[0] != 0 {
		t.Fatalf("percent above range should make mid-gray black, got %d", out.Pix[0])
	}
}

func TestGrayscaleIsNeutral(t *testing.T) {
	src := makeSolid(3, 3, color.NRGBA{200, 50, 10, 255})
	out := Grayscale(src)
	i := out.PixOffset(1, 1)
	if out.Pix[i] != out.Pix[i+1] || out.Pix[i+1] != out.Pix[i+2] {
		t.Fatalf("grayscale channels differ: %d %d %d", out.Pix[i], out.Pix[i+1], out.Pix[i+2])
	}
	if out.Pix[i] == 0 || out.Pix[i] == 255 {
		t.Fatalf("unexpected luminance %d for a mid-tone color", out.Pix[i])
	}
}

func TestNegateRoundTrips(t *testing.T) {
	src := makeSolid(2, 2, color.NRGBA{10, 100, 250, 200})
	out := Negate(Negate(src))
	for i := 0; i < len(src.Pix); i++ {
		if out.Pix[i] != src.Pix[i] {
			t.Fatalf("double negate changed pixel byte %d: %d != %d", i, out.Pix[i], src.Pix[i])
		}
	}
}
