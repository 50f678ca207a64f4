package stdimg

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	src := makeSolid(5, 7, color.NRGBA{10, 200, 40, 255})
	if err := SaveImage(src, path); err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}
	img, format, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if format != "png" {
		t.Fatalf("format = %q, want png", format)
	}
	if img.Bounds().Dx() != 5 || img.Bounds().Dy() != 7 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	i := img.PixOffset(2, 3)
	if img.Pix[i] != 10 || img.Pix[i+1] != 200 || img.Pix[i+2] != 40 {
		t.Fatalf("pixel changed in round trip: %d %d %d", img.Pix[i], img.Pix[i+1], img.Pix[i+2])
	}
}

func TestLoadImageMissingFile(t *testing.T) {
	if _, _, err := LoadImage("/nonexistent/input.png"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadImageNotAnImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "garbage.png")
	if err := writeFile(path, []byte("not an image at all")); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if _, _, err := LoadImage(path); err == nil {
		t.Fatalf("expected decode error for garbage input")
	}
}
