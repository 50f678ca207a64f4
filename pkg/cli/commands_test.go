package cli

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Fepozopo/bimp/pkg/stdimg"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

// writeBimodal writes a half-dark half-bright test image and returns its path.
func writeBimodal(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			v := uint8(64)
			if x >= 8 {
				v = 192
			}
			img.SetNRGBA(x, y, color.NRGBA{v, v, v, 255})
		}
	}
	path := filepath.Join(dir, "in.png")
	if err := stdimg.SaveImage(img, path); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestAutothreshEndToEnd(t *testing.T) {
	dir := t.TempDir()
	in := writeBimodal(t, dir)
	out := filepath.Join(dir, "out.png")

	if err := runAutothresh(testLogger(), []string{"-method", "otsu", "-graph", "save", in, out}); err != nil {
		t.Fatalf("autothresh failed: %v", err)
	}
	img, _, err := stdimg.LoadImage(out)
	if err != nil {
		t.Fatalf("output not readable: %v", err)
	}
	// result must be strictly two-level
	for i := 0; i < len(img.Pix); i += 4 {
		if v := img.Pix[i]; v != 0 && v != 255 {
			t.Fatalf("output pixel %d not binary: %d", i/4, v)
		}
	}
	chart := filepath.Join(dir, "out_hist.png")
	if _, err := os.Stat(chart); err != nil {
		t.Fatalf("chart not written: %v", err)
	}
}

func TestAutothreshSahoo(t *testing.T) {
	dir := t.TempDir()
	in := writeBimodal(t, dir)
	out := filepath.Join(dir, "out.png")
	if err := runAutothresh(testLogger(), []string{"-method", "sahoo", "-power", "2", in, out}); err != nil {
		t.Fatalf("sahoo autothresh failed: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("output not written: %v", err)
	}
}

func TestAutothreshRejectsBadArgs(t *testing.T) {
	dir := t.TempDir()
	in := writeBimodal(t, dir)
	out := filepath.Join(dir, "out.png")

	cases := [][]string{
		{"-method", "triangle", in, out},
		{"-method", "sahoo", "-power", "-1", in, out},
		{"-graph", "sometimes", in, out},
		{in}, // missing output
	}
	for _, args := range cases {
		if err := runAutothresh(testLogger(), args); err == nil {
			t.Fatalf("expected error for args %v", args)
		}
	}
	// validation must fire before any output is produced
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("output written despite invalid arguments")
	}
}

func TestAutothreshMissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.png")
	err := runAutothresh(testLogger(), []string{filepath.Join(dir, "missing.png"), out})
	if err == nil {
		t.Fatalf("expected error for missing input file")
	}
}

func TestEffectCommandsEndToEnd(t *testing.T) {
	dir := t.TempDir()
	in := writeBimodal(t, dir)

	cases := []struct {
		name string
		run  func(zerolog.Logger, []string) error
		args []string
	}{
		{"autolevel", runAutolevel, []string{"-gamma"}},
		{"grayscale", runGrayscale, nil},
		{"negate", runNegate, nil},
		{"vintage", runVintage, []string{"-sepia", "0.7", "-border", "4"}},
		{"caption", runCaption, []string{"-text", "test", "-color", "black"}},
		{"kaleido", runKaleido, []string{"-wedges", "6"}},
	}
	for _, tc := range cases {
		out := filepath.Join(dir, tc.name+".png")
		args := append(append([]string{}, tc.args...), in, out)
		if err := tc.run(testLogger(), args); err != nil {
			t.Fatalf("%s failed: %v", tc.name, err)
		}
		if _, err := os.Stat(out); err != nil {
			t.Fatalf("%s wrote no output: %v", tc.name, err)
		}
	}
}

func TestRunDispatch(t *testing.T) {
	if code := Run([]string{"version"}); code != 0 {
		t.Fatalf("version exited %d", code)
	}
	if code := Run([]string{"no-such-command"}); code != 2 {
		t.Fatalf("unknown command exited %d, want 2", code)
	}
	if code := Run(nil); code != 2 {
		t.Fatalf("empty invocation exited %d, want 2", code)
	}
	// command errors map to exit code 1
	if code := Run([]string{"grayscale", "/nonexistent.png", "/tmp/never.png"}); code != 1 {
		t.Fatalf("failing command exited %d, want 1", code)
	}
}
