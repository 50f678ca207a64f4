package cli

import (
	"flag"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Fepozopo/bimp/pkg/autothresh"
	"github.com/Fepozopo/bimp/pkg/stdimg"
)

// inOutArgs returns the two positional arguments every effect command takes.
func inOutArgs(fs *flag.FlagSet) (string, string, error) {
	if fs.NArg() != 2 {
		return "", "", fmt.Errorf("expected <input> <output> arguments, got %d", fs.NArg())
	}
	return fs.Arg(0), fs.Arg(1), nil
}

func runAutothresh(log zerolog.Logger, args []string) error {
	fs := flag.NewFlagSet("autothresh", flag.ContinueOnError)
	methodName := fs.String("method", "otsu", "selection criterion: otsu or sahoo")
	power := fs.Float64("power", autothresh.DefaultPower, "entropy order for sahoo (> 0)")
	graph := fs.String("graph", "none", "histogram chart: none, save or view")
	graphFile := fs.String("graphfile", "", "chart path (default: <output>_hist.png)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	in, out, err := inOutArgs(fs)
	if err != nil {
		return err
	}
	// validate everything before touching pixels
	method, err := autothresh.ParseMethod(*methodName)
	if err != nil {
		return err
	}
	cfg := autothresh.Config{Method: method, Power: *power}
	if err := cfg.Validate(); err != nil {
		return err
	}
	switch *graph {
	case "none", "save", "view":
	default:
		return fmt.Errorf("invalid -graph mode %q (want none, save or view)", *graph)
	}

	img, _, err := stdimg.LoadImage(in)
	if err != nil {
		return err
	}
	hist := autothresh.HistogramOf(img)
	res, err := autothresh.Select(hist, cfg)
	if err != nil {
		return err
	}
	log.Info().
		Str("method", method.String()).
		Int("level", res.Level).
		Float64("percent", res.Percent).
		Msg("threshold selected")

	if err := stdimg.SaveImage(stdimg.ThresholdPercent(img, res.Percent), out); err != nil {
		return err
	}

	if *graph == "none" {
		return nil
	}
	chartPath := *graphFile
	if chartPath == "" {
		ext := filepath.Ext(out)
		chartPath = strings.TrimSuffix(out, ext) + "_hist.png"
	}
	chart := autothresh.RenderChart(hist, res, 512, 256)
	if err := stdimg.SaveImage(chart, chartPath); err != nil {
		return err
	}
	log.Debug().Str("path", chartPath).Msg("histogram chart written")
	if *graph == "view" {
		return openViewer(chartPath)
	}
	return nil
}

func runAutolevel(log zerolog.Logger, args []string) error {
	fs := flag.NewFlagSet("autolevel", flag.ContinueOnError)
	gamma := fs.Bool("gamma", false, "also apply automatic gamma correction")
	if err := fs.Parse(args); err != nil {
		return err
	}
	in, out, err := inOutArgs(fs)
	if err != nil {
		return err
	}
	img, _, err := stdimg.LoadImage(in)
	if err != nil {
		return err
	}
	img = stdimg.AutoLevel(img)
	if *gamma {
		img = stdimg.AutoGamma(img)
	}
	return stdimg.SaveImage(img, out)
}

func runGrayscale(log zerolog.Logger, args []string) error {
	fs := flag.NewFlagSet("grayscale", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	in, out, err := inOutArgs(fs)
	if err != nil {
		return err
	}
	img, _, err := stdimg.LoadImage(in)
	if err != nil {
		return err
	}
	return stdimg.SaveImage(stdimg.Grayscale(img), out)
}

func runNegate(log zerolog.Logger, args []string) error {
	fs := flag.NewFlagSet("negate", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	in, out, err := inOutArgs(fs)
	if err != nil {
		return err
	}
	img, _, err := stdimg.LoadImage(in)
	if err != nil {
		return err
	}
	return stdimg.SaveImage(stdimg.Negate(img), out)
}

func runVintage(log zerolog.Logger, args []string) error {
	fs := flag.NewFlagSet("vintage", flag.ContinueOnError)
	sepia := fs.Float64("sepia", 0.8, "sepia strength 0..1")
	vignette := fs.Float64("vignette", 0.5, "vignette strength 0..1")
	border := fs.Int("border", 0, "border width in pixels")
	borderColor := fs.String("bordercolor", "ivory", "border color (name or #rrggbb)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	in, out, err := inOutArgs(fs)
	if err != nil {
		return err
	}
	if *sepia < 0 || *sepia > 1 {
		return fmt.Errorf("sepia strength %g out of [0,1]", *sepia)
	}
	if *vignette < 0 || *vignette > 1 {
		return fmt.Errorf("vignette strength %g out of [0,1]", *vignette)
	}
	if *border < 0 {
		return fmt.Errorf("border width must be >= 0, got %d", *border)
	}
	col, err := stdimg.ParseColor(*borderColor)
	if err != nil {
		return err
	}

	img, _, err := stdimg.LoadImage(in)
	if err != nil {
		return err
	}
	img = stdimg.Sepia(img, *sepia)
	img = stdimg.Vignette(img, *vignette)
	if *border > 0 {
		img = stdimg.Border(img, *border, col)
	}
	return stdimg.SaveImage(img, out)
}

func runCaption(log zerolog.Logger, args []string) error {
	fs := flag.NewFlagSet("caption", flag.ContinueOnError)
	text := fs.String("text", "", "caption text (required)")
	fontPath := fs.String("font", defaultFont(), "TTF/OTF font path (empty: built-in bitmap face)")
	size := fs.Float64("size", 24, "font size in points")
	gravityName := fs.String("gravity", "south", "anchor: north, south, center, northwest, northeast, southwest, southeast")
	colorName := fs.String("color", "white", "text color (name or #rrggbb)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	in, out, err := inOutArgs(fs)
	if err != nil {
		return err
	}
	if *text == "" {
		return fmt.Errorf("-text is required")
	}
	if *size <= 0 {
		return fmt.Errorf("font size must be > 0, got %g", *size)
	}
	gravity, err := stdimg.ParseGravity(*gravityName)
	if err != nil {
		return err
	}
	col, err := stdimg.ParseColor(*colorName)
	if err != nil {
		return err
	}

	img, _, err := stdimg.LoadImage(in)
	if err != nil {
		return err
	}
	img, err = stdimg.Caption(img, *text, *fontPath, *size, gravity, col)
	if err != nil {
		return err
	}
	return stdimg.SaveImage(img, out)
}

func runKaleido(log zerolog.Logger, args []string) error {
	fs := flag.NewFlagSet("kaleido", flag.ContinueOnError)
	wedges := fs.Int("wedges", 8, "number of mirror sectors (>= 2)")
	angle := fs.Float64("angle", 0, "initial rotation in degrees")
	if err := fs.Parse(args); err != nil {
		return err
	}
	in, out, err := inOutArgs(fs)
	if err != nil {
		return err
	}
	if *wedges < 2 {
		return fmt.Errorf("wedges must be >= 2, got %d", *wedges)
	}
	img, _, err := stdimg.LoadImage(in)
	if err != nil {
		return err
	}
	img, err = stdimg.Kaleidoscope(img, *wedges, *angle)
	if err != nil {
		return err
	}
	return stdimg.SaveImage(img, out)
}

// openViewer hands the file to the platform's default image viewer.
func openViewer(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open viewer for %s: %w", path, err)
	}
	return nil
}
