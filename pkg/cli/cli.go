// Package cli wires the bimp command set: every command is a thin wrapper
// that parses and validates its flags, loads the input image, runs one
// operation through pkg/stdimg (or the threshold selector in pkg/autothresh),
// and saves the output image.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Version is the build version; release builds inject it via -ldflags.
var Version = "0.1.0"

type command struct {
	name    string
	summary string
	run     func(log zerolog.Logger, args []string) error
}

// commands is the dispatch table. Each entry is one photographic effect.
var commands = []command{
	{"autothresh", "binarize at an automatically selected histogram threshold (otsu or sahoo)", runAutothresh},
	{"autolevel", "stretch levels to full range, optionally with auto-gamma", runAutolevel},
	{"grayscale", "convert to Rec.709 luminance", runGrayscale},
	{"negate", "invert colors", runNegate},
	{"vintage", "sepia tint, vignette and border", runVintage},
	{"caption", "draw text onto the image", runCaption},
	{"kaleido", "kaleidoscope/mandala wedge tiling", runKaleido},
	{"update", "self-update from the latest GitHub release", runUpdate},
}

func usage(w *os.File) {
	fmt.Fprintf(w, "Usage: bimp <command> [flags] <input> <output>\n\nCommands:\n")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-11s %s\n", c.name, c.summary)
	}
	fmt.Fprintf(w, "  %-11s %s\n", "version", "print the version")
	fmt.Fprintf(w, "\nRun 'bimp <command> -h' for command flags.\n")
}

// Run executes one invocation and returns the process exit code.
func Run(args []string) int {
	LoadEnv()
	log := NewLogger()

	if len(args) == 0 {
		usage(os.Stderr)
		return 2
	}
	name := args[0]
	switch name {
	case "help", "-h", "--help":
		usage(os.Stdout)
		return 0
	case "version", "-version", "--version":
		fmt.Println(Version)
		return 0
	}
	for _, c := range commands {
		if c.name != name {
			continue
		}
		if err := c.run(log, args[1:]); err != nil {
			log.Error().Err(err).Str("command", name).Msg("command failed")
			return 1
		}
		return 0
	}
	fmt.Fprintf(os.Stderr, "unknown command %q\n\n", name)
	usage(os.Stderr)
	return 2
}
