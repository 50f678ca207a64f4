// Command bimp is a batch image manipulation program: a set of independent
// single-effect commands (auto-thresholding, auto-leveling, vintage toning,
// captioning, kaleidoscope tiling) applied to one image per invocation.
//
// Usage:
//
//	bimp autothresh -method otsu photo.jpg out.png
//	bimp autothresh -method sahoo -power 2 -graph save scan.png out.png
//	bimp vintage -sepia 0.8 -border 20 photo.jpg out.jpg
//	bimp caption -text "hello" -gravity south photo.jpg out.jpg
package main

import (
	"os"

	"github.com/Fepozopo/bimp/pkg/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
