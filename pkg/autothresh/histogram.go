// Package autothresh selects a global bi-level threshold for a grayscale
// image from its 256-bucket intensity histogram. Two selection criteria are
// implemented: Otsu's between-class variance maximization and Sahoo's
// generalized-entropy maximization. Both are deterministic single-pass scans
// over the candidate levels; neither depends on pixel data beyond the
// histogram.
package autothresh

import (
	"fmt"
	"image"
)

// Levels is the number of intensity buckets in an 8-bit histogram.
const Levels = 256

// Histogram holds per-intensity pixel counts for an 8-bit grayscale image.
// Index is the intensity level (0 = black, 255 = white).
type Histogram [Levels]int

// Normalized holds per-intensity probabilities (count / total). For any
// non-empty histogram the probabilities sum to 1 within floating-point
// tolerance.
type Normalized [Levels]float64

// HistogramOf builds an intensity histogram from any image. Color images are
// reduced to Rec.709 luminance, matching the grayscale conversion the image
// backend applies before thresholding.
func HistogramOf(img image.Image) Histogram {
	var h Histogram
	if img == nil {
		return h
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			// 16-bit channels; luminance back down to 0..255
			lum := 0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(bl)
			v := int(lum / 257.0)
			if v < 0 {
				v = 0
			}
			if v > Levels-1 {
				v = Levels - 1
			}
			h[v]++
		}
	}
	return h
}

// Total returns the number of pixels counted in the histogram.
func (h Histogram) Total() int {
	n := 0
	for _, c := range h {
		n += c
	}
	return n
}

// Peak returns the largest single bucket count.
func (h Histogram) Peak() int {
	max := 0
	for _, c := range h {
		if c > max {
			max = c
		}
	}
	return max
}

// lowestPopulated returns the lowest level with a non-zero count, or -1 for
// an empty histogram.
func (h Histogram) lowestPopulated() int {
	for v, c := range h {
		if c > 0 {
			return v
		}
	}
	return -1
}

// Normalize converts counts into probabilities. An empty histogram (zero
// total) is an error: there is nothing to threshold.
func (h Histogram) Normalize() (Normalized, error) {
	var p Normalized
	total := h.Total()
	if total <= 0 {
		return p, fmt.Errorf("histogram contains no pixels")
	}
	inv := 1.0 / float64(total)
	for v, c := range h {
		p[v] = float64(c) * inv
	}
	return p, nil
}
