package stdimg

import (
	"image"
	"math"
)

// Normalize stretches per-channel extremes to the full [0,255] range.
func Normalize(src *image.NRGBA) *image.NRGBA {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	var min, max [3]float64
	for c := 0; c < 3; c++ {
		min[c] = 255
		max[c] = 0
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := src.PixOffset(x, y)
			for c := 0; c < 3; c++ {
				v := float64(src.Pix[i+c])
				if v < min[c] {
					min[c] = v
				}
				if v > max[c] {
					max[c] = v
				}
			}
		}
	}
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := src.PixOffset(x, y)
			for c := 0; c < 3; c++ {
				v := float64(src.Pix[i+c])
				if max[c] > min[c] {
					v = (v - min[c]) / (max[c] - min[c]) * 255.0
				}
				out.Pix[i+c] = uint8(clampFloatToUint8(v))
			}
			out.Pix[i+3] = src.Pix[i+3]
		}
	}
	return out
}

// AutoLevel is the automatic level normalization used by the autolevel
// command; it is Normalize under the name the command set uses.
func AutoLevel(src *image.NRGBA) *image.NRGBA {
	return Normalize(src)
}

// AutoGamma estimates a gamma that maps the mean luminance to middle gray and
// applies it. Images that are already entirely black or white pass through
// unchanged.
func AutoGamma(src *image.NRGBA) *image.NRGBA {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	n := b.Dx() * b.Dy()
	if n <= 0 {
		return CloneNRGBA(src)
	}
	mean := 0.0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := src.PixOffset(x, y)
			mean += luminance709(src.Pix[i+0], src.Pix[i+1], src.Pix[i+2]) / 255.0
		}
	}
	mean /= float64(n)
	if mean <= 0 || mean >= 1 {
		return CloneNRGBA(src)
	}
	// mean^gamma = 0.5
	gamma := math.Log(0.5) / math.Log(mean)
	if math.IsNaN(gamma) || math.IsInf(gamma, 0) {
		return CloneNRGBA(src)
	}
	if gamma < 0.1 {
		gamma = 0.1
	}
	if gamma > 10 {
		gamma = 10
	}
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := src.PixOffset(x, y)
			for c := 0; c < 3; c++ {
				v := float64(src.Pix[i+c]) / 255.0
				out.Pix[i+c] = uint8(clampFloatToUint8(math.Pow(v, gamma) * 255.0))
			}
			out.Pix[i+3] = src.Pix[i+3]
		}
	}
	return out
}
