package stdimg

import "image"

// Grayscale converts the image to Rec.709 luminance, preserving alpha.
func Grayscale(src *image.NRGBA) *image.NRGBA {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := src.PixOffset(x, y)
			lum := uint8(clampFloatToUint8(luminance709(src.Pix[i+0], src.Pix[i+1], src.Pix[i+2])))
			out.Pix[i+0] = lum
			out.Pix[i+1] = lum
			out.Pix[i+2] = lum
			out.Pix[i+3] = src.Pix[i+3]
		}
	}
	return out
}

// ThresholdPercent applies a binary two-level threshold on luminance at the
// given percentage of full scale (0..100). Pixels at or above the cut become
// white, the rest black; alpha is preserved. This is the output half of the
// auto-threshold contract: the selector hands back a percentage and this
// applies it.
func ThresholdPercent(src *image.NRGBA, percent float64) *image.NRGBA {
	if src == nil {
		return nil
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	cut := percent * 255.0 / 100.0
	b := src.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := src.PixOffset(x, y)
			lum := luminance709(src.Pix[i+0], src.Pix[i+1], src.Pix[i+2])
			v := uint8(0)
			if lum >= cut {
				v = 255
			}
			out.Pix[i+0] = v
			out.Pix[i+1] = v
			out.Pix[i+2] = v
			out.Pix[i+3] = src.Pix[i+3]
		}
	}
	return out
}

// Negate inverts the color channels, leaving alpha untouched.
func Negate(src *image.NRGBA) *image.NRGBA {
	if src == nil {
		return nil
	}
	out := CloneNRGBA(src)
	for i := 0; i < len(out.Pix); i += 4 {
		out.Pix[i+0] = 255 - out.Pix[i+0]
		out.Pix[i+1] = 255 - out.Pix[i+1]
		out.Pix[i+2] = 255 - out.Pix[i+2]
	}
	return out
}
