package stdimg

import (
	"fmt"
	"image"
	"math"
)

// Kaleidoscope mirrors a pie wedge of the image around its center to produce
// a mandala-like tiling. wedges is the number of sectors (must be >= 2) and
// angleDeg rotates the source wedge before tiling. Every output pixel is
// inverse-mapped into the source wedge and bilinearly sampled.
func Kaleidoscope(src *image.NRGBA, wedges int, angleDeg float64) (*image.NRGBA, error) {
	if src == nil {
		return nil, fmt.Errorf("source image is nil")
	}
	if wedges < 2 {
		return nil, fmt.Errorf("wedges must be >= 2, got %d", wedges)
	}
	b := src.Bounds()
	w := b.Dx()
	h := b.Dy()
	cx := float64(b.Min.X) + float64(w)/2.0
	cy := float64(b.Min.Y) + float64(h)/2.0

	wedge := 2 * math.Pi / float64(wedges)
	offset := angleDeg * math.Pi / 180.0

	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			r := math.Hypot(dx, dy)
			theta := math.Atan2(dy, dx) - offset

			// fold the angle into [0, wedge), mirroring every other sector
			theta = math.Mod(theta, 2*math.Pi)
			if theta < 0 {
				theta += 2 * math.Pi
			}
			sector := math.Floor(theta / wedge)
			theta -= sector * wedge
			if int(sector)%2 == 1 {
				theta = wedge - theta
			}
			theta += offset

			sx := cx + r*math.Cos(theta)
			sy := cy + r*math.Sin(theta)
			rf, gf, bf, af := sampleBilinear(src, sx, sy)
			i := out.PixOffset(x, y)
			out.Pix[i+0] = uint8(clampFloatToUint8(rf))
			out.Pix[i+1] = uint8(clampFloatToUint8(gf))
			out.Pix[i+2] = uint8(clampFloatToUint8(bf))
			out.Pix[i+3] = uint8(clampFloatToUint8(af))
		}
	}
	return out, nil
}
