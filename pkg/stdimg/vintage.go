package stdimg

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// sepiaTarget is the warm mid-brown the sepia blend moves toward.
const sepiaTarget = "#704214"

// Sepia tints the image toward a warm brown by blending in Lab space.
// strength is 0..1 where 0 returns a copy of the original and 1 fully
// replaces chroma with the target tone. Fully transparent pixels pass
// through untouched.
func Sepia(src *image.NRGBA, strength float64) *image.NRGBA {
	if src == nil {
		return nil
	}
	if strength <= 0 {
		return CloneNRGBA(src)
	}
	if strength > 1 {
		strength = 1
	}
	target, _ := colorful.Hex(sepiaTarget)
	tl, ta, tb := target.Lab()

	b := src.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := src.PixOffset(x, y)
			alpha := src.Pix[i+3]
			if alpha == 0 {
				copy(out.Pix[i:i+4], src.Pix[i:i+4])
				continue
			}
			c := colorful.Color{
				R: float64(src.Pix[i+0]) / 255.0,
				G: float64(src.Pix[i+1]) / 255.0,
				B: float64(src.Pix[i+2]) / 255.0,
			}
			l, a, bb := c.Lab()
			// keep the pixel's lightness, pull chroma toward the target
			blended := colorful.Lab(
				(1-strength*0.3)*l+strength*0.3*tl,
				(1-strength)*a+strength*ta,
				(1-strength)*bb+strength*tb,
			).Clamped()
			r8, g8, b8 := blended.RGB255()
			out.Pix[i+0] = r8
			out.Pix[i+1] = g8
			out.Pix[i+2] = b8
			out.Pix[i+3] = alpha
		}
	}
	return out
}

// Vignette darkens pixels radially from the image center. strength is 0..1
// where 1 darkens the corners fully. The falloff is a normalized gaussian
// mask: zero at the center, one at half the image diagonal.
func Vignette(src *image.NRGBA, strength float64) *image.NRGBA {
	if src == nil {
		return nil
	}
	if strength <= 0 {
		return CloneNRGBA(src)
	}
	if strength > 1 {
		strength = 1
	}
	b := src.Bounds()
	w := b.Dx()
	h := b.Dy()
	cx := float64(b.Min.X) + float64(w)/2.0
	cy := float64(b.Min.Y) + float64(h)/2.0
	radius := math.Hypot(float64(w), float64(h)) / 2.0
	sigma := radius / 2.0
	normAtRadius := 1 - math.Exp(-0.5*(radius*radius)/(sigma*sigma))

	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := src.PixOffset(x, y)
			d := math.Hypot(float64(x)-cx, float64(y)-cy)
			mask := (1 - math.Exp(-0.5*(d*d)/(sigma*sigma))) / normAtRadius
			if mask > 1 {
				mask = 1
			}
			factor := 1.0 - mask*strength
			out.Pix[i+0] = uint8(clampFloatToUint8(float64(src.Pix[i+0]) * factor))
			out.Pix[i+1] = uint8(clampFloatToUint8(float64(src.Pix[i+1]) * factor))
			out.Pix[i+2] = uint8(clampFloatToUint8(float64(src.Pix[i+2]) * factor))
			out.Pix[i+3] = src.Pix[i+3]
		}
	}
	return out
}

// Border surrounds the image with a solid frame of the given width in pixels.
func Border(src *image.NRGBA, width int, col color.NRGBA) *image.NRGBA {
	if src == nil {
		return nil
	}
	if width <= 0 {
		return CloneNRGBA(src)
	}
	b := src.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx()+2*width, b.Dy()+2*width))
	draw.Draw(out, out.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
	draw.Draw(out, image.Rect(width, width, width+b.Dx(), width+b.Dy()), src, b.Min, draw.Src)
	return out
}
