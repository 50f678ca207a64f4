package stdimg

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"
)

// ToNRGBA converts any image.Image to *image.NRGBA (non-premultiplied RGBA).
func ToNRGBA(src image.Image) *image.NRGBA {
	if src == nil {
		return nil
	}
	if n, ok := src.(*image.NRGBA); ok {
		// return a copy to avoid modifying the original
		out := image.NewNRGBA(n.Rect)
		copy(out.Pix, n.Pix)
		return out
	}
	b := src.Bounds()
	out := image.NewNRGBA(b)
	idx := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, b_, a := src.At(x, y).RGBA()
			// channels are 16-bit [0, 65535]; convert to 8-bit
			out.Pix[idx+0] = uint8(r >> 8)
			out.Pix[idx+1] = uint8(g >> 8)
			out.Pix[idx+2] = uint8(b_ >> 8)
			out.Pix[idx+3] = uint8(a >> 8)
			idx += 4
		}
	}
	return out
}

// CloneNRGBA returns a copy of the provided image.NRGBA
func CloneNRGBA(src *image.NRGBA) *image.NRGBA {
	if src == nil {
		return nil
	}
	out := image.NewNRGBA(src.Rect)
	copy(out.Pix, src.Pix)
	return out
}

// clampFloatToUint8 clamps v to [0,255].
func clampFloatToUint8(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// clampInt clamps v to [lo,hi]
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// luminance709 returns the Rec.709 luminance of 8-bit channels, in 0..255.
func luminance709(r, g, b uint8) float64 {
	return 0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)
}

// sampleBilinear samples src at fractional coordinates with edge clamping.
func sampleBilinear(src *image.NRGBA, fx, fy float64) (r, g, b, a float64) {
	bnd := src.Bounds()
	x0 := clampInt(int(fx), bnd.Min.X, bnd.Max.X-1)
	y0 := clampInt(int(fy), bnd.Min.Y, bnd.Max.Y-1)
	x1 := clampInt(x0+1, bnd.Min.X, bnd.Max.X-1)
	y1 := clampInt(y0+1, bnd.Min.Y, bnd.Max.Y-1)
	tx := fx - float64(x0)
	ty := fy - float64(y0)
	if tx < 0 {
		tx = 0
	}
	if ty < 0 {
		ty = 0
	}

	lerp := func(c00, c10, c01, c11 uint8) float64 {
		top := float64(c00)*(1-tx) + float64(c10)*tx
		bot := float64(c01)*(1-tx) + float64(c11)*tx
		return top*(1-ty) + bot*ty
	}
	i00 := src.PixOffset(x0, y0)
	i10 := src.PixOffset(x1, y0)
	i01 := src.PixOffset(x0, y1)
	i11 := src.PixOffset(x1, y1)
	r = lerp(src.Pix[i00+0], src.Pix[i10+0], src.Pix[i01+0], src.Pix[i11+0])
	g = lerp(src.Pix[i00+1], src.Pix[i10+1], src.Pix[i01+1], src.Pix[i11+1])
	b = lerp(src.Pix[i00+2], src.Pix[i10+2], src.Pix[i01+2], src.Pix[i11+2])
	a = lerp(src.Pix[i00+3], src.Pix[i10+3], src.Pix[i01+3], src.Pix[i11+3])
	return
}

var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"gray":    "#808080",
	"grey":    "#808080",
	"red":     "#ff0000",
	"green":   "#008000",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
	"brown":   "#a52a2a",
	"sepia":   "#704214",
	"ivory":   "#fffff0",
}

// ParseColor accepts #rgb, #rrggbb, #rrggbbaa or one of a small set of named
// colors and returns an NRGBA value.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return color.NRGBA{}, fmt.Errorf("empty color")
	}
	if hex, ok := namedColors[s]; ok {
		s = hex
	}
	if !strings.HasPrefix(s, "#") {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	hex := s[1:]
	switch len(hex) {
	case 3:
		var out [3]uint8
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseUint(string(hex[i]), 16, 8)
			if err != nil {
				return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
			}
			out[i] = uint8(v*16 + v)
		}
		return color.NRGBA{out[0], out[1], out[2], 255}, nil
	case 6, 8:
		var vals [4]uint8
		vals[3] = 255
		for i := 0; i*2 < len(hex); i++ {
			v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
			if err != nil {
				return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
			}
			vals[i] = uint8(v)
		}
		return color.NRGBA{vals[0], vals[1], vals[2], vals[3]}, nil
	}
	return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
}
