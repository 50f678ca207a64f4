package stdimg

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Gravity names the image region a caption anchors to.
type Gravity int

const (
	GravitySouth Gravity = iota
	GravityNorth
	GravityCenter
	GravityNorthWest
	GravityNorthEast
	GravitySouthWest
	GravitySouthEast
)

// ParseGravity recognizes the gravity names accepted on the command line.
func ParseGravity(s string) (Gravity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "south", "":
		return GravitySouth, nil
	case "north":
		return GravityNorth, nil
	case "center", "centre":
		return GravityCenter, nil
	case "northwest":
		return GravityNorthWest, nil
	case "northeast":
		return GravityNorthEast, nil
	case "southwest":
		return GravitySouthWest, nil
	case "southeast":
		return GravitySouthEast, nil
	}
	return 0, fmt.Errorf("unknown gravity %q", s)
}

// loadFace opens a TTF/OTF face at the given size, or returns the built-in
// bitmap face when fontPath is empty.
func loadFace(fontPath string, size float64) (font.Face, error) {
	if fontPath == "" {
		return basicfont.Face7x13, nil
	}
	data, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file %s: %w", fontPath, err)
	}
	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", fontPath, err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}

// Caption draws text onto the image anchored at the given gravity with a
// fixed margin. fontPath may be empty to use the built-in basic font (size is
// ignored in that case).
func Caption(src *image.NRGBA, text, fontPath string, size float64, gravity Gravity, col color.NRGBA) (*image.NRGBA, error) {
	if src == nil {
		return nil, fmt.Errorf("source image is nil")
	}
	if text == "" {
		return nil, fmt.Errorf("caption text is empty")
	}
	face, err := loadFace(fontPath, size)
	if err != nil {
		return nil, err
	}

	out := CloneNRGBA(src)
	d := &font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(col),
		Face: face,
	}
	adv := d.MeasureString(text)
	textW := adv.Ceil()
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()

	const margin = 12
	b := src.Bounds()
	var x, y int
	switch gravity {
	case GravityNorth:
		x = b.Min.X + (b.Dx()-textW)/2
		y = b.Min.Y + margin + ascent
	case GravityCenter:
		x = b.Min.X + (b.Dx()-textW)/2
		y = b.Min.Y + (b.Dy()+ascent-descent)/2
	case GravityNorthWest:
		x = b.Min.X + margin
		y = b.Min.Y + margin + ascent
	case GravityNorthEast:
		x = b.Max.X - margin - textW
		y = b.Min.Y + margin + ascent
	case GravitySouthWest:
		x = b.Min.X + margin
		y = b.Max.Y - margin - descent
	case GravitySouthEast:
		x = b.Max.X - margin - textW
		y = b.Max.Y - margin - descent
	default: // south
		x = b.Min.X + (b.Dx()-textW)/2
		y = b.Max.Y - margin - descent
	}
	if x < b.Min.X {
		x = b.Min.X
	}

	d.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	d.DrawString(text)
	return out, nil
}
