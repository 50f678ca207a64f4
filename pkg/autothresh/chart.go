package autothresh

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
)

// RenderChart draws a bar-chart of the histogram with a vertical marker line
// at the selected level and a text label showing the equivalent threshold
// percentage. The chart is purely decorative output: it takes the already
// computed result and never feeds back into selection.
func RenderChart(h Histogram, res Result, width, height int) image.Image {
	if width <= 0 {
		width = 512
	}
	if height <= 0 {
		height = 256
	}

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	peak := h.Peak()
	if peak > 0 {
		barW := float64(width) / float64(Levels)
		// leave headroom at the top for the label
		usable := float64(height) - 18
		dc.SetRGB(0.35, 0.35, 0.35)
		for v := 0; v < Levels; v++ {
			if h[v] == 0 {
				continue
			}
			bh := float64(h[v]) / float64(peak) * usable
			dc.DrawRectangle(float64(v)*barW, float64(height)-bh, barW, bh)
		}
		dc.Fill()
	}

	barW := float64(width) / float64(Levels)
	mx := (float64(res.Level) + 0.5) * barW
	dc.SetRGB(0.8, 0.1, 0.1)
	dc.SetLineWidth(1.5)
	dc.DrawLine(mx, 0, mx, float64(height))
	dc.Stroke()

	label := fmt.Sprintf("%d (%.1f%%)", res.Level, res.Percent)
	dc.SetRGB(0, 0, 0)
	if res.Level < Levels/2 {
		dc.DrawString(label, mx+4, 13)
	} else {
		dc.DrawStringAnchored(label, mx-4, 13, 1, 0)
	}
	return dc.Image()
}
