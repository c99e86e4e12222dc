package silhouette

import (
	"image"

	"github.com/fogleman/gg"

	"github.com/lixenwraith/snowcat/parameter"
)

// Default draws the built-in sitting cat: black on transparent, working canvas size
func Default() image.Image {
	size := float64(parameter.SilhouetteCanvas)
	dc := gg.NewContext(parameter.SilhouetteCanvas, parameter.SilhouetteCanvas)
	dc.SetRGB(0, 0, 0)

	// Coordinates authored on a 300 grid
	dc.Scale(size/300, size/300)

	// Body and haunches
	dc.DrawEllipse(150, 205, 62, 72)
	dc.Fill()
	dc.DrawEllipse(118, 262, 26, 14)
	dc.DrawEllipse(182, 262, 26, 14)
	dc.Fill()

	// Head
	dc.DrawCircle(150, 112, 46)
	dc.Fill()

	// Ears
	dc.MoveTo(112, 90)
	dc.LineTo(106, 40)
	dc.LineTo(144, 72)
	dc.ClosePath()
	dc.MoveTo(188, 90)
	dc.LineTo(194, 40)
	dc.LineTo(156, 72)
	dc.ClosePath()
	dc.Fill()

	// Tail curling up the right side
	dc.SetLineWidth(16)
	dc.SetLineCapRound()
	dc.MoveTo(200, 262)
	dc.QuadraticTo(268, 258, 252, 178)
	dc.Stroke()

	return dc.Image()
}
