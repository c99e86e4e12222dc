package render

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/lixenwraith/snowcat/parameter"
	"github.com/lixenwraith/snowcat/vmath"
)

// Canvas is the sub-pixel raster particles are drawn into, two sub-pixels per cell on each axis
// Coordinates passed in are world units; the persistent base image carries the motion trail
type Canvas struct {
	cols, rows int

	base  *image.RGBA // accumulated frame, opaque
	layer *image.RGBA // shapes drawn this frame, added onto base by Composite
	dc    *gg.Context
	dirty bool
}

// NewCanvas creates a black canvas covering cols x rows terminal cells
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize reallocates the raster for a new terminal size, discarding the trail
func (c *Canvas) Resize(cols, rows int) {
	cols = max(cols, 0)
	rows = max(rows, 0)
	c.cols, c.rows = cols, rows

	bounds := image.Rect(0, 0, cols*2, rows*2)
	c.base = image.NewRGBA(bounds)
	c.layer = image.NewRGBA(bounds)
	for i := 3; i < len(c.base.Pix); i += 4 {
		c.base.Pix[i] = 0xff
	}

	c.dc = gg.NewContextForRGBA(c.layer)
	c.dc.Scale(1.0/parameter.SubPixelWidth, 1.0/parameter.SubPixelHeight)
	c.dirty = false
}

// Size returns the canvas dimensions in terminal cells
func (c *Canvas) Size() (cols, rows int) {
	return c.cols, c.rows
}

// Image returns the composed sub-pixel raster
func (c *Canvas) Image() *image.RGBA {
	return c.base
}

// Fade darkens the whole raster by a black wash of the given opacity
func (c *Canvas) Fade(alpha float64) {
	keep := 1 - vmath.Clamp(alpha, 0, 1)
	pix := c.base.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i] = uint8(float64(pix[i]) * keep)
		pix[i+1] = uint8(float64(pix[i+1]) * keep)
		pix[i+2] = uint8(float64(pix[i+2]) * keep)
	}
}

// Plot adds a color scaled by alpha to the sub-pixel containing p
func (c *Canvas) Plot(p vmath.Vec2, col color.RGBA, alpha float64) {
	if alpha <= 0 || math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return
	}
	sx := int(math.Floor(p.X / parameter.SubPixelWidth))
	sy := int(math.Floor(p.Y / parameter.SubPixelHeight))
	if sx < 0 || sy < 0 || sx >= c.cols*2 || sy >= c.rows*2 {
		return
	}

	a := min(alpha, 1)
	i := c.base.PixOffset(sx, sy)
	pix := c.base.Pix
	pix[i] = addSat(pix[i], uint8(float64(col.R)*a))
	pix[i+1] = addSat(pix[i+1], uint8(float64(col.G)*a))
	pix[i+2] = addSat(pix[i+2], uint8(float64(col.B)*a))
}

// Spot draws a point of the given world radius, a single sub-pixel when it is smaller than one
func (c *Canvas) Spot(p vmath.Vec2, radius float64, col color.RGBA, alpha float64) {
	if radius*2 < parameter.SubPixelWidth {
		c.Plot(p, col, alpha)
		return
	}
	c.Disc(p, radius, col, alpha)
}

// Disc fills a circle of world radius r
func (c *Canvas) Disc(center vmath.Vec2, r float64, col color.RGBA, alpha float64) {
	if alpha <= 0 || r <= 0 {
		return
	}
	c.setColor(col, alpha)
	c.dc.DrawCircle(center.X, center.Y, r)
	c.dc.Fill()
	c.dirty = true
}

// Flake strokes a three-armed rotating snowflake
func (c *Canvas) Flake(center vmath.Vec2, size, angle float64, col color.RGBA, alpha float64) {
	if alpha <= 0 {
		return
	}
	arm := size * parameter.FlakeArmScale
	c.setColor(col, alpha)
	c.dc.SetLineWidth(parameter.FlakeLineWidth)
	for k := range 3 {
		a := angle + float64(k)*math.Pi/3
		d := vmath.V2(math.Cos(a), math.Sin(a)).Scale(arm)
		from, to := center.Sub(d), center.Add(d)
		c.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	}
	c.dc.Stroke()
	c.dirty = true
}

func (c *Canvas) setColor(col color.RGBA, alpha float64) {
	c.dc.SetRGBA(
		float64(col.R)/255,
		float64(col.G)/255,
		float64(col.B)/255,
		vmath.Clamp(alpha, 0, 1),
	)
}

// Composite adds the shape layer onto the base additively and clears it
func (c *Canvas) Composite() {
	if !c.dirty {
		return
	}
	dst, src := c.base.Pix, c.layer.Pix
	for i := 0; i < len(dst); i += 4 {
		if src[i+3] == 0 {
			continue
		}
		// Layer is premultiplied, so its channels are already scaled by coverage
		dst[i] = addSat(dst[i], src[i])
		dst[i+1] = addSat(dst[i+1], src[i+1])
		dst[i+2] = addSat(dst[i+2], src[i+2])
	}
	clear(src)
	c.dirty = false
}

// Block returns the 2x2 sub-pixels of a cell in UL, UR, LL, LR order
func (c *Canvas) Block(col, row int) [4]color.RGBA {
	var px [4]color.RGBA
	x, y := col*2, row*2
	offsets := [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	for i, off := range offsets {
		px[i] = c.base.RGBAAt(x+off[0], y+off[1])
	}
	return px
}
