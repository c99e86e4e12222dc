package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/snowcat/parameter/visual"
)

// Cell is one terminal cell of the composed frame
type Cell struct {
	Rune rune
	Fg   color.RGBA
	Bg   color.RGBA
	Bold bool
}

// RenderBuffer is a compositor for one frame, flushed to the screen in a single pass
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: visual.RgbBlack, Bg: visual.RgbBlack}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Bounds returns buffer dimensions
func (b *RenderBuffer) Bounds() (width, height int) {
	return b.width, b.height
}

// inBounds returns true if in screen bounds
func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x, y; out of bounds returns the zero cell
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// SetWithBg writes a cell with explicit fg and bg colors (opaque replace)
func (b *RenderBuffer) SetWithBg(x, y int, r rune, fg, bg color.RGBA) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
	dst.Bg = bg
	dst.Bold = false
}

// SetText writes a text rune on bg, with fg blended into bg by alpha
func (b *RenderBuffer) SetText(x, y int, r rune, fg, bg color.RGBA, alpha float64, bold bool) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = Blend(bg, fg, alpha)
	dst.Bg = bg
	dst.Bold = bold
}

// SetBgAdd adds a color scaled by alpha into the cell background
func (b *RenderBuffer) SetBgAdd(x, y int, c color.RGBA, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Bg = Add(dst.Bg, Scale(c, alpha))
}

// Flush writes the buffer to the screen and presents it
func (b *RenderBuffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x := range row {
			c := &row[x]
			style := tcell.StyleDefault.
				Foreground(tcellColor(c.Fg)).
				Background(tcellColor(c.Bg)).
				Bold(c.Bold)
			screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
	screen.Show()
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Blend mixes fg over bg by alpha in linear RGB
func Blend(bg, fg color.RGBA, alpha float64) color.RGBA {
	if alpha <= 0 {
		return bg
	}
	if alpha >= 1 {
		return fg
	}
	from, _ := colorful.MakeColor(opaque(bg))
	to, _ := colorful.MakeColor(opaque(fg))
	r, g, bl := from.BlendLinearRgb(to, alpha).Clamped().RGB255()
	return color.RGBA{r, g, bl, 255}
}

// Add sums two colors per channel, saturating at 255
func Add(a, b color.RGBA) color.RGBA {
	return color.RGBA{addSat(a.R, b.R), addSat(a.G, b.G), addSat(a.B, b.B), 255}
}

// Scale multiplies the color channels by f in [0, 1]
func Scale(c color.RGBA, f float64) color.RGBA {
	f = min(max(f, 0), 1)
	return color.RGBA{uint8(float64(c.R) * f), uint8(float64(c.G) * f), uint8(float64(c.B) * f), 255}
}

func addSat(a, b uint8) uint8 {
	if s := int(a) + int(b); s < 255 {
		return uint8(s)
	}
	return 255
}

func opaque(c color.RGBA) color.RGBA {
	c.A = 255
	return c
}
