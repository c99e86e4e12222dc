package render

import (
	"time"

	"github.com/aquilax/go-perlin"
	"github.com/charmbracelet/harmonica"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snowcat/parameter"
	"github.com/lixenwraith/snowcat/sim"
)

// Scene is the read-only view of the simulation the renderer draws
type Scene interface {
	Phase() sim.Phase
	Now() time.Duration
	Size() (width, height float64)
	Particles() []sim.Particle
	Projectiles() []sim.Projectile
	Cat() sim.Cat
	Pointer() sim.Pointer
	Charge() int
	IntroAlpha() float64
	IntroDissolving() bool
	EndingTextVisible() bool
}

// Renderer draws a Scene onto a tcell screen
type Renderer struct {
	screen tcell.Screen
	canvas *Canvas
	buf    *RenderBuffer

	noise *perlin.Perlin

	hint             harmonica.Spring
	hintPos, hintVel float64
}

// NewRenderer creates a renderer sized to the screen
// seed feeds the aura noise so frames are reproducible for a seeded simulation
func NewRenderer(screen tcell.Screen, fps int, seed int64) *Renderer {
	if fps <= 0 {
		fps = parameter.FrameRate
	}
	cols, rows := screen.Size()
	return &Renderer{
		screen: screen,
		canvas: NewCanvas(cols, rows),
		buf:    NewRenderBuffer(cols, rows),
		noise:  perlin.NewPerlin(parameter.AuraNoiseAlpha, parameter.AuraNoiseBeta, parameter.AuraNoiseOctaves, seed),
		hint:   harmonica.NewSpring(harmonica.FPS(fps), parameter.HintSpringFrequency, parameter.HintSpringDamping),
	}
}

// Resize follows a terminal size change; the trail is discarded
func (r *Renderer) Resize(cols, rows int) {
	r.canvas.Resize(cols, rows)
	r.buf.Resize(cols, rows)
}

// Buffer returns the last composed frame
func (r *Renderer) Buffer() *RenderBuffer {
	return r.buf
}

// Draw composes one frame of the scene and presents it
func (r *Renderer) Draw(s Scene) {
	r.Compose(s)
	r.buf.Flush(r.screen)
}

// Compose renders the scene into the frame buffer without touching the screen
func (r *Renderer) Compose(s Scene) {
	r.canvas.Fade(parameter.TrailFade)
	r.drawAura(s)
	r.drawParticles(s)
	r.drawProjectiles(s)
	r.canvas.Composite()

	r.rasterize()
	r.drawOverlay(s)
}

// rasterize converts each cell's sub-pixel block into a quadrant glyph
func (r *Renderer) rasterize() {
	cols, rows := r.canvas.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			ch, fg, bg := findBestQuadrant(r.canvas.Block(x, y))
			r.buf.SetWithBg(x, y, ch, fg, bg)
		}
	}
}
