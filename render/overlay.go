package render

import (
	"image/color"
	"math"

	"github.com/lixenwraith/snowcat/parameter"
	"github.com/lixenwraith/snowcat/parameter/visual"
	"github.com/lixenwraith/snowcat/sim"
	"github.com/lixenwraith/snowcat/vmath"
)

// drawOverlay writes the narrative text over the rasterized frame
func (r *Renderer) drawOverlay(s Scene) {
	w, h := s.Size()
	center := vmath.V2(w/2, h/2)
	ms := float64(s.Now().Milliseconds())
	phase := s.Phase()

	if phase == sim.PhaseIntro {
		pulse := (math.Sin(ms*parameter.IntroPulseRate) + 1) / 2
		alpha := (parameter.IntroPulseBase + pulse*parameter.IntroPulseAmp) * s.IntroAlpha()
		r.text(center, parameter.TextIntro, visual.RgbText, alpha, false)
	}

	r.updateHint(s)
	if phase == sim.PhaseSnow && r.hintPos > parameter.HintVisibleMin {
		pulse := (math.Sin(ms*parameter.HintPulseRate) + 1) / 2
		r.text(center, parameter.TextHint, visual.RgbText, r.hintPos*(0.5+pulse*0.5), false)
	}

	cat := s.Cat()
	if phase == sim.PhaseSummon && cat.Lost {
		pos := cat.Center.Add(vmath.V2(0, -parameter.LostTextOffset))
		r.text(pos, parameter.TextLost, visual.RgbText, cat.LostOpacity, false)
	}

	if cat.HitText > 0 {
		rise := float64(parameter.HitTextTicks-cat.HitText) * parameter.HitTextRise
		pos := cat.Center.Add(vmath.V2(0, -parameter.HitTextOffset-rise))
		r.text(pos, parameter.TextHit, visual.RgbHitText, float64(cat.HitText)/parameter.HitTextTicks, true)
	}

	if s.EndingTextVisible() {
		title := vmath.V2(w/2, h*parameter.EndingTitleHeight)
		r.text(title, parameter.TextTitle, visual.RgbText, parameter.EndingTitleAlpha, true)
		r.glow(title, parameter.TextTitle, visual.RgbEndingGlow, parameter.EndingGlowAlpha)
		subtitle := title.Add(vmath.V2(0, parameter.EndingSubtitleOffset))
		r.text(subtitle, parameter.TextSubtitle, visual.RgbText, parameter.EndingSubtitleAlpha, false)
	}
}

// updateHint eases the hint opacity toward visible while released and hidden while held
func (r *Renderer) updateHint(s Scene) {
	target := 1.0
	if s.Pointer().Touching {
		target = 0
	}
	r.hintPos, r.hintVel = r.hint.Update(r.hintPos, r.hintVel, target)
	r.hintPos = vmath.Clamp(r.hintPos, 0, 1)
}

// text writes a string centered on a world position
// Letters sit on the cell's mean color so the scene stays visible behind them
func (r *Renderer) text(pos vmath.Vec2, s string, col color.RGBA, alpha float64, bold bool) {
	if alpha <= 0 {
		return
	}
	x, y := r.textOrigin(pos, s)
	for i, ch := range []rune(s) {
		if ch == ' ' {
			continue
		}
		bg := averageColor(r.canvas.Block(x+i, y))
		r.buf.SetText(x+i, y, ch, col, bg, alpha, bold)
	}
}

// glow tints the background behind a string
func (r *Renderer) glow(pos vmath.Vec2, s string, col color.RGBA, alpha float64) {
	x, y := r.textOrigin(pos, s)
	n := len([]rune(s))
	for cx := x - 1; cx <= x+n; cx++ {
		r.buf.SetBgAdd(cx, y, col, alpha/4)
	}
}

func (r *Renderer) textOrigin(pos vmath.Vec2, s string) (x, y int) {
	col := int(math.Floor(pos.X / parameter.CellWidth))
	row := int(math.Floor(pos.Y / parameter.CellHeight))
	return col - len([]rune(s))/2, row
}
