package render

import (
	"math"

	"github.com/lixenwraith/snowcat/parameter"
	"github.com/lixenwraith/snowcat/parameter/visual"
	"github.com/lixenwraith/snowcat/sim"
	"github.com/lixenwraith/snowcat/vmath"
)

func (r *Renderer) drawParticles(s Scene) {
	phase := s.Phase()
	dissolving := s.IntroDissolving()
	if phase == sim.PhaseIntro && !dissolving {
		return
	}
	knockback := s.Cat().Knockback > 0

	particles := s.Particles()
	for i := range particles {
		p := &particles[i]
		switch {
		case p.Kind == sim.KindTree:
			r.drawTreeParticle(p)

		case phase == sim.PhaseSnow || p.Kind == sim.KindBackground || dissolving:
			if p.Detailed {
				r.canvas.Flake(p.Pos, p.Size, p.Angle, visual.RgbSnow, parameter.SnowAlpha)
			} else {
				r.canvas.Plot(p.Pos, visual.RgbSnow, parameter.SnowAlpha)
			}

		case p.Kind == sim.KindStructural:
			col := visual.RgbSnow
			if knockback {
				col = visual.RgbKnockback
			}
			r.canvas.Plot(p.Pos, col, p.Alpha*parameter.StructuralAlphaScale)

		default:
			alpha := parameter.DebrisAlpha
			if phase == sim.PhaseEnding {
				alpha *= p.Alpha
			}
			r.canvas.Plot(p.Pos, visual.RgbSnow, alpha)
		}
	}
}

func (r *Renderer) drawTreeParticle(p *sim.Particle) {
	switch p.Tier {
	case sim.TierOrnament:
		r.canvas.Spot(p.Pos, p.Size, visual.RgbOrnament, p.Alpha)
	case sim.TierBerry:
		r.canvas.Spot(p.Pos, p.Size, visual.RgbBerry, p.Alpha*parameter.BerryAlpha)
	default:
		r.canvas.Spot(p.Pos, p.Size, visual.RgbFoliage, p.Alpha*p.Shade)
	}
}

func (r *Renderer) drawProjectiles(s Scene) {
	for _, pr := range s.Projectiles() {
		life := float64(pr.Life) / parameter.ProjectileLife
		r.canvas.Disc(pr.Pos, pr.Size*parameter.ProjectileGlowScale, visual.RgbIce, life*parameter.ProjectileGlowAlpha)
		r.canvas.Disc(pr.Pos, pr.Size, visual.RgbIceCore, life)
	}
}

// drawAura shows the snowball gathering at the pointer: a contracting noisy ring and a growing core
func (r *Renderer) drawAura(s Scene) {
	charge := s.Charge()
	ptr := s.Pointer()
	if s.Phase() != sim.PhaseSummon || !ptr.Touching || charge <= 0 {
		return
	}

	if charge >= parameter.MaxCharge {
		r.canvas.Disc(ptr.Pos, parameter.AuraFullRadius, visual.RgbIceCore, parameter.AuraFullAlpha)
		return
	}

	progress := float64(charge) / parameter.MaxCharge
	now := s.Now()
	cycle := float64(now%parameter.AuraPeriod) / float64(parameter.AuraPeriod)
	t := now.Seconds()

	dots := parameter.AuraDotsBase + int(progress*parameter.AuraDotsCharge)
	for i := range dots {
		n := r.noise.Noise2D(float64(i)*parameter.AuraNoiseScale, t)
		angle := 2*math.Pi*float64(i)/float64(dots) + n*math.Pi
		radius := parameter.AuraRadius*(1-cycle) + (n+1)/2*parameter.AuraJitter
		pos := ptr.Pos.Add(vmath.V2(math.Cos(angle), math.Sin(angle)).Scale(radius))
		r.canvas.Plot(pos, visual.RgbIceCore, parameter.AuraAlphaBase+progress*(1-parameter.AuraAlphaBase))
	}

	core := parameter.AuraCoreBase + progress*parameter.AuraCoreCharge
	r.canvas.Disc(ptr.Pos, core, visual.RgbIce, parameter.AuraCoreAlpha)
}
