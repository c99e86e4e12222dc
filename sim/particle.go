package sim

import (
	"math"

	"github.com/lixenwraith/snowcat/parameter"
	"github.com/lixenwraith/snowcat/physics"
	"github.com/lixenwraith/snowcat/vmath"
)

// Kind is the particle's role, fixed at creation
type Kind uint8

const (
	// KindBackground is free-falling snow in every phase
	KindBackground Kind = iota
	// KindStructural is pinned to a silhouette target from Summon on
	KindStructural
	// KindDebris orbits the cat; extra particles beyond the silhouette targets
	KindDebris
	// KindTree is a fractal tree point, created during Ending
	KindTree
)

// Tier is the tree particle's decoration class
type Tier uint8

const (
	TierFoliage Tier = iota
	TierBerry
	// TierOrnament particles are the swaying "bells"
	TierOrnament
)

// Particle is a single simulated agent
// Owned by Sim.particles; mutated only during Sim.Step
type Particle struct {
	Kind Kind
	// Target indexes Sim targets for KindStructural; >= len(targets) for KindDebris
	Target int

	Pos   vmath.Vec2
	Vel   vmath.Vec2
	Angle float64
	Spin  float64

	Size     float64
	BaseSize float64
	Alpha    float64
	// Noise desynchronizes time-based motion between particles
	Noise float64
	// Detailed particles render as rotating flakes
	Detailed bool

	// Tree only
	Tier  Tier
	Shade float64 // foliage color opacity
}

// newParticle creates a particle for silhouette slot index at a random surface position
func (s *Sim) newParticle(index int, forceBackground bool) Particle {
	r := s.rng
	size := vmath.Range(r, parameter.ParticleSizeMin, parameter.ParticleSizeMax)
	p := Particle{
		Target: index,
		Pos:    vmath.V2(vmath.Range(r, 0, s.width), vmath.Range(r, 0, s.height)),
		Vel: vmath.V2(
			vmath.Range(r, -parameter.ParticleInitialSpeed, parameter.ParticleInitialSpeed),
			vmath.Range(r, -parameter.ParticleInitialSpeed, parameter.ParticleInitialSpeed),
		),
		Angle:    vmath.Range(r, 0, 2*math.Pi),
		Spin:     vmath.Range(r, -parameter.ParticleSpinMax, parameter.ParticleSpinMax),
		Size:     size,
		BaseSize: size,
		Alpha:    parameter.ParticleInitialAlpha,
		Noise:    vmath.Range(r, 0, parameter.ParticleNoiseMax),
		Detailed: r.Float64() < parameter.DetailedChance,
	}

	switch {
	case forceBackground || r.Float64() < parameter.BackgroundChance:
		p.Kind = KindBackground
	case index < len(s.targets):
		p.Kind = KindStructural
		p.Target = index % max(len(s.targets), 1)
	default:
		p.Kind = KindDebris
	}
	return p
}

// reset scatters the particle velocity and restores its look
func (p *Particle) reset(r vmath.Random) {
	p.Vel = vmath.V2(
		vmath.Range(r, -parameter.ParticleInitialSpeed, parameter.ParticleInitialSpeed),
		vmath.Range(r, -parameter.ParticleInitialSpeed, parameter.ParticleInitialSpeed),
	)
	p.Alpha = parameter.ParticleInitialAlpha
	p.Size = p.BaseSize
}

var debrisOrbit = physics.OrbitalProfile{
	Ring:    parameter.DebrisRing,
	Push:    parameter.DebrisPush,
	Pull:    parameter.DebrisPull,
	Tangent: parameter.DebrisTangent,
}

// updateParticle selects behavior from the particle kind and the current phase
func (s *Sim) updateParticle(p *Particle) {
	phase := s.Phase()
	if phase == PhaseIntro && !s.introDissolving {
		return
	}

	switch {
	case p.Kind == KindTree:
		s.updateTree(p)
	case phase == PhaseEnding && p.Kind != KindBackground:
		s.updateEnding(p)
	case phase == PhaseSnow || p.Kind == KindBackground || s.introDissolving:
		s.updateSnow(p, phase)
	case p.Kind == KindStructural:
		s.updateStructural(p, phase)
	default:
		s.updateDebris(p)
	}
}

func (s *Sim) updateTree(p *Particle) {
	if p.Alpha < 1 {
		p.Alpha = math.Min(1, p.Alpha+parameter.TreeFadeIn)
	}
	if p.Tier == TierOrnament {
		t := float64(s.clock.Now().Milliseconds()) * parameter.TreeSwayRate
		p.Pos.X += math.Sin(t+p.Noise) * parameter.TreeSway
	}
	if s.rng.Float64() < parameter.TwinkleChance {
		p.Alpha = vmath.Range(s.rng, parameter.TwinkleMin, 1)
	}
}

// updateSnow is free fall with pointer interaction on a toroidal surface
func (s *Sim) updateSnow(p *Particle, phase Phase) {
	p.Vel.X += vmath.Range(s.rng, -parameter.SnowJitter, parameter.SnowJitter)
	p.Vel.Y += parameter.SnowGravity

	if phase > PhaseIntro {
		d := p.Pos.Sub(s.pointer.Pos)
		if distSq := d.LenSq(); distSq < parameter.PointerRadiusSq {
			dist := vmath.SafeLen(d)
			n := d.Scale(1 / dist)
			if phase == PhaseSummon && s.pointer.Touching && s.charge < parameter.MaxCharge {
				// Gather into the snowball being charged
				if dist < parameter.GatherRadius {
					physics.ApplyImpulse(&p.Vel, n, -parameter.GatherForce)
				}
			} else {
				physics.ApplyImpulse(&p.Vel, n, (parameter.PointerRadius-dist)*parameter.SwirlForce)
			}
		}
	}

	physics.Integrate(&p.Pos, p.Vel)
	physics.Damp(&p.Vel, parameter.SnowDamping)
	p.Angle += p.Spin

	physics.WrapBounds(&p.Pos, s.width, s.height)
}

// updateStructural seeks the particle's silhouette slot around the cat center, agitated by cat speed and knockback
func (s *Sim) updateStructural(p *Particle, phase Phase) {
	offset := s.targets[p.Target]

	noise := parameter.StructuralNoiseBase + s.cat.Vel.Len()*parameter.StructuralNoiseSpeed
	if s.cat.Knockback > 0 {
		noise += parameter.StructuralNoiseKnockback
	}
	jitter := vmath.V2((s.rng.Float64()-0.5)*noise, (s.rng.Float64()-0.5)*noise)
	target := s.cat.Center.Add(offset).Add(jitter)

	rate := parameter.SeekBond
	if phase == PhaseSummon {
		rate = parameter.SeekSummon
	}
	physics.Seek(&p.Pos, target, rate)
	p.Angle = 0
}

// updateDebris orbits the cat center near the DebrisRing radius
func (s *Sim) updateDebris(p *Particle) {
	physics.ApplyOrbital(&p.Vel, p.Pos.Sub(s.cat.Center), &debrisOrbit)
	physics.ApplyImpulse(&p.Vel, vmath.V2(
		vmath.Range(s.rng, -parameter.DebrisJitter, parameter.DebrisJitter),
		vmath.Range(s.rng, -parameter.DebrisJitter, parameter.DebrisJitter),
	), 1)

	physics.CapSpeed(&p.Vel, parameter.DebrisSpeedCap, parameter.DebrisDamping)

	physics.Integrate(&p.Pos, p.Vel)
	p.Angle += p.Spin
}

// updateEnding regroups the cat on the tree-base anchor, then dissolves it upward
func (s *Sim) updateEnding(p *Particle) {
	if s.cat.Dissipating {
		p.Pos.Y -= vmath.Range(s.rng, parameter.DissipateRiseMin, parameter.DissipateRiseMax)
		p.Pos.X += vmath.Range(s.rng, -parameter.DissipateDrift, parameter.DissipateDrift)
		p.Alpha = math.Max(0, p.Alpha-parameter.DissipateFade)
		return
	}

	var offset vmath.Vec2
	if p.Kind == KindStructural {
		offset = s.targets[p.Target]
	}
	anchor := vmath.V2(s.width/2+offset.X, s.height-parameter.EndingBaseOffset+offset.Y)
	physics.Seek(&p.Pos, anchor, parameter.EndingConverge)
	p.Alpha = 1
}
