package sim

import (
	"math"

	"github.com/lixenwraith/snowcat/parameter"
	"github.com/lixenwraith/snowcat/vmath"
)

// beginEnding grows the tree from the bottom center and schedules the closing beats
func (s *Sim) beginEnding() {
	s.cat.Vel = vmath.Vec2{}

	root := vmath.V2(s.width/2, s.height)
	s.growBranch(root, s.height*parameter.TreeLengthFactor, -math.Pi/2, parameter.TreeDepth)

	now := s.clock.Tick()
	s.scheduler.At(now+s.clock.Ticks(parameter.EndingTextDelay), func() {
		s.endingText = true
	})
	s.scheduler.At(now+s.clock.Ticks(parameter.DissipateDelay), func() {
		s.cat.Dissipating = true
	})
}

// growBranch schedules one branch TreeBranchDelay from now; it forks into two shorter children when it fires
func (s *Sim) growBranch(from vmath.Vec2, length, angle float64, depth int) {
	if depth <= 0 {
		return
	}
	due := s.clock.Tick() + s.clock.Ticks(parameter.TreeBranchDelay)
	s.scheduler.At(due, func() {
		to := from.Add(vmath.V2(math.Cos(angle), math.Sin(angle)).Scale(length))
		for i := 0; i <= parameter.TreeBranchSteps; i++ {
			t := float64(i) / parameter.TreeBranchSteps
			s.particles = append(s.particles, s.newTreeParticle(from.Lerp(to, t)))
		}
		s.growBranch(to, length*parameter.TreeLengthDecay, angle-parameter.TreeBranchAngle, depth-1)
		s.growBranch(to, length*parameter.TreeLengthDecay, angle+parameter.TreeBranchAngle, depth-1)
	})
}

func (s *Sim) newTreeParticle(pos vmath.Vec2) Particle {
	r := s.rng
	p := Particle{
		Kind:  KindTree,
		Pos:   pos,
		Size:  vmath.Range(r, parameter.TreeSizeMin, parameter.TreeSizeMax),
		Alpha: 0,
		Noise: vmath.Range(r, 0, parameter.ParticleNoiseMax),
	}

	switch roll := r.Float64(); {
	case roll > parameter.OrnamentCutoff:
		p.Tier = TierOrnament
		p.Size = vmath.Range(r, parameter.OrnamentSizeMin, parameter.OrnamentSizeMax)
	case roll > parameter.BerryCutoff:
		p.Tier = TierBerry
	default:
		p.Tier = TierFoliage
		p.Shade = vmath.Range(r, parameter.FoliageShadeMin, parameter.FoliageShadeMax)
	}
	p.BaseSize = p.Size
	return p
}
