package sim

import (
	"math"

	"github.com/lixenwraith/snowcat/parameter"
	"github.com/lixenwraith/snowcat/physics"
	"github.com/lixenwraith/snowcat/vmath"
)

// Cat is the kinematic center the structural particles are pinned around
type Cat struct {
	Center vmath.Vec2
	Vel    vmath.Vec2

	// Settle counts ticks spent close to the pointer during Summon
	Settle int
	// Trust counts ticks of Bond following
	Trust int
	// Wait holds the cat still at the start of Bond
	Wait int

	Knockback int
	HitText   int

	Lost        bool
	LostOpacity float64

	SnowDoubled bool
	Dissipating bool
}

var catPursuit = physics.HomingProfile{
	GainFar:     parameter.PursuitGainFar,
	GainNear:    parameter.PursuitGainNear,
	FarDistance: parameter.PursuitFarDistance,
}

// spawnCat places the cat opposite the pointer from the surface center
func (s *Sim) spawnCat() {
	center := vmath.V2(s.width/2, s.height/2)
	radius := math.Min(s.width, s.height) * parameter.CatSpawnRadiusFactor
	dir := center.Sub(s.pointer.Pos).Normalize()
	s.cat = Cat{Center: s.pointer.Pos.Add(dir.Scale(radius))}
}

// updateContact tracks whether the user is holding on, charges the snowball and runs down the cat timers
func (s *Sim) updateContact(phase Phase) {
	if phase == PhaseSummon && !s.pointer.Touching {
		s.cat.Lost = true
		s.charge = 0
	} else {
		s.cat.Lost = false
		if phase == PhaseSummon && s.charge < parameter.MaxCharge {
			s.charge++
		}
	}

	if s.cat.Knockback > 0 {
		s.cat.Knockback--
	}
	if s.cat.HitText > 0 {
		s.cat.HitText--
	}
}

// updateSummon pursues the pointer and accumulates settle time
func (s *Sim) updateSummon() {
	c := &s.cat

	if c.Lost {
		physics.Damp(&c.Vel, parameter.CatLostDamping)
		physics.Integrate(&c.Center, c.Vel)
		c.LostOpacity = math.Min(1, c.LostOpacity+parameter.LostOpacityStep)
		if c.Settle > 0 {
			c.Settle--
		}
		return
	}
	c.LostOpacity = 0

	if c.Knockback > 0 {
		physics.Damp(&c.Vel, parameter.KnockbackDamping)
		physics.Integrate(&c.Center, c.Vel)
		return
	}

	var dist float64
	c.Vel, dist = physics.Pursue(c.Center, s.pointer.Pos, &catPursuit)
	physics.Integrate(&c.Center, c.Vel)

	if dist < parameter.SettleRadius {
		c.Settle++
	} else if c.Settle > 0 {
		c.Settle--
	}
}

// enterBond stops the cat and clears the throwing state
func (s *Sim) enterBond() {
	s.cat.Vel = vmath.Vec2{}
	s.cat.Wait = parameter.BondWaitTicks
	s.cat.Lost = false
	s.cat.LostOpacity = 0
	s.projectiles = nil
	s.charge = 0
}

// updateBond waits, injects the extra snowfall once, then follows the pointer anchor on a damped spring
func (s *Sim) updateBond() {
	c := &s.cat

	if c.Wait > 0 {
		c.Wait--
		c.Vel = vmath.Vec2{}
		if c.Wait > 0 {
			return
		}
	}

	if !c.SnowDoubled {
		for range parameter.SnowInjectCount {
			s.particles = append(s.particles, s.newParticle(0, true))
		}
		c.SnowDoubled = true
	}

	// Anchor, not Pos: after release Pos is the off-surface sentinel
	physics.Spring(&c.Vel, c.Center, s.pointer.Anchor, parameter.BondSpringK, parameter.BondFriction)
	physics.Integrate(&c.Center, c.Vel)
	c.Trust++
}
