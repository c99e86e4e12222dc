package sim

import (
	"github.com/lixenwraith/snowcat/parameter"
	"github.com/lixenwraith/snowcat/physics"
	"github.com/lixenwraith/snowcat/vmath"
)

// Projectile is a thrown snowball
type Projectile struct {
	Pos  vmath.Vec2
	Vel  vmath.Vec2
	Size float64
	// Life counts down from ProjectileLife; at 0 the snowball is gone
	Life   int
	Active bool
}

func newProjectile(pos, vel vmath.Vec2, charge int) Projectile {
	return Projectile{
		Pos:    pos,
		Vel:    vel,
		Size:   parameter.ProjectileSizeBase + float64(charge)/parameter.MaxCharge*parameter.ProjectileSizeCharge,
		Life:   parameter.ProjectileLife,
		Active: true,
	}
}

// launch throws a snowball from the release point, along the recent pointer motion or straight at the cat
func (s *Sim) launch() {
	var vel vmath.Vec2
	if s.pointer.Vel.Len() > parameter.ThrowSpeedThreshold {
		vel = s.pointer.Vel.Scale(parameter.ThrowScale)
	} else {
		vel = s.cat.Center.Sub(s.pointer.Pos).Normalize().Scale(parameter.FallbackThrowSpeed)
	}
	s.projectiles = append(s.projectiles, newProjectile(s.pointer.Pos, vel, s.charge))
}

// updateProjectiles advances every snowball and drops the spent ones
func (s *Sim) updateProjectiles() {
	live := s.projectiles[:0]
	for i := range s.projectiles {
		pr := &s.projectiles[i]
		s.updateProjectile(pr)
		if pr.Active {
			live = append(live, *pr)
		}
	}
	clear(s.projectiles[len(live):])
	s.projectiles = live
}

func (s *Sim) updateProjectile(pr *Projectile) {
	physics.Integrate(&pr.Pos, pr.Vel)
	pr.Life--
	if pr.Life <= 0 {
		pr.Active = false
		return
	}

	push, hit := physics.CircleHit(pr.Pos, s.cat.Center, parameter.ProjectileHitRadius)
	if !hit {
		return
	}

	pr.Active = false
	physics.ApplyImpulse(&s.cat.Vel, push, parameter.ProjectileImpulse)
	s.cat.Knockback = parameter.KnockbackTicks
	s.cat.HitText = parameter.HitTextTicks
}
