package physics

import (
	"github.com/lixenwraith/snowcat/vmath"
)

// CapSpeed damps the velocity by damping when its magnitude exceeds maxSpeed
// Returns true if velocity was damped
func CapSpeed(vel *vmath.Vec2, maxSpeed, damping float64) bool {
	if vel.LenSq() <= maxSpeed*maxSpeed {
		return false
	}
	Damp(vel, damping)
	return true
}

// Seek moves pos a fraction rate of the remaining distance toward target
func Seek(pos *vmath.Vec2, target vmath.Vec2, rate float64) {
	*pos = pos.Lerp(target, rate)
}

// Spring accelerates vel toward target with stiffness k, then applies friction
// Caller integrates
func Spring(vel *vmath.Vec2, pos, target vmath.Vec2, k, friction float64) {
	ApplyImpulse(vel, target.Sub(pos), k)
	Damp(vel, friction)
}
