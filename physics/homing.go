package physics

import (
	"github.com/lixenwraith/snowcat/vmath"
)

// HomingProfile defines proportional pursuit gains
type HomingProfile struct {
	GainFar     float64 // Fraction of the offset closed per tick beyond FarDistance
	GainNear    float64 // Fraction of the offset closed per tick within FarDistance
	FarDistance float64 // World units
}

// Pursue returns the velocity that closes a gain-scaled fraction of the offset to target, and the distance to it
func Pursue(pos, target vmath.Vec2, profile *HomingProfile) (vmath.Vec2, float64) {
	d := target.Sub(pos)
	dist := d.Len()
	gain := profile.GainNear
	if dist > profile.FarDistance {
		gain = profile.GainFar
	}
	return d.Scale(gain), dist
}
