package physics

import (
	"github.com/lixenwraith/snowcat/vmath"
)

// OrbitalProfile shapes a loose ring orbit around a center
type OrbitalProfile struct {
	Ring    float64 // Radius inside which bodies are pushed outward
	Push    float64 // Outward acceleration inside Ring
	Pull    float64 // Constant inward acceleration
	Tangent float64 // Swirl acceleration perpendicular to the radius
}

// ApplyOrbital accelerates vel for a body at offset from the orbit center
// Bodies settle near Ring where push and pull balance, swirling along the tangent
func ApplyOrbital(vel *vmath.Vec2, offset vmath.Vec2, profile *OrbitalProfile) {
	dist := vmath.SafeLen(offset)
	n := offset.Scale(1 / dist)

	if dist < profile.Ring {
		ApplyImpulse(vel, n, profile.Push)
	}
	ApplyImpulse(vel, n, -profile.Pull)
	ApplyImpulse(vel, n.Perpendicular(), profile.Tangent)
}
