package physics

import (
	"github.com/lixenwraith/snowcat/vmath"
)

// Integrate advances position by one tick of velocity: p = p + v
func Integrate(pos *vmath.Vec2, vel vmath.Vec2) {
	pos.X += vel.X
	pos.Y += vel.Y
}

// ApplyImpulse adds velocity delta along dir (momentum transfer)
// dir is used as given; normalize it first for a magnitude in world units per tick
func ApplyImpulse(vel *vmath.Vec2, dir vmath.Vec2, magnitude float64) {
	vel.X += dir.X * magnitude
	vel.Y += dir.Y * magnitude
}

// Damp scales velocity by factor, applied once per tick
func Damp(vel *vmath.Vec2, factor float64) {
	vel.X *= factor
	vel.Y *= factor
}

// WrapBounds wraps position on a toroidal surface: crossing an edge re-enters at the opposite edge
func WrapBounds(pos *vmath.Vec2, width, height float64) {
	pos.X = vmath.Wrap(pos.X, width)
	pos.Y = vmath.Wrap(pos.Y, height)
}
