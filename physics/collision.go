package physics

import (
	"github.com/lixenwraith/snowcat/vmath"
)

// CircleHit tests whether a point lies strictly within radius of center
// On hit, returns the unit direction from the point toward center (the push direction for center)
func CircleHit(point, center vmath.Vec2, radius float64) (vmath.Vec2, bool) {
	d := center.Sub(point)
	if d.LenSq() >= radius*radius {
		return vmath.Vec2{}, false
	}
	return d.Scale(1 / vmath.SafeLen(d)), true
}
