package vmath

import "math"

// Vec2 is a float64 2D vector in world units
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{x, y}
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// LenSq returns squared magnitude without sqrt
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Normalize returns the unit vector, zero-safe: a zero vector is divided by 1 and stays zero
func (v Vec2) Normalize() Vec2 {
	return v.Scale(1 / SafeLen(v))
}

// Perpendicular returns vector rotated 90° counter-clockwise (screen space, y down)
func (v Vec2) Perpendicular() Vec2 {
	return Vec2{-v.Y, v.X}
}

// Lerp moves v toward target by factor t (exponential smoothing step)
func (v Vec2) Lerp(target Vec2, t float64) Vec2 {
	return Vec2{v.X + (target.X-v.X)*t, v.Y + (target.Y-v.Y)*t}
}

// Dist returns Euclidean distance between a and b
func Dist(a, b Vec2) float64 {
	return b.Sub(a).Len()
}

// SafeLen returns vector length, substituting 1 for a zero length so callers can divide
func SafeLen(v Vec2) float64 {
	l := v.Len()
	if l == 0 {
		return 1
	}
	return l
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Wrap maps x that left [0, size] back onto the opposite edge (toroidal surface)
func Wrap(x, size float64) float64 {
	if x > size {
		return 0
	}
	if x < 0 {
		return size
	}
	return x
}
