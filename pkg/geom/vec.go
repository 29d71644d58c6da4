package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the length tolerance below which a displacement is treated as zero.
const Epsilon = 1e-9

// Vec2 is a point or direction expressed in a (right, up) basis.
type Vec2 struct {
	X, Y float64
}

// Angle returns the direction of v in radians, measured from the right axis.
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// IsZero reports whether every component of v is below Epsilon in magnitude.
func IsZero(v mgl64.Vec3) bool {
	return math.Abs(v[0]) < Epsilon && math.Abs(v[1]) < Epsilon && math.Abs(v[2]) < Epsilon
}

// IsFinite reports whether every component of v is a finite number.
func IsFinite(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Unit returns v scaled to length one and false if v has no usable direction.
func Unit(v mgl64.Vec3) (mgl64.Vec3, bool) {
	l := v.Len()
	if l < Epsilon || !IsFinite(v) {
		return mgl64.Vec3{}, false
	}
	return v.Mul(1 / l), true
}
