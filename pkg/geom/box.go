package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Interval is a closed scalar range along one axis.
type Interval struct {
	Min, Max float64
}

// Width returns the length of the interval.
func (i Interval) Width() float64 { return i.Max - i.Min }

// Center returns the midpoint of the interval.
func (i Interval) Center() float64 { return (i.Min + i.Max) / 2 }

// Shift returns the interval moved by d.
func (i Interval) Shift(d float64) Interval { return Interval{Min: i.Min + d, Max: i.Max + d} }

// Box is an axis-aligned bounding box in world coordinates.
type Box struct {
	Min, Max mgl64.Vec3
}

// Center returns the midpoint of the box.
func (b Box) Center() mgl64.Vec3 { return b.Min.Add(b.Max).Mul(0.5) }

// Size returns the extent of the box along each world axis.
func (b Box) Size() mgl64.Vec3 { return b.Max.Sub(b.Min) }

// Project returns the extent of the box along axis.
//
// For axes whose components are all non-negative this is exactly
// [Min·axis, Max·axis]. For other axes (a view whose right direction points
// along -X, say) the interval is computed from the box's half extents, so
// Min <= Max always holds.
func (b Box) Project(axis mgl64.Vec3) Interval {
	if axis[0] >= 0 && axis[1] >= 0 && axis[2] >= 0 {
		return Interval{Min: b.Min.Dot(axis), Max: b.Max.Dot(axis)}
	}
	c := b.Center().Dot(axis)
	h := b.Size().Mul(0.5)
	r := math.Abs(axis[0])*h[0] + math.Abs(axis[1])*h[1] + math.Abs(axis[2])*h[2]
	return Interval{Min: c - r, Max: c + r}
}

// Translate returns the box moved by d.
func (b Box) Translate(d mgl64.Vec3) Box {
	return Box{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}

// Valid reports whether the box is finite and Min <= Max on every axis.
func (b Box) Valid() bool {
	if !IsFinite(b.Min) || !IsFinite(b.Max) {
		return false
	}
	for i := 0; i < 3; i++ {
		if b.Min[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// Corners returns the eight corners of the box.
func (b Box) Corners() [8]mgl64.Vec3 {
	var out [8]mgl64.Vec3
	for i := 0; i < 8; i++ {
		c := b.Min
		if i&1 != 0 {
			c[0] = b.Max[0]
		}
		if i&2 != 0 {
			c[1] = b.Max[1]
		}
		if i&4 != 0 {
			c[2] = b.Max[2]
		}
		out[i] = c
	}
	return out
}

// BoundsOf returns the smallest box containing every point.
// It returns the zero Box when no points are given.
func BoundsOf(points ...mgl64.Vec3) Box {
	if len(points) == 0 {
		return Box{}
	}
	b := Box{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		for i := 0; i < 3; i++ {
			b.Min[i] = math.Min(b.Min[i], p[i])
			b.Max[i] = math.Max(b.Max[i], p[i])
		}
	}
	return b
}
