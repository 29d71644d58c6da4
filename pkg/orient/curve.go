package orient

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Curve is a parametric curve that can report its first derivative.
type Curve interface {
	// Parameters returns the start and end parameter of the curve.
	Parameters() (start, end float64)
	// Derivative returns the first derivative at parameter t.
	Derivative(t float64) mgl64.Vec3
	// Transform returns the curve with every point mapped through fn and
	// every direction through dir.
	Transform(fn func(mgl64.Vec3) mgl64.Vec3, dir func(mgl64.Vec3) mgl64.Vec3) Curve
}

// Line is a bounded straight segment parameterized over [0, 1].
type Line struct {
	Start, End mgl64.Vec3
}

// Parameters implements Curve.
func (l Line) Parameters() (float64, float64) { return 0, 1 }

// Derivative implements Curve.
func (l Line) Derivative(float64) mgl64.Vec3 { return l.End.Sub(l.Start) }

// Transform implements Curve.
func (l Line) Transform(fn func(mgl64.Vec3) mgl64.Vec3, _ func(mgl64.Vec3) mgl64.Vec3) Curve {
	return Line{Start: fn(l.Start), End: fn(l.End)}
}

// Arc is a circular arc in the plane spanned by XAxis and YAxis, which are
// expected to be orthonormal. Parameters are angles in radians measured
// from XAxis towards YAxis.
type Arc struct {
	Center       mgl64.Vec3
	XAxis, YAxis mgl64.Vec3
	Radius       float64
	Start, End   float64
}

// Parameters implements Curve.
func (a Arc) Parameters() (float64, float64) { return a.Start, a.End }

// Derivative implements Curve.
func (a Arc) Derivative(t float64) mgl64.Vec3 {
	return a.XAxis.Mul(-a.Radius * math.Sin(t)).Add(a.YAxis.Mul(a.Radius * math.Cos(t)))
}

// Point returns the position on the arc at parameter t.
func (a Arc) Point(t float64) mgl64.Vec3 {
	return a.Center.Add(a.XAxis.Mul(a.Radius * math.Cos(t))).Add(a.YAxis.Mul(a.Radius * math.Sin(t)))
}

// Transform implements Curve.
func (a Arc) Transform(fn func(mgl64.Vec3) mgl64.Vec3, dir func(mgl64.Vec3) mgl64.Vec3) Curve {
	out := a
	out.Center = fn(a.Center)
	out.XAxis = dir(a.XAxis)
	out.YAxis = dir(a.YAxis)
	return out
}
