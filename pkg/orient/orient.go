package orient

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/matzehuels/viewalign/pkg/errors"
	"github.com/matzehuels/viewalign/pkg/geom"
)

// eps is the angular and projected-length tolerance.
const eps = 1e-9

// Location is a point placement with an intrinsic rotation in radians.
type Location struct {
	Point    mgl64.Vec3
	Rotation float64
}

// Object is an immutable snapshot of one element's orientation sources.
// At most one of Location, Curve and Orientation is consulted, in that order.
type Object struct {
	ID          string
	Box         geom.Box
	Location    *Location
	Curve       Curve
	Orientation *mgl64.Vec3
}

// Rotation is an instruction to rotate one object by Angle radians about the
// line through Pivot along Axis.
type Rotation struct {
	ID    string     `json:"id"`
	Pivot mgl64.Vec3 `json:"pivot"`
	Axis  mgl64.Vec3 `json:"axis"`
	Angle float64    `json:"angle"`
}

// Source names the orientation source an angle came from.
type Source string

const (
	SourceLocation    Source = "location"
	SourceCurve       Source = "curve"
	SourceOrientation Source = "orientation"
)

// Angle returns the in-plane angle of obj in basis b, in radians.
func Angle(obj Object, b geom.Basis) (float64, error) {
	a, _, err := AngleWithSource(obj, b)
	return a, err
}

// AngleWithSource is Angle but also reports which source was used.
func AngleWithSource(obj Object, b geom.Basis) (float64, Source, error) {
	switch {
	case obj.Location != nil:
		// Stored rotations are relative to the world and assumed to lie in
		// the working plane already.
		if !isFinite(obj.Location.Rotation) {
			return 0, SourceLocation, errors.New(errors.ErrCodeNoOrientation, "object %q has a non-finite rotation", obj.ID)
		}
		return obj.Location.Rotation, SourceLocation, nil
	case obj.Curve != nil:
		a, err := curveAngle(obj.ID, obj.Curve, b)
		return a, SourceCurve, err
	case obj.Orientation != nil:
		a, err := vectorAngle(obj.ID, *obj.Orientation, b)
		return a, SourceOrientation, err
	}
	return 0, "", errors.New(errors.ErrCodeNoOrientation, "object %q has no orientation source", obj.ID)
}

func curveAngle(id string, c Curve, b geom.Basis) (float64, error) {
	t0, t1 := c.Parameters()
	tangent, ok := geom.Unit(c.Derivative(0.5 * (t0 + t1)))
	if !ok {
		return 0, errors.New(errors.ErrCodeNoOrientation, "object %q has a degenerate tangent", id)
	}
	return vectorAngle(id, tangent, b)
}

func vectorAngle(id string, v mgl64.Vec3, b geom.Basis) (float64, error) {
	p := b.Project(v)
	if !isFinite(p.X) || !isFinite(p.Y) {
		return 0, errors.New(errors.ErrCodeNoOrientation, "object %q has a non-finite orientation", id)
	}
	if math.Abs(p.X) < eps && math.Abs(p.Y) < eps {
		return 0, errors.New(errors.ErrCodeNoOrientation, "object %q is perpendicular to the working plane", id)
	}
	return p.Angle(), nil
}

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// NormalizeAngle maps a into (-π, π].
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// Pivot returns the point obj rotates about: its location point when it has
// one, otherwise the center of its bounding box.
func Pivot(obj Object) mgl64.Vec3 {
	if obj.Location != nil {
		return obj.Location.Point
	}
	return obj.Box.Center()
}

// RotateTo computes the rotation that brings obj to target radians in basis b.
// The boolean is false when obj is already within tolerance of target.
func RotateTo(obj Object, b geom.Basis, target float64) (Rotation, bool, error) {
	current, err := Angle(obj, b)
	if err != nil {
		return Rotation{}, false, err
	}
	delta := NormalizeAngle(target - current)
	if math.Abs(delta) < eps {
		return Rotation{}, false, nil
	}
	axis, ok := geom.Unit(b.Normal())
	if !ok {
		return Rotation{}, false, errors.New(errors.ErrCodeInvalidArgument, "basis has no normal")
	}
	return Rotation{ID: obj.ID, Pivot: Pivot(obj), Axis: axis, Angle: delta}, true, nil
}
