package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/matzehuels/viewalign/pkg/errors"
)

// unitTolerance is how far from length one a basis axis may be before
// Validate rejects it.
const unitTolerance = 1e-6

// Axis selects one of the two in-plane directions of a Basis.
type Axis int

const (
	AxisRight Axis = iota // horizontal, the view's right direction
	AxisUp                // vertical, the view's up direction
)

// String returns "right" or "up".
func (a Axis) String() string {
	if a == AxisUp {
		return "up"
	}
	return "right"
}

// Basis is the pair of in-plane directions that defines the 2D working plane.
type Basis struct {
	Right mgl64.Vec3 `json:"right"`
	Up    mgl64.Vec3 `json:"up"`
}

// WorldBasis returns the basis spanned by world X and world Y.
func WorldBasis() Basis {
	return Basis{Right: mgl64.Vec3{1, 0, 0}, Up: mgl64.Vec3{0, 1, 0}}
}

// NewBasis normalizes right and up and returns the resulting basis.
// It fails with ErrCodeInvalidArgument when either vector is zero-length or
// non-finite, or when the two are parallel.
func NewBasis(right, up mgl64.Vec3) (Basis, error) {
	r, ok := Unit(right)
	if !ok {
		return Basis{}, errors.New(errors.ErrCodeInvalidArgument, "right direction %v has no usable length", right)
	}
	u, ok := Unit(up)
	if !ok {
		return Basis{}, errors.New(errors.ErrCodeInvalidArgument, "up direction %v has no usable length", up)
	}
	b := Basis{Right: r, Up: u}
	if b.Normal().Len() < unitTolerance {
		return Basis{}, errors.New(errors.ErrCodeInvalidArgument, "right %v and up %v are parallel", right, up)
	}
	return b, nil
}

// Validate checks that both axes are finite unit vectors and not parallel.
// Orthogonality is not required; skewed bases are accepted.
func (b Basis) Validate() error {
	for _, a := range []struct {
		name string
		v    mgl64.Vec3
	}{{"right", b.Right}, {"up", b.Up}} {
		if err := ValidateDirection(a.name, a.v); err != nil {
			return err
		}
	}
	if b.Normal().Len() < unitTolerance {
		return errors.New(errors.ErrCodeInvalidArgument, "right %v and up %v are parallel", b.Right, b.Up)
	}
	return nil
}

// ValidateDirection checks that v is a finite unit vector and reports
// ErrCodeInvalidArgument naming the direction otherwise.
func ValidateDirection(name string, v mgl64.Vec3) error {
	if !IsFinite(v) {
		return errors.New(errors.ErrCodeInvalidArgument, "%s direction %v is not finite", name, v)
	}
	if math.Abs(v.Len()-1) > unitTolerance {
		return errors.New(errors.ErrCodeInvalidArgument, "%s direction %v is not unit length", name, v)
	}
	return nil
}

// Axis returns the direction selected by a.
func (b Basis) Axis(a Axis) mgl64.Vec3 {
	if a == AxisUp {
		return b.Up
	}
	return b.Right
}

// Normal returns Right × Up, the axis perpendicular to the working plane.
func (b Basis) Normal() mgl64.Vec3 { return b.Right.Cross(b.Up) }

// Project expresses v in the basis by dot product with each axis.
func (b Basis) Project(v mgl64.Vec3) Vec2 {
	return Vec2{X: v.Dot(b.Right), Y: v.Dot(b.Up)}
}
