package layout

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/matzehuels/viewalign/pkg/geom"
)

const tol = 1e-9

var (
	axisX = mgl64.Vec3{1, 0, 0}
	axisY = mgl64.Vec3{0, 1, 0}
)

// span builds an object occupying [min, max] along X and [0, 1] along Y.
func span(id string, min, max float64) Object {
	return Object{ID: id, Box: geom.Box{Min: mgl64.Vec3{min, 0, 0}, Max: mgl64.Vec3{max, 1, 0}}}
}

// rect builds an object from its X and Y extents.
func rect(id string, x0, y0, x1, y1 float64) Object {
	return Object{ID: id, Box: geom.Box{Min: mgl64.Vec3{x0, y0, 0}, Max: mgl64.Vec3{x1, y1, 0}}}
}

func approx(a, b float64) bool { return math.Abs(a-b) <= tol }

// wantDelta checks the displacement of id along axis.
func wantDelta(t *testing.T, r Result, id string, axis mgl64.Vec3, want float64) {
	t.Helper()
	d, _ := r.Delta(id)
	if got := d.Dot(axis); !approx(got, want) {
		t.Errorf("delta(%s) = %v, want %v", id, got, want)
	}
	if off := d.Sub(axis.Mul(d.Dot(axis))); !geom.IsZero(off) {
		t.Errorf("delta(%s) = %v has a component off the axis", id, d)
	}
}

func mustApply(t *testing.T, objs []Object, r Result) []Object {
	t.Helper()
	out, err := Apply(objs, r)
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	return out
}
