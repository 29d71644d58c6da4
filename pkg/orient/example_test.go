package orient_test

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/matzehuels/viewalign/pkg/geom"
	"github.com/matzehuels/viewalign/pkg/orient"
)

func ExampleMatch() {
	base := orient.Object{ID: "duct-1", Curve: orient.Line{End: mgl64.Vec3{1, 0, 0}}}
	targets := []orient.Object{{
		ID:    "duct-2",
		Box:   geom.Box{Min: mgl64.Vec3{4, 0, 0}, Max: mgl64.Vec3{6, 4, 0}},
		Curve: orient.Line{Start: mgl64.Vec3{5, 0, 0}, End: mgl64.Vec3{5, 4, 0}},
	}}

	res, err := orient.Match(base, targets, geom.WorldBasis())
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	rot := res.Rotations[0]
	fmt.Printf("%s: %.0f degrees about %v through %v\n", rot.ID, rot.Angle*180/math.Pi, rot.Axis, rot.Pivot)
	// Output:
	// duct-2: -90 degrees about [0 0 1] through [5 2 0]
}
