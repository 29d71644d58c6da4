package scene_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/viewalign/pkg/layout"
	"github.com/matzehuels/viewalign/pkg/scene"
)

func ExampleApplyPlan() {
	s, err := scene.Read(strings.NewReader(`{
	  "objects": [
	    {"id": "a", "min": [0, 0, 0], "max": [1, 1, 0]},
	    {"id": "b", "min": [3, 2, 0], "max": [4, 3, 0]}
	  ]
	}`))
	if err != nil {
		panic(err)
	}

	res, err := layout.Run(layout.ModeBottom, s.LayoutObjects(), s.BasisOrWorld(), layout.Options{})
	if err != nil {
		panic(err)
	}
	out, err := scene.ApplyPlan(s, scene.LayoutPlan(layout.ModeBottom.String(), res))
	if err != nil {
		panic(err)
	}
	b, _ := out.Find("b")
	fmt.Println(b.Min, b.Max)
	// Output: [3 0 0] [4 1 0]
}
