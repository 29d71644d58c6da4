package layout

import (
	"cmp"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/matzehuels/viewalign/pkg/errors"
	"github.com/matzehuels/viewalign/pkg/geom"
)

// Untangle resolves overlaps along axis in a single forward sweep.
//
// Objects are ordered by the min edge of their projected extent. Each object
// whose min edge is closer than minGap to the furthest trailing edge seen so
// far is pushed forward until the gap is exactly minGap. Objects are only
// ever moved forward and earlier objects are never revisited, so the result
// resolves overlaps in one direction rather than minimizing total movement.
//
// Fewer than two objects yield an empty result.
func Untangle(objs []Object, axis mgl64.Vec3, minGap float64) (Result, error) {
	if err := geom.ValidateDirection("axis", axis); err != nil {
		return Result{}, err
	}
	if err := errors.ValidateGap(minGap); err != nil {
		return Result{}, err
	}
	if len(objs) < 2 {
		return Result{}, nil
	}

	items := make([]positioned, len(objs))
	for i, o := range objs {
		iv := o.Box.Project(axis)
		items[i] = positioned{obj: o, min: iv.Min, max: iv.Max}
	}
	slices.SortStableFunc(items, func(a, b positioned) int { return cmp.Compare(a.min, b.min) })

	var r Result
	trailing := items[0].max
	for _, it := range items[1:] {
		if it.min < trailing+minGap-geom.Epsilon {
			offset := trailing + minGap - it.min
			r.add(it.obj.ID, offset, axis)
			trailing = math.Max(trailing, it.max+offset)
			continue
		}
		trailing = math.Max(trailing, it.max)
	}
	return r, nil
}
