package layout

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/matzehuels/viewalign/pkg/errors"
	"github.com/matzehuels/viewalign/pkg/geom"
)

// positioned pairs an object with its scalar position along the working axis.
type positioned struct {
	obj      Object
	pos      float64
	min, max float64
}

// Distribute keeps the first and last objects (ordered by center along axis)
// fixed and spaces the centers of the objects between them evenly, keeping at
// least minGap between consecutive centers.
//
// Distribute needs at least three objects; fewer is a contract violation
// reported as ErrCodeInvalidArgument. When the span between the outermost
// centers cannot hold (n-1)*minGap, nothing moves and the result carries an
// ErrCodeInsufficientSpace warning.
func Distribute(objs []Object, axis mgl64.Vec3, minGap float64) (Result, error) {
	if err := geom.ValidateDirection("axis", axis); err != nil {
		return Result{}, err
	}
	if len(objs) < 3 {
		return Result{}, errors.New(errors.ErrCodeInvalidArgument, "distribute needs at least 3 objects, got %d", len(objs))
	}
	if err := errors.ValidateGap(minGap); err != nil {
		return Result{}, err
	}

	items := make([]positioned, len(objs))
	for i, o := range objs {
		items[i] = positioned{obj: o, pos: o.Box.Center().Dot(axis)}
	}
	slices.SortStableFunc(items, func(a, b positioned) int { return cmp.Compare(a.pos, b.pos) })

	n := len(items)
	start, end := items[0].pos, items[n-1].pos
	available := end - start
	required := float64(n-1) * minGap

	var r Result
	if available < required {
		r.Warnings = append(r.Warnings, Warning{
			Code:    errors.ErrCodeInsufficientSpace,
			Message: fmt.Sprintf("span %.6g cannot hold %d gaps of %.6g", available, n-1, minGap),
		})
		return r, nil
	}

	spacing := (available - required) / float64(n-1)
	for i := 1; i < n-1; i++ {
		target := start + float64(i)*(spacing+minGap)
		r.add(items[i].obj.ID, target-items[i].pos, axis)
	}
	return r, nil
}
