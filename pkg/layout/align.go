package layout

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/matzehuels/viewalign/pkg/errors"
	"github.com/matzehuels/viewalign/pkg/geom"
)

// AlignEdge moves every object so that its min edge (useMin) or max edge
// along axis lines up with the group's extreme edge: the smallest min or the
// largest max. axis must be a finite unit vector; anything else is rejected with
// ErrCodeInvalidArgument.
func AlignEdge(objs []Object, axis mgl64.Vec3, useMin bool) (Result, error) {
	if err := geom.ValidateDirection("axis", axis); err != nil {
		return Result{}, err
	}
	if len(objs) < 2 {
		return Result{}, errors.InsufficientInput("edge alignment", 2, len(objs))
	}

	edge := func(o Object) float64 {
		iv := o.Box.Project(axis)
		if useMin {
			return iv.Min
		}
		return iv.Max
	}

	target := edge(objs[0])
	for _, o := range objs[1:] {
		if useMin {
			target = math.Min(target, edge(o))
		} else {
			target = math.Max(target, edge(o))
		}
	}

	var r Result
	for _, o := range objs {
		r.add(o.ID, target-edge(o), axis)
	}
	return r, nil
}

// AlignCenter moves every object so that its center along axis sits at the
// midpoint of the group's overall span.
func AlignCenter(objs []Object, axis mgl64.Vec3) (Result, error) {
	if err := geom.ValidateDirection("axis", axis); err != nil {
		return Result{}, err
	}
	if len(objs) < 2 {
		return Result{}, errors.InsufficientInput("center alignment", 2, len(objs))
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, o := range objs {
		iv := o.Box.Project(axis)
		lo = math.Min(lo, iv.Min)
		hi = math.Max(hi, iv.Max)
	}
	target := (lo + hi) * 0.5

	var r Result
	for _, o := range objs {
		r.add(o.ID, target-o.Box.Center().Dot(axis), axis)
	}
	return r, nil
}

// AlignPoints moves every anchor so that its position along axis matches the
// first anchor's. The first anchor never moves.
func AlignPoints(anchors []Anchor, axis mgl64.Vec3) (Result, error) {
	if err := geom.ValidateDirection("axis", axis); err != nil {
		return Result{}, err
	}
	if len(anchors) < 2 {
		return Result{}, errors.InsufficientInput("point alignment", 2, len(anchors))
	}

	fixed := anchors[0].Point.Dot(axis)
	var r Result
	for _, a := range anchors[1:] {
		r.add(a.ID, fixed-a.Point.Dot(axis), axis)
	}
	return r, nil
}
