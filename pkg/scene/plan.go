package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/matzehuels/viewalign/pkg/errors"
	"github.com/matzehuels/viewalign/pkg/geom"
	"github.com/matzehuels/viewalign/pkg/layout"
	"github.com/matzehuels/viewalign/pkg/orient"
)

// Plan is the serialized outcome of one engine call.
type Plan struct {
	Mode      string            `json:"mode"`
	Moves     []layout.Move     `json:"moves,omitempty"`
	Rotations []orient.Rotation `json:"rotations,omitempty"`
	Warnings  []layout.Warning  `json:"warnings,omitempty"`
	Skipped   []Skip            `json:"skipped,omitempty"`
}

// Skip is an object the engine left alone, with the reason.
type Skip struct {
	ID     string      `json:"id"`
	Code   errors.Code `json:"code"`
	Reason string      `json:"reason"`
}

// ModeOrient names plans produced by orientation matching.
const ModeOrient = "orient"

// LayoutPlan wraps a layout result.
func LayoutPlan(mode string, r layout.Result) Plan {
	return Plan{Mode: mode, Moves: r.Moves, Warnings: r.Warnings}
}

// OrientPlan wraps a match result.
func OrientPlan(r orient.MatchResult) Plan {
	p := Plan{Mode: ModeOrient, Rotations: r.Rotations}
	for _, s := range r.Skipped {
		p.Skipped = append(p.Skipped, Skip{
			ID:     s.ID,
			Code:   errors.GetCode(s.Err),
			Reason: errors.UserMessage(s.Err),
		})
	}
	return p
}

// Empty reports whether the plan changes nothing.
func (p Plan) Empty() bool { return len(p.Moves) == 0 && len(p.Rotations) == 0 }

// ApplyPlan returns a copy of s with every move and rotation in p applied.
//
// Moves may name objects or tags; rotations name objects. Every id is
// checked before anything changes, so a plan with an unknown id fails with
// ErrCodeNotFound and s is left untouched. A move whose id names both an
// object and a tag fails with ErrCodeInvalidInput.
func ApplyPlan(s Scene, p Plan) (Scene, error) {
	objects := make(map[string]int, len(s.Objects))
	for i, o := range s.Objects {
		objects[o.ID] = i
	}
	tags := make(map[string]int, len(s.Tags))
	for i, t := range s.Tags {
		tags[t.ID] = i
	}

	for _, m := range p.Moves {
		_, isObj := objects[m.ID]
		_, isTag := tags[m.ID]
		if !isObj && !isTag {
			return Scene{}, errors.New(errors.ErrCodeNotFound, "move references unknown id %q", m.ID)
		}
		if isObj && isTag {
			return Scene{}, errors.New(errors.ErrCodeInvalidInput, "move id %q names both an object and a tag", m.ID)
		}
	}
	for _, r := range p.Rotations {
		if _, ok := objects[r.ID]; !ok {
			return Scene{}, errors.New(errors.ErrCodeNotFound, "rotation references unknown object %q", r.ID)
		}
		if _, ok := geom.Unit(r.Axis); !ok {
			return Scene{}, errors.New(errors.ErrCodeInvalidArgument, "rotation of %q has a zero axis", r.ID)
		}
	}

	out := s.Clone()
	for _, m := range p.Moves {
		if i, ok := objects[m.ID]; ok {
			out.Objects[i] = translate(out.Objects[i], m.Delta)
		} else {
			i := tags[m.ID]
			out.Tags[i].Head = out.Tags[i].Head.Add(m.Delta)
		}
	}
	for _, r := range p.Rotations {
		i := objects[r.ID]
		out.Objects[i] = rotate(out.Objects[i], r)
	}
	return out, nil
}

func translate(o Object, d mgl64.Vec3) Object {
	o.Min = o.Min.Add(d)
	o.Max = o.Max.Add(d)
	if o.Location != nil {
		o.Location.Point = o.Location.Point.Add(d)
	}
	if o.Curve != nil {
		o.Curve = transformCurve(o.Curve,
			func(p mgl64.Vec3) mgl64.Vec3 { return p.Add(d) },
			func(v mgl64.Vec3) mgl64.Vec3 { return v })
	}
	return o
}

func rotate(o Object, r orient.Rotation) Object {
	axis, _ := geom.Unit(r.Axis)
	q := mgl64.QuatRotate(r.Angle, axis)
	dir := func(v mgl64.Vec3) mgl64.Vec3 { return q.Rotate(v) }
	point := func(p mgl64.Vec3) mgl64.Vec3 { return r.Pivot.Add(q.Rotate(p.Sub(r.Pivot))) }

	corners := o.Box().Corners()
	for i := range corners {
		corners[i] = point(corners[i])
	}
	b := geom.BoundsOf(corners[:]...)
	o.Min, o.Max = b.Min, b.Max

	if o.Location != nil {
		o.Location.Point = point(o.Location.Point)
		o.Location.Rotation = orient.NormalizeAngle(o.Location.Rotation + r.Angle)
	}
	if o.Curve != nil {
		o.Curve = transformCurve(o.Curve, point, dir)
	}
	if o.Orientation != nil {
		v := dir(*o.Orientation)
		o.Orientation = &v
	}
	return o
}

// transformCurve maps c through the engine curve's Transform. Curves that
// fail to convert were rejected by Validate and are returned unchanged.
func transformCurve(c *Curve, point, dir func(mgl64.Vec3) mgl64.Vec3) *Curve {
	oc, err := c.Orient()
	if err != nil {
		return c
	}
	return curveFrom(oc.Transform(point, dir))
}
