package scene

import (
	"github.com/matzehuels/viewalign/pkg/errors"
	"github.com/matzehuels/viewalign/pkg/geom"
	"github.com/matzehuels/viewalign/pkg/layout"
	"github.com/matzehuels/viewalign/pkg/orient"
)

// BasisOrWorld returns the scene basis, or the world XY basis when unset.
func (s Scene) BasisOrWorld() geom.Basis {
	if s.Basis == nil {
		return geom.WorldBasis()
	}
	return *s.Basis
}

// LayoutObjects returns the objects as layout input, in scene order.
func (s Scene) LayoutObjects() []layout.Object {
	out := make([]layout.Object, len(s.Objects))
	for i, o := range s.Objects {
		out[i] = layout.Object{ID: o.ID, Box: o.Box()}
	}
	return out
}

// OrientObjects returns the objects as orientation input, in scene order.
func (s Scene) OrientObjects() ([]orient.Object, error) {
	out := make([]orient.Object, len(s.Objects))
	for i, o := range s.Objects {
		obj, err := o.orient()
		if err != nil {
			return nil, err
		}
		out[i] = obj
	}
	return out, nil
}

func (o Object) orient() (orient.Object, error) {
	obj := orient.Object{ID: o.ID, Box: o.Box()}
	if o.Location != nil {
		obj.Location = &orient.Location{Point: o.Location.Point, Rotation: o.Location.Rotation}
	}
	if o.Curve != nil {
		c, err := o.Curve.Orient()
		if err != nil {
			return orient.Object{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "object %q", o.ID)
		}
		obj.Curve = c
	}
	if o.Orientation != nil {
		v := *o.Orientation
		obj.Orientation = &v
	}
	return obj, nil
}

// Anchors returns the tag heads as layout anchors, in scene order.
func (s Scene) Anchors() []layout.Anchor {
	out := make([]layout.Anchor, len(s.Tags))
	for i, t := range s.Tags {
		out[i] = layout.Anchor{ID: t.ID, Point: t.Head}
	}
	return out
}
