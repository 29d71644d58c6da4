package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/matzehuels/viewalign/pkg/errors"
	"github.com/matzehuels/viewalign/pkg/geom"
	"github.com/matzehuels/viewalign/pkg/orient"
)

// Curve types.
const (
	CurveLine = "line"
	CurveArc  = "arc"
)

// Scene is a snapshot of placed objects in one view.
type Scene struct {
	Unit    string      `json:"unit,omitempty"`
	Basis   *geom.Basis `json:"basis,omitempty"`
	Objects []Object    `json:"objects"`
	Tags    []Tag       `json:"tags,omitempty"`
}

// Object is one placed element.
type Object struct {
	ID          string      `json:"id"`
	Min         mgl64.Vec3  `json:"min"`
	Max         mgl64.Vec3  `json:"max"`
	Location    *Location   `json:"location,omitempty"`
	Curve       *Curve      `json:"curve,omitempty"`
	Orientation *mgl64.Vec3 `json:"orientation,omitempty"`
}

// Box returns the object's bounding box.
func (o Object) Box() geom.Box { return geom.Box{Min: o.Min, Max: o.Max} }

// Location is a point placement with a rotation in radians.
type Location struct {
	Point    mgl64.Vec3 `json:"point"`
	Rotation float64    `json:"rotation"`
}

// Curve is the serialized form of a line or an arc.
// Line uses Start and End; Arc uses the remaining fields.
type Curve struct {
	Type       string      `json:"type"`
	Start      *mgl64.Vec3 `json:"start,omitempty"`
	End        *mgl64.Vec3 `json:"end,omitempty"`
	Center     *mgl64.Vec3 `json:"center,omitempty"`
	XAxis      *mgl64.Vec3 `json:"x_axis,omitempty"`
	YAxis      *mgl64.Vec3 `json:"y_axis,omitempty"`
	Radius     float64     `json:"radius,omitempty"`
	StartAngle float64     `json:"start_angle,omitempty"`
	EndAngle   float64     `json:"end_angle,omitempty"`
}

// Tag is an annotation whose head point can be aligned.
type Tag struct {
	ID   string     `json:"id"`
	Head mgl64.Vec3 `json:"head"`
}

// Orient converts c to an engine curve.
func (c Curve) Orient() (orient.Curve, error) {
	switch c.Type {
	case CurveLine:
		if c.Start == nil || c.End == nil {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "line curve needs start and end")
		}
		return orient.Line{Start: *c.Start, End: *c.End}, nil
	case CurveArc:
		if c.Center == nil || c.XAxis == nil || c.YAxis == nil {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "arc curve needs center, x_axis and y_axis")
		}
		return orient.Arc{
			Center: *c.Center,
			XAxis:  *c.XAxis,
			YAxis:  *c.YAxis,
			Radius: c.Radius,
			Start:  c.StartAngle,
			End:    c.EndAngle,
		}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown curve type %q", c.Type)
}

// curveFrom is the inverse of Curve.Orient.
func curveFrom(c orient.Curve) *Curve {
	switch v := c.(type) {
	case orient.Line:
		return &Curve{Type: CurveLine, Start: vecPtr(v.Start), End: vecPtr(v.End)}
	case orient.Arc:
		return &Curve{
			Type:       CurveArc,
			Center:     vecPtr(v.Center),
			XAxis:      vecPtr(v.XAxis),
			YAxis:      vecPtr(v.YAxis),
			Radius:     v.Radius,
			StartAngle: v.Start,
			EndAngle:   v.End,
		}
	}
	return nil
}

func vecPtr(v mgl64.Vec3) *mgl64.Vec3 { return &v }

// Validate checks ids, boxes, curves and the basis. Ids are unique across
// objects and tags together, so every plan move names exactly one element.
func (s Scene) Validate() error {
	if s.Basis != nil {
		if err := s.Basis.Validate(); err != nil {
			return err
		}
	}
	seen := make(map[string]struct{}, len(s.Objects))
	for _, o := range s.Objects {
		if err := errors.ValidateID(o.ID); err != nil {
			return err
		}
		if _, dup := seen[o.ID]; dup {
			return errors.New(errors.ErrCodeInvalidInput, "duplicate object id %q", o.ID)
		}
		seen[o.ID] = struct{}{}
		if !o.Box().Valid() {
			return errors.New(errors.ErrCodeInvalidInput, "object %q has an invalid bounding box", o.ID)
		}
		if o.Curve != nil {
			if _, err := o.Curve.Orient(); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidFormat, err, "object %q", o.ID)
			}
		}
		if o.Location != nil && !geom.IsFinite(o.Location.Point) {
			return errors.New(errors.ErrCodeInvalidInput, "object %q has a non-finite location", o.ID)
		}
	}
	tags := make(map[string]struct{}, len(s.Tags))
	for _, t := range s.Tags {
		if err := errors.ValidateID(t.ID); err != nil {
			return err
		}
		if _, dup := tags[t.ID]; dup {
			return errors.New(errors.ErrCodeInvalidInput, "duplicate tag id %q", t.ID)
		}
		if _, clash := seen[t.ID]; clash {
			return errors.New(errors.ErrCodeInvalidInput, "id %q is used by both an object and a tag", t.ID)
		}
		tags[t.ID] = struct{}{}
		if !geom.IsFinite(t.Head) {
			return errors.New(errors.ErrCodeInvalidInput, "tag %q has a non-finite head", t.ID)
		}
	}
	return nil
}

// Find returns the object with the given id.
func (s Scene) Find(id string) (Object, bool) {
	for _, o := range s.Objects {
		if o.ID == id {
			return o, true
		}
	}
	return Object{}, false
}

// IDs returns the object ids in scene order.
func (s Scene) IDs() []string {
	ids := make([]string, len(s.Objects))
	for i, o := range s.Objects {
		ids[i] = o.ID
	}
	return ids
}

// Clone returns a deep copy of s.
func (s Scene) Clone() Scene {
	out := Scene{Unit: s.Unit}
	if s.Basis != nil {
		b := *s.Basis
		out.Basis = &b
	}
	if s.Objects != nil {
		out.Objects = make([]Object, len(s.Objects))
		for i, o := range s.Objects {
			out.Objects[i] = o.clone()
		}
	}
	if s.Tags != nil {
		out.Tags = append([]Tag(nil), s.Tags...)
	}
	return out
}

func (o Object) clone() Object {
	out := o
	if o.Location != nil {
		l := *o.Location
		out.Location = &l
	}
	if o.Curve != nil {
		c := *o.Curve
		for _, p := range []**mgl64.Vec3{&c.Start, &c.End, &c.Center, &c.XAxis, &c.YAxis} {
			if *p != nil {
				*p = vecPtr(**p)
			}
		}
		out.Curve = &c
	}
	if o.Orientation != nil {
		out.Orientation = vecPtr(*o.Orientation)
	}
	return out
}
