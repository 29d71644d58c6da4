package layout

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/matzehuels/viewalign/pkg/errors"
	"github.com/matzehuels/viewalign/pkg/geom"
)

// Object is an immutable snapshot of one placed element.
type Object struct {
	ID  string
	Box geom.Box
}

// Anchor is a single point belonging to an element, such as a tag head.
type Anchor struct {
	ID    string
	Point mgl64.Vec3
}

// Move is the displacement to apply to one object.
type Move struct {
	ID    string     `json:"id"`
	Delta mgl64.Vec3 `json:"delta"`
}

// Warning is a non-fatal condition reported alongside a result.
type Warning struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// Result lists the moves computed by one operation.
// Objects that need no displacement do not appear in Moves.
type Result struct {
	Moves    []Move    `json:"moves"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// Delta returns the displacement for id and whether the object moves at all.
func (r Result) Delta(id string) (mgl64.Vec3, bool) {
	for _, m := range r.Moves {
		if m.ID == id {
			return m.Delta, true
		}
	}
	return mgl64.Vec3{}, false
}

// Len returns the number of moved objects.
func (r Result) Len() int { return len(r.Moves) }

// Empty reports whether the result moves nothing.
func (r Result) Empty() bool { return len(r.Moves) == 0 }

// HasWarning reports whether the result carries a warning with the given code.
func (r Result) HasWarning(code errors.Code) bool {
	for _, w := range r.Warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}

// add records a move of offset along axis unless it is below tolerance.
func (r *Result) add(id string, offset float64, axis mgl64.Vec3) {
	delta := axis.Mul(offset)
	if geom.IsZero(delta) {
		return
	}
	r.Moves = append(r.Moves, Move{ID: id, Delta: delta})
}

// Apply returns copies of objs with every move in r applied.
// Either all moves are applied or none: if a move names an id that is not in
// objs, Apply returns ErrCodeNotFound and no objects.
func Apply(objs []Object, r Result) ([]Object, error) {
	index := make(map[string][]int, len(objs))
	for i, o := range objs {
		index[o.ID] = append(index[o.ID], i)
	}
	for _, m := range r.Moves {
		if _, ok := index[m.ID]; !ok {
			return nil, errors.New(errors.ErrCodeNotFound, "move references unknown object %q", m.ID)
		}
	}

	out := make([]Object, len(objs))
	copy(out, objs)
	for _, m := range r.Moves {
		for _, i := range index[m.ID] {
			out[i].Box = out[i].Box.Translate(m.Delta)
		}
	}
	return out, nil
}
