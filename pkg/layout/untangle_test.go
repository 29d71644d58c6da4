package layout

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"

	"github.com/matzehuels/viewalign/pkg/geom"
)

func TestUntangleTwoOverlapping(t *testing.T) {
	objs := []Object{span("first", 0, 3), span("second", 1, 4)}

	r, err := Untangle(objs, axisX, 0.5)
	if err != nil {
		t.Fatalf("Untangle() error: %v", err)
	}
	wantDelta(t, r, "second", axisX, 2.5)
	if _, ok := r.Delta("first"); ok {
		t.Error("first object must not move")
	}

	moved := mustApply(t, objs, r)
	iv := moved[1].Box.Project(axisX)
	if !approx(iv.Min, 3.5) || !approx(iv.Max, 6.5) {
		t.Errorf("second interval = %+v, want [3.5, 6.5]", iv)
	}
}

func TestUntangleLeavesCompliantObjects(t *testing.T) {
	objs := []Object{span("a", 0, 1), span("b", 2, 3), span("c", 4.5, 5)}

	r, err := Untangle(objs, axisX, 1)
	if err != nil {
		t.Fatalf("Untangle() error: %v", err)
	}
	if !r.Empty() {
		t.Errorf("Moves = %v, want none", r.Moves)
	}
}

func TestUntangleContainedObject(t *testing.T) {
	// b sits inside a; c starts after b but before a ends.
	objs := []Object{span("a", 0, 10), span("b", 2, 3), span("c", 5, 6)}

	r, err := Untangle(objs, axisX, 0)
	if err != nil {
		t.Fatalf("Untangle() error: %v", err)
	}
	wantDelta(t, r, "b", axisX, 8)
	// After b moves to [10, 11], c must clear 11.
	wantDelta(t, r, "c", axisX, 6)
}

func TestUntangleFewerThanTwo(t *testing.T) {
	for _, objs := range [][]Object{nil, {span("a", 0, 1)}} {
		r, err := Untangle(objs, axisX, 1)
		if err != nil {
			t.Errorf("Untangle(%d objects) error: %v", len(objs), err)
		}
		if !r.Empty() {
			t.Errorf("Untangle(%d objects) moved %d", len(objs), r.Len())
		}
	}
}

func TestUntangleProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const gap = 0.75

	for round := 0; round < 50; round++ {
		objs := make([]Object, 12)
		for i := range objs {
			lo := rng.Float64() * 20
			objs[i] = span(string(rune('a'+i)), lo, lo+0.5+rng.Float64()*4)
		}

		r, err := Untangle(objs, axisX, gap)
		if err != nil {
			t.Fatalf("Untangle() error: %v", err)
		}
		for _, m := range r.Moves {
			if m.Delta.Dot(axisX) < 0 {
				t.Fatalf("round %d: %s moved backwards by %v", round, m.ID, m.Delta)
			}
		}

		moved := mustApply(t, objs, r)
		slices.SortStableFunc(moved, func(a, b Object) int {
			return cmp.Compare(a.Box.Project(axisX).Min, b.Box.Project(axisX).Min)
		})
		trailing := moved[0].Box.Project(axisX).Max
		for _, o := range moved[1:] {
			iv := o.Box.Project(axisX)
			if iv.Min-trailing < gap-geom.Epsilon*10 {
				t.Fatalf("round %d: %s starts %v after trailing edge, want >= %v", round, o.ID, iv.Min-trailing, gap)
			}
			if iv.Max > trailing {
				trailing = iv.Max
			}
		}
	}
}
