package layout

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/matzehuels/viewalign/pkg/errors"
)

func TestAlignEdgeMin(t *testing.T) {
	objs := []Object{span("a", 2, 3), span("b", -1, 0), span("c", 5, 8)}

	r, err := AlignEdge(objs, axisX, true)
	if err != nil {
		t.Fatalf("AlignEdge() error: %v", err)
	}

	wantDelta(t, r, "a", axisX, -3)
	wantDelta(t, r, "b", axisX, 0)
	wantDelta(t, r, "c", axisX, -6)
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (b already on the edge)", r.Len())
	}
	if _, moved := r.Delta("b"); moved {
		t.Error("b should not appear in moves")
	}
}

func TestAlignEdgeMax(t *testing.T) {
	objs := []Object{rect("a", 0, 0, 1, 2), rect("b", 0, 1, 1, 7), rect("c", 0, -3, 1, 4)}

	r, err := AlignEdge(objs, axisY, false)
	if err != nil {
		t.Fatalf("AlignEdge() error: %v", err)
	}
	wantDelta(t, r, "a", axisY, 5)
	wantDelta(t, r, "b", axisY, 0)
	wantDelta(t, r, "c", axisY, 3)
}

func TestAlignEdgeMinEqualizesEdges(t *testing.T) {
	objs := []Object{span("a", 4.5, 6), span("b", 1.25, 9), span("c", 7, 7.5), span("d", 3, 4)}

	r, err := AlignEdge(objs, axisX, true)
	if err != nil {
		t.Fatalf("AlignEdge() error: %v", err)
	}
	moved := mustApply(t, objs, r)
	for _, o := range moved {
		if got := o.Box.Project(axisX).Min; !approx(got, 1.25) {
			t.Errorf("%s min = %v, want 1.25", o.ID, got)
		}
	}

	again, err := AlignEdge(moved, axisX, true)
	if err != nil {
		t.Fatalf("AlignEdge() second pass error: %v", err)
	}
	if !again.Empty() {
		t.Errorf("second pass moved %d objects, want 0", again.Len())
	}
}

func TestAlignCenter(t *testing.T) {
	objs := []Object{span("a", 0, 2), span("b", 6, 10), span("c", 3, 4)}

	r, err := AlignCenter(objs, axisX)
	if err != nil {
		t.Fatalf("AlignCenter() error: %v", err)
	}
	// Group span is [0, 10], so every center goes to 5.
	wantDelta(t, r, "a", axisX, 4)
	wantDelta(t, r, "b", axisX, -3)
	wantDelta(t, r, "c", axisX, 1.5)

	moved := mustApply(t, objs, r)
	again, _ := AlignCenter(moved, axisX)
	if !again.Empty() {
		t.Errorf("second pass moved %d objects, want 0", again.Len())
	}
}

func TestAlignInsufficientInput(t *testing.T) {
	one := []Object{span("a", 0, 1)}

	if _, err := AlignEdge(one, axisX, true); !errors.Is(err, errors.ErrCodeInsufficientInput) {
		t.Errorf("AlignEdge() error = %v, want %s", err, errors.ErrCodeInsufficientInput)
	}
	if _, err := AlignCenter(nil, axisX); !errors.Is(err, errors.ErrCodeInsufficientInput) {
		t.Errorf("AlignCenter() error = %v, want %s", err, errors.ErrCodeInsufficientInput)
	}
}

func TestAlignAlreadyAligned(t *testing.T) {
	objs := []Object{span("a", 1, 2), span("b", 1, 5)}
	r, err := AlignEdge(objs, axisX, true)
	if err != nil {
		t.Fatalf("AlignEdge() error: %v", err)
	}
	if !r.Empty() {
		t.Errorf("Moves = %v, want none", r.Moves)
	}
}

func TestAlignPoints(t *testing.T) {
	anchors := []Anchor{
		{ID: "t1", Point: mgl64.Vec3{2, 5, 0}},
		{ID: "t2", Point: mgl64.Vec3{7, 1, 0}},
		{ID: "t3", Point: mgl64.Vec3{2, 9, 0}},
	}

	r, err := AlignPoints(anchors, axisX)
	if err != nil {
		t.Fatalf("AlignPoints() error: %v", err)
	}
	wantDelta(t, r, "t2", axisX, -5)
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
	if _, moved := r.Delta("t1"); moved {
		t.Error("first anchor must stay fixed")
	}

	if _, err := AlignPoints(anchors[:1], axisX); !errors.Is(err, errors.ErrCodeInsufficientInput) {
		t.Errorf("AlignPoints() error = %v, want %s", err, errors.ErrCodeInsufficientInput)
	}
}
