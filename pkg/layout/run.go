package layout

import (
	"github.com/matzehuels/viewalign/pkg/errors"
	"github.com/matzehuels/viewalign/pkg/geom"
)

// Options holds the per-call parameters of Run.
type Options struct {
	// MinGap is the smallest allowed gap for distribute and untangle modes,
	// in the same length units as the boxes.
	MinGap float64
}

// Run validates its inputs and executes mode on objs in basis b.
//
// It fails with ErrCodeInvalidArgument for a malformed basis or a negative
// gap, ErrCodeInvalidInput for empty or duplicate ids and invalid boxes, and
// ErrCodeInsufficientInput when fewer objects are given than the mode needs.
func Run(mode Mode, objs []Object, b geom.Basis, opts Options) (Result, error) {
	if !mode.Valid() {
		return Result{}, errors.New(errors.ErrCodeInvalidMode, "invalid mode %d", int(mode))
	}
	if err := b.Validate(); err != nil {
		return Result{}, err
	}
	if err := errors.ValidateGap(opts.MinGap); err != nil {
		return Result{}, err
	}
	if err := validateObjects(objs); err != nil {
		return Result{}, err
	}
	if len(objs) < mode.MinObjects() {
		return Result{}, errors.InsufficientInput(mode.String(), mode.MinObjects(), len(objs))
	}

	axis := mode.Axis(b)
	switch mode.Kind() {
	case KindEdgeMin:
		return AlignEdge(objs, axis, true)
	case KindEdgeMax:
		return AlignEdge(objs, axis, false)
	case KindCenter:
		return AlignCenter(objs, axis)
	case KindDistribute:
		return Distribute(objs, axis, opts.MinGap)
	case KindUntangle:
		return Untangle(objs, axis, opts.MinGap)
	}
	return Result{}, errors.New(errors.ErrCodeInternal, "mode %s has no handler", mode)
}

func validateObjects(objs []Object) error {
	seen := make(map[string]struct{}, len(objs))
	for _, o := range objs {
		if err := errors.ValidateID(o.ID); err != nil {
			return err
		}
		if _, dup := seen[o.ID]; dup {
			return errors.New(errors.ErrCodeInvalidInput, "duplicate object id %q", o.ID)
		}
		seen[o.ID] = struct{}{}
		if !o.Box.Valid() {
			return errors.New(errors.ErrCodeInvalidInput, "object %q has an invalid bounding box", o.ID)
		}
	}
	return nil
}
