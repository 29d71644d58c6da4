package orient

import (
	"github.com/matzehuels/viewalign/pkg/errors"
	"github.com/matzehuels/viewalign/pkg/geom"
)

// Skip records a target that could not be rotated.
type Skip struct {
	ID  string `json:"id"`
	Err error  `json:"-"`
}

// MatchResult is the outcome of Match.
type MatchResult struct {
	// Target is the base object's angle in radians.
	Target float64 `json:"target"`
	// Rotations lists the targets that need to turn.
	Rotations []Rotation `json:"rotations"`
	// Aligned counts targets already at the base angle.
	Aligned int `json:"aligned"`
	// Skipped lists targets without a usable orientation.
	Skipped []Skip `json:"skipped,omitempty"`
}

// Match rotates every target to the base object's angle.
//
// The base must have a computable angle; otherwise Match fails with
// ErrCodeNoOrientation. Targets are de-duplicated by id and the base itself is
// ignored. Targets without an orientation are listed in Skipped and do not
// stop the batch. If no targets remain after filtering, Match fails with
// ErrCodeInsufficientInput.
func Match(base Object, targets []Object, b geom.Basis) (MatchResult, error) {
	if err := b.Validate(); err != nil {
		return MatchResult{}, err
	}
	target, err := Angle(base, b)
	if err != nil {
		return MatchResult{}, errors.Wrap(errors.ErrCodeNoOrientation, err, "base %q has no computable orientation", base.ID)
	}

	seen := map[string]struct{}{base.ID: {}}
	var unique []Object
	for _, t := range targets {
		if _, dup := seen[t.ID]; dup {
			continue
		}
		seen[t.ID] = struct{}{}
		unique = append(unique, t)
	}
	if len(unique) == 0 {
		return MatchResult{}, errors.New(errors.ErrCodeInsufficientInput, "no targets to match besides the base")
	}

	res := MatchResult{Target: target}
	for _, t := range unique {
		rot, needed, err := RotateTo(t, b, target)
		switch {
		case err != nil:
			res.Skipped = append(res.Skipped, Skip{ID: t.ID, Err: err})
		case needed:
			res.Rotations = append(res.Rotations, rot)
		default:
			res.Aligned++
		}
	}
	return res, nil
}
