// Package pipeline runs the layout engine on scenes with caching, logging and
// hooks.
//
// The CLI and the HTTP API both go through a [Runner], so a plan computed by
// one is served from the cache by the other when they share a backend.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.Align(ctx, s, pipeline.Options{
//	    Mode:   "distribute-h",
//	    MinGap: 5, // millimetres
//	})
//	if err != nil {
//	    return err
//	}
//	out, err := scene.ApplyPlan(s, res.Plan)
//
// Gaps are given in millimetres and converted into the scene's unit before
// the engine sees them.
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/viewalign/pkg/errors"
	"github.com/matzehuels/viewalign/pkg/geom"
	"github.com/matzehuels/viewalign/pkg/layout"
	"github.com/matzehuels/viewalign/pkg/scene"
	"github.com/matzehuels/viewalign/pkg/settings"
)

// Tag plan mode names.
const (
	ModeTagsH = "tags-h"
	ModeTagsV = "tags-v"
)

// Options configures Align.
type Options struct {
	// Mode is a layout mode name such as "left" or "untangle-v".
	Mode string `json:"mode"`
	// MinGap is the minimum gap in millimetres.
	MinGap float64 `json:"min_gap_mm,omitempty"`
	// Unit is used for scenes that do not declare one.
	Unit settings.Unit `json:"unit,omitempty"`
	// Refresh skips the cache lookup. The fresh plan is still stored.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	mode layout.Mode
}

// SetDefaults fills in the unit and a discard logger.
func (o *Options) SetDefaults() {
	if o.Unit == "" {
		o.Unit = settings.UnitMM
	}
	if o.Logger == nil {
		o.Logger = discardLogger()
	}
}

// Validate checks the mode, gap and unit.
func (o *Options) Validate() error {
	m, err := layout.ParseMode(o.Mode)
	if err != nil {
		return err
	}
	o.mode = m
	if err := errors.ValidateGap(o.MinGap); err != nil {
		return err
	}
	if _, err := settings.ParseUnit(string(o.Unit)); err != nil {
		return err
	}
	return nil
}

// OrientOptions configures Orient.
type OrientOptions struct {
	// BaseID is the object whose angle the others adopt.
	BaseID string `json:"base_id"`
	// TargetIDs lists the objects to rotate. Empty means every other object.
	TargetIDs []string `json:"target_ids,omitempty"`
	Refresh   bool     `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`
}

// SetDefaults fills in a discard logger.
func (o *OrientOptions) SetDefaults() {
	if o.Logger == nil {
		o.Logger = discardLogger()
	}
}

// Validate checks the ids.
func (o *OrientOptions) Validate() error {
	if err := errors.ValidateID(o.BaseID); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "base id")
	}
	for _, id := range o.TargetIDs {
		if err := errors.ValidateID(id); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "target id")
		}
	}
	return nil
}

// TagOptions configures AlignTags.
type TagOptions struct {
	// Vertical aligns along the basis up direction instead of right.
	Vertical bool `json:"vertical,omitempty"`
	Refresh  bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`
}

// SetDefaults fills in a discard logger.
func (o *TagOptions) SetDefaults() {
	if o.Logger == nil {
		o.Logger = discardLogger()
	}
}

// mode returns the plan mode name and the basis axis to align along.
func (o TagOptions) mode() (string, geom.Axis) {
	if o.Vertical {
		return ModeTagsV, geom.AxisUp
	}
	return ModeTagsH, geom.AxisRight
}

// Result is the outcome of one runner call.
type Result struct {
	// Plan is the computed or cached plan.
	Plan scene.Plan
	// SceneHash is the content hash of the input scene.
	SceneHash string
	// Stats contains counts and timing.
	Stats Stats
	// CacheHit reports whether Plan came from the cache.
	CacheHit bool
}

// Stats contains run statistics.
type Stats struct {
	Objects   int
	Moves     int
	Rotations int
	Skipped   int
	Duration  time.Duration
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

// sceneUnit returns the scene's declared unit or fallback.
func sceneUnit(s scene.Scene, fallback settings.Unit) (settings.Unit, error) {
	if s.Unit == "" {
		return fallback, nil
	}
	return settings.ParseUnit(s.Unit)
}
