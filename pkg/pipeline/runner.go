package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/viewalign/pkg/cache"
	"github.com/matzehuels/viewalign/pkg/errors"
	"github.com/matzehuels/viewalign/pkg/layout"
	"github.com/matzehuels/viewalign/pkg/observability"
	"github.com/matzehuels/viewalign/pkg/orient"
	"github.com/matzehuels/viewalign/pkg/scene"
	"github.com/matzehuels/viewalign/pkg/settings"
)

// Runner executes engine calls with caching.
//
// The Runner holds no per-call state, so multiple goroutines can share one
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = discardLogger()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Align computes the layout plan for opts.Mode on every object of s.
func (r *Runner) Align(ctx context.Context, s scene.Scene, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	unit, err := sceneUnit(s, opts.Unit)
	if err != nil {
		return nil, err
	}
	gap, err := settings.Convert(opts.MinGap, unit)
	if err != nil {
		return nil, err
	}

	hash, err := sceneHash(s)
	if err != nil {
		return nil, err
	}
	mode := opts.mode
	key := r.Keyer.PlanKey(hash, cache.PlanKeyOpts{Mode: mode.String(), MinGap: gap})

	start := time.Now()
	plan, hit, err := r.cached(ctx, "plan", key, opts.Refresh, cache.TTLPlan, func() (scene.Plan, error) {
		objs := s.LayoutObjects()
		observability.Engine().OnLayoutStart(ctx, mode.String(), len(objs))
		t := time.Now()
		res, err := layout.Run(mode, objs, s.BasisOrWorld(), layout.Options{MinGap: gap})
		observability.Engine().OnLayoutComplete(ctx, mode.String(), res.Len(), time.Since(t), err)
		if err != nil {
			return scene.Plan{}, err
		}
		return scene.LayoutPlan(mode.String(), res), nil
	})
	if err != nil {
		return nil, err
	}

	result := newResult(plan, hash, len(s.Objects), hit, time.Since(start))
	logPlan(opts.Logger, result)
	return result, nil
}

// Orient computes the rotations that give the targets the base object's angle.
func (r *Runner) Orient(ctx context.Context, s scene.Scene, opts OrientOptions) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	objs, err := s.OrientObjects()
	if err != nil {
		return nil, err
	}
	base, targets, err := selectTargets(objs, opts.BaseID, opts.TargetIDs)
	if err != nil {
		return nil, err
	}

	hash, err := sceneHash(s)
	if err != nil {
		return nil, err
	}
	key := r.Keyer.OrientKey(hash, cache.OrientKeyOpts{BaseID: opts.BaseID, TargetIDs: opts.TargetIDs})

	start := time.Now()
	plan, hit, err := r.cached(ctx, "orient", key, opts.Refresh, cache.TTLOrient, func() (scene.Plan, error) {
		observability.Engine().OnOrientStart(ctx, base.ID, len(targets))
		t := time.Now()
		m, err := orient.Match(base, targets, s.BasisOrWorld())
		observability.Engine().OnOrientComplete(ctx, base.ID, len(m.Rotations), len(m.Skipped), time.Since(t), err)
		if err != nil {
			return scene.Plan{}, err
		}
		return scene.OrientPlan(m), nil
	})
	if err != nil {
		return nil, err
	}

	result := newResult(plan, hash, len(targets)+1, hit, time.Since(start))
	logPlan(opts.Logger, result)
	return result, nil
}

// AlignTags aligns every tag head to the first tag's head, horizontally or
// vertically in the scene basis.
func (r *Runner) AlignTags(ctx context.Context, s scene.Scene, opts TagOptions) (*Result, error) {
	opts.SetDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	b := s.BasisOrWorld()
	name, axis := opts.mode()

	hash, err := sceneHash(s)
	if err != nil {
		return nil, err
	}
	key := r.Keyer.PlanKey(hash, cache.PlanKeyOpts{Mode: name, Tags: true})

	start := time.Now()
	plan, hit, err := r.cached(ctx, "plan", key, opts.Refresh, cache.TTLPlan, func() (scene.Plan, error) {
		anchors := s.Anchors()
		observability.Engine().OnLayoutStart(ctx, name, len(anchors))
		t := time.Now()
		res, err := layout.AlignPoints(anchors, b.Axis(axis))
		observability.Engine().OnLayoutComplete(ctx, name, res.Len(), time.Since(t), err)
		if err != nil {
			return scene.Plan{}, err
		}
		return scene.LayoutPlan(name, res), nil
	})
	if err != nil {
		return nil, err
	}

	result := newResult(plan, hash, len(s.Tags), hit, time.Since(start))
	logPlan(opts.Logger, result)
	return result, nil
}

// cached returns the plan stored under key, or computes and stores it.
// Cache read and write failures degrade to a recompute.
func (r *Runner) cached(ctx context.Context, keyType, key string, refresh bool, ttl time.Duration, compute func() (scene.Plan, error)) (scene.Plan, bool, error) {
	if !refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if p, err := scene.UnmarshalPlan(data); err == nil {
				observability.Cache().OnCacheHit(ctx, keyType)
				return p, true, nil
			}
		} else if err != nil {
			r.Logger.Debug("cache read failed", "err", err)
		}
	}
	observability.Cache().OnCacheMiss(ctx, keyType)

	p, err := compute()
	if err != nil {
		return scene.Plan{}, false, err
	}

	if data, err := scene.MarshalPlan(p); err == nil {
		if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
			r.Logger.Debug("cache write failed", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, keyType, len(data))
		}
	}
	return p, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// selectTargets resolves the base and target ids against objs. An empty ids
// list selects every object except the base.
func selectTargets(objs []orient.Object, baseID string, ids []string) (orient.Object, []orient.Object, error) {
	byID := make(map[string]orient.Object, len(objs))
	for _, o := range objs {
		byID[o.ID] = o
	}
	base, ok := byID[baseID]
	if !ok {
		return orient.Object{}, nil, errors.New(errors.ErrCodeNotFound, "base object %q not in scene", baseID)
	}

	var targets []orient.Object
	if len(ids) == 0 {
		for _, o := range objs {
			if o.ID != baseID {
				targets = append(targets, o)
			}
		}
		return base, targets, nil
	}
	for _, id := range ids {
		o, ok := byID[id]
		if !ok {
			return orient.Object{}, nil, errors.New(errors.ErrCodeNotFound, "target object %q not in scene", id)
		}
		targets = append(targets, o)
	}
	return base, targets, nil
}

func sceneHash(s scene.Scene) (string, error) {
	data, err := scene.Marshal(s)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "hash scene")
	}
	return cache.Hash(data), nil
}

func newResult(p scene.Plan, hash string, objects int, hit bool, d time.Duration) *Result {
	return &Result{
		Plan:      p,
		SceneHash: hash,
		CacheHit:  hit,
		Stats: Stats{
			Objects:   objects,
			Moves:     len(p.Moves),
			Rotations: len(p.Rotations),
			Skipped:   len(p.Skipped),
			Duration:  d,
		},
	}
}

// logPlan reports warnings and skips, then a one-line summary.
func logPlan(logger *log.Logger, r *Result) {
	for _, w := range r.Plan.Warnings {
		logger.Warn(w.Message, "code", w.Code)
	}
	for _, s := range r.Plan.Skipped {
		logger.Warn("skipped object", "id", s.ID, "code", s.Code, "reason", s.Reason)
	}
	if r.Plan.Mode == scene.ModeOrient {
		logger.Info("computed rotations",
			"rotations", r.Stats.Rotations,
			"skipped", r.Stats.Skipped,
			"cached", r.CacheHit,
			"duration", r.Stats.Duration)
		return
	}
	logger.Info("computed moves",
		"mode", r.Plan.Mode,
		"moves", r.Stats.Moves,
		"cached", r.CacheHit,
		"duration", r.Stats.Duration)
}
