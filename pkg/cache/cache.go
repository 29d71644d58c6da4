// Package cache stores computed plans so repeated runs on an unchanged scene
// skip the engine.
//
// Backends implement [Cache]: [FileCache] for the CLI, [RedisCache] for the
// HTTP server and [NullCache] when caching is off. Keys come from a [Keyer];
// [ScopedKeyer] namespaces them per tenant.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases the backend.
	Close() error
}

// Default lifetimes for cached entries.
const (
	TTLPlan   = 7 * 24 * time.Hour
	TTLOrient = 7 * 24 * time.Hour
)

// Keyer derives cache keys.
type Keyer interface {
	// PlanKey identifies a layout plan for a scene.
	PlanKey(sceneHash string, opts PlanKeyOpts) string
	// OrientKey identifies an orientation plan for a scene.
	OrientKey(sceneHash string, opts OrientKeyOpts) string
}

// PlanKeyOpts are the inputs that change a layout plan.
type PlanKeyOpts struct {
	Mode   string  `json:"mode"`
	MinGap float64 `json:"min_gap"`
	Tags   bool    `json:"tags,omitempty"`
}

// OrientKeyOpts are the inputs that change an orientation plan.
type OrientKeyOpts struct {
	BaseID    string   `json:"base_id"`
	TargetIDs []string `json:"target_ids,omitempty"`
}

// DefaultKeyer hashes every input into the key.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// PlanKey implements Keyer.
func (DefaultKeyer) PlanKey(sceneHash string, opts PlanKeyOpts) string {
	return hashKey("plan", sceneHash, opts)
}

// OrientKey implements Keyer.
func (DefaultKeyer) OrientKey(sceneHash string, opts OrientKeyOpts) string {
	return hashKey("orient", sceneHash, opts)
}
