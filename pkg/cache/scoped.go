package cache

// ScopedKeyer wraps a Keyer with a prefix so several projects or users can
// share one backend without colliding.
//
//	projectKeyer := NewScopedKeyer(NewDefaultKeyer(), "project:tower-b:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// PlanKey generates a prefixed key for layout plans.
func (k *ScopedKeyer) PlanKey(sceneHash string, opts PlanKeyOpts) string {
	return k.prefix + k.inner.PlanKey(sceneHash, opts)
}

// OrientKey generates a prefixed key for orientation plans.
func (k *ScopedKeyer) OrientKey(sceneHash string, opts OrientKeyOpts) string {
	return k.prefix + k.inner.OrientKey(sceneHash, opts)
}
