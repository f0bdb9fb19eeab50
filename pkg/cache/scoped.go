package cache

// ScopedKeyer wraps a Keyer with a prefix, giving each dataset served from
// one backend its own namespace.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "flock:backyard:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// A nil inner keyer is replaced by [DefaultKeyer].
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// RecordsKey implements [Keyer].
func (k *ScopedKeyer) RecordsKey(sourceHash string) string {
	return k.prefix + k.inner.RecordsKey(sourceHash)
}

// ChartKey implements [Keyer].
func (k *ScopedKeyer) ChartKey(recordsHash string, opts ChartKeyOpts) string {
	return k.prefix + k.inner.ChartKey(recordsHash, opts)
}

// ArtifactKey implements [Keyer].
func (k *ScopedKeyer) ArtifactKey(chartHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(chartHash, opts)
}
