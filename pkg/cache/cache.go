// Package cache provides the storage layer behind the rendering pipeline.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under a directory, for the CLI
//   - [RedisCache]: a shared Redis instance, for the HTTP server
//   - [NullCache]: stores nothing, used when caching is disabled
//
// All backends implement [Cache]. A miss is reported as hit == false with a
// nil error; errors are reserved for backend failures, and callers treat
// those as misses too.
//
// # Keys
//
// A [Keyer] derives keys for each pipeline stage from content hashes (see
// [Hash]) and the options that influence the stage's output. Changing any
// option or the input bytes yields a different key, so entries never need
// explicit invalidation. [ScopedKeyer] prefixes every key to separate
// datasets sharing one backend.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys.
type Cache interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases the backend.
	Close() error
}

// Entry lifetimes per pipeline stage.
const (
	TTLRecords  = 24 * time.Hour
	TTLChart    = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// NullCache is a no-op cache that never stores anything.
type NullCache struct{}

// NewNullCache creates a null cache.
func NewNullCache() Cache { return NullCache{} }

// Get always reports a miss.
func (NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

// Set discards data.
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

// Delete does nothing.
func (NullCache) Delete(context.Context, string) error { return nil }

// Close does nothing.
func (NullCache) Close() error { return nil }

var _ Cache = NullCache{}

// fixedTTL overrides the lifetime of every entry written through it.
type fixedTTL struct {
	Cache
	ttl time.Duration
}

// WithTTL wraps c so that every Set uses ttl instead of the stage default.
// A ttl of zero or less returns c unchanged.
func WithTTL(c Cache, ttl time.Duration) Cache {
	if ttl <= 0 {
		return c
	}
	return fixedTTL{Cache: c, ttl: ttl}
}

// Set stores data with the fixed lifetime.
func (f fixedTTL) Set(ctx context.Context, key string, data []byte, _ time.Duration) error {
	return f.Cache.Set(ctx, key, data, f.ttl)
}
