package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/coopcast/flocktree/pkg/cache"
	"github.com/coopcast/flocktree/pkg/chart"
	"github.com/coopcast/flocktree/pkg/observability"
	"github.com/coopcast/flocktree/pkg/pedigree"
	"github.com/coopcast/flocktree/pkg/validate"
)

// Cache key types reported to observability hooks.
const (
	keyTypeRecords  = "records"
	keyTypeChart    = "chart"
	keyTypeArtifact = "artifact"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
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
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → layout → render pipeline with caching.
// The records are also cross-reference checked; problems are reported in
// [Result.Validation] and never stop the run.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	recs, loadHit, err := r.LoadWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Records = recs
	result.RecordsHash = RecordsHash(recs)
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.Individuals = len(recs.Individuals)
	result.Stats.Families = len(recs.Families)
	result.CacheInfo.LoadHit = loadHit
	result.Validation = validate.Validate(recs)

	r.Logger.Info("loaded records",
		"individuals", result.Stats.Individuals,
		"families", result.Stats.Families,
		"duration", result.Stats.LoadTime)
	if !result.Validation.IsValid {
		r.Logger.Warn("records have reference errors", "errors", len(result.Validation.Errors))
	}

	// Stage 2: Layout
	layoutStart := time.Now()
	c, layoutHit, err := r.LayoutWithCacheInfo(ctx, recs, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Chart = c
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed chart",
		"viz_type", c.VizType,
		"nodes", len(c.Nodes),
		"connectors", len(c.Connectors),
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, c, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LoadWithCacheInfo decodes the source file with caching and returns cache hit info.
// Records are keyed by the hash of the file bytes, so an edited file never
// hits a stale entry.
func (r *Runner) LoadWithCacheInfo(ctx context.Context, opts Options) (pedigree.Records, bool, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return pedigree.Records{}, false, err
	}
	r.applyLogger(&opts)

	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, opts.Source)
	start := time.Now()

	recs, hit, err := r.load(ctx, opts)
	hooks.OnLoadComplete(ctx, opts.Source, len(recs.Individuals), len(recs.Families), time.Since(start), err)
	return recs, hit, err
}

func (r *Runner) load(ctx context.Context, opts Options) (pedigree.Records, bool, error) {
	data, err := ReadSource(opts.Source)
	if err != nil {
		return pedigree.Records{}, false, err
	}
	cacheKey := r.Keyer.RecordsKey(cache.Hash(data))

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if cached, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var recs pedigree.Records
			if err := json.Unmarshal(cached, &recs); err == nil {
				observability.Cache().OnCacheHit(ctx, keyTypeRecords)
				return recs, true, nil // Cache hit
			}
		}
		observability.Cache().OnCacheMiss(ctx, keyTypeRecords)
	}

	recs, err := Decode(data)
	if err != nil {
		return pedigree.Records{}, false, fmt.Errorf("%s: %w", opts.Source, err)
	}

	if encoded, err := json.Marshal(recs); err == nil {
		r.set(ctx, cacheKey, keyTypeRecords, encoded, cache.TTLRecords)
	}

	return recs, false, nil // Cache miss
}

// Load is a convenience wrapper that calls LoadWithCacheInfo and discards the cache hit info.
func (r *Runner) Load(ctx context.Context, opts Options) (pedigree.Records, error) {
	recs, _, err := r.LoadWithCacheInfo(ctx, opts)
	return recs, err
}

// LayoutWithCacheInfo computes a chart with caching and returns cache hit info.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, recs pedigree.Records, opts Options) (chart.Chart, bool, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return chart.Chart{}, false, err
	}
	r.applyLogger(&opts)

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, opts.VizType, len(recs.Individuals))
	start := time.Now()

	cacheable := opts.ChartCacheable()
	cacheKey := r.Keyer.ChartKey(RecordsHash(recs), opts.ChartKeyOpts())

	// Try cache first
	if cacheable && !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			cached, err := chart.Unmarshal(data)
			if err == nil {
				observability.Cache().OnCacheHit(ctx, keyTypeChart)
				hooks.OnLayoutComplete(ctx, opts.VizType, time.Since(start), nil)
				return cached, true, nil // Cache hit
			}
			// If deserialization fails, fall through to recompute
		}
		observability.Cache().OnCacheMiss(ctx, keyTypeChart)
	}

	c := ComputeChart(recs, opts)

	// Cache the result
	if !cacheable {
		r.Logger.Debug("chart not cached: pairer has no name", "pairer", fmt.Sprintf("%T", opts.Pairer))
	} else if data, err := chart.Marshal(c); err == nil {
		r.set(ctx, cacheKey, keyTypeChart, data, cache.TTLChart)
	}

	hooks.OnLayoutComplete(ctx, opts.VizType, time.Since(start), nil)
	return c, false, nil // Cache miss
}

// Layout is a convenience wrapper that calls LayoutWithCacheInfo and discards the cache hit info.
func (r *Runner) Layout(ctx context.Context, recs pedigree.Records, opts Options) (chart.Chart, error) {
	c, _, err := r.LayoutWithCacheInfo(ctx, recs, opts)
	return c, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, c chart.Chart, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, hit, err := r.render(ctx, c, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, hit, err
}

func (r *Runner) render(ctx context.Context, c chart.Chart, opts Options) (map[string][]byte, bool, error) {
	// Compute cache key from chart data
	chartData, err := chart.Marshal(c)
	if err != nil {
		return nil, false, fmt.Errorf("serialize chart for cache key: %w", err)
	}
	chartHash := cache.Hash(chartData)

	// Try to get all formats from cache
	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(chartHash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, cacheKey)
			if err != nil || !hit {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, keyTypeArtifact)
			return artifacts, true, nil // All artifacts from cache
		}
		observability.Cache().OnCacheMiss(ctx, keyTypeArtifact)
	}

	// Render all formats
	rendered, err := Render(ctx, c, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(chartHash, opts.ArtifactKeyOpts(format))
		r.set(ctx, cacheKey, keyTypeArtifact, data, cache.TTLArtifact)
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, c chart.Chart, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, c, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// set stores data and reports the write. Cache failures are logged and
// otherwise ignored; the pipeline result does not depend on them.
func (r *Runner) set(ctx context.Context, key, keyType string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Debug("cache write failed", "key", key, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// RecordsHash returns the content hash of recs used in chart cache keys.
func RecordsHash(recs pedigree.Records) string {
	data, err := json.Marshal(recs)
	if err != nil {
		return ""
	}
	return cache.Hash(data)
}
