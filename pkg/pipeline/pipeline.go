// Package pipeline provides the load → layout → render pipeline for flocktree.
//
// The CLI and the HTTP server both run charts through this package, so a
// dataset renders the same way regardless of entry point.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Decode a GEDCOM file into [pedigree.Records]
//  2. Layout: Compute a [chart.Chart] (tree or nodelink) for a viewport
//  3. Render: Generate output artifacts (SVG, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Source:   "flock.ged",
//	    Viewport: 1280,
//	    Formats:  []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	recs, err := runner.Load(ctx, opts)
//	c, err := runner.Layout(ctx, recs, opts)
//	artifacts, err := runner.Render(ctx, c, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/coopcast/flocktree/pkg/cache"
	"github.com/coopcast/flocktree/pkg/chart"
	"github.com/coopcast/flocktree/pkg/errors"
	"github.com/coopcast/flocktree/pkg/pedigree"
	"github.com/coopcast/flocktree/pkg/render/tree/layout"
	"github.com/coopcast/flocktree/pkg/validate"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultViewport is the viewport width used when none is given. Zero
	// selects the desktop card size.
	DefaultViewport = 0

	// MaxViewport bounds the accepted viewport width in pixels.
	MaxViewport = 10000
)

// DefaultVizType is the default visualization type.
const DefaultVizType = chart.VizTypeTree

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	chart.VizTypeTree:     true,
	chart.VizTypeNodelink: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the visualization pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options
	Source  string `json:"source,omitempty"`
	Refresh bool   `json:"refresh,omitempty"`

	// Layout options
	VizType  string `json:"viz_type,omitempty"`
	Viewport int    `json:"viewport,omitempty"`
	Detailed bool   `json:"detailed,omitempty"` // Nodelink labels include dates and breed

	// Render options
	Formats []string `json:"formats,omitempty"`
	Title   string   `json:"title,omitempty"`
	NoStyle bool     `json:"no_style,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger   `json:"-"`
	Pairer layout.Pairer `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Records is the decoded dataset.
	Records pedigree.Records

	// RecordsHash is the content hash of the records.
	RecordsHash string

	// Chart is the computed chart.
	Chart chart.Chart

	// Validation is the cross-reference check of the records.
	Validation validate.Result

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Individuals int
	Families    int
	LoadTime    time.Duration
	LayoutTime  time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LoadHit   bool // Whether records came from cache
	LayoutHit bool // Whether the chart came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return errors.New(errors.ErrCodeInvalidVizType, "invalid viz_type: %q (must be one of: tree, nodelink)", vizType)
	}
	return nil
}

// ValidateViewport checks that a viewport width is in range.
func ValidateViewport(viewport int) error {
	if viewport < 0 || viewport > MaxViewport {
		return errors.New(errors.ErrCodeInvalidInput, "invalid viewport: %d (must be between 0 and %d)", viewport, MaxViewport)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for loading.
func (o *Options) ValidateForLoad() error {
	if o.Source == "" {
		return errors.New(errors.ErrCodeInvalidInput, "source is required")
	}
	o.setLogger()
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	o.setLogger()
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	return ValidateViewport(o.Viewport)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	o.setLogger()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// IsTree returns true if this is a tree visualization.
func (o *Options) IsTree() bool {
	return o.VizType == "" || o.VizType == chart.VizTypeTree
}

// IsNodelink returns true if this is a nodelink visualization.
func (o *Options) IsNodelink() bool {
	return o.VizType == chart.VizTypeNodelink
}

// ChartKeyOpts returns cache key options for chart computation.
func (o *Options) ChartKeyOpts() cache.ChartKeyOpts {
	name, _ := pairerName(o.Pairer)
	return cache.ChartKeyOpts{
		VizType:  o.VizType,
		Viewport: o.Viewport,
		Detailed: o.Detailed,
		Pairer:   name,
	}
}

// ChartCacheable reports whether computed charts may be cached. Charts of
// custom pairers that do not implement [layout.NamedPairer] are not, since
// two such strategies would share a key.
func (o *Options) ChartCacheable() bool {
	_, ok := pairerName(o.Pairer)
	return ok
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:  format,
		Title:   o.Title,
		NoStyle: o.NoStyle,
	}
}

// pairerName identifies a pairing strategy in cache keys. The default
// strategy has no name so that its keys stay stable. ok is false for
// strategies that cannot be told apart.
func pairerName(p layout.Pairer) (name string, ok bool) {
	switch p := p.(type) {
	case nil, layout.GreedyPairer:
		return "", true
	case layout.NamedPairer:
		if n := p.Name(); n != "" {
			return "named:" + n, true
		}
	}
	return "", false
}
