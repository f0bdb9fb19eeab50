package pipeline

import (
	"context"
	"fmt"

	"github.com/coopcast/flocktree/pkg/chart"
	"github.com/coopcast/flocktree/pkg/pedigree"
	"github.com/coopcast/flocktree/pkg/render/nodelink"
	"github.com/coopcast/flocktree/pkg/render/tree"
	"github.com/coopcast/flocktree/pkg/render/tree/layout"
	"github.com/coopcast/flocktree/pkg/render/tree/sink"
)

// =============================================================================
// Layout
// =============================================================================

// ComputeChart computes the chart of recs for any visualization type.
// This is the unified entry point for generating serializable chart data.
func ComputeChart(recs pedigree.Records, opts Options) chart.Chart {
	if opts.IsNodelink() {
		return nodelink.Compute(recs, opts.Viewport, nodelink.Options{Detailed: opts.Detailed})
	}
	var layoutOpts []layout.Option
	if opts.Pairer != nil {
		layoutOpts = append(layoutOpts, layout.WithPairer(opts.Pairer))
	}
	return tree.Compute(recs, opts.Viewport, layoutOpts...)
}

// =============================================================================
// Render
// =============================================================================

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, c chart.Chart, opts Options) (map[string][]byte, error) {
	if c.IsNodelink() {
		return renderNodelink(ctx, c, opts)
	}
	return renderTree(c, opts)
}

// renderTree generates tree outputs.
func renderTree(c chart.Chart, opts Options) (map[string][]byte, error) {
	svgOpts := buildSVGOptions(opts)
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(c, svgOpts...)
		case FormatJSON:
			data, err = sink.RenderJSON(c)
		default:
			return nil, fmt.Errorf("unsupported tree format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// renderNodelink generates nodelink outputs. An empty chart has no DOT
// source, so its SVG falls back to the tree sink's empty state.
func renderNodelink(ctx context.Context, c chart.Chart, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			if c.Empty {
				data = sink.RenderSVG(c, buildSVGOptions(opts)...)
			} else {
				data, err = nodelink.RenderSVG(ctx, c.DOT)
			}
		case FormatJSON:
			data, err = chart.Marshal(c)
		default:
			return nil, fmt.Errorf("unsupported nodelink format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// buildSVGOptions builds SVG rendering options.
func buildSVGOptions(opts Options) []sink.SVGOption {
	var svgOpts []sink.SVGOption
	if opts.Title != "" {
		svgOpts = append(svgOpts, sink.WithTitle(opts.Title))
	}
	if opts.NoStyle {
		svgOpts = append(svgOpts, sink.WithoutStyle())
	}
	return svgOpts
}

// RenderFromChartData renders output from serialized chart data.
// This is useful when the chart was computed elsewhere (e.g., cached).
func RenderFromChartData(ctx context.Context, data []byte, opts Options) (map[string][]byte, error) {
	c, err := chart.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("parse chart: %w", err)
	}
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	return Render(ctx, c, opts)
}
