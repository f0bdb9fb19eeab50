// Package nodelink renders pedigrees as traditional node-link diagrams.
//
// # Overview
//
// This package produces a Graphviz diagram of the flock: one box per
// individual, one small junction point per family, with edges running from
// each parent into the junction and from the junction to each child. It is
// an alternative to the chronological tree for readers who prefer a
// classic pedigree chart.
//
// # Usage
//
// Convert records to DOT, then render to SVG:
//
//	dot := nodelink.ToDOT(recs, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
//   - Detailed: When true, labels include birth date and breed.
//
// # DOT Format
//
// Boxes are bordered with the generation palette (see package styles) and
// individuals of the same generation share a rank. Deceased individuals are
// drawn dashed. References that do not resolve are left out, as in the
// tree renderer.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
