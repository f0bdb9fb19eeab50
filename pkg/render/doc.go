// Package render groups the visualizations of a flock's pedigree.
//
// # Overview
//
// Two renderers are available, both producing a [chart.Chart] that can be
// cached and serialized independently of the output format:
//
//   - Generational tree (in [tree] subpackage)
//   - Node-link diagrams (in [nodelink] subpackage)
//
// # Generational Tree
//
// The [tree] subpackage groups birds into birth-year cohorts, pairs spouses
// inside each row, and routes spouse, parent-child, and family connectors
// between the cards.
//
// Key tree subpackages:
//   - [tree/cohort]: Birth-year grouping
//   - [tree/layout]: Card dimensions and positions
//   - [tree/connect]: Connector routing
//   - [tree/styles]: Palettes and card text
//   - [tree/sink]: Output formats (SVG, JSON)
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage renders the kinship graph with Graphviz.
//
//	dot := nodelink.ToDOT(recs, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [chart.Chart]: github.com/coopcast/flocktree/pkg/chart
// [tree]: github.com/coopcast/flocktree/pkg/render/tree
// [tree/cohort]: github.com/coopcast/flocktree/pkg/render/tree/cohort
// [tree/layout]: github.com/coopcast/flocktree/pkg/render/tree/layout
// [tree/connect]: github.com/coopcast/flocktree/pkg/render/tree/connect
// [tree/styles]: github.com/coopcast/flocktree/pkg/render/tree/styles
// [tree/sink]: github.com/coopcast/flocktree/pkg/render/tree/sink
// [nodelink]: github.com/coopcast/flocktree/pkg/render/nodelink
package render
