// Package tree is the root of the chronological family tree renderer.
//
// Rendering is split into stages, each in its own subpackage:
//
//   - [cohort]: group individuals into birth-date cohorts, one row each
//   - [layout]: place cohorts row by row, pairing spouses side by side
//   - [connect]: route spouse and parent-child connector paths
//   - [styles]: palettes, node sizing and card text rules
//   - [sink]: write a computed chart as SVG or JSON
//
// Every stage is a pure function of its inputs. Nothing is cached between
// calls, so concurrent renders with different inputs never interfere.
//
// [cohort]: github.com/coopcast/flocktree/pkg/render/tree/cohort
// [layout]: github.com/coopcast/flocktree/pkg/render/tree/layout
// [connect]: github.com/coopcast/flocktree/pkg/render/tree/connect
// [styles]: github.com/coopcast/flocktree/pkg/render/tree/styles
// [sink]: github.com/coopcast/flocktree/pkg/render/tree/sink
package tree
