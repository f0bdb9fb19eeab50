// Package pkg provides the core libraries for flocktree, a family-tree
// engine for poultry breeding records.
//
// # Overview
//
// flocktree reads GEDCOM exports from breeding software, derives the kinship
// graph between birds, and renders it as a generational chart. The pkg
// directory is organized into the following areas:
//
//  1. [gedcom] - Line-oriented GEDCOM decoding into typed records
//  2. [pedigree] - Individuals, families, and the derived kinship graph
//  3. [validate] - Referential integrity checks and the text report
//  4. [render] - Tree and node-link visualizations
//  5. [pipeline] - Orchestration (load → layout → render) with caching
//
// # Architecture
//
// The typical data flow:
//
//	GEDCOM file
//	     ↓
//	[gedcom] package (decode + transform)
//	     ↓
//	[pedigree] package (records + kinship graph)
//	     ↓
//	[render/tree] package (cohorts, positions, connectors)
//	     ↓
//	[chart] document → SVG / JSON
//
// # Quick Start
//
//	recs, err := pipeline.LoadFile("flock.ged")
//	if err != nil {
//	    return err
//	}
//	c := tree.Compute(recs, 1200)
//	svg := sink.RenderSVG(c, sink.WithTitle("Spring hatch"))
//
// # Supporting Packages
//
// [dates] normalizes GEDCOM dates into sortable keys. [cache] stores
// intermediate results on disk or in Redis. [config] loads user settings
// from TOML or YAML. [errors] carries error codes shared by the CLI and the
// HTTP API. [observability] exposes hooks for logging and metrics.
//
// [gedcom]: https://pkg.go.dev/github.com/coopcast/flocktree/pkg/gedcom
// [pedigree]: https://pkg.go.dev/github.com/coopcast/flocktree/pkg/pedigree
// [validate]: https://pkg.go.dev/github.com/coopcast/flocktree/pkg/validate
// [render]: https://pkg.go.dev/github.com/coopcast/flocktree/pkg/render
// [render/tree]: https://pkg.go.dev/github.com/coopcast/flocktree/pkg/render/tree
// [pipeline]: https://pkg.go.dev/github.com/coopcast/flocktree/pkg/pipeline
// [chart]: https://pkg.go.dev/github.com/coopcast/flocktree/pkg/chart
// [dates]: https://pkg.go.dev/github.com/coopcast/flocktree/pkg/dates
// [cache]: https://pkg.go.dev/github.com/coopcast/flocktree/pkg/cache
// [config]: https://pkg.go.dev/github.com/coopcast/flocktree/pkg/config
// [errors]: https://pkg.go.dev/github.com/coopcast/flocktree/pkg/errors
// [observability]: https://pkg.go.dev/github.com/coopcast/flocktree/pkg/observability
package pkg
