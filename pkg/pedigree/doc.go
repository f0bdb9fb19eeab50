// Package pedigree models individuals and families and derives the kinship
// graph used to lay out a family tree.
//
// # Records
//
// [Individual] and [Family] mirror the flat records produced from a GEDCOM
// file. Families reference individuals (and individuals reference families)
// by GEDCOM identifier. References are not required to resolve.
//
// # Relationship Graph
//
// [Build] turns a [Records] collection into an immutable [Graph]:
//
//	g := pedigree.Build(recs.Individuals, recs.Families)
//	g.Spouses("I1")     // symmetric spouse adjacency
//	g.Parents("I3")     // 0-2 resolved parents
//	g.Children("I1")    // resolved children
//	g.Generation("I3")  // generation index
//
// Unresolved husband, wife, or child references are skipped silently so that
// a layout can always be produced from an inconsistent dataset. Reporting
// those references is the job of package validate; the two concerns are kept
// apart on purpose and should not be merged.
//
// # Generations
//
// Individuals without resolved parents are founders. Founders are bucketed by
// the first four-digit year of their birth date (0 when absent); distinct
// years in ascending order receive generation 0, 1, 2, ... A breadth-first
// walk from all founders then assigns parent generation + 1 to each child the
// first time it is reached.
//
// # Concurrency
//
// A Graph is never mutated after Build returns and is safe for concurrent
// reads.
package pedigree
