// Package layout places birth-date cohorts on a 2-D canvas.
//
// # Rows
//
// Each cohort becomes exactly one horizontal row. Rows are stacked top to
// bottom in cohort order, a fixed [Dimensions.RowHeight] apart, starting at
// [TopMargin]. Within a row the members are grouped into slots by a
// [Pairer]: a couple takes two adjacent slots, a single takes one. The row
// is centered within [NominalWidth], never closer than [MinMargin] to the
// left edge.
//
// # Pairing
//
// [GreedyPairer] is the default strategy. It walks the cohort in order and
// pairs each unplaced member with its first unplaced spouse from the same
// cohort. The result depends on iteration order and is not a maximum
// matching; with three-way spouse overlaps inside one cohort, who ends up
// paired is unspecified. Supply another [Pairer] with [WithPairer] to change
// this without touching row placement.
//
// # Node size
//
// Card sizes come from [Responsive], which maps a viewport width to
// [Dimensions]. A width of 0 means no display and yields the desktop size.
package layout
