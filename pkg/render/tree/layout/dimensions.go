package layout

const (
	// HorizontalGap separates adjacent cards in a row.
	HorizontalGap = 60.0
	// VerticalGap separates consecutive cohort rows.
	VerticalGap = 100.0
	// TopMargin is the y coordinate of the first row.
	TopMargin = 40.0
	// NominalWidth is the canvas width rows are centered in.
	NominalWidth = 1200.0
	// MinMargin is the smallest left offset of a row.
	MinMargin = 40.0
	// Padding surrounds the occupied area in [Layout.ViewBox].
	Padding = 40.0
)

// Viewport breakpoints for [Responsive].
const (
	NarrowBreakpoint = 768
	MediumBreakpoint = 1024
)

// Dimensions is the size of one individual's card.
type Dimensions struct {
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// Responsive returns the card size for a viewport width in pixels.
// Widths of 0 or less are treated as "no display" and get the desktop size.
func Responsive(viewport int) Dimensions {
	switch {
	case viewport <= 0:
		return Dimensions{Width: 240, Height: 120}
	case viewport < NarrowBreakpoint:
		return Dimensions{Width: 180, Height: 100}
	case viewport < MediumBreakpoint:
		return Dimensions{Width: 220, Height: 110}
	default:
		return Dimensions{Width: 240, Height: 120}
	}
}

// Narrow reports whether viewport falls below the narrow breakpoint.
func Narrow(viewport int) bool {
	return viewport > 0 && viewport < NarrowBreakpoint
}

// ColumnWidth is the horizontal distance between adjacent slot origins.
func (d Dimensions) ColumnWidth() float64 { return d.Width + HorizontalGap }

// RowHeight is the vertical distance between consecutive rows.
func (d Dimensions) RowHeight() float64 { return d.Height + VerticalGap }
