package layout

import (
	"math"
	"strconv"

	"github.com/coopcast/flocktree/pkg/pedigree"
	"github.com/coopcast/flocktree/pkg/render/tree/cohort"
)

// EmptyViewBox is the view box of a layout with no positions.
const EmptyViewBox = "0 0 800 600"

// Position is the placement of one individual's card. X and Y are the
// card's top-left corner.
type Position struct {
	ID     string  `json:"id" bson:"id"`
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Cohort int     `json:"cohort" bson:"cohort"`

	HasSpouse   bool   `json:"has_spouse,omitempty" bson:"has_spouse,omitempty"`
	SpouseLeft  string `json:"spouse_left,omitempty" bson:"spouse_left,omitempty"`
	SpouseRight string `json:"spouse_right,omitempty" bson:"spouse_right,omitempty"`
}

// CenterX returns the horizontal center of a card of width w.
func (p Position) CenterX(w float64) float64 { return p.X + w/2 }

// Layout is the result of a placement pass.
type Layout struct {
	Dims      Dimensions
	Positions map[string]Position
	// Order lists individual IDs in placement order: row by row, left to right.
	Order []string
}

// Option configures [Build].
type Option func(*config)

type config struct {
	pairer Pairer
}

// WithPairer replaces the default [GreedyPairer].
func WithPairer(p Pairer) Option {
	return func(c *config) {
		if p != nil {
			c.pairer = p
		}
	}
}

// Build places every member of every cohort, one row per cohort.
// g may be nil, in which case nobody is paired.
func Build(cohorts []cohort.Cohort, dims Dimensions, g *pedigree.Graph, opts ...Option) Layout {
	cfg := config{pairer: GreedyPairer{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	l := Layout{Dims: dims, Positions: make(map[string]Position)}
	col := dims.ColumnWidth()
	y := TopMargin

	for ci, c := range cohorts {
		slots := cfg.pairer.Pair(c.Members, g)

		units := 0
		for _, s := range slots {
			units += s.Width()
		}
		rowWidth := float64(units)*col - HorizontalGap
		x := math.Max(MinMargin, (NominalWidth-rowWidth)/2)

		for _, s := range slots {
			if !s.Couple() {
				l.place(Position{ID: s.ID, X: x, Y: y, Cohort: ci})
				x += col
				continue
			}
			l.place(Position{ID: s.ID, X: x, Y: y, Cohort: ci, HasSpouse: true, SpouseRight: s.Partner})
			x += col
			l.place(Position{ID: s.Partner, X: x, Y: y, Cohort: ci, HasSpouse: true, SpouseLeft: s.ID})
			x += col
		}

		y += dims.RowHeight()
	}
	return l
}

func (l *Layout) place(p Position) {
	if _, dup := l.Positions[p.ID]; !dup {
		l.Order = append(l.Order, p.ID)
	}
	l.Positions[p.ID] = p
}

// Len returns the number of placed individuals.
func (l Layout) Len() int { return len(l.Positions) }

// Position returns the placement of id.
func (l Layout) Position(id string) (Position, bool) {
	p, ok := l.Positions[id]
	return p, ok
}

// Bounds returns the smallest rectangle enclosing every card.
// ok is false when nothing was placed.
func (l Layout) Bounds() (minX, minY, maxX, maxY float64, ok bool) {
	if len(l.Positions) == 0 {
		return 0, 0, 0, 0, false
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range l.Positions {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X+l.Dims.Width)
		maxY = math.Max(maxY, p.Y+l.Dims.Height)
	}
	return minX, minY, maxX, maxY, true
}

// ViewBox returns the SVG view box covering all cards plus [Padding] on
// every side, as "minX minY width height". An empty layout returns
// [EmptyViewBox].
func (l Layout) ViewBox() string {
	minX, minY, maxX, maxY, ok := l.Bounds()
	if !ok {
		return EmptyViewBox
	}
	return num(minX-Padding) + " " + num(minY-Padding) + " " +
		num(maxX-minX+2*Padding) + " " + num(maxY-minY+2*Padding)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
