// Package connect derives connector geometry between placed cards.
//
// Three kinds of connector are produced:
//
//   - [KindSpouse]: a horizontal segment between the facing edges of two
//     spouses placed side by side.
//   - [KindFamily]: a bracket under a two-parent couple, joining the
//     parents' bottom centers at the junction bar.
//   - [KindParentChild]: one path per child. For a two-parent family this
//     is an elbow from the child's top center up to the junction bar and
//     across to the couple's midpoint, then up to the parents' bottom edge.
//     For a single parent it is a vertical S-curve from the parent's
//     bottom center to the child's top center.
//
// Every connector carries the canonical family key (see
// [pedigree.FamilyKey]) and the family identifier registered for it, or
// [DefaultFamily] when none is known, for color lookup.
package connect

import (
	"math"
	"strconv"
	"strings"

	"github.com/coopcast/flocktree/pkg/pedigree"
	"github.com/coopcast/flocktree/pkg/render/tree/layout"
)

// Kind classifies a connector.
type Kind string

const (
	KindSpouse      Kind = "spouse"
	KindParentChild Kind = "parent-child"
	KindFamily      Kind = "family-connector"
)

// DefaultFamily is the family ID of connectors whose key has no
// registered family.
const DefaultFamily = "default"

const (
	// SameRowEpsilon is the largest vertical offset at which two cards are
	// considered to share a row.
	SameRowEpsilon = 10.0
	// BarOffset is the distance from the parents' bottom edge to the
	// junction bar of a two-parent family.
	BarOffset = 20.0
)

// Connector is one renderable path.
type Connector struct {
	ID        string `json:"id" bson:"id"`
	Kind      Kind   `json:"kind" bson:"kind"`
	FamilyKey string `json:"family_key" bson:"family_key"`
	FamilyID  string `json:"family_id" bson:"family_id"`
	Path      string `json:"path" bson:"path"`
}

// Route computes the connectors of a placed tree. It returns nil when g is
// nil. Individuals missing from l are skipped.
func Route(g *pedigree.Graph, l layout.Layout) []Connector {
	if g == nil || l.Len() == 0 {
		return nil
	}
	r := router{g: g, l: l, w: l.Dims.Width, h: l.Dims.Height}
	r.spouses()
	r.families()
	return r.out
}

type router struct {
	g    *pedigree.Graph
	l    layout.Layout
	w, h float64
	out  []Connector
}

func (r *router) familyID(key string) string {
	if ref, ok := r.g.FamilyRef(key); ok && ref != "" {
		return ref
	}
	return DefaultFamily
}

func (r *router) spouses() {
	for _, id := range r.l.Order {
		left := r.l.Positions[id]
		if left.SpouseRight == "" {
			continue
		}
		right, ok := r.l.Position(left.SpouseRight)
		if !ok {
			continue
		}
		key := pedigree.FamilyKey(left.ID, right.ID)
		y := left.Y + r.h/2
		r.out = append(r.out, Connector{
			ID:        "spouse-" + key,
			Kind:      KindSpouse,
			FamilyKey: key,
			FamilyID:  r.familyID(key),
			Path:      line(left.X+r.w, y, right.X, y),
		})
	}
}

// coResident returns the first spouse of id placed in the same row.
func (r *router) coResident(id string, pos layout.Position) (string, bool) {
	for _, s := range r.g.Spouses(id) {
		sp, ok := r.l.Position(s)
		if ok && math.Abs(sp.Y-pos.Y) < SameRowEpsilon {
			return s, true
		}
	}
	return "", false
}

func (r *router) families() {
	seen := make(map[string]bool)
	for _, parent := range r.g.ParentsWithChildren() {
		pos, ok := r.l.Position(parent)
		if !ok {
			continue
		}

		parents := []layout.Position{pos}
		key := parent
		if spouse, ok := r.coResident(parent, pos); ok {
			key = pedigree.FamilyKey(parent, spouse)
			parents = append(parents, r.l.Positions[spouse])
		}
		if seen[key] {
			continue
		}
		seen[key] = true

		var kids []layout.Position
		for _, c := range r.g.Children(parent) {
			if cp, ok := r.l.Position(c); ok {
				kids = append(kids, cp)
			}
		}
		if len(kids) == 0 {
			continue
		}

		if len(parents) == 2 {
			r.twoParents(key, parents[0], parents[1], kids)
		} else {
			r.singleParent(key, parent, parents[0], kids)
		}
	}
}

func (r *router) twoParents(key string, a, b layout.Position, kids []layout.Position) {
	left, right := a, b
	if b.X < a.X {
		left, right = b, a
	}
	bottom := a.Y + r.h
	bar := bottom + BarOffset
	mid := (left.X + right.X + r.w) / 2

	r.out = append(r.out, Connector{
		ID:        "family-connector-" + key,
		Kind:      KindFamily,
		FamilyKey: key,
		FamilyID:  r.familyID(key),
		Path: path(
			move(left.CenterX(r.w), bottom),
			to(left.CenterX(r.w), bar),
			to(right.CenterX(r.w), bar),
			to(right.CenterX(r.w), bottom),
		),
	})

	for _, kid := range kids {
		cx := kid.CenterX(r.w)
		r.out = append(r.out, Connector{
			ID:        "family-" + key + "-" + kid.ID,
			Kind:      KindParentChild,
			FamilyKey: key,
			FamilyID:  r.familyID(key),
			Path: path(
				move(cx, kid.Y),
				to(cx, bar),
				to(mid, bar),
				to(mid, bottom),
			),
		})
	}
}

func (r *router) singleParent(key, parent string, pos layout.Position, kids []layout.Position) {
	x0, y0 := pos.CenterX(r.w), pos.Y+r.h
	for _, kid := range kids {
		r.out = append(r.out, Connector{
			ID:        "parent-child-" + parent + "-" + kid.ID,
			Kind:      KindParentChild,
			FamilyKey: key,
			FamilyID:  r.familyID(key),
			Path:      curve(x0, y0, kid.CenterX(r.w), kid.Y),
		})
	}
}

// ============================================================================
// Path helpers
// ============================================================================

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func move(x, y float64) string { return "M " + num(x) + " " + num(y) }

func to(x, y float64) string { return "L " + num(x) + " " + num(y) }

func path(cmds ...string) string { return strings.Join(cmds, " ") }

func line(x0, y0, x1, y1 float64) string { return path(move(x0, y0), to(x1, y1)) }

// curve is a vertical cubic link: both control points sit at the
// vertical midpoint, directly above and below the endpoints.
func curve(x0, y0, x1, y1 float64) string {
	ym := num((y0 + y1) / 2)
	return "M" + num(x0) + "," + num(y0) +
		"C" + num(x0) + "," + ym + "," + num(x1) + "," + ym + "," + num(x1) + "," + num(y1)
}
