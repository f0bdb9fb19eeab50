package layout

import (
	"github.com/coopcast/flocktree/pkg/pedigree"
)

// Slot is one unit of a row: a single individual, or a couple when Partner
// is set. A couple occupies two adjacent columns with ID on the left.
type Slot struct {
	ID      string
	Partner string
}

// Couple reports whether the slot holds two individuals.
func (s Slot) Couple() bool { return s.Partner != "" }

// Width returns the number of columns the slot occupies.
func (s Slot) Width() int {
	if s.Couple() {
		return 2
	}
	return 1
}

// Pairer groups the members of one cohort into row slots. Every member must
// appear in exactly one slot. g may be nil when there is no family data.
type Pairer interface {
	Pair(members []pedigree.Individual, g *pedigree.Graph) []Slot
}

// PairerFunc adapts a function to the [Pairer] interface.
type PairerFunc func(members []pedigree.Individual, g *pedigree.Graph) []Slot

// Pair calls f.
func (f PairerFunc) Pair(members []pedigree.Individual, g *pedigree.Graph) []Slot {
	return f(members, g)
}

// NamedPairer is a [Pairer] that identifies itself. Layouts produced by
// strategies with the same name are interchangeable.
type NamedPairer interface {
	Pairer
	Name() string
}

// Named attaches a name to p.
func Named(name string, p Pairer) NamedPairer {
	return namedPairer{Pairer: p, name: name}
}

type namedPairer struct {
	Pairer
	name string
}

func (n namedPairer) Name() string { return n.name }

// GreedyPairer pairs each member with its first unplaced spouse in the same
// cohort, in member order. Members without such a spouse become singles.
type GreedyPairer struct{}

// Pair implements [Pairer].
func (GreedyPairer) Pair(members []pedigree.Individual, g *pedigree.Graph) []Slot {
	inCohort := make(map[string]bool, len(members))
	for _, m := range members {
		inCohort[m.ID] = true
	}

	placed := make(map[string]bool, len(members))
	slots := make([]Slot, 0, len(members))
	for _, m := range members {
		if placed[m.ID] {
			continue
		}
		placed[m.ID] = true

		slot := Slot{ID: m.ID}
		if g != nil {
			for _, s := range g.Spouses(m.ID) {
				if inCohort[s] && !placed[s] {
					slot.Partner = s
					placed[s] = true
					break
				}
			}
		}
		slots = append(slots, slot)
	}
	return slots
}
