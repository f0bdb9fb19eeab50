package pedigree

import (
	"slices"

	"github.com/coopcast/flocktree/pkg/dates"
)

// Graph is the derived kinship graph of a [Records] collection.
// All identifiers are [Individual.ID] values.
type Graph struct {
	spouses     map[string][]string
	parents     map[string][]string
	children    map[string][]string
	generations map[string]int
	familyIDs   map[string]string // canonical family key -> originating family ref

	parentOrder []string // keys of children in first-insertion order
}

// FamilyKey returns the canonical key of a family unit: the two parent IDs
// joined by "-" with the lexicographically smaller first, or the single
// parent's ID when only one is known. It returns "" when both are empty.
func FamilyKey(a, b string) string {
	switch {
	case a != "" && b != "":
		if b < a {
			a, b = b, a
		}
		return a + "-" + b
	case a != "":
		return a
	default:
		return b
	}
}

// Build derives the relationship graph from individuals and families.
// References that do not resolve to an individual are skipped.
func Build(individuals []Individual, families []Family) *Graph {
	g := &Graph{
		spouses:     make(map[string][]string),
		parents:     make(map[string][]string),
		children:    make(map[string][]string),
		generations: make(map[string]int),
		familyIDs:   make(map[string]string),
	}

	byRef := make(map[string]string, len(individuals))
	for _, ind := range individuals {
		byRef[ind.Ref()] = ind.ID
	}

	for _, fam := range families {
		husband := byRef[fam.Husband]
		wife := byRef[fam.Wife]

		if husband != "" && wife != "" {
			g.spouses[husband] = append(g.spouses[husband], wife)
			g.spouses[wife] = append(g.spouses[wife], husband)
		}

		for _, ref := range fam.ChildrenIDs {
			child, ok := byRef[ref]
			if !ok || child == "" {
				continue
			}
			if _, seen := g.parents[child]; !seen {
				g.parents[child] = nil
			}
			for _, p := range []string{husband, wife} {
				if p == "" {
					continue
				}
				g.parents[child] = append(g.parents[child], p)
				g.addChild(p, child)
			}
			if key := FamilyKey(husband, wife); key != "" {
				if _, exists := g.familyIDs[key]; !exists {
					g.familyIDs[key] = fam.Ref()
				}
			}
		}
	}

	g.assignGenerations(individuals)
	return g
}

func (g *Graph) addChild(parent, child string) {
	if _, ok := g.children[parent]; !ok {
		g.parentOrder = append(g.parentOrder, parent)
	}
	g.children[parent] = append(g.children[parent], child)
}

// assignGenerations seeds founders by birth-year cohort and propagates
// generations breadth-first. Each individual is assigned at most once.
func (g *Graph) assignGenerations(individuals []Individual) {
	foundersByYear := make(map[int][]string)
	for _, ind := range individuals {
		if len(g.parents[ind.ID]) > 0 {
			continue
		}
		year := dates.Year(ind.BirthDate)
		foundersByYear[year] = append(foundersByYear[year], ind.ID)
	}

	years := make([]int, 0, len(foundersByYear))
	for y := range foundersByYear {
		years = append(years, y)
	}
	slices.Sort(years)

	type entry struct {
		id  string
		gen int
	}
	var queue []entry
	for gen, y := range years {
		for _, id := range foundersByYear[y] {
			if _, done := g.generations[id]; done {
				continue
			}
			g.generations[id] = gen
			queue = append(queue, entry{id, gen})
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, child := range g.children[cur.id] {
			if _, done := g.generations[child]; done {
				continue
			}
			g.generations[child] = cur.gen + 1
			queue = append(queue, entry{child, cur.gen + 1})
		}
	}
}

// Spouses returns the spouses of id in family order.
// The returned slice must not be modified.
func (g *Graph) Spouses(id string) []string { return g.spouses[id] }

// Parents returns the resolved parents of id.
// The returned slice must not be modified.
func (g *Graph) Parents(id string) []string { return g.parents[id] }

// Children returns the resolved children of id.
// The returned slice must not be modified.
func (g *Graph) Children(id string) []string { return g.children[id] }

// ParentsWithChildren returns every individual that has at least one
// resolved child, in the order they were first recorded as a parent.
func (g *Graph) ParentsWithChildren() []string { return slices.Clone(g.parentOrder) }

// Generation returns the generation index of id and whether one was assigned.
func (g *Graph) Generation(id string) (int, bool) {
	gen, ok := g.generations[id]
	return gen, ok
}

// FamilyRef returns the family identifier registered for a canonical
// family key (see [FamilyKey]). The first family to register a key keeps it.
func (g *Graph) FamilyRef(key string) (string, bool) {
	ref, ok := g.familyIDs[key]
	return ref, ok
}

// IsSpouse reports whether a and b are recorded as spouses.
func (g *Graph) IsSpouse(a, b string) bool {
	return slices.Contains(g.spouses[a], b)
}
