package tree

import (
	"github.com/coopcast/flocktree/pkg/chart"
	"github.com/coopcast/flocktree/pkg/pedigree"
	"github.com/coopcast/flocktree/pkg/render/tree/cohort"
	"github.com/coopcast/flocktree/pkg/render/tree/connect"
	"github.com/coopcast/flocktree/pkg/render/tree/layout"
	"github.com/coopcast/flocktree/pkg/render/tree/styles"
)

// Compute runs every stage over recs for a viewport width and returns the
// serialized chart. A collection without individuals yields an empty chart;
// one without families yields a chart without connectors.
func Compute(recs pedigree.Records, viewport int, opts ...layout.Option) chart.Chart {
	if len(recs.Individuals) == 0 {
		return chart.NewEmpty(chart.VizTypeTree, viewport)
	}

	dims := layout.Responsive(viewport)
	narrow := layout.Narrow(viewport)

	g := pedigree.Build(recs.Individuals, recs.Families)
	cohorts := cohort.Group(recs.Individuals)
	l := layout.Build(cohorts, dims, g, opts...)

	c := chart.Chart{
		VizType:    chart.VizTypeTree,
		Viewport:   viewport,
		Node:       dims,
		ViewBox:    l.ViewBox(),
		Connectors: connect.Route(g, l),
	}

	byID := make(map[string]pedigree.Individual, len(recs.Individuals))
	for i, co := range cohorts {
		members := make([]string, len(co.Members))
		for j, m := range co.Members {
			members[j] = m.ID
			byID[m.ID] = m
		}
		c.Cohorts = append(c.Cohorts, chart.Cohort{
			Index:   i,
			DateKey: co.DateKey,
			Display: co.Display,
			Members: members,
		})
	}

	for _, id := range l.Order {
		pos := l.Positions[id]
		ind := byID[id]
		gen, _ := g.Generation(id)
		c.Nodes = append(c.Nodes, chart.Node{
			ID:          id,
			X:           pos.X,
			Y:           pos.Y,
			Cohort:      pos.Cohort,
			Generation:  gen,
			Gender:      ind.Gender,
			Deceased:    ind.IsDeceased,
			Border:      styles.BorderColor(gen, ind.IsDeceased),
			Card:        styles.CardText(ind, narrow),
			SpouseLeft:  pos.SpouseLeft,
			SpouseRight: pos.SpouseRight,
		})
	}
	return c
}
