package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/coopcast/flocktree/pkg/chart"
	"github.com/coopcast/flocktree/pkg/pedigree"
	"github.com/coopcast/flocktree/pkg/render/tree/layout"
	"github.com/coopcast/flocktree/pkg/render/tree/styles"
)

// Options configures node-link diagram generation.
type Options struct {
	// Detailed adds birth date and breed to node labels.
	// When false, only the name is shown.
	Detailed bool
}

// ToDOT converts pedigree records to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
func ToDOT(recs pedigree.Records, opts Options) string {
	g := pedigree.Build(recs.Individuals, recs.Families)

	byRef := make(map[string]string, len(recs.Individuals))
	for _, ind := range recs.Individuals {
		byRef[ind.Ref()] = ind.ID
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, penwidth=2, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [arrowhead=none, color=\"#9CA3AF\"];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	ranks := make(map[int][]string)
	for _, ind := range recs.Individuals {
		gen, _ := g.Generation(ind.ID)
		ranks[gen] = append(ranks[gen], ind.ID)
		fmt.Fprintf(&buf, "  %q [%s];\n", ind.ID, strings.Join(fmtAttrs(ind, gen, opts.Detailed), ", "))
	}

	buf.WriteString("\n")
	for i, fam := range recs.Families {
		var parents, kids []string
		for _, ref := range []string{fam.Husband, fam.Wife} {
			if id, ok := byRef[ref]; ok && ref != "" {
				parents = append(parents, id)
			}
		}
		for _, ref := range fam.ChildrenIDs {
			if id, ok := byRef[ref]; ok {
				kids = append(kids, id)
			}
		}
		if len(parents)+len(kids) < 2 {
			continue
		}

		junction := "family:" + fam.Ref()
		if fam.Ref() == "" {
			junction = "family:" + strconv.Itoa(i)
		}
		fmt.Fprintf(&buf, "  %q [shape=point, width=0.08, color=%q];\n", junction, styles.Family(fam.Ref()).Start)
		for _, p := range parents {
			fmt.Fprintf(&buf, "  %q -> %q;\n", p, junction)
		}
		for _, k := range kids {
			fmt.Fprintf(&buf, "  %q -> %q;\n", junction, k)
		}
	}

	gens := make([]int, 0, len(ranks))
	for gen := range ranks {
		gens = append(gens, gen)
	}
	slices.Sort(gens)
	for _, gen := range gens {
		ids := make([]string, len(ranks[gen]))
		for i, id := range ranks[gen] {
			ids[i] = strconv.Quote(id)
		}
		fmt.Fprintf(&buf, "  { rank=same; %s; }\n", strings.Join(ids, "; "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(ind pedigree.Individual, detailed bool) string {
	name := ind.FullName
	if name == "" {
		name = ind.ID
	}
	if !detailed {
		return name
	}

	parts := []string{name, styles.GenderEmoji(ind.Gender) + " " + styles.GenderLabel(ind.Gender)}
	if ind.BirthDate != "" {
		parts = append(parts, "born: "+ind.BirthDate)
	}
	if ind.Breed != "" {
		parts = append(parts, "breed: "+ind.Breed)
	}
	return strings.Join(parts, "\n")
}

func fmtAttrs(ind pedigree.Individual, gen int, detailed bool) []string {
	attrs := []string{
		fmt.Sprintf("label=%q", fmtLabel(ind, detailed)),
		fmt.Sprintf("color=%q", styles.BorderColor(gen, ind.IsDeceased)),
	}
	if ind.IsDeceased {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=\"#F3F4F6\"")
	}
	return attrs
}

// Compute returns the nodelink chart of recs. A collection without
// individuals yields an empty chart.
func Compute(recs pedigree.Records, viewport int, opts Options) chart.Chart {
	if len(recs.Individuals) == 0 {
		return chart.NewEmpty(chart.VizTypeNodelink, viewport)
	}
	return chart.Chart{
		VizType:  chart.VizTypeNodelink,
		Viewport: viewport,
		Node:     layout.Responsive(viewport),
		ViewBox:  layout.EmptyViewBox,
		DOT:      ToDOT(recs, opts),
	}
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's fixed-size root element with one
// that scales to its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" class="family-tree-svg" viewBox="0 0 %.2f %.2f" preserveAspectRatio="xMidYMid meet">`, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
