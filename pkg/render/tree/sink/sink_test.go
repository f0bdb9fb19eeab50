package sink

import (
	"strings"
	"testing"

	"github.com/coopcast/flocktree/pkg/chart"
	"github.com/coopcast/flocktree/pkg/pedigree"
	"github.com/coopcast/flocktree/pkg/render/tree"
)

func records() pedigree.Records {
	return pedigree.Records{
		Individuals: []pedigree.Individual{
			{ID: "A", FullName: "Big Red", Gender: pedigree.GenderMale, BirthDate: "2020"},
			{ID: "B", FullName: "Henny & Penny", Gender: pedigree.GenderFemale, BirthDate: "2020", IsDeceased: true},
			{ID: "C", FullName: "Chick", BirthDate: "2021", Notes: []string{"Fluffy"}},
		},
		Families: []pedigree.Family{{ID: "F1", Husband: "A", Wife: "B", ChildrenIDs: []string{"C"}}},
	}
}

func TestRenderSVG(t *testing.T) {
	c := tree.Compute(records(), 1280)
	svg := string(RenderSVG(c, WithTitle("Flock")))

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg"`,
		`viewBox="` + c.ViewBox + `"`,
		`<title>Flock</title>`,
		`id="connection-gradient-F1"`,
		`id="connection-gradient-default"`,
		`class="connection connection-parent-child connection-family-F1"`,
		`stroke="url(#connection-gradient-F1)"`,
		`id="node-A"`,
		`Henny &amp; Penny`,
		`family-node-content deceased`,
		`📝 Fluffy`,
		"</svg>",
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
	if strings.Count(svg, `class="family-node"`) != 3 {
		t.Errorf("SVG should contain 3 cards")
	}
}

func TestRenderSVGEmpty(t *testing.T) {
	svg := string(RenderSVG(chart.NewEmpty(chart.VizTypeTree, 0)))
	if !strings.Contains(svg, chart.EmptyMessage) {
		t.Error("empty SVG should contain the empty message")
	}
	if !strings.Contains(svg, `viewBox="0 0 800 600"`) {
		t.Error("empty SVG should use the fixed view box")
	}
	if strings.Contains(svg, "<path") {
		t.Error("empty SVG should not contain connectors")
	}
}

func TestRenderSVGWithoutStyle(t *testing.T) {
	svg := string(RenderSVG(tree.Compute(records(), 0), WithoutStyle()))
	if strings.Contains(svg, "<style>") {
		t.Error("WithoutStyle should omit the stylesheet")
	}
}

func TestRenderJSON(t *testing.T) {
	c := tree.Compute(records(), 800)
	data, err := RenderJSON(c)
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}
	back, err := chart.Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(back.Nodes) != len(c.Nodes) || len(back.Connectors) != len(c.Connectors) {
		t.Errorf("round trip lost data: %d/%d nodes, %d/%d connectors",
			len(back.Nodes), len(c.Nodes), len(back.Connectors), len(c.Connectors))
	}
}
