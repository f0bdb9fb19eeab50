package sink

import (
	"bytes"
	"fmt"

	"github.com/coopcast/flocktree/pkg/chart"
	"github.com/coopcast/flocktree/pkg/render/tree/styles"
)

const treeCSS = `
    .connection { transition: opacity 0.2s ease; }
    .connection:hover { opacity: 1; stroke-width: 4; }
    .family-node-content { fill: #ffffff; }
    .family-node-content.deceased { fill: #f3f4f6; }
    .family-node text { font-family: system-ui, sans-serif; fill: #1f2937; }
    .family-node-name { font-weight: bold; }
    .family-node-notes { fill: #6b7280; font-style: italic; }
    .family-tree-error { font-family: system-ui, sans-serif; fill: #6b7280; }`

const (
	cardRadius    = 8.0
	cardStroke    = 3.0
	cardPadding   = 8.0
	cardLineCount = 6.0
	fontToLine    = 0.75
	connStroke    = 3
	connOpacity   = 0.9
	emptyCenterX  = 400
	emptyCenterY  = 300
)

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	title   string
	noStyle bool
}

// WithTitle adds a <title> element to the document.
func WithTitle(t string) SVGOption { return func(r *svgRenderer) { r.title = t } }

// WithoutStyle omits the embedded stylesheet, leaving styling to the host page.
func WithoutStyle() SVGOption { return func(r *svgRenderer) { r.noStyle = true } }

// RenderSVG draws a tree chart as SVG.
func RenderSVG(c chart.Chart, opts ...SVGOption) []byte {
	var r svgRenderer
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" class="family-tree-svg" viewBox="%s" preserveAspectRatio="xMidYMid meet">`+"\n",
		styles.EscapeXML(c.ViewBox))
	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", styles.EscapeXML(r.title))
	}
	if !r.noStyle {
		fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", treeCSS)
	}

	if c.Empty || len(c.Nodes) == 0 {
		msg := c.Message
		if msg == "" {
			msg = chart.EmptyMessage
		}
		fmt.Fprintf(&buf, `  <text class="family-tree-error" x="%d" y="%d" text-anchor="middle">%s</text>`+"\n",
			emptyCenterX, emptyCenterY, styles.EscapeXML(msg))
		buf.WriteString("</svg>\n")
		return buf.Bytes()
	}

	renderGradients(&buf)
	renderConnectors(&buf, c)
	renderNodes(&buf, c)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderGradients(buf *bytes.Buffer) {
	buf.WriteString("  <defs>\n")
	for _, f := range styles.Families() {
		fmt.Fprintf(buf, `    <linearGradient id="%s" x1="0%%" y1="0%%" x2="100%%" y2="100%%">`+"\n", styles.GradientID(f.ID))
		fmt.Fprintf(buf, `      <stop offset="0%%" stop-color="%s"/>`+"\n", f.Start)
		fmt.Fprintf(buf, `      <stop offset="100%%" stop-color="%s"/>`+"\n", f.End)
		buf.WriteString("    </linearGradient>\n")
	}
	buf.WriteString("  </defs>\n")
}

func renderConnectors(buf *bytes.Buffer, c chart.Chart) {
	buf.WriteString(`  <g class="connections">` + "\n")
	for _, conn := range c.Connectors {
		fam := styles.Family(conn.FamilyID).ID
		fmt.Fprintf(buf, `    <path id="%s" d="%s" class="connection connection-%s connection-family-%s" stroke="url(#%s)" stroke-width="%d" fill="none" opacity="%.1f"/>`+"\n",
			styles.EscapeXML(conn.ID), conn.Path, conn.Kind, styles.EscapeXML(fam), styles.GradientID(fam), connStroke, connOpacity)
	}
	buf.WriteString("  </g>\n")
}

func renderNodes(buf *bytes.Buffer, c chart.Chart) {
	w, h := c.Node.Width, c.Node.Height
	lineHeight := (h - 2*cardPadding) / cardLineCount
	fontSize := lineHeight * fontToLine

	buf.WriteString(`  <g class="nodes">` + "\n")
	for _, n := range c.Nodes {
		content := "family-node-content"
		if n.Deceased {
			content += " deceased"
		}
		fmt.Fprintf(buf, `    <g class="family-node" id="node-%s">`+"\n", styles.EscapeXML(n.ID))
		fmt.Fprintf(buf, `      <rect class="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.0f" stroke="%s" stroke-width="%.0f"/>`+"\n",
			content, n.X, n.Y, w, h, cardRadius, n.Border, cardStroke)

		cx := n.X + w/2
		y := n.Y + cardPadding + lineHeight*fontToLine
		for _, line := range cardLines(n.Card) {
			fmt.Fprintf(buf, `      <text class="%s" x="%.1f" y="%.1f" font-size="%.1f" text-anchor="middle">%s</text>`+"\n",
				line.class, cx, y, fontSize, styles.EscapeXML(line.text))
			y += lineHeight
		}
		buf.WriteString("    </g>\n")
	}
	buf.WriteString("  </g>\n")
}

type cardLine struct {
	class string
	text  string
}

func cardLines(card styles.Card) []cardLine {
	lines := []cardLine{
		{"family-node-name", card.Name},
		{"family-node-gender", card.Gender},
	}
	for _, l := range []cardLine{
		{"family-node-breed", card.Breed},
		{"family-node-detail", card.Born},
		{"family-node-death", card.Death},
		{"family-node-notes", card.Notes},
	} {
		if l.text != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
