package chart

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/coopcast/flocktree/pkg/render/tree/connect"
	"github.com/coopcast/flocktree/pkg/render/tree/layout"
	"github.com/coopcast/flocktree/pkg/render/tree/styles"
)

// =============================================================================
// Constants
// =============================================================================

// Visualization types.
const (
	VizTypeTree     = "tree"
	VizTypeNodelink = "nodelink"
)

// EmptyMessage is shown in place of a chart with no individuals.
const EmptyMessage = "No data available"

// =============================================================================
// Chart
// =============================================================================

// Chart is the serialized result of a layout pass.
type Chart struct {
	VizType string `json:"viz_type" bson:"viz_type"`

	Empty   bool   `json:"empty,omitempty" bson:"empty,omitempty"`
	Message string `json:"message,omitempty" bson:"message,omitempty"`

	// Viewport is the display width the chart was computed for; 0 means none.
	Viewport int               `json:"viewport" bson:"viewport"`
	Node     layout.Dimensions `json:"node" bson:"node"`
	ViewBox  string            `json:"view_box" bson:"view_box"`

	// Tree-specific
	Cohorts    []Cohort            `json:"cohorts,omitempty" bson:"cohorts,omitempty"`
	Nodes      []Node              `json:"nodes,omitempty" bson:"nodes,omitempty"`
	Connectors []connect.Connector `json:"connectors,omitempty" bson:"connectors,omitempty"`

	// Nodelink-specific
	DOT string `json:"dot,omitempty" bson:"dot,omitempty"`
}

// IsTree returns true if this is a tree chart.
func (c *Chart) IsTree() bool { return c.VizType == VizTypeTree }

// IsNodelink returns true if this is a nodelink chart.
func (c *Chart) IsNodelink() bool { return c.VizType == VizTypeNodelink }

// Cohort is one row of a tree chart.
type Cohort struct {
	Index   int      `json:"index" bson:"index"`
	DateKey string   `json:"date_key,omitempty" bson:"date_key,omitempty"`
	Display string   `json:"display" bson:"display"`
	Members []string `json:"members" bson:"members"`
}

// Node is one placed individual card.
type Node struct {
	ID     string  `json:"id" bson:"id"`
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Cohort int     `json:"cohort" bson:"cohort"`

	Generation int    `json:"generation" bson:"generation"`
	Gender     string `json:"gender" bson:"gender"`
	Deceased   bool   `json:"deceased,omitempty" bson:"deceased,omitempty"`
	Border     string `json:"border" bson:"border"`

	Card styles.Card `json:"card" bson:"card"`

	SpouseLeft  string `json:"spouse_left,omitempty" bson:"spouse_left,omitempty"`
	SpouseRight string `json:"spouse_right,omitempty" bson:"spouse_right,omitempty"`
}

// NewEmpty returns the chart shown when there is nothing to draw.
func NewEmpty(vizType string, viewport int) Chart {
	return Chart{
		VizType:  vizType,
		Empty:    true,
		Message:  EmptyMessage,
		Viewport: viewport,
		Node:     layout.Responsive(viewport),
		ViewBox:  layout.EmptyViewBox,
	}
}

// =============================================================================
// Serialization
// =============================================================================

// Marshal serializes a chart to pretty-printed JSON bytes.
func Marshal(c Chart) ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}

// Unmarshal deserializes JSON bytes into a chart.
// Non-empty tree charts must contain nodes and nodelink charts a DOT string.
func Unmarshal(data []byte) (Chart, error) {
	var c Chart
	if err := json.Unmarshal(data, &c); err != nil {
		return Chart{}, fmt.Errorf("unmarshal chart: %w", err)
	}

	if c.VizType == "" {
		c.VizType = VizTypeTree
	}

	switch {
	case c.Empty:
	case c.IsTree() && len(c.Nodes) == 0:
		return Chart{}, fmt.Errorf("tree chart must contain nodes")
	case c.IsNodelink() && c.DOT == "":
		return Chart{}, fmt.Errorf("nodelink chart must contain DOT string")
	case !c.IsTree() && !c.IsNodelink():
		return Chart{}, fmt.Errorf("unknown viz_type %q", c.VizType)
	}
	return c, nil
}

// WriteFile writes a chart to a JSON file.
func WriteFile(c Chart, path string) error {
	data, err := Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadFile reads a chart from a JSON file.
func ReadFile(path string) (Chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Chart{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Unmarshal(data)
}
