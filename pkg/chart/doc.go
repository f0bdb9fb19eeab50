// Package chart provides the serialization format for computed family
// tree charts.
//
// A [Chart] is the output of the layout stage and the input of every sink.
// It is used for JSON files, API responses and caching, so it carries
// everything a renderer needs without access to the pedigree: positions,
// card text, border colors and connector paths.
//
// # Visualization Types
//
// Charts are discriminated by VizType:
//
//	chart.VizTypeTree      // "tree": chronological rows with connectors
//	chart.VizTypeNodelink  // "nodelink": Graphviz pedigree diagram
//
// Tree charts populate Cohorts, Nodes and Connectors. Nodelink charts
// populate DOT.
//
// # Empty Charts
//
// A chart computed from zero individuals has Empty set and Message holding
// the text to show in place of the tree. It has no nodes or connectors and
// its ViewBox is the fixed "0 0 800 600".
//
// # Serialization
//
//	data, _ := chart.Marshal(c)          // Chart → []byte
//	c, _ := chart.Unmarshal(data)        // []byte → Chart
//	chart.WriteFile(c, "tree.json")      // Chart → File
//	c, _ := chart.ReadFile("tree.json")  // File → Chart
package chart
