// Package sink writes computed family tree charts in output formats.
//
// # SVG Output
//
// [RenderSVG] draws a [chart.Chart] as a standalone SVG document:
//
//   - one linear gradient per family palette entry
//   - connector paths stroked with their family's gradient
//   - one card per individual, bordered in its generation color
//
// An empty chart renders its message centered in the fixed view box.
//
//	svg := sink.RenderSVG(c, sink.WithTitle("Flock"))
//
// # JSON Output
//
// [RenderJSON] writes the chart in its serialized form (see package chart),
// so the output can be read back with chart.Unmarshal.
package sink
