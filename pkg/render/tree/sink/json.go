package sink

import (
	"github.com/coopcast/flocktree/pkg/chart"
)

// RenderJSON writes the chart in its serialized form.
func RenderJSON(c chart.Chart) ([]byte, error) {
	return chart.Marshal(c)
}
