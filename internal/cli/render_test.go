package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/coopcast/flocktree/pkg/chart"
	"github.com/coopcast/flocktree/pkg/errors"
)

func TestRenderCommandSingle(t *testing.T) {
	c, buf := testCLI(t)
	dir := t.TempDir()
	ged := writeGED(t, dir, flockGED)
	outPath := filepath.Join(dir, "coop.svg")

	if err := execute(c, "render", ged, "-o", outPath, "--title", "Coop", "--viewport", "375"); err != nil {
		t.Fatalf("render: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	svg := string(data)
	if !strings.Contains(svg, "<title>Coop</title>") {
		t.Error("svg missing title")
	}
	// Narrow viewports drop the "Born: " prefix.
	if strings.Contains(svg, "Born: ") {
		t.Error("narrow svg should not contain the Born prefix")
	}
	if !strings.Contains(buf.String(), "Rendered tree chart") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestRenderCommandMulti(t *testing.T) {
	c, _ := testCLI(t)
	dir := t.TempDir()
	ged := writeGED(t, dir, flockGED)
	base := filepath.Join(dir, "coop")

	if err := execute(c, "render", ged, "-o", base, "-t", "tree", "-f", "svg,json", "--no-cache"); err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, name := range []string{"coop_tree.svg", "coop_tree.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}

	c2, err := chart.ReadFile(filepath.Join(dir, "coop_tree.json"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(c2.Nodes) != 3 {
		t.Errorf("nodes = %d, want 3", len(c2.Nodes))
	}
}

func TestRenderCommandConfigDefaults(t *testing.T) {
	c, _ := testCLI(t)
	dir := t.TempDir()
	ged := writeGED(t, dir, flockGED)
	cfgPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(cfgPath, []byte(`formats = ["json"]`), 0o644); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(dir, "chart.json")

	if err := execute(c, "--config", cfgPath, "render", ged, "-o", outPath); err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, err := chart.ReadFile(outPath); err != nil {
		t.Errorf("configured json format not written: %v", err)
	}
}

func TestRenderCommandInvalidFlags(t *testing.T) {
	c, _ := testCLI(t)
	ged := writeGED(t, t.TempDir(), flockGED)

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"bad type", []string{"render", ged, "-t", "radial"}, errors.ErrCodeInvalidVizType},
		{"bad format", []string{"render", ged, "-f", "png"}, errors.ErrCodeInvalidFormat},
		{"bad viewport", []string{"render", ged, "--viewport=-1"}, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := execute(c, tt.args...); !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}
