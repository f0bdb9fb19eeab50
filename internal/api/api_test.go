package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/coopcast/flocktree/internal/source"
	"github.com/coopcast/flocktree/pkg/chart"
	"github.com/coopcast/flocktree/pkg/pipeline"
)

const flockGED = `0 HEAD
0 @I1@ INDI
1 NAME Henrietta /Featherbottom/
1 SEX F
1 BIRT
2 DATE 15 MAR 2020
1 FAMS @F1@
0 @I2@ INDI
1 NAME Rooster /McFeathers/
1 SEX M
1 BIRT
2 DATE 1 JAN 2020
1 DEAT
1 FAMS @F1@
0 @I3@ INDI
1 NAME Penny
1 SEX F
1 BIRT
2 DATE 10 JUN 2021
1 FAMC @F1@
0 @F1@ FAM
1 HUSB @I2@
1 WIFE @I1@
1 CHIL @I3@
1 CHIL @I9@
0 TRLR
`

// testEnv writes the dataset, loads it when load is true and returns the router.
func testEnv(t *testing.T, load bool) http.Handler {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})

	path := filepath.Join(t.TempDir(), "flock.ged")
	if err := os.WriteFile(path, []byte(flockGED), 0o644); err != nil {
		t.Fatal(err)
	}
	store := source.New(path, logger)
	if load {
		if err := store.Load(context.Background()); err != nil {
			t.Fatalf("Load: %v", err)
		}
	}
	return NewServer(store, pipeline.NewRunner(nil, nil, logger), logger).Router()
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	router := testEnv(t, false)

	if w := get(t, router, "/health/live"); w.Code != http.StatusOK {
		t.Errorf("live status = %d, want 200", w.Code)
	}
	if w := get(t, router, "/health/ready"); w.Code != http.StatusServiceUnavailable {
		t.Errorf("ready before load = %d, want 503", w.Code)
	}
	if w := get(t, router, "/api/chart"); w.Code != http.StatusServiceUnavailable {
		t.Errorf("chart before load = %d, want 503", w.Code)
	}

	router = testEnv(t, true)
	if w := get(t, router, "/health/ready"); w.Code != http.StatusOK {
		t.Errorf("ready after load = %d, want 200", w.Code)
	}
}

func TestVersion(t *testing.T) {
	w := get(t, testEnv(t, false), "/version")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["version"] == "" {
		t.Errorf("version missing: %s", w.Body.String())
	}
}

func TestChartJSON(t *testing.T) {
	w := get(t, testEnv(t, true), "/api/chart?viewport=375")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if w.Header().Get(HeaderRenderID) == "" {
		t.Error("missing render ID header")
	}

	c, err := chart.Unmarshal(w.Body.Bytes())
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if c.VizType != chart.VizTypeTree || len(c.Nodes) != 3 {
		t.Errorf("chart = %s with %d nodes, want tree with 3", c.VizType, len(c.Nodes))
	}
	if c.Viewport != 375 {
		t.Errorf("Viewport = %d, want 375", c.Viewport)
	}
	if len(c.Connectors) == 0 {
		t.Error("expected connectors")
	}
}

func TestChartSVG(t *testing.T) {
	w := get(t, testEnv(t, true), "/api/chart.svg")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(w.Body.String(), `class="family-tree-svg"`) {
		t.Error("body is not a family tree svg")
	}
}

func TestChartNodelinkJSON(t *testing.T) {
	w := get(t, testEnv(t, true), "/api/chart?type=nodelink")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	c, err := chart.Unmarshal(w.Body.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if c.VizType != chart.VizTypeNodelink || c.DOT == "" {
		t.Errorf("chart = %s, DOT empty = %v", c.VizType, c.DOT == "")
	}
}

func TestChartBadParams(t *testing.T) {
	router := testEnv(t, true)

	tests := []struct {
		target string
		code   string
	}{
		{"/api/chart?viewport=wide", "INVALID_INPUT"},
		{"/api/chart?viewport=-3", "INVALID_INPUT"},
		{"/api/chart.svg?type=radial", "INVALID_VIZ_TYPE"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			w := get(t, router, tt.target)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			var body errResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatal(err)
			}
			if string(body.Code) != tt.code {
				t.Errorf("code = %s, want %s", body.Code, tt.code)
			}
		})
	}
}

func TestValidation(t *testing.T) {
	w := get(t, testEnv(t, true), "/api/validation")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var body validationResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.IsValid {
		t.Error("dangling child reference should make the dataset invalid")
	}
	want := "Family F1 references non-existent individual I9 as child"
	if len(body.Errors) != 1 || body.Errors[0] != want {
		t.Errorf("Errors = %v, want [%s]", body.Errors, want)
	}
	if body.Stats.Individuals != 3 || body.Stats.Deceased != 1 || body.Stats.Living != 2 {
		t.Errorf("Stats = %+v", body.Stats)
	}
}
