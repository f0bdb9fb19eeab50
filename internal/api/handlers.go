package api

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/coopcast/flocktree/internal/source"
	"github.com/coopcast/flocktree/pkg/buildinfo"
	"github.com/coopcast/flocktree/pkg/chart"
	"github.com/coopcast/flocktree/pkg/errors"
	"github.com/coopcast/flocktree/pkg/pipeline"
)

type statusResponse struct {
	Status string `json:"status"`
}

type validationResponse struct {
	Path     string   `json:"path"`
	LoadedAt string   `json:"loaded_at"`
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Stats    struct {
		Individuals int `json:"individuals"`
		Families    int `json:"families"`
		Living      int `json:"living"`
		Deceased    int `json:"deceased"`
	} `json:"stats"`
}

func (s *Server) ready(w http.ResponseWriter, _ *http.Request) {
	if s.store.Snapshot() == nil {
		writeJSON(w, http.StatusServiceUnavailable, statusResponse{Status: "loading"})
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

func (s *Server) version(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Current())
}

func (s *Server) chartJSON(w http.ResponseWriter, r *http.Request) {
	s.renderChart(w, r, pipeline.FormatJSON, "application/json; charset=utf-8")
}

func (s *Server) chartSVG(w http.ResponseWriter, r *http.Request) {
	s.renderChart(w, r, pipeline.FormatSVG, "image/svg+xml")
}

// renderChart computes the chart for the request's viewport and type and
// writes it in format.
func (s *Server) renderChart(w http.ResponseWriter, r *http.Request, format, contentType string) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	opts, err := chartOptions(r, format)
	if err != nil {
		writeError(w, err)
		return
	}

	renderID := uuid.NewString()
	ctx := r.Context()

	c, err := s.runner.Layout(ctx, snap.Records, opts)
	if err != nil {
		writeError(w, err)
		return
	}
	artifacts, err := s.runner.Render(ctx, c, opts)
	if err != nil {
		s.logger.Error("render failed", "render_id", renderID, "error", err)
		writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "render chart"))
		return
	}

	s.logger.Debug("rendered chart",
		"render_id", renderID,
		"viz_type", c.VizType,
		"viewport", opts.Viewport,
		"format", format)

	w.Header().Set(HeaderRenderID, renderID)
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifacts[format])
}

func (s *Server) validation(w http.ResponseWriter, _ *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	res := snap.Validation

	var body validationResponse
	body.Path = snap.Path
	body.LoadedAt = snap.LoadedAt.UTC().Format("2006-01-02T15:04:05Z")
	body.IsValid = res.IsValid
	body.Errors = res.Errors
	body.Stats.Individuals = res.Stats.Individuals
	body.Stats.Families = res.Stats.Families
	body.Stats.Living = res.Stats.Living
	body.Stats.Deceased = res.Stats.Deceased
	writeJSON(w, http.StatusOK, body)
}

// snapshot returns the current dataset or writes 503 when none is loaded.
func (s *Server) snapshot(w http.ResponseWriter) (*source.Snapshot, bool) {
	snap := s.store.Snapshot()
	if snap == nil {
		writeJSON(w, http.StatusServiceUnavailable, errResponse{Error: "dataset not loaded"})
		return nil, false
	}
	return snap, true
}

// chartOptions reads viewport and type from the query string.
func chartOptions(r *http.Request, format string) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		VizType: chart.VizTypeTree,
		Formats: []string{format},
	}

	if v := q.Get("viewport"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "viewport must be an integer, got %q", v)
		}
		opts.Viewport = n
	}
	if t := q.Get("type"); t != "" {
		opts.VizType = t
	}
	if err := opts.ValidateForRender(); err != nil {
		return opts, err
	}
	return opts, nil
}
