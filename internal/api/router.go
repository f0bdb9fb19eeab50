// Package api serves charts and validation results of the watched dataset
// over HTTP.
//
// Routes:
//
//	GET /health/live                       liveness probe
//	GET /health/ready                      503 until the dataset has loaded
//	GET /version                           build information
//	GET /api/chart?viewport=&type=         chart as JSON
//	GET /api/chart.svg?viewport=&type=     chart as SVG
//	GET /api/validation                    cross-reference check of the dataset
//
// Chart responses carry an X-Render-ID header identifying the render in
// the server log.
package api

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/coopcast/flocktree/internal/source"
	"github.com/coopcast/flocktree/pkg/pipeline"
)

// HeaderRenderID names the response header carrying the render ID.
const HeaderRenderID = "X-Render-ID"

// Server handles API requests against one dataset.
type Server struct {
	store  *source.Store
	runner *pipeline.Runner
	logger *log.Logger
}

// NewServer returns a server reading from store and rendering with runner.
func NewServer(store *source.Store, runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{store: store, runner: runner, logger: logger.WithPrefix("api")}
}

// Router builds the chi router with middleware and all routes mounted.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
	})
	r.Get("/health/ready", s.ready)
	r.Get("/version", s.version)

	r.Route("/api", func(r chi.Router) {
		r.Get("/chart", s.chartJSON)
		r.Get("/chart.svg", s.chartSVG)
		r.Get("/validation", s.validation)
	})

	return r
}

// requestLogger logs one line per request through the structured logger.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"request_id", middleware.GetReqID(r.Context()),
				"duration", time.Since(start))
		})
	}
}
