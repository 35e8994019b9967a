package main

import (
	"encoding/json"
	"fmt"
	"image"
	"net/http"

	"github.com/heatmaphero/coverage.report/internal/db"
	"github.com/heatmaphero/coverage.report/internal/heatmap"
	"github.com/heatmaphero/coverage.report/internal/render"
	"github.com/heatmaphero/coverage.report/internal/survey"
)

// Server exposes the loaded survey over HTTP: summary text, the metric
// table, rendered heat map PNGs, and an interactive sample chart.
type Server struct {
	engine     *heatmap.Engine
	renderer   *render.Renderer
	db         *db.DB
	records    []survey.Record
	background image.Image
}

func NewServer(engine *heatmap.Engine, renderer *render.Renderer, database *db.DB, records []survey.Record, background image.Image) *Server {
	return &Server{
		engine:     engine,
		renderer:   renderer,
		db:         database,
		records:    records,
		background: background,
	}
}

func (s *Server) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.homeHandler)
	mux.HandleFunc("/api/summary", s.summaryHandler)
	mux.HandleFunc("/api/metrics", s.metricsHandler)
	mux.HandleFunc("/api/heatmap", s.heatmapHandler)
	mux.HandleFunc("/api/sessions", s.sessionsHandler)
	mux.HandleFunc("/debug/charts/samples", s.sampleChartHandler)
	return mux
}

func (s *Server) homeHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	fmt.Fprintf(w, "coverage.report: %d survey records loaded\n", len(s.records))
	fmt.Fprintln(w, "endpoints: /api/summary /api/metrics /api/heatmap?metric=rssi /api/sessions /debug/charts/samples")
}

func (s *Server) summaryHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, survey.Summary(s.records))
}

func (s *Server) metricsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(survey.Metrics()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// heatmapHandler renders the requested metric as a PNG. Empty and
// single-point sample sets still render: the engine composes a distinct
// scene for them rather than failing.
func (s *Server) heatmapHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	metric := r.URL.Query().Get("metric")
	if metric == "" {
		metric = string(survey.MetricRSSI)
	}
	info, err := survey.Lookup(survey.Metric(metric))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	samples := survey.Samples(s.records, info)
	scene, err := s.engine.Compose(samples, info.Meta(), s.background)
	if err != nil {
		http.Error(w, fmt.Sprintf("compose scene: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := s.renderer.WritePNG(w, scene, plotWidth, plotHeight); err != nil {
		http.Error(w, fmt.Sprintf("render: %v", err), http.StatusInternalServerError)
	}
}

func (s *Server) sessionsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.db == nil {
		http.Error(w, "persistence disabled", http.StatusNotFound)
		return
	}
	sessions, err := s.db.Sessions()
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to list sessions: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(sessions); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
