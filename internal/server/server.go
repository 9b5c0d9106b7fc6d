package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/rehmanul/CAD-Analysis/pkg/analytics"
	"github.com/rehmanul/CAD-Analysis/pkg/pipeline"
	"github.com/rehmanul/CAD-Analysis/pkg/plan"
	"github.com/rehmanul/CAD-Analysis/pkg/validation"
)

// Server is the local development server for interactive analysis. It
// holds the loaded floor plan and the result of the most recent run.
type Server struct {
	projectPath string
	port        int
	opts        pipeline.Options
	logger      *log.Logger

	mu     sync.Mutex
	plan   *plan.FloorPlan
	runID  string
	result *analytics.AnalysisResult
	report *validation.Report
}

// New creates a server for the given project directory.
func New(projectPath string, port int, opts pipeline.Options, logger *log.Logger) *Server {
	return &Server{
		projectPath: projectPath,
		port:        port,
		opts:        opts,
		logger:      logger,
	}
}

// Start loads the project's floor plan and launches the HTTP server.
func (s *Server) Start() error {
	fp, err := plan.LoadProject(s.projectPath)
	if err != nil {
		return fmt.Errorf("loading project: %w", err)
	}
	s.plan = fp

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/plan", s.handlePlan)
	mux.HandleFunc("GET /api/analysis", s.handleAnalysis)
	mux.HandleFunc("GET /api/validation", s.handleValidation)
	mux.HandleFunc("POST /api/analyze", s.handleAnalyze)
	mux.HandleFunc("GET /", s.handleIndex)

	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("server starting", "addr", fmt.Sprintf("http://localhost%s", addr))
	s.logger.Info("project loaded", "path", s.projectPath, "walls", len(fp.Walls))

	return http.ListenAndServe(addr, mux)
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>CAD Analysis</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>CAD Analysis</h1>
<p>POST /api/analyze to run the pipeline, then GET /api/analysis.</p>
</div>
</body></html>`)
}

func (s *Server) handlePlan(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	fp := s.plan
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, fp)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, _ *http.Request) {
	runID := uuid.NewString()
	s.logger.Info("analysis run started", "run_id", runID)

	s.mu.Lock()
	fp := s.plan
	s.mu.Unlock()

	result, report, err := pipeline.Run(fp, s.opts)

	s.mu.Lock()
	s.runID = runID
	s.result = result
	s.report = report
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("analysis run failed", "run_id", runID, "err", err)
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"run_id": runID,
			"error":  err.Error(),
			"report": report,
		})
		return
	}

	s.logger.Info("analysis run finished", "run_id", runID,
		"blocks", len(result.Blocks), "pathways", len(result.Pathways))
	writeJSON(w, http.StatusOK, map[string]any{
		"run_id": runID,
		"result": result,
		"report": report,
	})
}

func (s *Server) handleAnalysis(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	runID, result := s.runID, s.result
	s.mu.Unlock()

	if result == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"error": "no analysis yet; POST /api/analyze first",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"run_id": runID,
		"result": result,
	})
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	report := s.report
	s.mu.Unlock()

	if report == nil {
		report = plan.Validate(s.plan)
	}
	writeJSON(w, http.StatusOK, report)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
