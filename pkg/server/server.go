// Package server exposes the schematic pipeline as an HTTP tool service.
//
// One endpoint does the work: POST /v1/tools/plot-well-structure accepts a
// well JSON document, runs the pipeline, archives every produced file and
// answers the tool envelope. GET /healthz reports liveness.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/petrolog/wellsketch/pkg/archive"
	"github.com/petrolog/wellsketch/pkg/errors"
	"github.com/petrolog/wellsketch/pkg/pipeline"
)

// maxDocumentSize bounds the accepted request body.
const maxDocumentSize = 4 << 20

// Server wires the pipeline runner and the archive manager behind HTTP.
type Server struct {
	runner  *pipeline.Runner
	archive *archive.Manager
	logger  *log.Logger
}

// New creates a tool service.
func New(runner *pipeline.Runner, arch *archive.Manager, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, archive: arch, logger: logger}
}

// Router builds the HTTP routing table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", s.handleHealthz)
	r.Post("/v1/tools/plot-well-structure", s.handlePlot)
	return r
}

// ListenAndServe runs the service until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	s.logger.Info("tool service listening", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// ===== envelope =====

type wellInfo struct {
	WellName   string  `json:"well_name"`
	WellType   string  `json:"well_type"`
	TotalDepth float64 `json:"total_depth"`
}

type errorBody struct {
	Code       string   `json:"code"`
	Message    string   `json:"message"`
	Violations []string `json:"violations,omitempty"`
}

type toolResponse struct {
	Success       bool       `json:"success"`
	Response      string     `json:"response,omitempty"`
	Notice        string     `json:"notice,omitempty"`
	WellInfo      *wellInfo  `json:"well_info,omitempty"`
	ArchiveFolder string     `json:"archive_folder,omitempty"`
	ImagePath     string     `json:"image_path,omitempty"`
	Error         *errorBody `json:"error,omitempty"`
}

// ===== handlers =====

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handlePlot(w http.ResponseWriter, r *http.Request) {
	doc, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentSize))
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body"))
		return
	}

	res, err := s.runner.Execute(r.Context(), pipeline.Options{Document: doc})
	if err != nil {
		s.writeError(w, err)
		return
	}

	folder, err := s.archive.NewFolder()
	if err != nil {
		s.writeError(w, err)
		return
	}
	files, err := pipeline.WriteArtifacts(res, folder)

	resp := toolResponse{
		Success: true,
		Response: fmt.Sprintf("well schematic generated for %s (%d files)",
			res.Well.Name, len(files)),
		WellInfo: &wellInfo{
			WellName:   res.Well.Name,
			WellType:   string(res.Well.Type),
			TotalDepth: res.Well.TotalDepth,
		},
		ArchiveFolder: folder,
		ImagePath:     filepath.Join(folder, pipeline.PNGName),
	}
	if err != nil {
		// Already-written files stay archived; tell the caller the output
		// is incomplete instead of discarding it.
		resp.Notice = fmt.Sprintf("partial output: %v", errors.UserMessage(err))
	}
	if res.CacheInfo.RenderHit {
		resp.Notice = joinNotice(resp.Notice, "schematic served from artifact cache")
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	body := errorBody{
		Code:    string(errors.GetCode(err)),
		Message: errors.UserMessage(err),
	}
	if body.Code == "" {
		body.Code = string(errors.ErrCodeInternal)
	}
	if v, ok := errors.AsValidation(err); ok {
		body.Violations = v.Violations
	}

	status := http.StatusInternalServerError
	switch errors.Code(body.Code) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeValidation, errors.ErrCodeGeometry:
		status = http.StatusBadRequest
	}

	s.logger.Error("request failed", "code", body.Code, "err", err)
	s.writeJSON(w, status, toolResponse{Success: false, Error: &body})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

func joinNotice(existing, extra string) string {
	if existing == "" {
		return extra
	}
	return existing + "; " + extra
}
