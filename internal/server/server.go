// Package server serves the glyph viewer over HTTP.
//
// Routes:
//
//	GET /             viewer page (HTML path, lenient)
//	GET /glyphs.json  grouped glyphs as JSON
//	GET /glyphs.yml   raw registry passthrough
//	GET /healthz      liveness and build version
//
// Every request fetches the registry through the shared [viewer.Viewer],
// whose fetcher revalidates with the upstream ETag.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/inshell-art/glyphtable/pkg/buildinfo"
	gterrors "github.com/inshell-art/glyphtable/pkg/errors"
	"github.com/inshell-art/glyphtable/pkg/glyph"
	"github.com/inshell-art/glyphtable/pkg/pipeline"
	"github.com/inshell-art/glyphtable/pkg/render"
	"github.com/inshell-art/glyphtable/pkg/viewer"
)

// shutdownTimeout bounds graceful shutdown.
const shutdownTimeout = 5 * time.Second

// Server serves the viewer.
type Server struct {
	viewer *viewer.Viewer
	logger *log.Logger
	router chi.Router
}

// New creates a Server for v.
func New(v *viewer.Viewer, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{viewer: v, logger: logger}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handlePage)
	r.Get("/glyphs.json", s.handleJSON)
	r.Get("/glyphs.yml", s.handleRaw)
	r.Get("/healthz", s.handleHealth)

	s.router = r
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("serving glyph viewer", "addr", addr, "registry", s.viewer.URL)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return ctx.Err()
	}
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	page, err := s.viewer.Render(r.Context())
	if err != nil {
		s.writeError(w, r, gterrors.Wrap(gterrors.ErrCodeInternal, err, "render viewer page"))
		return
	}

	status := http.StatusOK
	if page.Err != nil {
		status = gterrors.HTTPStatus(page.Err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(page.HTML)
}

func (s *Server) handleJSON(w http.ResponseWriter, r *http.Request) {
	records, err := s.viewer.Records(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	result, err := s.viewer.Runner.Execute(r.Context(), records, render.NewJSON(glyph.HTMLPolicy), pipeline.Lenient)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(result.Output)
}

func (s *Server) handleRaw(w http.ResponseWriter, r *http.Request) {
	data, err := s.viewer.Source.Fetch(r.Context(), s.viewer.URL)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
	w.Write(data)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
		buildinfo.Info
	}{"ok", buildinfo.Resolve()})
}

type errorResponse struct {
	Code      gterrors.Code `json:"code"`
	Message   string        `json:"message"`
	RequestID string        `json:"request_id,omitempty"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := gterrors.GetCode(err)
	if code == "" {
		code = gterrors.ErrCodeInternal
	}
	s.logger.Error("request failed", "id", RequestID(r.Context()), "path", r.URL.Path, "err", err)
	writeJSON(w, gterrors.HTTPStatus(err), errorResponse{
		Code:      code,
		Message:   gterrors.UserMessage(err),
		RequestID: RequestID(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
