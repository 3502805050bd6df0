// Package server serves the lightfinder browser page, the JSON API and the
// export downloads over HTTP.
package server

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Router wraps http.ServeMux with method guards and request logging.
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

// NewRouter creates an empty router.
func NewRouter(logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

// Handle registers h for pattern, answering 405 to anything but GET and HEAD.
func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet && req.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h(w, req)
	})
}

// HandleHandler registers an http.Handler (file servers) under pattern.
func (r *Router) HandleHandler(pattern string, h http.Handler) {
	r.Handle(pattern, h.ServeHTTP)
}

// RegisterRoutes wires every route served by h.
func (r *Router) RegisterRoutes(h *Handler) {
	r.Handle("/", h.Page)
	r.Handle("/health", h.Health)
	r.Handle("/api/fixtures", h.Fixtures)
	r.Handle("/api/options", h.Options)
	r.Handle("/export/", h.Export)
	r.Handle("/logo", h.Logo)
	r.HandleHandler("/images/", http.StripPrefix("/images/", fileOnlyServer(h.imageDir)))
}

// fileOnlyServer serves the regular files under dir and answers 404 for
// directories, so no listing is exposed.
func fileOnlyServer(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		name := path.Clean("/" + req.URL.Path)
		info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(name)))
		if err != nil || info.IsDir() {
			http.NotFound(w, req)
			return
		}
		files.ServeHTTP(w, req)
	})
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	r.mux.ServeHTTP(rec, req)
	r.logger.Debug("request",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", rec.status),
		zap.Duration("duration", time.Since(start)))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}
