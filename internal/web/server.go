// Package web serves the browser front-end: an HTML form that posts text to
// the counter and a small JSON API over the same statistics.
//
// Nothing is kept between requests. The text, the quote and the results
// travel with each request and response.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/f3rmion/maodou/internal/config"
	"github.com/f3rmion/maodou/internal/pinyin"
	"github.com/f3rmion/maodou/internal/quotes"
)

// Server is the web front-end.
type Server struct {
	cfg        *config.Config
	quotes     *quotes.Picker
	annotator  *pinyin.Annotator
	log        *slog.Logger
	httpServer *http.Server
}

// Deps are the collaborators a Server needs. Quotes and Logger may be nil.
type Deps struct {
	Config *config.Config
	Quotes *quotes.Picker
	Logger *slog.Logger
}

// NewServer builds the routes and the underlying http.Server.
func NewServer(deps Deps) *Server {
	s := &Server{
		cfg:       deps.Config,
		quotes:    deps.Quotes,
		annotator: pinyin.NewAnnotator(),
		log:       deps.Logger,
	}
	if s.cfg == nil {
		s.cfg = config.Default()
	}
	if s.quotes == nil {
		s.quotes = quotes.NewPicker(s.cfg.Quotes, newSource())
	}
	if s.log == nil {
		s.log = slog.Default()
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /count", s.handleCount)
	mux.HandleFunc("POST /example", s.handleExample)
	mux.HandleFunc("POST /upload", s.handleUpload)

	mux.HandleFunc("POST /api/stats", s.handleAPIStats)
	mux.HandleFunc("GET /api/example", s.handleAPIExample)

	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         s.cfg.Server.Listen,
		Handler:      s.withLogging(mux),
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the root handler, including access logging.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("HTTP server starting", "listen", s.cfg.Server.Listen)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.log.Info("HTTP server shutting down")
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r)
		s.log.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.status,
			"latency_ms", time.Since(start).Milliseconds(),
		)
	})
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorDetail `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Error: errorDetail{Code: code, Message: message},
	})
}
