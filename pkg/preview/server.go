// Package preview serves the most recently rendered frame over HTTP for
// development and panel debugging. The server never renders; a pipeline
// publishes each FrameResult and the handlers serve whatever is latest.
package preview

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/panelkit/panelkit/pkg/dashboard"
)

// FrameIDHeader carries the frame's UUID on every frame response.
const FrameIDHeader = "X-Frame-ID"

// Server holds the latest frame and serves it on /frame.png and /frame.jpg.
type Server struct {
	logger *log.Logger

	mu     sync.RWMutex
	latest *dashboard.FrameResult
}

// Option configures the server.
type Option func(*Server)

// WithLogger routes request diagnostics to the given logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// NewServer returns a server with no frame yet; frame routes answer 503
// until the first Publish.
func NewServer(opts ...Option) *Server {
	s := &Server{logger: log.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Publish replaces the served frame. The byte slices are copied so the
// caller may reuse its buffers.
func (s *Server) Publish(res *dashboard.FrameResult) {
	if res == nil {
		return
	}
	copied := &dashboard.FrameResult{
		FrameID: res.FrameID,
		JPEG:    append([]byte(nil), res.JPEG...),
		PNG:     append([]byte(nil), res.PNG...),
		Elapsed: res.Elapsed,
	}
	s.mu.Lock()
	s.latest = copied
	s.mu.Unlock()
}

// Latest returns the currently served frame, or false before first publish.
func (s *Server) Latest() (*dashboard.FrameResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest, s.latest != nil
}

// Handler builds the route tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Get("/frame.png", s.frameHandler("image/png", func(f *dashboard.FrameResult) []byte { return f.PNG }))
	r.Get("/frame.jpg", s.frameHandler("image/jpeg", func(f *dashboard.FrameResult) []byte { return f.JPEG }))
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) frameHandler(contentType string, data func(*dashboard.FrameResult) []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		frame, ok := s.Latest()
		if !ok {
			http.Error(w, "no frame rendered yet", http.StatusServiceUnavailable)
			return
		}
		body := data(frame)
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		w.Header().Set(FrameIDHeader, frame.FrameID)
		w.Header().Set("Cache-Control", "no-store")
		if _, err := w.Write(body); err != nil {
			s.logger.Debug("frame response write failed", "err", err)
		}
	}
}

// ListenAndServe serves until the context is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("preview server listening", "addr", addr)

	select {
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	case err := <-errc:
		return err
	}
}
