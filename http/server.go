// Package http exposes the article service over a JSON HTTP API.
package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"kbase"
)

// ShutdownTimeout bounds graceful shutdown on Close.
const ShutdownTimeout = 5 * time.Second

// Server serves the article API. All fields must be set before Open.
type Server struct {
	ln     net.Listener
	server *http.Server
	mux    *http.ServeMux

	Addr string

	Articles kbase.ArticleService
	Importer kbase.Importer
	Auth     kbase.Authenticator

	// Limiter throttles ingest endpoints per client address.
	// When nil, ingest requests are not rate limited.
	Limiter *ClientLimiter

	Logger *slog.Logger
}

// NewServer creates a new Server with routes registered.
func NewServer() *Server {
	s := &Server{
		mux:    http.NewServeMux(),
		Logger: slog.Default(),
	}
	// The server dispatches through ServeHTTP, not the mux directly, so
	// the per-request log line fires on the listening path too.
	s.server = &http.Server{Handler: s}

	s.mux.HandleFunc("GET /api/articles", s.handleSearchArticles)
	s.mux.HandleFunc("GET /api/articles/all", s.handleListArticles)
	s.mux.HandleFunc("GET /api/articles/{id}", s.handleGetArticle)
	s.mux.Handle("POST /api/articles", s.requireEditor(s.handleCreateArticle))
	s.mux.Handle("PATCH /api/articles/{id}", s.requireEditor(s.handleUpdateArticle))
	s.mux.Handle("DELETE /api/articles/{id}", s.requireEditor(s.handleDeleteArticle))
	s.mux.Handle("POST /api/articles/bulk", s.requireEditor(s.handleBulkInsert))
	s.mux.Handle("POST /api/import", s.requireEditor(s.throttled(s.handleImport)))
	s.mux.Handle("POST /api/upload", s.requireEditor(s.throttled(s.handleUpload)))

	return s
}

// ServeHTTP dispatches to the registered routes.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	begin := time.Now()
	s.mux.ServeHTTP(w, r)
	s.Logger.Debug("http request",
		"method", r.Method,
		"path", r.URL.Path,
		"duration", time.Since(begin),
	)
}

// Open starts listening on Addr and serves requests until Close.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.ln = ln

	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.Logger.Error("http serve", "err", err)
		}
	}()
	return nil
}

// Close gracefully shuts the server down.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the base URL of the listening server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// throttled applies the per-client rate limit to ingest endpoints.
func (s *Server) throttled(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.Limiter != nil && !s.Limiter.Allow(clientAddr(r)) {
			w.Header().Set("Retry-After", "1")
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next(w, r)
	}
}

// clientAddr extracts the client host from a request, without the port.
func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
