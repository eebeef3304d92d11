// Package server serves a directory of Markdown files as HTML pages,
// converting each file when it is requested.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// IndexFile is served for directory requests.
const IndexFile = "index.md"

const shutdownTimeout = 10 * time.Second

// Sentinel errors for server operations.
var (
	ErrInvalidRoot = errors.New("invalid root directory")
	ErrListen      = errors.New("cannot listen")
)

// ConvertFunc converts one Markdown document to an HTML page.
type ConvertFunc func(ctx context.Context, markdown string) (string, error)

// Server maps request paths to Markdown files under a root directory.
type Server struct {
	root    string
	convert ConvertFunc
	logger  *slog.Logger
}

// New creates a Server for root. A nil logger uses slog.Default().
func New(root string, convert ConvertFunc, logger *slog.Logger) (*Server, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	if !fileutil.DirExists(abs) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRoot, root)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{root: abs, convert: convert, logger: logger}, nil
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(recoverer(s.logger))
	r.Use(logRequests(s.logger))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/*", s.serveDocument)

	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("%w on %s: %v", ErrListen, addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", ln.Addr().String(), "root", s.root)
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) serveDocument(w http.ResponseWriter, r *http.Request) {
	file, ok := s.resolve(chi.URLParam(r, "*"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	if !fileutil.IsMarkdown(file) {
		http.ServeFile(w, r, file)
		return
	}

	content, err := os.ReadFile(file) // #nosec G304 -- contained in root by resolve
	if err != nil {
		s.logger.Error("reading document", "file", file, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	page, err := s.convert(r.Context(), string(content))
	if err != nil {
		s.logger.Error("converting document", "file", file, "error", err, "request_id", RequestID(r.Context()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(page))
}

// resolve maps a request path to a file under root:
// "a/b.html", "a/b.md" and "a/b" all name a/b.md, a directory names its
// index.md, and any other existing file is served as is.
func (s *Server) resolve(urlPath string) (string, bool) {
	rel := strings.TrimPrefix(path.Clean("/"+urlPath), "/")

	var candidates []string
	switch ext := strings.ToLower(path.Ext(rel)); {
	case rel == "":
		candidates = []string{IndexFile}
	case ext == ".html":
		candidates = []string{strings.TrimSuffix(rel, path.Ext(rel)) + ".md"}
	case ext == "":
		candidates = []string{rel + ".md", path.Join(rel, IndexFile)}
	default:
		candidates = []string{rel}
	}

	for _, c := range candidates {
		full := filepath.Join(s.root, filepath.FromSlash(c))
		if s.contained(full) && fileutil.FileExists(full) {
			return full, true
		}
	}
	return "", false
}

// contained reports whether p, symlinks resolved, stays within root.
func (s *Server) contained(p string) bool {
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		p = resolved
	}
	return p == s.root || strings.HasPrefix(p, s.root+string(filepath.Separator))
}
