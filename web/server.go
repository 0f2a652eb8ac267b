// Package web serves the landing page: player form, live preview, features and API documentation.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/vidrock-cli/vidrock/docs"
	vembed "github.com/vidrock-cli/vidrock/embed"
	"github.com/vidrock-cli/vidrock/filesystem"
	"github.com/vidrock-cli/vidrock/key"
	"github.com/vidrock-cli/vidrock/log"
)

//go:embed templates static
var assets embed.FS

// Server renders the landing page. It is safe for concurrent use.
type Server struct {
	embedBase       string
	docsBase        string
	defaults        vembed.Selection
	ackMillis       int
	h2c             bool
	shutdownTimeout time.Duration

	page   *template.Template
	router chi.Router
}

// New builds a server from the current configuration.
func New() *Server {
	ack := viper.GetInt(key.ClipboardAckSeconds)
	if ack <= 0 {
		ack = 2
	}

	timeout := time.Duration(viper.GetInt(key.ServerShutdownTimeout)) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	s := &Server{
		embedBase:       vembed.Base(),
		docsBase:        docs.Base(),
		defaults:        vembed.FromConfig(),
		ackMillis:       ack * 1000,
		h2c:             viper.GetBool(key.ServerH2C),
		shutdownTimeout: timeout,
		page:            lo.Must(template.ParseFS(assets, "templates/*.tmpl")),
	}

	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/url", s.handleURL)
		r.Get("/parameters", s.handleParameters)
	})

	static := filesystem.HTTP(filesystem.Assets(assets, "static"))
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(static)))

	return r
}

// Handler returns the root handler, wrapped for cleartext HTTP/2 when server.h2c is on.
func (s *Server) Handler() http.Handler {
	if s.h2c {
		return h2c.NewHandler(s.router, &http2.Server{})
	}
	return s.router
}

// ListenAndServe listens on addr and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("web: listening on %s", ln.Addr())
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

	log.Infof("web: shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
