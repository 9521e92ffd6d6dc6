package server

import (
	"bytes"
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/navshell/internal/app"
	"github.com/vango-dev/navshell/internal/assets"
	"github.com/vango-dev/navshell/internal/config"
	"github.com/vango-dev/navshell/internal/errors"
	"github.com/vango-dev/navshell/internal/live"
	"github.com/vango-dev/navshell/pkg/middleware"
	"github.com/vango-dev/navshell/pkg/render"
	"github.com/vango-dev/navshell/pkg/router"
)

// Server is the navshell HTTP server.
type Server struct {
	config   *config.Config
	router   *router.Router
	assets   *assets.Cache
	live     *live.Server
	renderer *render.Renderer
	logger   *slog.Logger

	metrics  *middleware.Metrics
	gatherer prometheus.Gatherer

	httpServer *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used for requests and lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics records live sessions in m and exposes g on /metrics.
func WithMetrics(m *middleware.Metrics, g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.metrics = m
		s.gatherer = g
	}
}

// New creates a server for the routes in r. A nil cache serves no static
// assets and links them unfingerprinted.
func New(cfg *config.Config, r *router.Router, cache *assets.Cache, opts ...Option) *Server {
	s := &Server{
		config:   cfg,
		router:   r,
		assets:   cache,
		renderer: render.NewRenderer(render.RendererConfig{}),
		logger:   slog.Default().With("component", "server"),
		gatherer: prometheus.DefaultGatherer,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.live = live.New(r,
		live.WithMetrics(s.metrics),
		live.WithLogger(s.logger.With("component", "live")),
	)
	return s
}

// Handler returns the HTTP handler with all routes and middleware.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.GetHead)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	if s.assets != nil {
		r.Handle(app.StaticPrefix+"*", s.assets)
	}
	r.Handle(app.LivePath, s.live)
	r.Get("/*", s.handlePage)

	return r
}

// handlePage renders the full document for any path. Unmatched and
// invalid paths still get the shell with status 200.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	req, err := s.router.Serve(r.Context(), r.URL.EscapedPath(), "http")
	if err != nil {
		s.fail(w, r, err)
		return
	}

	var asset func(string) string
	if s.assets != nil {
		asset = s.assets.Resolver().Asset
	}

	var buf bytes.Buffer
	if err := s.renderer.RenderPage(&buf, app.Document(req.Node, asset)); err != nil {
		s.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("render failed",
		"path", r.URL.Path,
		"request_id", chimiddleware.GetReqID(r.Context()),
		"error", err,
	)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address())
	if err != nil {
		return errors.New("E501").WithDetail("listen").Wrap(err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", ln.Addr().String())
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if err != http.ErrServerClosed {
			return errors.New("E501").Wrap(err)
		}
		return nil

	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown closes live sessions, then drains in-flight requests within
// the configured shutdown timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout())
	defer cancel()

	s.live.Close()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return errors.New("E501").WithDetail("shutdown").Wrap(err)
		}
	}

	s.logger.Info("server shutdown complete")
	return nil
}

// Live returns the live navigation server.
func (s *Server) Live() *live.Server {
	return s.live
}
