// SPDX-License-Identifier: MIT
//
// Package server exposes a read-only core.Graph and a router.Router over HTTP.
//
// Endpoints:
//
//	GET /api/route?from=&to=   route between two locations (ids or names)
//	GET /api/nodes             all locations, ascending id
//	GET /api/nodes/{id}        one location with its outgoing roads
//	GET /healthz               liveness
//	GET /metrics               Prometheus metrics of this server
//
// The graph must not be mutated while the server runs; route queries read it
// concurrently without locks.
package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/router"
)

const (
	defaultShutdownTimeout = 5 * time.Second
	readHeaderTimeout      = 5 * time.Second
)

// Server serves route queries over one graph.
type Server struct {
	graph   *core.Graph
	router  *router.Router
	log     *slog.Logger
	reg     *prometheus.Registry
	metrics *metrics
	mux     *mux.Router

	shutdownTimeout time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and lifecycle logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithShutdownTimeout bounds how long ListenAndServe waits for in-flight
// requests after its context is cancelled. Non-positive values are ignored.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

// New builds a Server for g. A nil g serves an empty graph; a nil r means
// router.New().
func New(g *core.Graph, r *router.Router, opts ...Option) *Server {
	if g == nil {
		g = core.NewGraph()
	}
	if r == nil {
		r = router.New()
	}
	s := &Server{
		graph:           g,
		router:          r,
		log:             slog.New(slog.NewTextHandler(io.Discard, nil)),
		reg:             prometheus.NewRegistry(),
		shutdownTimeout: defaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.metrics = newMetrics(s.reg)

	s.mux = mux.NewRouter()
	s.registerRoutes(s.mux)
	s.mux.Use(s.logRequests)

	return s
}

func (s *Server) registerRoutes(r *mux.Router) {
	r.HandleFunc("/api/route", s.handleRoute).Methods(http.MethodGet)
	r.HandleFunc("/api/nodes", s.handleNodes).Methods(http.MethodGet)
	r.HandleFunc("/api/nodes/{id:-?[0-9]+}", s.handleNode).Methods(http.MethodGet)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(s.reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)
}

// Handler returns the HTTP handler with all routes registered.
func (s *Server) Handler() http.Handler { return s.mux }

// Registry returns the server's private metrics registry.
func (s *Server) Registry() *prometheus.Registry { return s.reg }

// ListenAndServe listens on addr and serves until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener. It closes ln.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	s.log.Info("listening", "addr", ln.Addr().String(), "nodes", s.graph.Len())

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down", "timeout", s.shutdownTimeout)
	sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
