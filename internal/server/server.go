// Package server exposes the shortest-path engine over HTTP.
//
// Routes:
//
//	GET  /healthz             liveness plus cache status
//	POST /v1/shortest-paths   distances from a source over a posted graph
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/pathcost/internal/cache"
)

const shutdownTimeout = 10 * time.Second

// Options configures a Server.
type Options struct {
	Logger *slog.Logger

	// Cache is optional; nil disables result caching.
	Cache *cache.Cache

	// RateLimit in requests/second shared by all clients; 0 disables limiting.
	RateLimit float64
	RateBurst int

	// MaxNodes rejects larger graphs with 400. 0 means no bound.
	MaxNodes int
}

// Server owns the gin engine and its dependencies.
type Server struct {
	engine   *gin.Engine
	logger   *slog.Logger
	cache    *cache.Cache
	maxNodes int
}

// New builds the router. Call gin.SetMode before New to silence debug output.
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		engine:   gin.New(),
		logger:   logger,
		cache:    opts.Cache,
		maxNodes: opts.MaxNodes,
	}

	s.engine.Use(gin.Recovery(), requestID(), requestLogger(logger), cors.Default())
	if opts.RateLimit > 0 {
		s.engine.Use(rateLimit(rate.NewLimiter(rate.Limit(opts.RateLimit), opts.RateBurst)))
	}

	s.engine.GET("/healthz", s.health)
	v1 := s.engine.Group("/v1")
	v1.POST("/shortest-paths", s.shortestPaths)

	return s
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("http server listening", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("http server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (s *Server) health(c *gin.Context) {
	status := "disabled"
	if s.cache != nil {
		status = "up"
		if err := s.cache.Ping(c.Request.Context()); err != nil {
			status = "down"
		}
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "status": "healthy", "cache": status})
}
