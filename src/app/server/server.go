// Package server provides HTTP server initialization and lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"jokebox/src/app/docs"
	"jokebox/src/app/http/dto"
	"jokebox/src/app/http/handler"
	"jokebox/src/app/http/response"
	"jokebox/src/app/middleware"
	"jokebox/src/core/ports"
	"jokebox/src/core/usecase"
	"jokebox/src/infra/config"
	"jokebox/src/infra/logger"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router *gin.Engine
	http   *http.Server
	docs   *docs.Docs

	// Handlers
	healthHandler *handler.HealthHandler
	jokeHandler   *handler.JokeHandler
	indexHandler  *handler.IndexHandler
}

// endpoints is advertised by GET /.
var endpoints = []dto.Endpoint{
	{Method: http.MethodGet, Path: "/items", Description: "list every joke"},
	{Method: http.MethodGet, Path: "/items/{id}", Description: "get one joke"},
	{Method: http.MethodGet, Path: "/items/random", Description: "get a random joke"},
	{Method: http.MethodPost, Path: "/items", Description: "create a joke"},
	{Method: http.MethodGet, Path: docs.UIPath, Description: "API documentation"},
}

// New creates a new Server with all dependencies wired up. opts configure
// the joke service, e.g. a deterministic picker in tests.
func New(cfg *config.Config, log *slog.Logger, repo ports.JokeRepository, opts ...usecase.JokeOption) (*Server, error) {
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	apiDocs, err := docs.New()
	if err != nil {
		return nil, err
	}

	healthService := usecase.NewHealthService(logger.WithComponent(log, "health"), map[string]ports.Repository{
		"database": repo,
	})
	jokeService := usecase.NewJokeService(repo, log, opts...)

	s := &Server{
		cfg:           cfg,
		log:           log,
		router:        gin.New(),
		docs:          apiDocs,
		healthHandler: handler.NewHealthHandler(healthService),
		jokeHandler:   handler.NewJokeHandler(jokeService),
		indexHandler:  handler.NewIndexHandler(endpoints),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupHTTPServer()

	return s, nil
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	// Recovery first so it sees panics from everything after it.
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.Logging(logger.WithComponent(s.log, "http")))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.GET("/", s.indexHandler.Index)
	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)

	items := s.router.Group("/items")
	{
		items.GET("", s.jokeHandler.List)
		items.POST("", s.jokeHandler.Create)
		// Static segment, matched before the :id wildcard.
		items.GET("/random", s.jokeHandler.Random)
		items.GET("/:id", s.jokeHandler.Get)
	}

	s.docs.Register(s.router)

	s.router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, response.MessageRouteNotFound, middleware.GetRequestID(c))
	})
}

// setupHTTPServer configures the underlying HTTP server.
func (s *Server) setupHTTPServer() {
	s.http = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Server.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully. A serve failure ends the call with that error.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info("starting HTTP server", "addr", ln.Addr().String())
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		return s.Shutdown()
	})

	return g.Wait()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	s.log.Info("shutting down server", "timeout", s.cfg.Server.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("server stopped gracefully")
	return nil
}

// Router returns the Gin router for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}
