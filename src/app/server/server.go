// Package server provides HTTP server initialization and lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"pokemonreview/src/app/http/handler"
	"pokemonreview/src/app/http/response"
	"pokemonreview/src/app/middleware"
	"pokemonreview/src/core/ports"
	"pokemonreview/src/core/usecase"
	"pokemonreview/src/infra/config"
	"pokemonreview/src/infra/logger"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router *gin.Engine
	http   *http.Server

	healthHandler  *handler.HealthHandler
	pokemonHandler *handler.PokemonHandler
	reviewHandler  *handler.ReviewHandler
}

// New creates a new Server with all dependencies wired up.
func New(cfg *config.Config, log *slog.Logger, store ports.Store) *Server {
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	healthService := usecase.NewHealthService(store, logger.WithComponent(log, "health"))
	pokemonService := usecase.NewPokemonService(store, logger.WithComponent(log, "pokemon"))
	reviewService := usecase.NewReviewService(store, store, logger.WithComponent(log, "review"))

	s := &Server{
		cfg:            cfg,
		log:            log,
		router:         router,
		healthHandler:  handler.NewHealthHandler(healthService),
		pokemonHandler: handler.NewPokemonHandler(pokemonService),
		reviewHandler:  handler.NewReviewHandler(reviewService),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupHTTPServer()

	return s
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	// Recovery first so it catches panics from everything after it.
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.Logging(s.log))
}

// setupRoutes is the route table: one entry per method and path.
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)

	api := s.router.Group("/api", middleware.TokenAuth(s.cfg.Auth.APIToken))
	{
		api.POST("/pokemon/create", s.pokemonHandler.Create)
		api.GET("/pokemon", s.pokemonHandler.List)
		api.GET("/pokemon/:id", s.pokemonHandler.Get)
		api.PUT("/pokemon/:id/update", s.pokemonHandler.Update)
		api.DELETE("/pokemon/:id/delete", s.pokemonHandler.Delete)

		api.POST("/pokemon/:id/reviews", s.reviewHandler.Create)
		api.GET("/pokemon/:id/reviews", s.reviewHandler.List)
		api.GET("/pokemon/:id/reviews/:reviewId", s.reviewHandler.Get)
		api.PUT("/pokemon/:id/reviews/:reviewId", s.reviewHandler.Update)
		api.DELETE("/pokemon/:id/reviews/:reviewId", s.reviewHandler.Delete)
	}

	s.router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "The requested resource was not found", middleware.GetRequestID(c))
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

// Run starts the HTTP server and blocks until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Run() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	errCh := make(chan error, 1)

	go func() {
		s.log.Info("starting HTTP server", "addr", s.cfg.Server.Addr())
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case sig := <-quit:
		s.log.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		return err
	}

	return s.Shutdown()
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
