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
	"time"

	"github.com/gin-gonic/gin"

	"gamestore/src/app/http/handler"
	"gamestore/src/app/http/response"
	"gamestore/src/app/middleware"
	"gamestore/src/core/ports"
	"gamestore/src/core/usecase"
	"gamestore/src/infra/config"
	"gamestore/src/infra/logger"
	"gamestore/src/infra/metrics"
)

// Dependencies are the storage adapters and collectors the server runs on.
// Metrics may be nil, which disables the /metrics route.
type Dependencies struct {
	Catalog ports.CatalogRepository
	Coupons ports.CouponRepository
	Metrics *metrics.Recorder
}

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg     *config.Config
	log     *slog.Logger
	router  *gin.Engine
	http    *http.Server
	metrics *metrics.Recorder

	healthHandler *handler.HealthHandler
	gameHandler   *handler.GameHandler
	couponHandler *handler.CouponHandler
}

// New creates a new Server with all dependencies wired up.
func New(cfg *config.Config, log *slog.Logger, deps Dependencies) *Server {
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	healthService := usecase.NewHealthService(log,
		ports.Component{Name: "catalog", Checker: deps.Catalog},
		ports.Component{Name: "coupons", Checker: deps.Coupons},
	)
	catalogService := usecase.NewCatalogService(deps.Catalog, logger.WithComponent(log, "catalog"))
	couponService := usecase.NewCouponService(deps.Coupons, logger.WithComponent(log, "coupons"))

	s := &Server{
		cfg:           cfg,
		log:           log,
		router:        router,
		metrics:       deps.Metrics,
		healthHandler: handler.NewHealthHandler(healthService),
		gameHandler:   handler.NewGameHandler(catalogService),
		couponHandler: handler.NewCouponHandler(couponService),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupHTTPServer()

	return s
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	// Recovery first so panics anywhere below it become a 500.
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS())
	if s.metrics != nil {
		s.router.Use(middleware.Metrics(s.metrics))
	}
	s.router.Use(middleware.Logging(s.log))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)

	if s.metrics != nil && s.cfg.Metrics.Enabled {
		s.router.GET(s.cfg.Metrics.Path, gin.WrapH(s.metrics.Handler()))
	}

	games := s.router.Group("/games")
	{
		games.GET("", s.gameHandler.List)
		games.GET("/:id", s.gameHandler.Get)
		games.POST("", s.gameHandler.Create)
		games.PUT("/:id", s.gameHandler.Update)
		games.DELETE("/:id", s.gameHandler.Delete)
	}
	s.router.GET("/categories", s.gameHandler.Categories)

	coupons := s.router.Group("/api/coupons")
	{
		coupons.GET("", s.couponHandler.List)
		coupons.GET("/:id", s.couponHandler.Get)
		coupons.GET("/code/:code", s.couponHandler.GetByCode)
		coupons.POST("", s.couponHandler.Create)
		coupons.PUT("/:id", s.couponHandler.Update)
		coupons.DELETE("/:id", s.couponHandler.Delete)
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

// Run starts the HTTP server and blocks until shutdown.
// It handles graceful shutdown on SIGINT/SIGTERM.
func (s *Server) Run() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	errCh := make(chan error, 1)

	go func() {
		s.log.Info("starting HTTP server",
			"addr", s.cfg.Server.Addr(),
		)
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

// WaitForReady polls /health until it answers 200 or the timeout passes.
func (s *Server) WaitForReady(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		resp, err := http.Get(fmt.Sprintf("http://%s/health", s.cfg.Server.Addr()))
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	return fmt.Errorf("server not ready after %v", timeout)
}
