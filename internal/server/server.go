package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"curling-registry/config"
	"curling-registry/internal/handler"
	"curling-registry/internal/middleware"
	"curling-registry/internal/transport/httpdto"
	"curling-registry/internal/websocket"
	"curling-registry/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     *config.Config
	logger     *logger.Logger
}

var (
	ReleaseMode = "release"
	DebugMode   = "debug"
	TestMode    = "test"
)

type Handlers struct {
	User      *handler.UserHandler
	Root      *handler.RootHandler
	WebSocket *websocket.Handler
	// RegisterLimiter is optional; registration is not rate limited without it.
	RegisterLimiter middleware.RegisterLimiter
}

func New(cfg *config.Config, l *logger.Logger) *Server {
	if cfg.AppMode == ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.AppMode == TestMode {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%s", cfg.AppPort),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
		engine: engine,
		config: cfg,
		logger: l,
	}
}

// Engine exposes the router, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) SetupRoutes(handlers *Handlers) {
	production := s.config.IsProduction()

	s.engine.Use(middleware.RequestIDMiddleware())
	s.engine.Use(middleware.LoggingMiddleware(s.logger, production))
	s.engine.Use(middleware.CORSMiddleware(s.config.CORSAllowOrigin))
	s.engine.Use(middleware.SecurityHeadersMiddleware())
	s.engine.Use(middleware.ErrorHandler(s.logger, production))

	s.engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"message": "pong"}))
	})

	s.engine.GET("/", handlers.Root.Get)
	s.engine.POST("/", handlers.Root.Echo)

	register := []gin.HandlerFunc{handlers.User.Register}
	if handlers.RegisterLimiter != nil {
		register = append([]gin.HandlerFunc{middleware.RegisterRateLimitMiddleware(handlers.RegisterLimiter)}, register...)
	}
	s.engine.POST("/register", register...)

	users := s.engine.Group("/user")
	{
		users.GET("", handlers.User.List)
		users.DELETE("/:userId", handlers.User.Delete)
		if handlers.WebSocket != nil {
			users.GET("/events", handlers.WebSocket.Connect)
		}
	}
}

// Start serves until SIGINT or SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		if s.logger != nil {
			s.logger.Infof("Starting the server on port %s...", s.config.AppPort)
		}
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if s.logger != nil {
				s.logger.Errorf("Error in starting the server: %s", err)
			}
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	if s.logger != nil {
		s.logger.Infof("Quitting signal received.. Shutting down after 5 seconds")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		if s.logger != nil {
			s.logger.Infof("Error in the graceful shutdown of the server: %s", err)
		}
		return err
	}

	if s.logger != nil {
		s.logger.Infof("Server stopped gracefully")
	}

	return nil
}
