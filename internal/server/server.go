package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/skelectricals/backend/internal/config"
	"github.com/skelectricals/backend/internal/handler"
	"github.com/skelectricals/backend/internal/logger"
	"github.com/skelectricals/backend/internal/middleware"
	"github.com/skelectricals/backend/internal/service"
	"github.com/skelectricals/backend/internal/types"
)

// Handlers bundles every HTTP handler the server routes to
type Handlers struct {
	Auth      *handler.AuthHandler
	Invoice   *handler.InvoiceHandler
	Client    *handler.ClientHandler
	Contact   *handler.ContactHandler
	Dashboard *handler.DashboardHandler
}

// Server represents the HTTP server for the back-office API
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	config     *config.Config
	logger     *logger.Logger
}

// NewServer creates and configures a new server instance
func NewServer(cfg *config.Config, log *logger.Logger, authService service.AuthService, handlers Handlers) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.RequestLogger(log))

	server := &Server{
		router: router,
		config: cfg,
		logger: log,
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}

	server.setupRoutes(authService, handlers)

	return server
}

// GetRouter returns the gin router instance
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// setupRoutes configures all application routes
func (s *Server) setupRoutes(authService service.AuthService, handlers Handlers) {
	// Health check endpoint
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// API documentation endpoints
	// Access the Swagger UI at http://localhost:8080/api-docs/index.html
	s.router.GET("/api-docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	s.router.GET("/api-docs", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/api-docs/index.html")
	})

	authMiddleware := middleware.AuthMiddleware(authService)
	adminOnly := middleware.RequireRoles(types.RoleAdmin)
	clientOnly := middleware.RequireRoles(types.RoleClient)

	handlers.Auth.RegisterRoutes(s.router, authMiddleware, adminOnly)
	handlers.Invoice.RegisterRoutes(s.router, authMiddleware, adminOnly)
	handlers.Client.RegisterRoutes(s.router, authMiddleware, adminOnly)
	handlers.Contact.RegisterRoutes(s.router, authMiddleware, adminOnly)
	handlers.Dashboard.RegisterRoutes(s.router, authMiddleware, adminOnly, clientOnly)
}

// Start begins listening for requests and handles graceful shutdown
func (s *Server) Start() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		s.logger.Infow("server listening", "port", s.config.Port)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatalw("failed to start server", "error", err)
		}
	}()

	<-quit
	s.logger.Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.logger.Infow("server exited gracefully")
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.httpServer.Shutdown(ctx)
}
