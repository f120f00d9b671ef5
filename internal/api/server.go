package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nexconsult/cnpj-toolkit/internal/api/handlers"
	"github.com/nexconsult/cnpj-toolkit/internal/api/middleware"
	"github.com/nexconsult/cnpj-toolkit/internal/config"
	"github.com/nexconsult/cnpj-toolkit/internal/services"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	// Swagger spec registration
	_ "github.com/nexconsult/cnpj-toolkit/docs"
)

// Server represents the HTTP server
type Server struct {
	Router      *gin.Engine
	config      *config.Config
	logger      *logrus.Logger
	services    *services.Container
	rateLimiter *middleware.RateLimiter
}

// NewServer creates a new HTTP server
func NewServer(cfg *config.Config, logger *logrus.Logger, services *services.Container) *Server {
	server := &Server{
		config:   cfg,
		logger:   logger,
		services: services,
	}

	server.setupRouter()
	return server
}

// Close releases background resources owned by the server
func (s *Server) Close() {
	if s.rateLimiter != nil {
		s.rateLimiter.Close()
	}
}

// setupRouter configures the router with all routes and middleware
func (s *Server) setupRouter() {
	s.Router = gin.New()

	// masked CNPJs carry a slash, so path parameters are matched on the escaped path
	s.Router.UseRawPath = true

	// Global middleware
	s.Router.Use(middleware.Logger(s.logger))
	s.Router.Use(middleware.Recovery(s.logger))
	s.Router.Use(middleware.CORS(s.config.Security.CORS))
	s.Router.Use(middleware.Security())
	s.Router.Use(middleware.RequestID())

	var shared services.RateStoreInterface
	if s.services.RateStore != nil && s.services.RateStore.Shared() {
		shared = s.services.RateStore
	}
	s.rateLimiter = middleware.NewRateLimiter(s.config.Security.RateLimit, shared, s.services.Metrics.RateLimited, s.logger)

	healthHandler := handlers.NewHealthHandler(serverHealth{s.services, s.rateLimiter}, s.logger)

	// Health and metrics endpoints (no rate limiting)
	s.Router.GET("/health", healthHandler.GetHealth)
	s.Router.GET("/health/ready", healthHandler.GetReadiness)
	s.Router.GET("/health/live", healthHandler.GetLiveness)
	s.Router.GET("/metrics", handlers.NewMetricsHandler(s.services.Registry, s.logger).GetMetrics)

	// Swagger documentation
	if !s.config.IsProduction() {
		s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		s.Router.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
		})
	}


	// API v1 routes
	v1 := s.Router.Group("/api/v1")
	v1.Use(s.rateLimiter.Middleware())
	{
		cnpjHandler := handlers.NewCNPJHandler(s.services.CNPJService, s.logger)
		cnpj := v1.Group("/cnpj")
		{
			cnpj.POST("/validate", cnpjHandler.Validate)
			cnpj.POST("/validate/batch", cnpjHandler.ValidateBatch)
			cnpj.GET("/mask", cnpjHandler.Mask)
			cnpj.GET("/format", cnpjHandler.Format)
			cnpj.GET("/generate", cnpjHandler.Generate)
			cnpj.POST("/extract", cnpjHandler.Extract)
			cnpj.GET("/:cnpj/validate", cnpjHandler.ValidatePath)
			cnpj.GET("/:cnpj/analyze", cnpjHandler.Analyze)
		}
	}

	// 404 handler
	s.Router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Not Found",
			"message":   "The requested resource was not found",
			"timestamp": time.Now(),
			"path":      c.Request.URL.Path,
		})
	})

	// 405 handler
	s.Router.HandleMethodNotAllowed = true
	s.Router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"error":     "Method Not Allowed",
			"message":   "The requested method is not allowed for this resource",
			"timestamp": time.Now(),
			"path":      c.Request.URL.Path,
			"method":    c.Request.Method,
		})
	})
}

// serverHealth adds the rate limiter state to the health of the services
type serverHealth struct {
	services    *services.Container
	rateLimiter *middleware.RateLimiter
}

func (h serverHealth) Health() map[string]interface{} {
	health := h.services.Health()

	limiter := h.rateLimiter.GetStats()
	limiter["status"] = "healthy"
	health["rate_limiter"] = limiter

	return health
}
