package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"phoenix-assistant/backend/internal/api"
	"phoenix-assistant/backend/internal/store"
	"phoenix-assistant/backend/pkg/config"
	"phoenix-assistant/backend/pkg/errors"
	"phoenix-assistant/backend/pkg/logger"
	"phoenix-assistant/backend/pkg/middleware"
)

// Router is the main router for the application
type Router struct {
	Engine  *gin.Engine
	Gateway store.Gateway
	Logger  *logger.Logger
	Config  *config.Config
}

// Options tunes router assembly, mainly for tests
type Options struct {
	// Metrics registerer; nil uses the default Prometheus registry
	Registerer prometheus.Registerer
	// DisableRateLimit turns off the per-client limiter
	DisableRateLimit bool
}

// New creates a router wired with the full middleware stack
func New(gateway store.Gateway, log *logger.Logger, opts ...Options) *Router {
	var opt Options
	if len(opts) > 0 {
		opt = opts[0]
	}
	if opt.Registerer == nil {
		opt.Registerer = prometheus.DefaultRegisterer
	}

	cfg := config.Get()

	// Configure Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Request IDs first: the logger middleware reuses the ID set here
	engine.Use(middleware.RequestIDMiddleware())

	// Logger middleware next to capture all requests
	engine.Use(logger.Middleware(log))

	// Custom error handler and recovery with structured logging
	engine.Use(errors.ErrorHandler())
	engine.Use(errors.RecoveryWithLogger())

	// Request metrics
	metrics := middleware.NewMetrics(opt.Registerer)
	engine.Use(metrics.Middleware())

	// Rate limiting on all routes
	if !opt.DisableRateLimit {
		rateLimiter := middleware.NewRateLimiter(log)
		engine.Use(rateLimiter.Middleware())
	}

	// CORS for the browser-based viewer
	engine.Use(corsMiddleware(cfg.Security.AllowedOrigins))

	return &Router{
		Engine:  engine,
		Gateway: gateway,
		Logger:  log,
		Config:  cfg,
	}
}

// SetupRoutes registers all application routes
func (r *Router) SetupRoutes() {
	systemController := api.NewSystemController(r.Gateway, r.Logger)
	sessionController := api.NewSessionController(r.Gateway, r.Logger)
	messageController := api.NewMessageController(r.Gateway, r.Logger)
	documentController := api.NewDocumentController(r.Gateway, r.Logger)

	systemController.RegisterRoutes(r.Engine)
	sessionController.RegisterRoutes(r.Engine)
	messageController.RegisterRoutes(r.Engine)
	documentController.RegisterRoutes(r.Engine)

	// Prometheus scrape endpoint
	r.Engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowAll := len(allowedOrigins) == 0
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		if origin == "*" {
			allowAll = true
		}
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		switch {
		case allowAll:
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		case allowed[origin]:
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept, Accept-Encoding, Authorization, Origin, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
