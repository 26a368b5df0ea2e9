package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/fanboy/api/health"
	"github.com/killallgit/fanboy/api/lookup"
	"github.com/killallgit/fanboy/api/search"
	"github.com/killallgit/fanboy/api/suggest"
	"github.com/killallgit/fanboy/api/types"
	"github.com/killallgit/fanboy/api/version"
	_ "github.com/killallgit/fanboy/docs/swagger"
	"github.com/killallgit/fanboy/internal/metrics"
)

// RouteOptions selects the optional routes and the /api/v1 rate limits
type RouteOptions struct {
	MetricsPath string
	EnableDocs  bool

	// RateLimit builds the per-client limiter for a group; nil disables limiting
	RateLimit         func(rps, burst int) gin.HandlerFunc
	RequestsPerSecond int
	Burst             int
}

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, opts RouteOptions) error {
	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	if opts.MetricsPath != "" {
		engine.GET(opts.MetricsPath, gin.WrapH(metrics.Handler()))
	}

	// Register Swagger documentation route
	if opts.EnableDocs {
		engine.GET("/docs", func(c *gin.Context) {
			c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
		})
		docsGroup := engine.Group("/docs")
		docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")

	group := func(path string, rps, burst int) *gin.RouterGroup {
		g := v1.Group(path)
		if opts.RateLimit != nil {
			g.Use(opts.RateLimit(rps, burst))
		}
		return g
	}

	rps, burst := opts.RequestsPerSecond, opts.Burst
	if rps <= 0 {
		rps = 5
	}
	if burst <= 0 {
		burst = 10
	}

	// Version and suggest get twice the search budget
	version.RegisterUpstreamRoutes(group("", rps*2, burst*2), deps)
	search.RegisterRoutes(group("/search", rps, burst), deps)
	lookup.RegisterRoutes(group("/lookup", rps, burst), deps)
	suggest.RegisterRoutes(group("/suggest", rps*2, burst*2), deps)

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
