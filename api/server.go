package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/fanboy/api/types"
	"github.com/killallgit/fanboy/pkg/config"
)

// Options configures the gateway server
type Options struct {
	Address         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	MaxHeaderBytes  int
	MaxRequestBytes int64

	CORSOrigins     []string
	EnableRequestID bool

	RateLimit         bool
	RequestsPerSecond int
	Burst             int

	MetricsPath string // empty disables /metrics
	EnableDocs  bool

	Logger *slog.Logger
}

// DefaultOptions returns the options used when no configuration is loaded
func DefaultOptions(address string) Options {
	return Options{
		Address:           address,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1 MB
		MaxRequestBytes:   1 << 20,
		CORSOrigins:       []string{"*"},
		EnableRequestID:   true,
		RateLimit:         true,
		RequestsPerSecond: 5,
		Burst:             10,
		MetricsPath:       "/metrics",
		EnableDocs:        true,
	}
}

// OptionsFromConfig maps the loaded configuration onto server options
func OptionsFromConfig(cfg *config.Config) Options {
	opts := DefaultOptions(net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)))

	if cfg.Server.ReadTimeout > 0 {
		opts.ReadTimeout = cfg.Server.ReadTimeout
	}
	if cfg.Server.WriteTimeout > 0 {
		opts.WriteTimeout = cfg.Server.WriteTimeout
	}
	if cfg.Server.MaxHeaderBytes > 0 {
		opts.MaxHeaderBytes = cfg.Server.MaxHeaderBytes
	}
	if cfg.Security.MaxRequestBytes > 0 {
		opts.MaxRequestBytes = cfg.Security.MaxRequestBytes
	}
	opts.CORSOrigins = cfg.Security.CORSOrigins
	opts.EnableRequestID = cfg.Security.EnableRequestID

	opts.RateLimit = cfg.RateLimiting.Enabled
	if cfg.RateLimiting.RequestsPerSecond > 0 {
		opts.RequestsPerSecond = cfg.RateLimiting.RequestsPerSecond
	}
	if cfg.RateLimiting.Burst > 0 {
		opts.Burst = cfg.RateLimiting.Burst
	}

	opts.MetricsPath = ""
	if cfg.Monitoring.Enabled {
		opts.MetricsPath = cfg.Monitoring.MetricsPath
	}
	opts.EnableDocs = cfg.Monitoring.EnableDocs

	return opts
}

// Server represents the HTTP server
type Server struct {
	engine             *gin.Engine
	httpServer         *http.Server
	opts               Options
	rateLimiters       *sync.Map
	cleanupInitialized sync.Once
	cleanupStop        chan struct{}
	stopOnce           sync.Once

	// Dependencies for handlers
	dependencies *types.Dependencies
}

// NewServer creates a new HTTP server
func NewServer(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	// Create Gin engine with recovery middleware only
	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Server{
		engine:       engine,
		opts:         opts,
		rateLimiters: &sync.Map{},
		cleanupStop:  make(chan struct{}),
		httpServer: &http.Server{
			Addr:           opts.Address,
			Handler:        engine,
			ReadTimeout:    opts.ReadTimeout,
			WriteTimeout:   opts.WriteTimeout,
			IdleTimeout:    30 * time.Second,
			MaxHeaderBytes: opts.MaxHeaderBytes,
		},
	}
}

// SetDependencies sets all handler dependencies
func (s *Server) SetDependencies(deps *types.Dependencies) {
	s.dependencies = deps
}

// Engine returns the Gin engine for testing
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Addr returns the configured listen address
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Initialize sets up middleware and routes
func (s *Server) Initialize() error {
	if s.dependencies == nil {
		s.dependencies = &types.Dependencies{}
	}
	if s.dependencies.Logger == nil {
		s.dependencies.Logger = s.opts.Logger
	}

	// Setup global middleware
	s.setupMiddleware()

	// Setup routes
	return s.setupRoutes()
}

// setupMiddleware configures global middleware
func (s *Server) setupMiddleware() {
	if s.opts.EnableRequestID {
		s.engine.Use(RequestID())
	}
	s.engine.Use(AccessLog(s.opts.Logger))
	s.engine.Use(Metrics())
	s.engine.Use(CORS(s.opts.CORSOrigins...))
	s.engine.Use(RequestSizeLimitWithSize(s.opts.MaxRequestBytes))
}

// setupRoutes delegates to the main route registration
func (s *Server) setupRoutes() error {
	var limit func(rps, burst int) gin.HandlerFunc
	if s.opts.RateLimit {
		limit = func(rps, burst int) gin.HandlerFunc {
			return PerClientRateLimit(s.rateLimiters, s.cleanupStop, &s.cleanupInitialized, rps, burst)
		}
	}
	return RegisterRoutes(s.engine, s.dependencies, RouteOptions{
		MetricsPath:       s.opts.MetricsPath,
		EnableDocs:        s.opts.EnableDocs,
		RateLimit:         limit,
		RequestsPerSecond: s.opts.RequestsPerSecond,
		Burst:             s.opts.Burst,
	})
}

// Serve accepts connections on l until Shutdown is called
func (s *Server) Serve(l net.Listener) error {
	if err := s.httpServer.Serve(l); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Start starts the HTTP server
func (s *Server) Start() error {
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	// Stop the rate limiter cleanup goroutine
	s.stopOnce.Do(func() { close(s.cleanupStop) })

	return s.httpServer.Shutdown(ctx)
}
