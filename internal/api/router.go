// Package api provides the HTTP API for the weather dashboard.
package api

import (
	"context"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/nalssiboard/nalssiboard/internal/api/handler"
	"github.com/nalssiboard/nalssiboard/internal/api/middleware"
	"github.com/nalssiboard/nalssiboard/internal/dashboard"
	"github.com/nalssiboard/nalssiboard/internal/location"
	"github.com/nalssiboard/nalssiboard/internal/provider/resilience"
	"github.com/nalssiboard/nalssiboard/internal/theme"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version     string
	BuildTime   string
	Logger      zerolog.Logger
	ServiceName string
	Metrics     *middleware.Metrics

	Resolver         *location.Resolver
	DashboardService *dashboard.Service
	ThemeRepo        theme.Repository
	Registry         *resilience.Registry

	// DBCheck pings the preference store; nil when running without a
	// database.
	DBCheck func(context.Context) error
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Set default service name if not provided
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "nalssiboard-api"
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(middleware.SecurityHeaders)      // Security headers (HSTS, CSP, etc.)
	r.Use(middleware.RequireTLS)           // TLS enforcement (enabled via REQUIRE_TLS=true)
	r.Use(middleware.ContentTypeJSON)      // JSON content type

	// Initialize handlers
	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime, cfg.Registry, cfg.DBCheck)
	locationHandler := handler.NewLocationHandler(cfg.Resolver)
	dashboardHandler := handler.NewDashboardHandler(cfg.Resolver, cfg.DashboardService)
	themeHandler := handler.NewThemeHandler(cfg.ThemeRepo)
	metadataHandler := handler.NewMetadataHandler()

	// Create rate limit middleware for different endpoint categories
	expensiveRateLimit := middleware.RateLimitByIP(middleware.ExpensiveRateLimit) // 30 req/min
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit)   // 100 req/min

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Ops endpoints (public)
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
			r.Get("/status", opsHandler.SystemStatus)
		})

		// Location resolution - search hits the geocoder, so it gets the
		// stricter limit.
		r.Route("/location", func(r chi.Router) {
			r.With(standardRateLimit).Get("/", locationHandler.Resolve)
			r.With(expensiveRateLimit).Get("/search", locationHandler.Search)
		})

		// Dashboard - fans out to all upstream providers, strict limit.
		r.With(expensiveRateLimit).Get("/dashboard", dashboardHandler.Get)

		// Theme preference
		r.Route("/theme", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Get("/", themeHandler.Get)
			r.Put("/", themeHandler.Update)
		})

		// Metadata endpoints (public) - standard rate limiting
		r.Route("/metadata", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Get("/bounds", metadataHandler.GetBounds)
			r.Get("/enums", metadataHandler.GetEnums)
			r.Get("/regions", metadataHandler.GetRegions)
		})
	})

	return r
}
