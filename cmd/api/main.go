// Package main provides the entrypoint for the dashboard API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/nalssiboard/nalssiboard/internal/airquality/airkorea"
	"github.com/nalssiboard/nalssiboard/internal/api"
	"github.com/nalssiboard/nalssiboard/internal/api/middleware"
	"github.com/nalssiboard/nalssiboard/internal/config"
	"github.com/nalssiboard/nalssiboard/internal/dashboard"
	"github.com/nalssiboard/nalssiboard/internal/database"
	"github.com/nalssiboard/nalssiboard/internal/forecast/kma"
	"github.com/nalssiboard/nalssiboard/internal/location"
	"github.com/nalssiboard/nalssiboard/internal/location/googlegeo"
	"github.com/nalssiboard/nalssiboard/internal/provider/resilience"
	"github.com/nalssiboard/nalssiboard/internal/telemetry"
	"github.com/nalssiboard/nalssiboard/internal/theme"
	"github.com/nalssiboard/nalssiboard/internal/worker"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "nalssiboard-api"

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting dashboard API")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// Initialize OpenTelemetry
	ctx := context.Background()

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		Enabled:        cfg.OTELEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if cfg.OTELEnabled {
		log.Info().
			Str("otlp_endpoint", cfg.OTLPEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	// Theme storage: PostgreSQL when configured, in-memory otherwise
	var themeRepo theme.Repository
	var dbCheck func(context.Context) error
	if cfg.DatabaseEnabled {
		dbConfig := database.ConfigFromEnv()
		pool, err := database.Connect(ctx, dbConfig)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()
		themeRepo = theme.NewPostgresRepository(pool)
		dbCheck = pool.Ping
		log.Info().
			Str("host", dbConfig.Host).
			Str("database", dbConfig.Database).
			Msg("database connected")
	} else {
		themeRepo = theme.NewMemoryRepository()
		log.Info().Msg("no database configured, theme preference is in-memory")
	}

	// Upstream provider clients, each behind its own circuit breaker
	registry := resilience.NewRegistry()

	kmaHTTP := resilience.NewClient(resilience.ClientConfig{
		Name:            kma.ProviderName,
		Timeout:         cfg.RefreshTimeout,
		MaxRetries:      3,
		InitialInterval: 200 * time.Millisecond,
		MaxInterval:     5 * time.Second,
	})
	registry.Register(kma.ProviderName, kmaHTTP)
	weatherClient := kma.NewClient(kma.ClientConfig{
		ServiceKey: cfg.KMAServiceKey,
		BaseURL:    cfg.KMABaseURL,
		HTTPClient: kmaHTTP,
	})

	airHTTP := resilience.NewClient(resilience.ClientConfig{
		Name:            airkorea.ProviderName,
		Timeout:         cfg.RefreshTimeout,
		MaxRetries:      3,
		InitialInterval: 200 * time.Millisecond,
		MaxInterval:     5 * time.Second,
	})
	registry.Register(airkorea.ProviderName, airHTTP)
	airClient := airkorea.NewClient(airkorea.ClientConfig{
		ServiceKey: cfg.AirKoreaServiceKey,
		BaseURL:    cfg.AirKoreaBaseURL,
		HTTPClient: airHTTP,
	})

	geoHTTP := resilience.NewClient(resilience.ClientConfig{
		Name:            googlegeo.ProviderName,
		Timeout:         cfg.RefreshTimeout,
		MaxRetries:      3,
		InitialInterval: 200 * time.Millisecond,
		MaxInterval:     5 * time.Second,
	})
	registry.Register(googlegeo.ProviderName, geoHTTP)
	geocoder := googlegeo.NewClient(googlegeo.ClientConfig{
		APIKey:     cfg.GoogleMapsAPIKey,
		BaseURL:    cfg.GeocoderBaseURL,
		HTTPClient: geoHTTP,
	})

	// Domain services
	resolver := location.NewResolver(location.ResolverConfig{
		Geocoder: geocoder,
		Logger:   log,
	})
	dashboards := dashboard.NewService(dashboard.ServiceConfig{
		Weather:        weatherClient,
		Air:            airClient,
		Logger:         log,
		RefreshTimeout: cfg.RefreshTimeout,
		CacheTTL:       cfg.CacheTTL,
	})
	log.Info().Msg("dashboard service initialized")

	// Snapshot prewarm worker
	workerCtx, stopWorker := context.WithCancel(ctx)
	defer stopWorker()
	if cfg.PrewarmEnabled {
		prewarmConfig := worker.DefaultPrewarmConfig()
		prewarmConfig.Interval = cfg.PrewarmInterval
		prewarm := worker.NewPrewarmJob(worker.PrewarmJobConfig{
			Config:     prewarmConfig,
			Logger:     log,
			Dashboards: dashboards,
		})
		go prewarm.Start(workerCtx)
		log.Info().
			Dur("interval", prewarmConfig.Interval).
			Msg("snapshot prewarm worker started")
	}

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:          Version,
		BuildTime:        BuildTime,
		Logger:           log,
		ServiceName:      serviceName,
		Metrics:          metrics,
		Resolver:         resolver,
		DashboardService: dashboards,
		ThemeRepo:        themeRepo,
		Registry:         registry,
		DBCheck:          dbCheck,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	stopWorker()

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
