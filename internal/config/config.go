// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Port        string
	Environment string

	// Upstream API credentials.
	KMAServiceKey      string
	AirKoreaServiceKey string
	GoogleMapsAPIKey   string

	// Optional upstream base URL overrides, mainly for local testing.
	KMABaseURL      string
	AirKoreaBaseURL string
	GeocoderBaseURL string

	// Aggregation tuning.
	RefreshTimeout time.Duration
	CacheTTL       time.Duration

	// Prewarm worker.
	PrewarmEnabled  bool
	PrewarmInterval time.Duration

	// Telemetry.
	OTELEnabled  bool
	OTLPEndpoint string

	// Persistence. Empty DatabaseURL with DB_HOST unset means the theme
	// preference falls back to in-memory storage.
	DatabaseEnabled bool
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment
// variables win over file values.
func Load() (Config, error) {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load()

	cfg := Config{
		Port:        getEnv("APP_PORT", "8080"),
		Environment: getEnv("APP_ENV", "development"),

		KMAServiceKey:      os.Getenv("KMA_SERVICE_KEY"),
		AirKoreaServiceKey: os.Getenv("AIRKOREA_SERVICE_KEY"),
		GoogleMapsAPIKey:   os.Getenv("GOOGLE_MAPS_API_KEY"),

		KMABaseURL:      os.Getenv("KMA_BASE_URL"),
		AirKoreaBaseURL: os.Getenv("AIRKOREA_BASE_URL"),
		GeocoderBaseURL: os.Getenv("GEOCODER_BASE_URL"),

		RefreshTimeout: getDuration("REFRESH_TIMEOUT", 10*time.Second),
		CacheTTL:       getDuration("SNAPSHOT_CACHE_TTL", 5*time.Minute),

		PrewarmEnabled:  getBool("PREWARM_ENABLED", false),
		PrewarmInterval: getDuration("PREWARM_INTERVAL", 30*time.Minute),

		OTELEnabled:  getBool("OTEL_ENABLED", false),
		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),

		DatabaseEnabled: os.Getenv("DATABASE_URL") != "" || os.Getenv("DB_HOST") != "",
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that required settings are present.
func (c Config) Validate() error {
	if c.KMAServiceKey == "" {
		return fmt.Errorf("KMA_SERVICE_KEY is required")
	}
	if c.AirKoreaServiceKey == "" {
		return fmt.Errorf("AIRKOREA_SERVICE_KEY is required")
	}
	if c.GoogleMapsAPIKey == "" {
		return fmt.Errorf("GOOGLE_MAPS_API_KEY is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

func getBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
