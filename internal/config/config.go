// Package config defines the global configuration structure for the SwimCast
// service. Configuration is loaded once at process startup and is immutable
// thereafter. It follows 12-Factor App principles by strictly separating code
// from configuration.
//
// Values are resolved via a priority chain:
//
//	OS Environment (Highest) -> Dotenv File -> Struct Defaults (Lowest)
//
// Any missing required value or invalid format causes startup to fail
// immediately (fail fast).
package config

import "time"

// Config is the top-level configuration struct for the SwimCast service.
// It is populated once during process initialization and never modified.
// Sub-components receive only the specific config subsets they require.
type Config struct {
	// System Metadata
	Environment string `envconfig:"APP_ENV" default:"local" validate:"required,oneof=local dev staging prod"`
	Service     string `envconfig:"SERVICE_NAME" default:"swimcast"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	// Domain Configurations
	Server   ServerConfig
	Database DatabaseConfig
	Upstream UpstreamConfig
	Geocode  GeocodeConfig
	Security SecurityConfig

	// Build Metadata (Injected via ldflags, not Env)
	Build BuildInfo
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT" default:"15s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// DatabaseConfig holds database connection and pool tuning parameters for the
// favorites store.
type DatabaseConfig struct {
	URL string `envconfig:"DATABASE_URL" validate:"required,url"`

	// Tuning Parameters
	MaxConns          int           `envconfig:"DB_MAX_CONNS" default:"10"`
	MinConns          int           `envconfig:"DB_MIN_CONNS" default:"2"`
	MaxConnLifetime   time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"30m"`
	HealthCheckPeriod time.Duration `envconfig:"DB_HEALTH_CHECK_PERIOD" default:"1m"`
}

// UpstreamConfig holds settings for the Open-Meteo weather, marine, and
// air-quality endpoints.
type UpstreamConfig struct {
	WeatherBaseURL    string        `envconfig:"WEATHER_BASE_URL" default:"https://api.open-meteo.com/v1" validate:"required,url"`
	MarineBaseURL     string        `envconfig:"MARINE_BASE_URL" default:"https://marine-api.open-meteo.com/v1" validate:"required,url"`
	AirQualityBaseURL string        `envconfig:"AIR_QUALITY_BASE_URL" default:"https://air-quality-api.open-meteo.com/v1" validate:"required,url"`
	Timeout           time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"8s"`
	UserAgent         string        `envconfig:"UPSTREAM_USER_AGENT" default:"SwimCast/1.0"`
	MaxRetries        int           `envconfig:"UPSTREAM_MAX_RETRIES" default:"2"`
}

// GeocodeConfig holds settings for the geocoding client and its cache.
type GeocodeConfig struct {
	BaseURL      string        `envconfig:"GEOCODE_BASE_URL" default:"https://geocoding-api.open-meteo.com/v1" validate:"required,url"`
	Timeout      time.Duration `envconfig:"GEOCODE_TIMEOUT" default:"5s"`
	CacheEntries int           `envconfig:"GEOCODE_CACHE_ENTRIES" default:"512"`
	MaxResults   int           `envconfig:"GEOCODE_MAX_RESULTS" default:"8"`
}

// SecurityConfig holds CORS settings for the browser frontend.
// CorsAllowedOrigins is a comma-separated origin list; "*" allows any origin.
type SecurityConfig struct {
	CorsAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// BuildInfo holds build-time metadata injected via ldflags.
// These values are NOT populated from environment variables.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildTime string
}

// ConfigErrorType categorizes configuration loading failures to aid debugging.
type ConfigErrorType string

const (
	// ErrValidation indicates the configuration failed struct validation rules.
	ErrValidation ConfigErrorType = "VALIDATION_FAILED"
	// ErrParsing indicates a failure when parsing environment variable values
	// into their target types.
	ErrParsing ConfigErrorType = "PARSING_FAILED"
)
