// Package config handles application configuration via environment variables.
// It uses kelseyhightower/envconfig for parsing and provides sensible defaults.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
// Values are loaded from environment variables with the prefix "APP".
// Example: APP_PORT=8080, APP_LOG_LEVEL=debug
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Log        LogConfig
	Resilience ResilienceConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Port is the HTTP server port (default: 8080)
	Port int `envconfig:"PORT" default:"8080"`

	// Host is the HTTP server host (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// ReadTimeout is the maximum duration for reading the entire request (default: 10s)
	ReadTimeout time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`

	// WriteTimeout is the maximum duration before timing out writes of the response (default: 30s)
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s"`

	// ShutdownTimeout is the maximum duration to wait for active connections to finish (default: 30s)
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"faqhub"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`

	// Migrate runs embedded migrations at startup when true.
	Migrate bool `envconfig:"DB_MIGRATE" default:"true"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	// Level is the log level: debug, info, warn, error (default: info)
	Level string `envconfig:"LOG_LEVEL" default:"info"`

	// Format is the log format: json, text (default: json)
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

// ResilienceConfig holds the boundary protection settings applied to the
// read-heavy endpoints: a bulkhead admission gate and a failure-rate breaker.
type ResilienceConfig struct {
	// BulkheadSlots bounds concurrent in-flight calls per protected endpoint.
	BulkheadSlots int `envconfig:"BULKHEAD_SLOTS" default:"5"`

	// BulkheadQueue bounds callers allowed to wait for a slot; anything
	// beyond slots+queue is rejected immediately.
	BulkheadQueue int `envconfig:"BULKHEAD_QUEUE" default:"20"`

	// BreakerVolumeThreshold is the minimum number of calls in the rolling
	// window before the failure ratio is considered.
	BreakerVolumeThreshold uint32 `envconfig:"BREAKER_VOLUME_THRESHOLD" default:"5"`

	// BreakerFailureRatio opens the breaker once crossed.
	BreakerFailureRatio float64 `envconfig:"BREAKER_FAILURE_RATIO" default:"0.7"`

	// BreakerOpenInterval is how long the breaker stays open before allowing
	// trial calls.
	BreakerOpenInterval time.Duration `envconfig:"BREAKER_OPEN_INTERVAL" default:"5s"`

	// BreakerTrialSuccesses is the number of half-open successes required to
	// close again.
	BreakerTrialSuccesses uint32 `envconfig:"BREAKER_TRIAL_SUCCESSES" default:"2"`
}

// DSN returns the PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// Addr returns the server address in host:port format.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config

	// Load each config section separately to flatten env var names
	// (APP_PORT instead of APP_SERVER_PORT).
	if err := envconfig.Process("APP", &cfg.Server); err != nil {
		return nil, fmt.Errorf("failed to load server config: %w", err)
	}
	if err := envconfig.Process("APP", &cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}
	if err := envconfig.Process("APP", &cfg.Log); err != nil {
		return nil, fmt.Errorf("failed to load log config: %w", err)
	}
	if err := envconfig.Process("APP", &cfg.Resilience); err != nil {
		return nil, fmt.Errorf("failed to load resilience config: %w", err)
	}

	return &cfg, nil
}

// MustLoad loads configuration and panics on error.
// Use this only in main.go during startup.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
