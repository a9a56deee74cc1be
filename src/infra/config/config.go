// Package config handles application configuration via environment variables.
// It uses kelseyhightower/envconfig for parsing and provides sensible defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Supported storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all application configuration.
// Values are loaded from environment variables with the prefix "APP".
// Each variable also falls back to its unprefixed name, so PORT works as
// well as APP_PORT.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	Seed     SeedConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Port is the HTTP server port (default: 3000)
	Port int `envconfig:"PORT" default:"3000"`

	// Host is the HTTP server host (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// ReadTimeout is the maximum duration for reading the entire request (default: 10s)
	ReadTimeout time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`

	// WriteTimeout is the maximum duration before timing out writes of the response (default: 30s)
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s"`

	// ShutdownTimeout is the maximum duration to wait for active connections to finish (default: 30s)
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

// DatabaseConfig holds storage settings for both supported drivers.
type DatabaseConfig struct {
	// Driver selects the backend: sqlite or postgres (default: sqlite)
	Driver string `envconfig:"DB_DRIVER" default:"sqlite"`

	// Path is the SQLite database file (default: ./joke.db)
	Path string `envconfig:"DB_PATH" default:"./joke.db"`

	// ResetOnStart drops all jokes and re-seeds on startup (default: false)
	ResetOnStart bool `envconfig:"DB_RESET_ON_START" default:"false"`

	// Host is the PostgreSQL host (default: localhost)
	Host string `envconfig:"DB_HOST" default:"localhost"`

	// Port is the PostgreSQL port (default: 5432)
	Port int `envconfig:"DB_PORT" default:"5432"`

	// User is the PostgreSQL user (default: postgres)
	User string `envconfig:"DB_USER" default:"postgres"`

	// Password is the PostgreSQL password
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`

	// Name is the PostgreSQL database name (default: jokebox)
	Name string `envconfig:"DB_NAME" default:"jokebox"`

	// SSLMode is the SSL mode for the connection (default: disable)
	SSLMode string `envconfig:"DB_SSLMODE" default:"disable"`

	// MaxOpenConns is the maximum number of open connections (default: 10)
	MaxOpenConns int `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`

	// MaxIdleConns is the minimum number of idle connections kept (default: 2)
	MaxIdleConns int `envconfig:"DB_MAX_IDLE_CONNS" default:"2"`

	// ConnMaxLifetime is the maximum lifetime of a connection (default: 5m)
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	// Level is the log level: debug, info, warn, error (default: info)
	Level string `envconfig:"LOG_LEVEL" default:"info"`

	// Format is the log format: json, text, plain (default: plain)
	Format string `envconfig:"LOG_FORMAT" default:"plain"`
}

// SeedConfig controls the jokes inserted on fresh or reset initialization.
type SeedConfig struct {
	// File is an optional YAML file replacing the built-in seed set.
	File string `envconfig:"SEED_FILE"`
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
// A .env file in the working directory is loaded first when present;
// variables already set in the environment win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config

	// Load each config section separately to flatten env var names
	// This allows env vars like APP_PORT instead of APP_SERVER_PORT
	if err := envconfig.Process("APP", &cfg.Server); err != nil {
		return nil, fmt.Errorf("failed to load server config: %w", err)
	}
	if err := envconfig.Process("APP", &cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}
	if err := envconfig.Process("APP", &cfg.Log); err != nil {
		return nil, fmt.Errorf("failed to load log config: %w", err)
	}
	if err := envconfig.Process("APP", &cfg.Seed); err != nil {
		return nil, fmt.Errorf("failed to load seed config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values envconfig cannot constrain on its own.
func (c *Config) Validate() error {
	c.Database.Driver = strings.ToLower(c.Database.Driver)
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			return errors.New("APP_DB_PATH must not be empty for the sqlite driver")
		}
	case DriverPostgres:
	default:
		return fmt.Errorf("unsupported APP_DB_DRIVER %q: must be %s or %s", c.Database.Driver, DriverSQLite, DriverPostgres)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Server.Port)
	}
	return nil
}
