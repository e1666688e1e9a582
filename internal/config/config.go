// Package config loads runtime settings from the environment, optionally
// seeded from .env files.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"
	EnvHTTPAddr  = "PATHCOST_HTTP_ADDR"
	EnvRedisAddr = "PATHCOST_REDIS_ADDR"
	EnvCacheTTL  = "PATHCOST_CACHE_TTL"
	EnvRateLimit = "PATHCOST_RATE_LIMIT"
	EnvRateBurst = "PATHCOST_RATE_BURST"
	EnvMaxNodes  = "PATHCOST_MAX_NODES"
)

// ErrInvalidConfig wraps every problem found while reading or validating settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds process-wide settings.
type Config struct {
	LogLevel  string
	LogFormat string

	// HTTPAddr is the listen address of the API server.
	HTTPAddr string

	// RedisAddr enables the result cache when non-empty.
	RedisAddr string
	CacheTTL  time.Duration

	// RateLimit is the sustained requests/second across the API; 0 disables limiting.
	RateLimit float64
	RateBurst int

	// MaxNodes bounds the vertex count of a graph accepted over HTTP.
	MaxNodes int
}

// Default returns the settings used when no variable is set.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
		HTTPAddr:  ":8080",
		CacheTTL:  10 * time.Minute,
		RateLimit: 20,
		RateBurst: 40,
		MaxNodes:  10000,
	}
}

// Load reads the given .env files (default ".env"; missing files are
// ignored, variables already set win) and then the environment.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: load %s: %w", ErrInvalidConfig, f, err)
		}
	}

	return FromEnv()
}

// FromEnv builds a Config from the process environment over Default.
// Every malformed value is reported, not just the first.
func FromEnv() (*Config, error) {
	cfg := Default()
	var merr *multierror.Error

	cfg.LogLevel = getEnv(EnvLogLevel, cfg.LogLevel)
	cfg.LogFormat = getEnv(EnvLogFormat, cfg.LogFormat)
	cfg.HTTPAddr = getEnv(EnvHTTPAddr, cfg.HTTPAddr)
	cfg.RedisAddr = getEnv(EnvRedisAddr, cfg.RedisAddr)

	var err error
	if cfg.CacheTTL, err = getEnvAsDuration(EnvCacheTTL, cfg.CacheTTL); err != nil {
		merr = multierror.Append(merr, err)
	}
	if cfg.RateLimit, err = getEnvAsFloat(EnvRateLimit, cfg.RateLimit); err != nil {
		merr = multierror.Append(merr, err)
	}
	if cfg.RateBurst, err = getEnvAsInt(EnvRateBurst, cfg.RateBurst); err != nil {
		merr = multierror.Append(merr, err)
	}
	if cfg.MaxNodes, err = getEnvAsInt(EnvMaxNodes, cfg.MaxNodes); err != nil {
		merr = multierror.Append(merr, err)
	}
	if err := merr.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var merr *multierror.Error
	if c.HTTPAddr == "" {
		merr = multierror.Append(merr, fmt.Errorf("%s is required", EnvHTTPAddr))
	}
	if c.CacheTTL <= 0 {
		merr = multierror.Append(merr, fmt.Errorf("%s must be positive, got %s", EnvCacheTTL, c.CacheTTL))
	}
	if c.RateLimit < 0 {
		merr = multierror.Append(merr, fmt.Errorf("%s must be ≥ 0, got %g", EnvRateLimit, c.RateLimit))
	}
	if c.RateLimit > 0 && c.RateBurst < 1 {
		merr = multierror.Append(merr, fmt.Errorf("%s must be ≥ 1 when rate limiting, got %d", EnvRateBurst, c.RateBurst))
	}
	if c.MaxNodes < 1 {
		merr = multierror.Append(merr, fmt.Errorf("%s must be ≥ 1, got %d", EnvMaxNodes, c.MaxNodes))
	}
	if err := merr.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue, fmt.Errorf("%s: invalid integer %q", key, s)
	}

	return v, nil
}

func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return defaultValue, fmt.Errorf("%s: invalid number %q", key, s)
	}

	return v, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return defaultValue, fmt.Errorf("%s: invalid duration %q", key, s)
	}

	return v, nil
}
