// Package config loads the application configuration from the environment
package config

import (
	"fmt"
	"os"
	"strconv"
	"strompris/internal/provider"
	"time"
)

// Config represents the application configuration
type Config struct {
	// API contains API server configuration
	API APIConfig
	// Database contains database configuration
	Database DatabaseConfig
	// Cache contains cache layer configuration
	Cache CacheConfig
	// Prices contains upstream price source configuration
	Prices PricesConfig

	// Rate Limiting Configuration
	RateLimit struct {
		Requests int // Number of requests allowed per window
		Window   int // Time window in seconds
		Burst    int // Maximum burst size
	}

	Provider map[string]provider.Config `json:"providers"`
}

// APIConfig contains API server settings
type APIConfig struct {
	// Port is the server port to listen on
	Port string
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	// Host is the database server hostname
	Host string
	// Port is the database server port
	Port int
	// User is the database username
	User string
	// Password is the database password
	Password string
	// DBName is the database name
	DBName string
	// SSLMode is the SSL mode for the database connection
	SSLMode string
	// MigrationsPath is the path to database migrations
	MigrationsPath string
}

// CacheConfig contains cache layer settings
type CacheConfig struct {
	// Backend selects the cache store: "memory" or "redis"
	Backend string
	// RedisAddr is the Redis host:port, used when Backend is "redis"
	RedisAddr string
	// RedisPassword is the Redis password
	RedisPassword string
	// RedisDB is the Redis database index
	RedisDB int
	// KeyPrefix namespaces all cache keys
	KeyPrefix string
	// PriceTTL is how long aggregated price data stays fresh
	PriceTTL time.Duration
	// DealsTTL is how long ranked deal lists stay fresh
	DealsTTL time.Duration
}

// PricesConfig contains upstream price source settings
type PricesConfig struct {
	// UpstreamBaseURL is the base URL of the Strømpris API
	UpstreamBaseURL string
	// UpstreamTimeout is the per-request timeout against the upstream API
	UpstreamTimeout time.Duration
	// WindowDays is the default aggregation window
	WindowDays int
}

// LoadFromEnv retrieves configuration from environment variables
func (c *Config) LoadFromEnv() error {
	c.API = APIConfig{
		Port: getEnvOrDefault("API_PORT", "8080"),
	}
	c.Database = DatabaseConfig{
		Host:           getEnvOrDefault("DB_HOST", "localhost"),
		Port:           getEnvAsInt("DB_PORT", 5432),
		User:           getEnvOrDefault("DB_USER", "postgres"),
		Password:       getEnvOrDefault("DB_PASSWORD", "postgres"),
		DBName:         getEnvOrDefault("DB_NAME", "strompris"),
		SSLMode:        getEnvOrDefault("DB_SSL_MODE", "disable"),
		MigrationsPath: "migrations",
	}
	c.Cache = CacheConfig{
		Backend:       getEnvOrDefault("CACHE_BACKEND", "memory"),
		RedisAddr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
		KeyPrefix:     getEnvOrDefault("CACHE_KEY_PREFIX", "strompris"),
		PriceTTL:      getEnvAsDuration("CACHE_PRICE_TTL", 24*time.Hour),
		DealsTTL:      getEnvAsDuration("CACHE_DEALS_TTL", 16*time.Hour),
	}
	c.Prices = PricesConfig{
		UpstreamBaseURL: getEnvOrDefault("PRICE_API_BASE_URL", "https://www.hvakosterstrommen.no/api/v1/prices"),
		UpstreamTimeout: getEnvAsDuration("PRICE_API_TIMEOUT", 10*time.Second),
		WindowDays:      getEnvAsInt("PRICE_WINDOW_DAYS", 7),
	}

	// Initialize provider configuration
	c.Provider = make(map[string]provider.Config)
	c.Provider["hvakoster"] = provider.Config{
		Enabled:    getEnvAsBool("ENABLE_HVAKOSTER", false),
		Schedule:   os.Getenv("HVAKOSTER_SCHEDULE"),
		WindowDays: c.Prices.WindowDays,
	}

	// Load rate limit configuration
	c.RateLimit.Requests = getEnvAsInt("RATE_LIMIT_REQUESTS", 1000)
	c.RateLimit.Window = getEnvAsInt("RATE_LIMIT_WINDOW", 60)
	c.RateLimit.Burst = getEnvAsInt("RATE_LIMIT_BURST", 50)

	// Validate fields without sensible fallbacks
	if c.Cache.Backend != "memory" && c.Cache.Backend != "redis" {
		return fmt.Errorf("CACHE_BACKEND must be memory or redis, got %q", c.Cache.Backend)
	}
	if c.Prices.WindowDays < 1 || c.Prices.WindowDays > 30 {
		return fmt.Errorf("PRICE_WINDOW_DAYS must be between 1 and 30, got %d", c.Prices.WindowDays)
	}

	return nil
}

// getEnvAsInt retrieves an environment variable and converts it to an integer
func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

// getEnvAsBool retrieves an environment variable and converts it to a boolean
func getEnvAsBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}

// getEnvAsDuration retrieves an environment variable and parses it as a duration
func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}

func getEnvOrDefault(key string, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
