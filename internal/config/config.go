package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const defaultAPIToken = "dev-token"

// Config holds application configuration
type Config struct {
	GRPCPort       string
	APIToken       string
	LogLevel       string
	MarketFeedURL  string // empty selects the built-in static provider
	RedisAddr      string // empty disables the snapshot cache
	MarketCacheTTL time.Duration
	GRPCReflection bool
}

// Load reads configuration from environment variables. A local .env file is
// loaded first when present; missing files are not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		GRPCPort:       getEnv("GRPC_PORT", "50061"),
		APIToken:       getEnv("API_TOKEN", defaultAPIToken),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		MarketFeedURL:  getEnv("MARKET_FEED_URL", ""),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		GRPCReflection: getEnvBool("GRPC_REFLECTION", false),
	}

	ttl, err := getEnvDuration("MARKET_CACHE_TTL", 15*time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.MarketCacheTTL = ttl

	if cfg.GRPCPort == "" {
		return nil, fmt.Errorf("GRPC_PORT is required")
	}
	if _, err := strconv.Atoi(cfg.GRPCPort); err != nil {
		return nil, fmt.Errorf("GRPC_PORT must be numeric: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address for the gRPC server.
func (c *Config) Addr() string {
	return ":" + c.GRPCPort
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultVal
	}
	return parsed
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultVal, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration like 15m: %w", key, err)
	}
	return parsed, nil
}
