package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "50061", cfg.GRPCPort)
	assert.Equal(t, ":50061", cfg.Addr())
	assert.Equal(t, "dev-token", cfg.APIToken)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.MarketFeedURL)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 15*time.Minute, cfg.MarketCacheTTL)
	assert.False(t, cfg.GRPCReflection)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("GRPC_PORT", "50099")
	t.Setenv("API_TOKEN", "prod-token")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MARKET_FEED_URL", "http://feeds.internal/mortgage")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("MARKET_CACHE_TTL", "1h")
	t.Setenv("GRPC_REFLECTION", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":50099", cfg.Addr())
	assert.Equal(t, "prod-token", cfg.APIToken)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "http://feeds.internal/mortgage", cfg.MarketFeedURL)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, time.Hour, cfg.MarketCacheTTL)
	assert.True(t, cfg.GRPCReflection)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Run("non-numeric port", func(t *testing.T) {
		t.Setenv("GRPC_PORT", "fifty thousand")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "GRPC_PORT must be numeric")
	})

	t.Run("bad cache ttl", func(t *testing.T) {
		t.Setenv("MARKET_CACHE_TTL", "soon")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "MARKET_CACHE_TTL")
	})

	t.Run("bad reflection flag falls back", func(t *testing.T) {
		t.Setenv("GRPC_REFLECTION", "yes please")

		cfg, err := Load()
		require.NoError(t, err)
		assert.False(t, cfg.GRPCReflection)
	})
}
