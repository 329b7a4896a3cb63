package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	var cfg Config
	require.NoError(t, cfg.LoadFromEnv())

	assert.Equal(t, "8080", cfg.API.Port)
	assert.Equal(t, "strompris", cfg.Database.DBName)
	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.Equal(t, "strompris", cfg.Cache.KeyPrefix)
	assert.Equal(t, 24*time.Hour, cfg.Cache.PriceTTL)
	assert.Equal(t, 16*time.Hour, cfg.Cache.DealsTTL)
	assert.Equal(t, 7, cfg.Prices.WindowDays)
	assert.Equal(t, 10*time.Second, cfg.Prices.UpstreamTimeout)
	assert.Equal(t, 1000, cfg.RateLimit.Requests)

	hvakoster, ok := cfg.Provider["hvakoster"]
	require.True(t, ok)
	assert.False(t, hvakoster.Enabled)
	assert.Equal(t, 7, hvakoster.WindowDays)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("API_PORT", "9090")
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("CACHE_PRICE_TTL", "1h30m")
	t.Setenv("CACHE_DEALS_TTL", "45m")
	t.Setenv("PRICE_WINDOW_DAYS", "14")
	t.Setenv("ENABLE_HVAKOSTER", "true")
	t.Setenv("HVAKOSTER_SCHEDULE", "0 14 * * *")

	var cfg Config
	require.NoError(t, cfg.LoadFromEnv())

	assert.Equal(t, "9090", cfg.API.Port)
	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, "redis:6379", cfg.Cache.RedisAddr)
	assert.Equal(t, 90*time.Minute, cfg.Cache.PriceTTL)
	assert.Equal(t, 45*time.Minute, cfg.Cache.DealsTTL)
	assert.Equal(t, 14, cfg.Prices.WindowDays)

	hvakoster := cfg.Provider["hvakoster"]
	assert.True(t, hvakoster.Enabled)
	assert.Equal(t, "0 14 * * *", hvakoster.Schedule)
	assert.Equal(t, 14, hvakoster.WindowDays)
}

func TestLoadFromEnv_InvalidCacheBackend(t *testing.T) {
	t.Setenv("CACHE_BACKEND", "memcached")

	var cfg Config
	err := cfg.LoadFromEnv()
	assert.ErrorContains(t, err, "CACHE_BACKEND")
}

func TestLoadFromEnv_InvalidWindow(t *testing.T) {
	for _, window := range []string{"0", "31", "-1"} {
		t.Setenv("PRICE_WINDOW_DAYS", window)

		var cfg Config
		err := cfg.LoadFromEnv()
		assert.ErrorContains(t, err, "PRICE_WINDOW_DAYS", "window %s", window)
	}
}

func TestLoadFromEnv_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")
	t.Setenv("CACHE_PRICE_TTL", "soon")
	t.Setenv("ENABLE_HVAKOSTER", "maybe")

	var cfg Config
	require.NoError(t, cfg.LoadFromEnv())

	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 24*time.Hour, cfg.Cache.PriceTTL)
	assert.False(t, cfg.Provider["hvakoster"].Enabled)
}
