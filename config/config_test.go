package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "LOG_LEVEL", "REDIS_ADDR", "CACHE_TTL", "CACHE_MAX_ENTRIES", "HISTORY_DB_PATH", "HISTORY_CAPACITY", "HISTORY_LIMIT", "RATE_LIMIT", "RATE_LIMIT_WINDOW", "RATE_LIMIT_BURST", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "", cfg.RedisAddr)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, 10000, cfg.CacheMaxEntries)
	assert.Equal(t, 1000, cfg.HistoryCapacity)
	assert.Equal(t, 100, cfg.HistoryLimit)
	assert.Equal(t, 60, cfg.RateLimit)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.Zero(t, cfg.RateLimitBurst)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_PRETTY", "true")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("CACHE_TTL", "15m")
	t.Setenv("RATE_LIMIT", "5")
	t.Setenv("RATE_LIMIT_BURST", "10")
	t.Setenv("HISTORY_CAPACITY", "500")
	t.Setenv("HISTORY_LIMIT", "25")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.LogPretty)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 15*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 5, cfg.RateLimit)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.Equal(t, 500, cfg.HistoryCapacity, "store capacity is independent of the listing limit")
	assert.Equal(t, 25, cfg.HistoryLimit)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoad_IgnoresMalformedValues(t *testing.T) {
	t.Setenv("PORT", "eighty")
	t.Setenv("CACHE_TTL", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"RATE_LIMIT", "-1"},
		{"RATE_LIMIT_BURST", "-1"},
		{"HISTORY_CAPACITY", "0"},
		{"HISTORY_LIMIT", "-5"},
		{"CACHE_MAX_ENTRIES", "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
