package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_Defaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ParseEnv(cfg))

	assert.Equal(t, "8088", cfg.App.Port)
	assert.Equal(t, 20, cfg.Scoring.DefaultMaxOvers)
	assert.True(t, cfg.Scoring.RequireNewBatsman)
	assert.True(t, cfg.Scoring.LocalFallback)
	assert.Equal(t, 6*time.Hour, cfg.Redis.LiveTTL)
	assert.Equal(t, "livescore:updates", cfg.Redis.Stream)
	assert.False(t, cfg.RedisEnabled())
	assert.NoError(t, cfg.validate())
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("LIVE_TTL", "30m")
	t.Setenv("DEFAULT_MAX_OVERS", "50")
	t.Setenv("REQUIRE_NEW_BATSMAN", "false")
	t.Setenv("DB_TIMEZONE", "UTC")

	cfg := &Config{}
	require.NoError(t, ParseEnv(cfg))

	assert.Equal(t, "9090", cfg.App.Port)
	assert.True(t, cfg.RedisEnabled())
	assert.Equal(t, 30*time.Minute, cfg.Redis.LiveTTL)
	assert.Equal(t, 50, cfg.Scoring.DefaultMaxOvers)
	assert.False(t, cfg.Scoring.RequireNewBatsman)
	assert.Contains(t, cfg.DSN(), "TimeZone=UTC")
}

func TestParseEnv_Invalid(t *testing.T) {
	t.Setenv("DEFAULT_MAX_OVERS", "twenty")
	err := ParseEnv(&Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestValidate(t *testing.T) {
	t.Setenv("DEFAULT_MAX_OVERS", "0")
	cfg := &Config{}
	require.NoError(t, ParseEnv(cfg))
	assert.Error(t, cfg.validate())
}
