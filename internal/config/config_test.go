package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "disaster_response_model", cfg.ModelName)
	assert.Equal(t, "models", cfg.ModelDir)
	assert.Equal(t, 1000, cfg.MaxBatchSize)
	assert.Equal(t, []string{
		"http://localhost:5173",
		"http://localhost:3000",
		"https://your-react-app.vercel.app",
	}, cfg.CORSAllowedOrigins)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 3, cfg.WebhookMaxRetries)
	assert.Equal(t, time.Second, cfg.WebhookBaseDelay)
	assert.False(t, cfg.CacheEnabled())
	assert.False(t, cfg.AlertsEnabled())
}

func TestLoadConfig_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MODEL_NAME", "custom_model")
	t.Setenv("MODEL_DIR", "/opt/models")
	t.Setenv("MAX_BATCH_SIZE", "50")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("WEBHOOK_URL", "https://hooks.example/alerts")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "custom_model", cfg.ModelName)
	assert.Equal(t, "/opt/models", cfg.ModelDir)
	assert.Equal(t, 50, cfg.MaxBatchSize)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.True(t, cfg.CacheEnabled())
	assert.True(t, cfg.AlertsEnabled())
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfig_InvalidBatchSize(t *testing.T) {
	t.Setenv("MAX_BATCH_SIZE", "0")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MAX_BATCH_SIZE")
}
