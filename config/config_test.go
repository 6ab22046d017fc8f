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

	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, "gemini-3-flash-preview", cfg.Gemini.Model)
	assert.Equal(t, 30*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, 10*time.Minute, cfg.Advisor.CacheTTL)
	require.NotNil(t, cfg.Gemini.ThinkingBudgetPtr())
	assert.Equal(t, 0, *cfg.Gemini.ThinkingBudgetPtr())
	assert.False(t, cfg.Tracing.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("HTTP_SERVER_PORT", "9090")
	t.Setenv("GEMINI_THINKING_BUDGET", "-1")
	t.Setenv("RATE_LIMIT_REQUESTS_PER_MIN", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Gemini.APIKey)
	assert.Equal(t, 9090, cfg.HTTPServer.Port)
	assert.Nil(t, cfg.Gemini.ThinkingBudgetPtr())
	assert.Equal(t, 5, cfg.RateLimit.RequestsPerMin)
}

func TestLoad_MissingAPIKeyIsNotAnError(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.Gemini.APIKey)
}

func TestLoad_TracingNeedsEndpoint(t *testing.T) {
	t.Setenv("TRACING_ENABLED", "true")

	_, err := Load()
	assert.Error(t, err)
}
