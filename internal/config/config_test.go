package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 5, cfg.Limits.MaxComponentsPerResponse)
	assert.Equal(t, 3*time.Second, cfg.Timing.MultiDelayedWait)
	assert.Equal(t, time.Hour, cfg.PlannerCfg.CacheTTL)
}

func TestLoadFromEnv_OverridesFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHATSTREAM_PORT", "9090")
	t.Setenv("CHATSTREAM_MAX_TABLES", "7")
	t.Setenv("CHATSTREAM_SINGLE_DELAYED_WAIT", "2s")
	t.Setenv("CHATSTREAM_CORS_ORIGINS", "http://localhost:3000, http://localhost:5173")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 7, cfg.Limits.MaxTablesPerResponse)
	assert.Equal(t, 2*time.Second, cfg.Timing.SingleDelayedWait)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.CORSOrigins)
}

func TestLoadFromEnv_RejectsNonPositiveRateLimit(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHATSTREAM_RATE_LIMIT_RPS", "0")

	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RATE_LIMIT_RPS")
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CHATSTREAM_PORT", "CHATSTREAM_CORS_ORIGINS", "CHATSTREAM_RATE_LIMIT_RPS",
		"CHATSTREAM_RATE_LIMIT_BURST", "CHATSTREAM_CHAR_DELAY", "CHATSTREAM_WORD_DELAY",
		"CHATSTREAM_FRAME_DELAY", "CHATSTREAM_TABLE_ROW_DELAY", "CHATSTREAM_CHART_POINT_DELAY",
		"CHATSTREAM_SINGLE_DELAYED_WAIT", "CHATSTREAM_MULTI_DELAYED_WAIT", "CHATSTREAM_MAX_COMPONENTS",
		"CHATSTREAM_MAX_TABLES", "CHATSTREAM_MAX_CHARTS", "CHATSTREAM_MAX_TABLE_ROWS",
		"CHATSTREAM_MAX_CHART_POINTS", "CHATSTREAM_LLM_BASE_URL", "CHATSTREAM_LLM_API_KEY",
		"CHATSTREAM_LLM_MODEL", "CHATSTREAM_REDIS_ADDR", "CHATSTREAM_REDIS_DB",
		"CHATSTREAM_LLM_MAX_ATTEMPTS", "CHATSTREAM_LLM_CACHE_TTL", "CHATSTREAM_LLM_ATTEMPT_TIMEOUT",
		"CHATSTREAM_OTEL_ENABLED", "CHATSTREAM_LOG_LEVEL",
	} {
		orig, wasSet := os.LookupEnv(key)
		if wasSet {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}
