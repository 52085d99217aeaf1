// Package config provides application configuration loaded from environment
// variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chatstream/chatstream-server/internal/planner"
	"github.com/chatstream/chatstream-server/internal/stream"
)

// Config holds all application configuration (spec §6 configuration
// surface).
type Config struct {
	Port        string
	LogLevel    string
	CORSOrigins []string

	RateLimitRPS   float64
	RateLimitBurst int

	Timing stream.Timing
	Limits stream.Limits

	LLMBaseURL  string
	LLMAPIKey   string
	LLMModel    string
	RedisAddr   string
	RedisDB     int
	PlannerCfg  planner.Config
	OTelEnabled bool
}

// LoadFromEnv reads configuration from environment variables with sensible
// defaults matching the recommended values in spec §6.
func LoadFromEnv() (Config, error) {
	timing := stream.DefaultTiming()
	limits := stream.DefaultLimits()
	plannerCfg := planner.DefaultConfig()

	cfg := Config{
		Port:           envOr("CHATSTREAM_PORT", "8080"),
		LogLevel:       envOr("CHATSTREAM_LOG_LEVEL", "info"),
		CORSOrigins:    parseCORSOrigins(os.Getenv("CHATSTREAM_CORS_ORIGINS")),
		RateLimitRPS:   envFloat("CHATSTREAM_RATE_LIMIT_RPS", 10),
		RateLimitBurst: envInt("CHATSTREAM_RATE_LIMIT_BURST", 20),

		Timing: stream.Timing{
			CharDelay:         envDuration("CHATSTREAM_CHAR_DELAY", timing.CharDelay),
			WordDelay:         envDuration("CHATSTREAM_WORD_DELAY", timing.WordDelay),
			FrameDelay:        envDuration("CHATSTREAM_FRAME_DELAY", timing.FrameDelay),
			TableRowDelay:     envDuration("CHATSTREAM_TABLE_ROW_DELAY", timing.TableRowDelay),
			ChartPointDelay:   envDuration("CHATSTREAM_CHART_POINT_DELAY", timing.ChartPointDelay),
			SingleDelayedWait: envDuration("CHATSTREAM_SINGLE_DELAYED_WAIT", timing.SingleDelayedWait),
			MultiDelayedWait:  envDuration("CHATSTREAM_MULTI_DELAYED_WAIT", timing.MultiDelayedWait),
		},
		Limits: stream.Limits{
			MaxComponentsPerResponse: envInt("CHATSTREAM_MAX_COMPONENTS", limits.MaxComponentsPerResponse),
			MaxTablesPerResponse:     envInt("CHATSTREAM_MAX_TABLES", limits.MaxTablesPerResponse),
			MaxChartsPerResponse:     envInt("CHATSTREAM_MAX_CHARTS", limits.MaxChartsPerResponse),
			MaxTableRows:             envInt("CHATSTREAM_MAX_TABLE_ROWS", limits.MaxTableRows),
			MaxChartPoints:           envInt("CHATSTREAM_MAX_CHART_POINTS", limits.MaxChartPoints),
		},

		LLMBaseURL: os.Getenv("CHATSTREAM_LLM_BASE_URL"),
		LLMAPIKey:  os.Getenv("CHATSTREAM_LLM_API_KEY"),
		LLMModel:   envOr("CHATSTREAM_LLM_MODEL", "gpt-4o-mini"),
		RedisAddr:  os.Getenv("CHATSTREAM_REDIS_ADDR"),
		RedisDB:    envInt("CHATSTREAM_REDIS_DB", 0),

		PlannerCfg: planner.Config{
			MaxAttempts:    envInt("CHATSTREAM_LLM_MAX_ATTEMPTS", plannerCfg.MaxAttempts),
			CacheTTL:       envDuration("CHATSTREAM_LLM_CACHE_TTL", plannerCfg.CacheTTL),
			AttemptTimeout: envDuration("CHATSTREAM_LLM_ATTEMPT_TIMEOUT", plannerCfg.AttemptTimeout),
			Limits: planner.Limits{
				MaxComponents:  envInt("CHATSTREAM_MAX_COMPONENTS", plannerCfg.Limits.MaxComponents),
				MaxTableRows:   envInt("CHATSTREAM_MAX_TABLE_ROWS", plannerCfg.Limits.MaxTableRows),
				MaxChartPoints: envInt("CHATSTREAM_MAX_CHART_POINTS", plannerCfg.Limits.MaxChartPoints),
			},
		},
		OTelEnabled: envBool("CHATSTREAM_OTEL_ENABLED", false),
	}

	if cfg.RateLimitRPS <= 0 {
		return Config{}, fmt.Errorf("config: CHATSTREAM_RATE_LIMIT_RPS must be positive")
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func parseCORSOrigins(raw string) []string {
	if raw == "" {
		return []string{"*"}
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if t := strings.TrimSpace(o); t != "" {
			origins = append(origins, t)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
