// Command chatserver runs the streaming chat HTTP API.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/chatstream/chatstream-server/internal/config"
	"github.com/chatstream/chatstream-server/internal/httpapi"
	"github.com/chatstream/chatstream-server/internal/observability"
	"github.com/chatstream/chatstream-server/internal/planner"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("config error", "error", err)
		os.Exit(1)
	}

	logger := observability.InitLogger(cfg.LogLevel)

	var metrics *observability.Metrics
	if cfg.OTelEnabled {
		shutdown, err := observability.InitTracer(context.Background(), "chatstream-server")
		if err != nil {
			logger.Error("otel init failed", "error", err)
		} else {
			defer shutdown(context.Background())
		}

		metrics, err = observability.NewMetrics()
		if err != nil {
			logger.Error("otel metrics init failed", "error", err)
			metrics = nil
		}
	}

	var llmClient planner.Client
	if cfg.LLMAPIKey == "" {
		logger.Warn("CHATSTREAM_LLM_API_KEY not set; planner will serve the fallback plan for every LLM-pattern request")
		llmClient = noopLLMClient{}
	} else {
		llmClient = planner.NewOpenAIClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel)
	}

	var store planner.Store
	if cfg.RedisAddr != "" {
		store = planner.NewRedisStore(cfg.RedisAddr, "", cfg.RedisDB)
	} else {
		store = planner.NewMemoryStore()
	}

	p := planner.New(llmClient, store, cfg.PlannerCfg, planner.RealClock(), metrics, logger)

	deps := httpapi.Deps{
		Planner: p,
		Timing:  cfg.Timing,
		Limits:  cfg.Limits,
		Metrics: metrics,
		Logger:  logger,
	}
	srv := httpapi.New(deps, httpapi.Config{
		CORSOrigins:    cfg.CORSOrigins,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})

	var handler http.Handler = srv
	if cfg.OTelEnabled {
		handler = otelhttp.NewHandler(handler, "chatstream-api")
	}

	addr := ":" + cfg.Port
	httpSrv := &http.Server{
		Addr:    addr,
		Handler: handler,
		// No WriteTimeout: chat responses stream for as long as the
		// dispatch pattern's timing discipline calls for (multi-second
		// delayed cards included).
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting chat server", "addr", addr, "otel_enabled", cfg.OTelEnabled)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

// noopLLMClient is the planner client used when no LLM credentials are
// configured; every attempt fails immediately so the planner exhausts its
// retries and falls straight through to the deterministic fallback plan.
type noopLLMClient struct{}

func (noopLLMClient) Complete(context.Context, []planner.Message) (string, error) {
	return "", errNoLLMConfigured
}

var errNoLLMConfigured = errors.New("chatserver: no LLM client configured")
