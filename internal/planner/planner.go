package planner

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/chatstream/chatstream-server/internal/observability"
	"github.com/chatstream/chatstream-server/internal/stream"
)

// Config holds the planner's tunable surface (spec §6 configuration
// surface: cache TTL, retry budget).
type Config struct {
	MaxAttempts    int
	CacheTTL       time.Duration
	AttemptTimeout time.Duration
	Limits         Limits
}

// DefaultConfig matches the recommended values in spec §6.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:    3,
		CacheTTL:       time.Hour,
		AttemptTimeout: 30 * time.Second,
		Limits:         DefaultLimits(),
	}
}

// Planner is the LLM planning collaborator (spec §4.7). One Planner is
// shared across requests; its only mutable shared state is the cache.
type Planner struct {
	client  Client
	store   Store
	group   singleflight.Group
	clock   Clock
	cfg     Config
	metrics *observability.Metrics
	logger  *slog.Logger
}

// New constructs a Planner. A nil store defaults to an in-memory cache; a
// nil clock sleeps for real. A nil metrics is fine — Metrics methods are
// no-ops on a nil receiver.
func New(client Client, store Store, cfg Config, clock Clock, metrics *observability.Metrics, logger *slog.Logger) *Planner {
	if store == nil {
		store = NewMemoryStore()
	}
	if clock == nil {
		clock = RealClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Planner{client: client, store: store, cfg: cfg, clock: clock, metrics: metrics, logger: logger}
}

// Produce returns the plan for message: a cache hit if one exists, else
// a freshly generated (or fallback) plan. Concurrent calls for the same
// message share one underlying generation via singleflight, matching the
// planner cache's "tolerate concurrent readers and writers" contract
// (spec §5).
func (p *Planner) Produce(ctx context.Context, message string) []PlanComponent {
	key := CacheKey(message)
	if cached, ok := p.store.Get(ctx, key); ok {
		p.metrics.RecordPlannerCacheHit(ctx)
		return cached
	}
	v, _, _ := p.group.Do(key, func() (any, error) {
		components, cacheable := p.generate(ctx, message)
		if cacheable {
			p.store.Set(ctx, key, components, p.cfg.CacheTTL)
		}
		return components, nil
	})
	return v.([]PlanComponent)
}

// generate runs the remote-call-with-retries pipeline (spec §4.7 steps
// 2-7). cacheable is false exactly when the fallback plan was served, so
// the caller never caches it (step 8).
func (p *Planner) generate(ctx context.Context, message string) (components []PlanComponent, cacheable bool) {
	messages := BuildMessages(message)

	for attempt := 0; attempt < p.cfg.MaxAttempts; attempt++ {
		if attempt > 0 {
			if err := p.clock.Sleep(ctx, backoffDelay(attempt-1)); err != nil {
				break
			}
		}

		attemptCtx, cancel := context.WithTimeout(ctx, p.cfg.AttemptTimeout)
		text, err := p.client.Complete(attemptCtx, messages)
		cancel()
		if err != nil {
			p.logger.Warn("planner: llm call failed", "attempt", attempt, "error", err)
			continue
		}

		raw, found := extractDelimited(text)
		if !found {
			raw = bestEffortExtract(text)
		}

		var decoded []rawComponent
		if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
			p.logger.Warn("planner: could not parse plan json", "attempt", attempt, "error", err)
			continue
		}

		validated := validateComponents(decoded, p.cfg.Limits)
		if len(validated) == 0 {
			p.logger.Warn("planner: plan had no valid components", "attempt", attempt)
			continue
		}
		return validated, true
	}

	p.logger.Error("planner: exhausted retries, serving fallback plan")
	p.metrics.RecordPlannerFallback(ctx)
	return FallbackComponents(), false
}

// Run emits a plan's components as single-frame, non-progressive
// envelopes in declared order (spec §4.7 step 9). The stream's registry
// still records each assigned id for protocol consistency (I4).
func (p *Planner) Run(s *stream.Stream, message string) error {
	components := p.Produce(s.Context(), message)
	if max := s.Limits().MaxComponentsPerResponse; len(components) > max {
		components = components[:max]
	}
	for _, c := range components {
		if _, err := s.Introduce(c.Type, c.Data); err != nil {
			return err
		}
	}
	return nil
}
