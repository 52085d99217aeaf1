package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds OTel metric instruments for the chat streaming service.
type Metrics struct {
	RequestCount     metric.Int64Counter
	StreamDuration   metric.Float64Histogram
	ComponentCount   metric.Int64Histogram
	PlannerFallbacks metric.Int64Counter
	PlannerCacheHits metric.Int64Counter
}

// NewMetrics creates the chat streaming service's metric instruments.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter("chatstream")

	requestCount, err := meter.Int64Counter("chatstream.requests.count",
		metric.WithDescription("Number of chat requests handled, by dispatch pattern"),
	)
	if err != nil {
		return nil, err
	}

	streamDuration, err := meter.Float64Histogram("chatstream.stream.duration_seconds",
		metric.WithDescription("Wall time from request start to stream completion"),
	)
	if err != nil {
		return nil, err
	}

	componentCount, err := meter.Int64Histogram("chatstream.components.count",
		metric.WithDescription("Number of components introduced per response"),
	)
	if err != nil {
		return nil, err
	}

	plannerFallbacks, err := meter.Int64Counter("chatstream.planner.fallbacks",
		metric.WithDescription("Number of requests served the deterministic fallback plan"),
	)
	if err != nil {
		return nil, err
	}

	plannerCacheHits, err := meter.Int64Counter("chatstream.planner.cache_hits",
		metric.WithDescription("Number of planner requests served from cache"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		RequestCount:     requestCount,
		StreamDuration:   streamDuration,
		ComponentCount:   componentCount,
		PlannerFallbacks: plannerFallbacks,
		PlannerCacheHits: plannerCacheHits,
	}, nil
}

// RecordRequest records one handled chat request, tagged by its dispatch
// pattern. A nil *Metrics is a no-op, so callers that run without OTel
// configured don't need to guard every call site.
func (m *Metrics) RecordRequest(ctx context.Context, pattern string) {
	if m == nil {
		return
	}
	m.RequestCount.Add(ctx, 1, metric.WithAttributes(attribute.String("pattern", pattern)))
}

// RecordStreamDuration records the wall time a streamed response took to complete.
func (m *Metrics) RecordStreamDuration(ctx context.Context, pattern string, d time.Duration) {
	if m == nil {
		return
	}
	m.StreamDuration.Record(ctx, d.Seconds(), metric.WithAttributes(attribute.String("pattern", pattern)))
}

// RecordComponentCount records how many components a response introduced.
func (m *Metrics) RecordComponentCount(ctx context.Context, n int) {
	if m == nil {
		return
	}
	m.ComponentCount.Record(ctx, int64(n))
}

// RecordPlannerFallback records that the planner exhausted retries and served the fallback plan.
func (m *Metrics) RecordPlannerFallback(ctx context.Context) {
	if m == nil {
		return
	}
	m.PlannerFallbacks.Add(ctx, 1)
}

// RecordPlannerCacheHit records a planner cache hit.
func (m *Metrics) RecordPlannerCacheHit(ctx context.Context) {
	if m == nil {
		return
	}
	m.PlannerCacheHits.Add(ctx, 1)
}
