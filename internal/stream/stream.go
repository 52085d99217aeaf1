// Package stream implements the cooperative emission engine: the
// goroutine-as-async-generator that turns a dispatch pattern into a
// sequence of byte fragments written to the HTTP response as they're
// produced (spec §5, §9 "Async generators → cooperative task").
package stream

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/chatstream/chatstream-server/internal/idgen"
	"github.com/chatstream/chatstream-server/internal/registry"
	"github.com/chatstream/chatstream-server/internal/wire"
)

// Clock abstracts sleeping so tests can run the real timing discipline
// without actually waiting, and so the hard 3s/5s delayed-card waits are
// injectable.
type Clock interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// realClock sleeps for real, honoring context cancellation — the
// suspension-point discipline from spec §5.
type realClock struct{}

func (realClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RealClock is the production Clock.
func RealClock() Clock { return realClock{} }

// Timing holds the configurable delay surface (spec §6).
type Timing struct {
	CharDelay         time.Duration
	WordDelay         time.Duration
	FrameDelay        time.Duration
	TableRowDelay     time.Duration
	ChartPointDelay   time.Duration
	SingleDelayedWait time.Duration
	MultiDelayedWait  time.Duration
}

// DefaultTiming matches the recommended values in spec §6.
func DefaultTiming() Timing {
	return Timing{
		CharDelay:         15 * time.Millisecond,
		WordDelay:         100 * time.Millisecond,
		FrameDelay:        100 * time.Millisecond,
		TableRowDelay:     200 * time.Millisecond,
		ChartPointDelay:   200 * time.Millisecond,
		SingleDelayedWait: 5 * time.Second,
		MultiDelayedWait:  3 * time.Second,
	}
}

// Limits holds the configurable bounds surface (spec §6).
type Limits struct {
	MaxComponentsPerResponse int
	MaxTablesPerResponse     int
	MaxChartsPerResponse     int
	MaxTableRows             int
	MaxChartPoints           int
}

// DefaultLimits matches the recommended values in spec §6.
func DefaultLimits() Limits {
	return Limits{
		MaxComponentsPerResponse: 5,
		MaxTablesPerResponse:     3,
		MaxChartsPerResponse:     3,
		MaxTableRows:             20,
		MaxChartPoints:           50,
	}
}

// Stream is the per-request emission context: the registry, id
// generator, timing discipline, and the sink it writes framed/raw bytes
// to. It is not safe for concurrent use — one Stream serves exactly one
// request, from exactly one goroutine, matching the "no shared mutable
// state between requests" concurrency model in spec §5.
type Stream struct {
	ctx    context.Context
	w      io.Writer
	flush  func()
	reg    *registry.Registry
	ids    *idgen.Generator
	timing Timing
	limits Limits
	clock  Clock
	logger *slog.Logger
}

// Flusher is implemented by response writers that can push partial
// writes to the client immediately (http.ResponseWriter via http.Flusher
// in production; a no-op in tests that don't care about flush timing).
type Flusher interface {
	Flush()
}

// New constructs a Stream. flush is called after every write that should
// reach the client immediately (every prose character, every frame).
func New(ctx context.Context, w io.Writer, flush func(), timing Timing, limits Limits, clock Clock, logger *slog.Logger) *Stream {
	if clock == nil {
		clock = RealClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if flush == nil {
		flush = func() {}
	}
	return &Stream{
		ctx:    ctx,
		w:      w,
		flush:  flush,
		reg:    registry.New(),
		ids:    idgen.New(),
		timing: timing,
		limits: limits,
		clock:  clock,
		logger: logger,
	}
}

// Context returns the request context, for callers (e.g. the LLM
// planner) that need to propagate cancellation into their own I/O.
func (s *Stream) Context() context.Context { return s.ctx }

// Limits exposes the configured bounds.
func (s *Stream) Limits() Limits { return s.limits }

// Timing exposes the configured delays.
func (s *Stream) Timing() Timing { return s.timing }

// Registry exposes the per-request registry for emitters that need
// direct read access (e.g. to build the next cumulative array).
func (s *Stream) Registry() *registry.Registry { return s.reg }

// NextID allocates a fresh component id.
func (s *Stream) NextID() string { return s.ids.Next() }

// ComponentBudgetRemaining reports how many more components this
// response may introduce before hitting the configured cap.
func (s *Stream) ComponentBudgetRemaining() int {
	remaining := s.limits.MaxComponentsPerResponse - s.reg.Len()
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Sleep suspends the task for d, or returns the context's cancellation
// error if the client disconnects first.
func (s *Stream) Sleep(d time.Duration) error {
	return s.clock.Sleep(s.ctx, d)
}

func (s *Stream) writeRaw(b []byte) error {
	if err := s.ctx.Err(); err != nil {
		return err
	}
	if _, err := s.w.Write(b); err != nil {
		return err
	}
	s.flush()
	return nil
}

// Text streams msg as raw prose, pausing per character and an extra
// per-word beat, matching the typewriter discipline in spec §4.4.
func (s *Stream) Text(msg string) error {
	words := strings.Split(msg, " ")
	for wi, word := range words {
		for _, r := range word {
			if err := s.writeRaw([]byte(string(r))); err != nil {
				return err
			}
			if err := s.Sleep(s.timing.CharDelay); err != nil {
				return err
			}
		}
		if wi < len(words)-1 {
			if err := s.writeRaw([]byte(" ")); err != nil {
				return err
			}
			if err := s.Sleep(s.timing.WordDelay); err != nil {
				return err
			}
		}
	}
	return nil
}

// Frame writes one envelope, framed by the wire delimiter, then waits
// the per-frame beat.
func (s *Stream) Frame(env wire.Envelope) error {
	b, err := wire.Encode(env)
	if err != nil {
		// A malformed data map is a programming error in a caller; drop
		// the frame rather than corrupt the stream (spec §7.2 analog).
		s.logger.Warn("stream: dropping frame with unmarshalable data", "id", env.ID, "type", env.Type, "error", err)
		return nil
	}
	if err := s.writeRaw(b); err != nil {
		return err
	}
	return s.Sleep(s.timing.FrameDelay)
}

// Introduce registers a new component and emits its first frame. It is
// the opening step every emitter sub-mode shares (spec §4.4).
func (s *Stream) Introduce(kind wire.Kind, initial map[string]any) (string, error) {
	id := s.NextID()
	if err := s.reg.Introduce(id, kind, initial); err != nil {
		// Duplicate ids are a programming error that id generation should
		// have prevented; log and drop rather than corrupt the stream.
		s.logger.Warn("stream: duplicate id introduction dropped", "id", id, "error", err)
		return id, nil
	}
	if err := s.Frame(wire.Envelope{Type: kind, ID: id, Data: initial}); err != nil {
		return id, err
	}
	return id, nil
}

// Update merges patch into id's registry entry and emits the resulting
// partial-update frame. Updating an unknown id is a programming error:
// per spec §4.2/§7 it is logged at WARN and the frame is dropped, never
// surfaced to the client.
func (s *Stream) Update(kind wire.Kind, id string, patch map[string]any) error {
	if err := s.reg.Update(id, patch); err != nil {
		s.logger.Warn("stream: update on unknown id dropped", "id", id, "error", err)
		return nil
	}
	return s.Frame(wire.Envelope{Type: kind, ID: id, Data: patch})
}
