package stream_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatstream/chatstream-server/internal/stream"
	"github.com/chatstream/chatstream-server/internal/wire"
)

// fakeClock never actually sleeps but still observes cancellation, so
// tests run instantly while exercising the same suspension-point logic
// as the real clock.
type fakeClock struct {
	calls []time.Duration
}

func (f *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	f.calls = append(f.calls, d)
	return ctx.Err()
}

func newTestStream(t *testing.T, buf *bytes.Buffer) (*stream.Stream, *fakeClock) {
	t.Helper()
	fc := &fakeClock{}
	s := stream.New(context.Background(), buf, nil, stream.DefaultTiming(), stream.DefaultLimits(), fc, nil)
	return s, fc
}

func TestText_WritesEveryCharacter(t *testing.T) {
	var buf bytes.Buffer
	s, _ := newTestStream(t, &buf)
	require.NoError(t, s.Text("hi there"))
	assert.Equal(t, "hi there", buf.String())
}

func TestText_SleepsPerCharAndPerWord(t *testing.T) {
	var buf bytes.Buffer
	s, fc := newTestStream(t, &buf)
	require.NoError(t, s.Text("ab cd"))
	// 4 letters + 1 inter-word beat = 5 sleeps.
	assert.Len(t, fc.calls, 5)
	assert.Equal(t, s.Timing().WordDelay, fc.calls[2])
}

func TestText_CancelledContextWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	fc := &fakeClock{}
	s := stream.New(ctx, &buf, nil, stream.DefaultTiming(), stream.DefaultLimits(), fc, nil)
	cancel()
	err := s.Text("hello")
	assert.Error(t, err)
	assert.Equal(t, "", buf.String())
}

func TestFrame_EmitsDelimitedEnvelope(t *testing.T) {
	var buf bytes.Buffer
	s, _ := newTestStream(t, &buf)
	require.NoError(t, s.Frame(wire.Envelope{Type: wire.SimpleComponent, ID: "abc", Data: map[string]any{"x": 1}}))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, wire.Delimiter))
	assert.True(t, strings.HasSuffix(out, wire.Delimiter))
}

func TestIntroduce_RegistersAndEmits(t *testing.T) {
	var buf bytes.Buffer
	s, _ := newTestStream(t, &buf)
	id, err := s.Introduce(wire.SimpleComponent, map[string]any{"title": "x"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.True(t, s.Registry().Has(id))
	assert.Contains(t, buf.String(), id)
}

func TestUpdate_UnknownIDIsDroppedNotErrored(t *testing.T) {
	var buf bytes.Buffer
	s, _ := newTestStream(t, &buf)
	err := s.Update(wire.SimpleComponent, "does-not-exist", map[string]any{"x": 1})
	assert.NoError(t, err)
	assert.Equal(t, "", buf.String())
}

func TestUpdate_KnownIDEmitsPatch(t *testing.T) {
	var buf bytes.Buffer
	s, _ := newTestStream(t, &buf)
	id, err := s.Introduce(wire.TableA, map[string]any{"columns": []string{"a"}})
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, s.Update(wire.TableA, id, map[string]any{"rows": [][]any{{"v"}}}))
	assert.Contains(t, buf.String(), `"rows"`)
}

func TestComponentBudgetRemaining_DecreasesAsComponentsIntroduced(t *testing.T) {
	var buf bytes.Buffer
	s, _ := newTestStream(t, &buf)
	start := s.ComponentBudgetRemaining()
	_, err := s.Introduce(wire.SimpleComponent, nil)
	require.NoError(t, err)
	assert.Equal(t, start-1, s.ComponentBudgetRemaining())
}
