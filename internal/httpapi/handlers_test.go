package httpapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatstream/chatstream-server/internal/httpapi"
	"github.com/chatstream/chatstream-server/internal/planner"
	"github.com/chatstream/chatstream-server/internal/stream"
	"github.com/chatstream/chatstream-server/internal/wire"
)

type stubLLMClient struct{}

func (stubLLMClient) Complete(context.Context, []planner.Message) (string, error) {
	return wire.Delimiter + `[{"type":"SimpleComponent","data":{"title":"x"}}]` + wire.Delimiter, nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	p := planner.New(stubLLMClient{}, planner.NewMemoryStore(), planner.DefaultConfig(), nil, nil, nil)
	deps := httpapi.Deps{
		Planner: p,
		Timing:  stream.DefaultTiming(),
		Limits:  stream.DefaultLimits(),
	}
	cfg := httpapi.Config{CORSOrigins: []string{"*"}, RateLimitRPS: 1000, RateLimitBurst: 1000}
	srv := httpapi.New(deps, cfg)
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	return ts
}

func TestHealth_ReturnsOK(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestChat_MissingMessageFieldIs400(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Post(ts.URL+"/chat", "application/json", bytes.NewBufferString(`{}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestChat_MalformedJSONIs400(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Post(ts.URL+"/chat", "application/json", bytes.NewBufferString(`not json`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestChat_EmptyMessageStreamsPlainText(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Post(ts.URL+"/chat", "application/json", bytes.NewBufferString(`{"message":""}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.False(t, strings.Contains(buf.String(), wire.Delimiter))
}

func TestChat_CardRequestStreamsComponentFrames(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Post(ts.URL+"/chat", "application/json", bytes.NewBufferString(`{"message":"show me a card"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), wire.Delimiter)
	assert.Contains(t, buf.String(), `"type":"SimpleComponent"`)
}

func TestChat_LLMPatternStreamsPlannedComponent(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Post(ts.URL+"/chat", "application/json", bytes.NewBufferString(`{"message":"show me ai dashboard"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"title":"x"`)
}
