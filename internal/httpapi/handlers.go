package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/chatstream/chatstream-server/internal/dispatch"
	"github.com/chatstream/chatstream-server/internal/stream"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": Version})
}

// handleChat implements the single streaming route from spec §6: decode
// the request, classify it, and drive the matching emitter straight into
// the response body.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	msgVal, ok := raw["message"]
	if !ok {
		writeError(w, http.StatusBadRequest, "missing_message", "'message' field is required")
		return
	}
	message, ok := msgVal.(string)
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", "'message' field must be a string")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Content-Encoding", "identity")
	w.Header().Set("X-Accel-Buffering", "no") // hint proxies not to buffer the chunked body
	w.WriteHeader(http.StatusOK)

	flusher, _ := w.(http.Flusher)
	flush := func() {
		if flusher != nil {
			flusher.Flush()
		}
	}

	start := time.Now()
	st := stream.New(r.Context(), w, flush, s.deps.Timing, s.deps.Limits, stream.RealClock(), s.deps.Logger)
	pattern := dispatch.Classify(message)
	err := s.runPattern(st, pattern, message)

	if err != nil && !errors.Is(err, context.Canceled) {
		s.deps.Logger.Warn("chat stream ended early", "pattern", pattern.String(), "error", err)
	}
	s.deps.Logger.Info("chat request handled",
		"pattern", pattern.String(),
		"components", st.Registry().Len(),
	)

	s.deps.Metrics.RecordRequest(r.Context(), pattern.String())
	s.deps.Metrics.RecordComponentCount(r.Context(), st.Registry().Len())
	s.deps.Metrics.RecordStreamDuration(r.Context(), pattern.String(), time.Since(start))
}

func (s *Server) runPattern(st *stream.Stream, pattern dispatch.Pattern, message string) error {
	ws := dispatch.Tokenize(message)

	switch pattern {
	case dispatch.PatternLLMPlan:
		return s.deps.Planner.Run(st, message)
	case dispatch.PatternCardSingleDelayed:
		return stream.CardSingleDelayed(st)
	case dispatch.PatternCardMultiDelayed:
		n, _ := dispatch.MultiCount(ws, st.Limits().MaxComponentsPerResponse)
		if n == 0 {
			n = 2
		}
		return stream.CardMultiDelayed(st, n)
	case dispatch.PatternCardMultiNormal:
		n, hasCount := dispatch.MultiCount(ws, st.Limits().MaxComponentsPerResponse)
		if !hasCount {
			// "cards" named without an explicit count: two is the smallest
			// plural reading of the request.
			n = 2
		}
		return stream.CardMultiNormal(st, n)
	case dispatch.PatternCardSingleNormal:
		return stream.CardSingleNormal(st)
	case dispatch.PatternCardIncremental:
		return stream.CardIncremental(st)
	case dispatch.PatternTables:
		kinds := dispatch.SelectTableKinds(ws, st.Limits().MaxTablesPerResponse)
		return stream.Tables(st, kinds)
	case dispatch.PatternCharts:
		kinds := dispatch.SelectChartKinds(ws, st.Limits().MaxChartsPerResponse)
		return stream.Charts(st, kinds)
	default:
		return st.Text("I can help with cards, tables, and charts — try asking for one!")
	}
}
