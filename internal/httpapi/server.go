// Package httpapi exposes the streaming chat endpoint and health check
// over HTTP (spec §6 "External Interfaces").
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/chatstream/chatstream-server/internal/observability"
	"github.com/chatstream/chatstream-server/internal/planner"
	"github.com/chatstream/chatstream-server/internal/stream"
)

// Deps are the collaborators the HTTP layer needs but doesn't own.
type Deps struct {
	Planner *planner.Planner
	Timing  stream.Timing
	Limits  stream.Limits
	Metrics *observability.Metrics
	Logger  *slog.Logger
}

// Config is the HTTP-facing configuration surface.
type Config struct {
	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
}

// Server is the chat API's HTTP handler: one POST /chat route, one GET
// /health route, wrapped by request-id, logging, CORS, and per-IP rate
// limiting middleware composed in the same nested-function style this
// stack uses elsewhere.
type Server struct {
	mux     *http.ServeMux
	handler http.Handler
	deps    Deps
}

// New constructs a Server ready to be used as an http.Handler.
func New(deps Deps, cfg Config) *Server {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	s := &Server{mux: http.NewServeMux(), deps: deps}
	s.routes()

	limiter := newIPLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	s.handler = requestID(logging(deps.Logger, cors(cfg.CORSOrigins, limiter.middleware(s.mux))))
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /chat", s.handleChat)
	s.mux.HandleFunc("GET /health", s.handleHealth)
}
