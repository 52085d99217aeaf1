// Package planner implements the LLM planning collaborator: for pattern
// P0 requests it asks an external chat-completion API for a component
// plan, validates and caches the result, and falls back to a fixed plan
// when the model can't produce one (spec §4.7).
package planner

import (
	"context"

	"github.com/chatstream/chatstream-server/internal/wire"
)

// Message is one turn in the chat-completion request sent to the model.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// PlanComponent is one component in a plan: its kind and its data map,
// not yet assigned a component id (ids are assigned at emission time so
// repeated cache hits still satisfy uniqueness within a response).
type PlanComponent struct {
	Type wire.Kind      `json:"type"`
	Data map[string]any `json:"data"`
}

// Client is the external chat-completion collaborator. Given a sequence
// of messages, it returns the model's raw text reply.
type Client interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// rawComponent is the shape a model reply's JSON array elements decode
// into before validation assigns them a concrete wire.Kind.
type rawComponent struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data"`
}
