// Package registry tracks per-request component state so emitters can
// compute the next cumulative frame without re-deriving history.
//
// A Registry is stack-local to one request: it is created when the
// request's stream starts and discarded when the response ends. Nothing
// here is safe to share across requests, and nothing here needs to be —
// each request's emission is a single sequential goroutine.
package registry

import (
	"fmt"

	"github.com/chatstream/chatstream-server/internal/wire"
)

// entry is one component's last-known server-side data plus its kind, so
// callers can enforce the "type never changes" invariant (T1).
type entry struct {
	kind wire.Kind
	data map[string]any
}

// Registry is the per-request component-state table.
type Registry struct {
	entries map[string]*entry
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

// Introduce inserts a new entry for id. It is a programming error to
// introduce an id twice; callers (id generation) are responsible for
// preventing that, so this returns an error rather than panicking.
func (r *Registry) Introduce(id string, kind wire.Kind, initial map[string]any) error {
	if _, exists := r.entries[id]; exists {
		return fmt.Errorf("registry: id %q already introduced", id)
	}
	r.entries[id] = &entry{kind: kind, data: cloneMap(initial)}
	return nil
}

// Update merges patch into id's entry using shallow key replacement.
// Callers that need cumulative array semantics (TableA.rows,
// ChartComponent.series) pass the already-accumulated full array as the
// patch value; Update itself never appends.
//
// Updating an unknown id is a programming error: the spec requires
// callers to log and drop the frame rather than surface it, so this
// returns an error for the caller to do exactly that.
func (r *Registry) Update(id string, patch map[string]any) error {
	e, ok := r.entries[id]
	if !ok {
		return fmt.Errorf("registry: update on unknown id %q", id)
	}
	for k, v := range patch {
		e.data[k] = v
	}
	return nil
}

// Get returns the current data for id and whether it exists.
func (r *Registry) Get(id string) (map[string]any, bool) {
	e, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	return cloneMap(e.data), true
}

// Has reports whether id has been introduced.
func (r *Registry) Has(id string) bool {
	_, ok := r.entries[id]
	return ok
}

// Kind returns the kind an id was introduced with.
func (r *Registry) Kind(id string) (wire.Kind, bool) {
	e, ok := r.entries[id]
	if !ok {
		return "", false
	}
	return e.kind, true
}

// Len reports how many components have been introduced so far.
func (r *Registry) Len() int {
	return len(r.entries)
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
