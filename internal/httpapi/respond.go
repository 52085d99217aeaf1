package httpapi

import (
	"encoding/json"
	"net/http"
)

// writeJSON writes v as a JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorBody is the minimal error shape from spec §7.1: exactly two keys,
// a machine-readable code and a human-readable message.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeError writes the spec's minimal JSON error body. Used only before
// a streaming response has begun (spec §7 item 1); once the chat stream
// starts, no error channel exists.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Error: code, Message: message})
}
