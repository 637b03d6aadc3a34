package http

import (
	"encoding/json"
	"net/http"
	"time"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorEnvelope mirrors the success envelope shape for failed views.
type errorEnvelope struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
	Error     string `json:"error,omitempty"`
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	env := errorEnvelope{
		Status:    "error",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Message:   message,
	}
	if err != nil {
		env.Error = err.Error()
	}
	writeJSON(w, status, env)
}
