package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"service-area-api/internal/platform/obs"
)

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: req_id=%s method=%s path=%s err=%v", obs.RequestID(r.Context()), r.Method, r.URL.Path, err)
	}
}

// writeError replies with a JSON error body that echoes the request id so
// customers reporting a failure can quote it.
func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	res := errorResponse{Error: msg}
	if id := obs.RequestID(r.Context()); id != "-" {
		res.RequestID = id
	}
	writeJSON(w, r, status, res)
}
