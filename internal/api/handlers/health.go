package handlers

import (
	"net/http"
	"service-area-api/internal/geo"
)

type healthResponse struct {
	Status      string `json:"status"`
	ZipPrefixes int    `json:"zip_prefixes"`
}

// Health provides a liveness check that also reports the size of the ZIP prefix table.
func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, healthResponse{Status: "ok", ZipPrefixes: geo.KnownPrefixes()})
}
