package handlers

import (
	"errors"
	"log"
	"net/http"
	"service-area-api/internal/api/dto"
	"service-area-api/internal/geo"
	"service-area-api/internal/ports"
	"service-area-api/internal/services"
	"strings"
)

// ZipHandler exposes ZIP lookup and ZIP-to-ZIP distance endpoints.
type ZipHandler struct {
	Resolver ports.CoordinateResolver
}

func (h *ZipHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	zip := strings.TrimSpace(r.PathValue("zip"))
	c, ok := h.Resolver.Resolve(zip)
	if !ok {
		writeError(w, r, http.StatusNotFound, "zip code not in lookup table")
		return
	}

	prefix, _ := geo.Prefix(zip)
	writeJSON(w, r, http.StatusOK, dto.ZipResponse{
		Zip:    zip,
		Prefix: prefix,
		Lat:    c.Lat,
		Lon:    c.Lon,
	})
}

func (h *ZipHandler) Distance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()
	from := strings.TrimSpace(q.Get("from"))
	to := strings.TrimSpace(q.Get("to"))
	if from == "" || to == "" {
		writeError(w, r, http.StatusBadRequest, "from and to are required")
		return
	}

	miles, err := services.DistanceBetweenZips(h.Resolver, from, to)
	if errors.Is(err, geo.ErrZipNotFound) {
		writeError(w, r, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		log.Printf("distance between zips failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.DistanceResponse{
		From:          from,
		To:            to,
		DistanceMiles: miles,
	})
}
