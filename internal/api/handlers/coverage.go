package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"service-area-api/internal/api/dto"
	"service-area-api/internal/domain"
	"service-area-api/internal/ports"
	"service-area-api/internal/services"
	"strings"
)

const (
	msgCovered    = "We service your area."
	msgNotCovered = "Your area is outside our standard service radius. Please call us to check availability."
	msgUnknownZip = "We couldn't locate that ZIP code. Please call us to confirm coverage."
)

type CoverageHandler struct {
	Resolver ports.CoordinateResolver
	Repo     ports.ServiceCenterRepository
	// Cache is optional.
	Cache ports.CoverageCache
	// DefaultRadiusMiles applies when the request omits radius_miles; 0 keeps
	// each center's own radius.
	DefaultRadiusMiles float64
}

// Check answers whether the business covers the requested ZIP code.
func (h *CoverageHandler) Check(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.CoverageRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	zip := strings.TrimSpace(req.Zip)
	if zip == "" {
		writeError(w, r, http.StatusBadRequest, "zip is required")
		return
	}

	radius := req.RadiusMiles
	if radius < 0 {
		writeError(w, r, http.StatusBadRequest, "radius_miles must not be negative")
		return
	}
	if radius == 0 {
		radius = h.DefaultRadiusMiles
	}

	result, err := services.CheckCoverage(
		r.Context(),
		services.CoverageRequest{Zip: zip, RadiusMiles: radius},
		h.Resolver,
		h.Repo,
		h.Cache,
	)
	if err != nil {
		log.Printf("check coverage failed: zip=%s err=%v", zip, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toCoverageResponse(result))
}

func toCoverageResponse(res *domain.CoverageResult) dto.CoverageResponse {
	out := dto.CoverageResponse{
		Zip:      res.Zip,
		Prefix:   res.Prefix,
		Resolved: res.Resolved,
		Covered:  res.Covered,
		Centers:  make([]dto.CenterDistanceResponse, 0, len(res.Centers)),
	}

	switch {
	case !res.Resolved:
		out.Message = msgUnknownZip
	case res.Covered:
		out.Message = msgCovered
	default:
		out.Message = msgNotCovered
	}

	if res.Resolved {
		lat, lon := res.Location.Lat, res.Location.Lon
		out.Lat = &lat
		out.Lon = &lon
	}

	for _, c := range res.Centers {
		out.Centers = append(out.Centers, toCenterDistanceResponse(c))
	}

	if res.Nearest != nil {
		nearest := toCenterDistanceResponse(*res.Nearest)
		out.Nearest = &nearest
	}

	return out
}

func toCenterDistanceResponse(c domain.CenterDistance) dto.CenterDistanceResponse {
	return dto.CenterDistanceResponse{
		ServiceCenter: toServiceCenterResponse(c.Center),
		DistanceMiles: c.DistanceMiles,
		InRange:       c.InRange,
	}
}
