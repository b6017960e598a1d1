package handlers

import (
	"log"
	"net/http"
	"service-area-api/internal/api/dto"
	"service-area-api/internal/domain"
	"service-area-api/internal/ports"
)

// ServiceCenterHandler exposes read-only service center endpoints.
type ServiceCenterHandler struct {
	Repo ports.ServiceCenterRepository
}

func (h *ServiceCenterHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	centers, err := h.Repo.ListServiceCenters(r.Context())
	if err != nil {
		log.Printf("list service centers failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListServiceCentersResponse{
		ServiceCenters: make([]dto.ServiceCenterResponse, 0, len(centers)),
	}
	for _, c := range centers {
		res.ServiceCenters = append(res.ServiceCenters, toServiceCenterResponse(*c))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func toServiceCenterResponse(c domain.ServiceCenter) dto.ServiceCenterResponse {
	return dto.ServiceCenterResponse{
		CenterID:    c.CenterID,
		Name:        c.Name,
		ZipCode:     c.ZipCode,
		Lat:         c.Location.Lat,
		Lon:         c.Location.Lon,
		RadiusMiles: c.RadiusMiles,
	}
}
