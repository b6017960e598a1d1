package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"service-area-api/internal/domain"
	"service-area-api/internal/ports"
	"strings"
)

type ServiceCenterSeed struct {
	CenterID    int      `json:"center_id"`
	Name        string   `json:"name"`
	ZipCode     string   `json:"zip_code"`
	Lat         *float64 `json:"lat"`
	Lon         *float64 `json:"lon"`
	RadiusMiles float64  `json:"radius_miles"`
}

// Read and validate service center seeds from a JSON file.
// Centers without explicit lat/lon are placed at their ZIP prefix centroid.
func LoadServiceCenterSeeds(jsonPath string, resolver ports.CoordinateResolver) ([]*domain.ServiceCenter, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("seed service centers: read %q: %w", jsonPath, err)
	}

	var data []ServiceCenterSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("seed service centers: parse json: %w", err)
	}

	return buildServiceCenters(data, resolver)
}

func buildServiceCenters(data []ServiceCenterSeed, resolver ports.CoordinateResolver) ([]*domain.ServiceCenter, error) {
	centers := make([]*domain.ServiceCenter, 0, len(data))
	for i, item := range data {
		if item.CenterID <= 0 {
			return nil, fmt.Errorf("seed service centers: invalid center_id at index %d: %d", i+1, item.CenterID)
		}

		name := strings.TrimSpace(item.Name)
		if name == "" {
			return nil, fmt.Errorf("seed service centers: item at index %d: name cannot be empty", i+1)
		}

		if item.RadiusMiles <= 0 {
			return nil, fmt.Errorf("seed service centers: center_id=%d: radius_miles must be positive", item.CenterID)
		}

		zip := strings.TrimSpace(item.ZipCode)

		var loc domain.Coordinates
		switch {
		case item.Lat != nil && item.Lon != nil:
			loc = domain.Coordinates{Lat: *item.Lat, Lon: *item.Lon}
		case item.Lat != nil || item.Lon != nil:
			return nil, fmt.Errorf("seed service centers: center_id=%d: lat and lon must be set together", item.CenterID)
		default:
			if resolver == nil {
				return nil, fmt.Errorf("seed service centers: center_id=%d: no coordinates and no resolver", item.CenterID)
			}
			c, ok := resolver.Resolve(zip)
			if !ok {
				return nil, fmt.Errorf("seed service centers: center_id=%d: zip %q has no known location", item.CenterID, zip)
			}
			loc = c
		}

		centers = append(centers, &domain.ServiceCenter{
			CenterID:    item.CenterID,
			Name:        name,
			ZipCode:     zip,
			Location:    loc,
			RadiusMiles: item.RadiusMiles,
		})
	}

	return centers, nil
}
