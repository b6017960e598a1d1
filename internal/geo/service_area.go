package geo

import "service-area-api/internal/domain"

// IsWithinServiceArea reports whether point lies within radiusMiles of center.
// The boundary is inclusive: a point exactly radiusMiles away is in the area.
func IsWithinServiceArea(point, center domain.Coordinates, radiusMiles float64) bool {
	return DistanceMiles(point, center) <= radiusMiles
}
