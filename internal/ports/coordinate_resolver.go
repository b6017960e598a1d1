package ports

import "service-area-api/internal/domain"

// Contract for turning a customer-entered ZIP code into approximate coordinates.
type CoordinateResolver interface {
	// Return the coordinates for zip, or false when the ZIP is not mapped.
	Resolve(zip string) (domain.Coordinates, bool)
}
