package ports

import (
	"context"

	"service-area-api/internal/domain"
)

// Port: a boundary for retrieving ServiceCenter entities from a data source.
type ServiceCenterRepository interface {
	// Retrieve all service centers that coverage is checked against.
	ListServiceCenters(ctx context.Context) ([]*domain.ServiceCenter, error)
}
