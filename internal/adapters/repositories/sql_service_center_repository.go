package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"service-area-api/internal/domain"
	"service-area-api/internal/platform/obs"
)

// SQLServiceCenterRepository is a Postgres-backed ServiceCenterRepository
// (opened through the pgx stdlib driver).
type SQLServiceCenterRepository struct {
	DB *sql.DB
}

func NewSQLServiceCenterRepository(db *sql.DB) *SQLServiceCenterRepository {
	return &SQLServiceCenterRepository{DB: db}
}

func (s *SQLServiceCenterRepository) ListServiceCenters(ctx context.Context) (_ []*domain.ServiceCenter, err error) {
	defer obs.Time(ctx, "service_centers.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sql service center repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT center_id, name, zip_code, lat, lon, radius_miles
	FROM service_centers
	ORDER BY center_id;
	`)
	if err != nil {
		return nil, fmt.Errorf("list service centers: query service_centers table: %w", err)
	}
	defer rows.Close()

	return scanServiceCenters(rows)
}
