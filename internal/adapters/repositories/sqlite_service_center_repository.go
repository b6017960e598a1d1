package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"service-area-api/internal/domain"
)

// SQLite-backed implementation of the ServiceCenterRepository port.
type SqliteServiceCenterRepository struct{ DB *sql.DB }

func NewSqliteServiceCenterRepository(db *sql.DB) *SqliteServiceCenterRepository {
	return &SqliteServiceCenterRepository{DB: db}
}

// Return all service centers stored in the database.
func (s *SqliteServiceCenterRepository) ListServiceCenters(ctx context.Context) ([]*domain.ServiceCenter, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite service center repository: DB is nil")
	}

	query := `
	SELECT
		center_id,
		name,
		zip_code,
		lat,
		lon,
		radius_miles
	FROM service_centers
	ORDER BY center_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list service centers: query service_centers table: %w", err)
	}
	defer rows.Close()

	return scanServiceCenters(rows)
}

func scanServiceCenters(rows *sql.Rows) ([]*domain.ServiceCenter, error) {
	centers := make([]*domain.ServiceCenter, 0, 16)
	for rows.Next() {
		var c domain.ServiceCenter
		err := rows.Scan(&c.CenterID, &c.Name, &c.ZipCode, &c.Location.Lat, &c.Location.Lon, &c.RadiusMiles)
		if err != nil {
			return nil, fmt.Errorf("list service centers: scan row: %w", err)
		}
		centers = append(centers, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list service centers: row iteration: %w", err)
	}

	return centers, nil
}
