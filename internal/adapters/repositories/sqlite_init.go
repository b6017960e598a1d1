package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"service-area-api/internal/domain"
	"service-area-api/internal/ports"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createServiceCentersQuery := `
	CREATE TABLE IF NOT EXISTS service_centers (
		center_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		zip_code TEXT NOT NULL,
		lat REAL NOT NULL,
		lon REAL NOT NULL,
		radius_miles REAL NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_service_centers_zip_code
	ON service_centers(zip_code);
	`

	statements := []string{
		createServiceCentersQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the SQLite database with service centers from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string, resolver ports.CoordinateResolver) error {
	centers, err := LoadServiceCenterSeeds(jsonPath, resolver)
	if err != nil {
		return err
	}

	return insertServiceCenters(db, centers)
}

func insertServiceCenters(db *sql.DB, centers []*domain.ServiceCenter) error {
	if db == nil {
		return errors.New("seed service centers: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed service centers: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT OR REPLACE INTO service_centers (
		center_id,
		name,
		zip_code,
		lat,
		lon,
		radius_miles
	)
	VALUES (?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed service centers: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range centers {
		if _, err := stmt.Exec(c.CenterID, c.Name, c.ZipCode, c.Location.Lat, c.Location.Lon, c.RadiusMiles); err != nil {
			return fmt.Errorf("seed service centers: insert center_id=%d: %w", c.CenterID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed service centers: commit tx: %w", err)
	}

	return nil
}
