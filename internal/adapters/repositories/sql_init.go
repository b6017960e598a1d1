package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"service-area-api/internal/ports"
)

// Initialize the Postgres database schema.
func InitSQLSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		`
	CREATE TABLE IF NOT EXISTS service_centers (
		center_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		zip_code TEXT NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL,
		radius_miles DOUBLE PRECISION NOT NULL
	);
	`,
		`
	CREATE INDEX IF NOT EXISTS idx_service_centers_zip_code
	ON service_centers(zip_code);
	`,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the Postgres database with service centers from a JSON file.
func SeedSQLFromJSON(ctx context.Context, db *sql.DB, jsonPath string, resolver ports.CoordinateResolver) error {
	if db == nil {
		return errors.New("seed service centers: DB is nil")
	}

	centers, err := LoadServiceCenterSeeds(jsonPath, resolver)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed service centers: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO service_centers (center_id, name, zip_code, lat, lon, radius_miles)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (center_id) DO UPDATE
	SET name = EXCLUDED.name,
		zip_code = EXCLUDED.zip_code,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon,
		radius_miles = EXCLUDED.radius_miles;
	`)
	if err != nil {
		return fmt.Errorf("seed service centers: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range centers {
		if _, err := stmt.ExecContext(ctx, c.CenterID, c.Name, c.ZipCode, c.Location.Lat, c.Location.Lon, c.RadiusMiles); err != nil {
			return fmt.Errorf("seed service centers: insert center_id=%d: %w", c.CenterID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed service centers: commit tx: %w", err)
	}

	return nil
}
