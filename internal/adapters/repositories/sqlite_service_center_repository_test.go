package repositories

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"service-area-api/internal/domain"
	"service-area-api/internal/geo"
	"strings"
	"testing"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// Each connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func writeSeedFile(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "service_centers.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write seed file: %v", err)
	}
	return path
}

func TestSeedAndListServiceCenters(t *testing.T) {
	db := openTestDB(t)

	path := writeSeedFile(t, `[
		{"center_id": 2, "name": "San Diego Mobile", "zip_code": "92101", "radius_miles": 40},
		{"center_id": 1, "name": "Downtown LA", "zip_code": "90012", "lat": 34.06, "lon": -118.24, "radius_miles": 35}
	]`)

	if err := SeedFromJSON(db, path, geo.NewPrefixResolver()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	// Seeding is idempotent.
	if err := SeedFromJSON(db, path, geo.NewPrefixResolver()); err != nil {
		t.Fatalf("reseed: %v", err)
	}

	repo := NewSqliteServiceCenterRepository(db)
	centers, err := repo.ListServiceCenters(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(centers) != 2 {
		t.Fatalf("expected 2 centers, got %d", len(centers))
	}

	la := centers[0]
	if la.CenterID != 1 || la.Name != "Downtown LA" {
		t.Fatalf("centers[0] = %+v, want Downtown LA", la)
	}
	if la.Location != (domain.Coordinates{Lat: 34.06, Lon: -118.24}) {
		t.Fatalf("explicit location not kept: %+v", la.Location)
	}

	sd := centers[1]
	if sd.Location != (domain.Coordinates{Lat: 32.72, Lon: -117.16}) {
		t.Fatalf("zip-resolved location = %+v, want San Diego prefix centroid", sd.Location)
	}
	if sd.RadiusMiles != 40 {
		t.Fatalf("radius = %v, want 40", sd.RadiusMiles)
	}
}

func TestSeedRejectsInvalidCenters(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "bad id", body: `[{"center_id": 0, "name": "x", "zip_code": "90210", "radius_miles": 1}]`, want: "invalid center_id"},
		{name: "empty name", body: `[{"center_id": 1, "name": " ", "zip_code": "90210", "radius_miles": 1}]`, want: "name cannot be empty"},
		{name: "bad radius", body: `[{"center_id": 1, "name": "x", "zip_code": "90210", "radius_miles": 0}]`, want: "radius_miles"},
		{name: "half coordinates", body: `[{"center_id": 1, "name": "x", "zip_code": "90210", "lat": 1, "radius_miles": 1}]`, want: "lat and lon"},
		{name: "unknown zip", body: `[{"center_id": 1, "name": "x", "zip_code": "99999", "radius_miles": 1}]`, want: "no known location"},
		{name: "bad json", body: `{`, want: "parse json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := openTestDB(t)
			err := SeedFromJSON(db, writeSeedFile(t, tt.body), geo.NewPrefixResolver())
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestSeedMissingFile(t *testing.T) {
	db := openTestDB(t)
	if err := SeedFromJSON(db, filepath.Join(t.TempDir(), "missing.json"), geo.NewPrefixResolver()); err == nil {
		t.Fatal("expected error for missing seed file")
	}
}

func TestListServiceCentersNilDB(t *testing.T) {
	repo := NewSqliteServiceCenterRepository(nil)
	if _, err := repo.ListServiceCenters(context.Background()); err == nil {
		t.Fatal("expected error for nil DB")
	}
}
