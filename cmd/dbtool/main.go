package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"service-area-api/internal/adapters/repositories"
	"service-area-api/internal/config"
	"service-area-api/internal/geo"
	"service-area-api/internal/platform/db"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/service_centers.json")
	initAndSeed(context.Background(), db, seedPath)
}

func initAndSeed(ctx context.Context, db *sql.DB, seedPath string) {
	log.Println("Initializing database schema...")
	if err := repositories.InitSQLSchema(ctx, db); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Printf("Seeding service centers from %s...", seedPath)
	if err := repositories.SeedSQLFromJSON(ctx, db, seedPath, geo.NewPrefixResolver()); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}
