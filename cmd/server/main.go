package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"service-area-api/internal/adapters/cache"
	"service-area-api/internal/adapters/repositories"
	"service-area-api/internal/api"
	"service-area-api/internal/config"
	"service-area-api/internal/geo"
	"service-area-api/internal/platform/db"
	"service-area-api/internal/ports"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite or Postgres, optional Redis) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	driver := config.Get("DB_DRIVER", "sqlite")
	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/service_centers.json")
	redisAddr := config.Get("REDIS_ADDR", "")
	port := config.Get("PORT", "8080")

	cacheTTL, err := config.GetDuration("COVERAGE_CACHE_TTL", 24*time.Hour)
	if err != nil {
		log.Fatal(err)
	}
	defaultRadius, err := config.GetFloat("DEFAULT_RADIUS_MILES", 0)
	if err != nil {
		log.Fatal(err)
	}
	if defaultRadius < 0 {
		log.Fatal("DEFAULT_RADIUS_MILES must not be negative")
	}

	resolver := geo.NewPrefixResolver()
	log.Printf("zip prefix table loaded prefixes=%d", geo.KnownPrefixes())

	ctx := context.Background()

	conn, repo, err := openRepository(ctx, driver, dbPath, seedPath, resolver)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	deps := api.RouterDeps{
		Resolver:           resolver,
		Repo:               repo,
		DefaultRadiusMiles: defaultRadius,
	}

	// Redis is optional; without it every coverage check reads the repository.
	if strings.TrimSpace(redisAddr) != "" {
		client := redis.NewClient(&redis.Options{Addr: redisAddr})
		defer client.Close()

		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatalf("redis ping addr=%s: %v", redisAddr, err)
		}
		deps.Cache = cache.NewRedisCoverageCache(client, cacheTTL)
		log.Printf("coverage cache enabled addr=%s ttl=%s", redisAddr, cacheTTL)
	}

	router := api.NewRouter(deps)

	log.Printf("Server listening addr=:%s driver=%s", port, driver)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openRepository opens the configured database, initializes its schema, seeds
// service centers and returns the matching repository.
func openRepository(
	ctx context.Context,
	driver string,
	dbPath string,
	seedPath string,
	resolver ports.CoordinateResolver,
) (*sql.DB, ports.ServiceCenterRepository, error) {
	switch driver {
	case "sqlite":
		conn, err := db.OpenSQLite(dbPath)
		if err != nil {
			return nil, nil, err
		}
		if err := repositories.InitSchema(conn); err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("init and seed: %w", err)
		}
		if err := repositories.SeedFromJSON(conn, seedPath, resolver); err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("init and seed: %w", err)
		}
		return conn, repositories.NewSqliteServiceCenterRepository(conn), nil

	case "pgx":
		databaseURL := os.Getenv("DATABASE_URL")
		if strings.TrimSpace(databaseURL) == "" {
			return nil, nil, errors.New("DATABASE_URL is required for DB_DRIVER=pgx")
		}
		conn, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, err
		}
		// Seeding Postgres is left to cmd/dbtool.
		if err := repositories.InitSQLSchema(ctx, conn); err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("init schema: %w", err)
		}
		return conn, repositories.NewSQLServiceCenterRepository(conn), nil

	default:
		return nil, nil, fmt.Errorf("unsupported DB_DRIVER %q (want sqlite or pgx)", driver)
	}
}
