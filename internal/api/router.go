package api

import (
	"net/http"
	"service-area-api/internal/api/handlers"
	"service-area-api/internal/ports"
)

type RouterDeps struct {
	Resolver ports.CoordinateResolver
	Repo     ports.ServiceCenterRepository
	// Cache may be nil to disable coverage caching.
	Cache              ports.CoverageCache
	DefaultRadiusMiles float64
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	zipHandler := &handlers.ZipHandler{Resolver: deps.Resolver}
	centerHandler := &handlers.ServiceCenterHandler{Repo: deps.Repo}
	coverageHandler := &handlers.CoverageHandler{
		Resolver:           deps.Resolver,
		Repo:               deps.Repo,
		Cache:              deps.Cache,
		DefaultRadiusMiles: deps.DefaultRadiusMiles,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/zips/{zip}", zipHandler.Get)
	mux.HandleFunc("/distance", zipHandler.Distance)
	mux.HandleFunc("/service-centers", centerHandler.List)
	mux.HandleFunc("/coverage", coverageHandler.Check)

	return loggingMiddleware(mux)
}
