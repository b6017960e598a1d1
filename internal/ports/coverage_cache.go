package ports

import (
	"context"

	"service-area-api/internal/domain"
)

// Optional cache for coverage answers. Keys are built by the caller.
type CoverageCache interface {
	// Return the cached result for key; ok is false on a miss.
	Get(ctx context.Context, key string) (result *domain.CoverageResult, ok bool, err error)
	Put(ctx context.Context, key string, result *domain.CoverageResult) error
}
