package services

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log"
	"service-area-api/internal/domain"
	"service-area-api/internal/geo"
	"service-area-api/internal/platform/obs"
	"service-area-api/internal/ports"
	"slices"
	"strconv"
	"strings"
)

type CoverageRequest struct {
	Zip string
	// RadiusMiles overrides every center's own radius when > 0.
	RadiusMiles float64
}

// CoverageCacheKey builds the cache key for a coverage answer.
// Resolution only looks at the ZIP prefix, so every ZIP sharing a prefix
// shares a key.
func CoverageCacheKey(prefix string, radiusMiles float64) string {
	return "coverage:" + prefix + ":" + strconv.FormatFloat(radiusMiles, 'f', -1, 64)
}

// CheckCoverage answers whether any service center reaches the requested ZIP.
//
// An unmapped ZIP is not an error: the result comes back with Resolved=false so
// the caller can fall back to "call us to confirm coverage". cache may be nil;
// cache failures are logged and never fail the request.
func CheckCoverage(
	ctx context.Context,
	req CoverageRequest,
	resolver ports.CoordinateResolver,
	repo ports.ServiceCenterRepository,
	cache ports.CoverageCache,
) (_ *domain.CoverageResult, err error) {
	defer obs.Time(ctx, "coverage.Check")(&err)

	if resolver == nil {
		return nil, errors.New("check coverage: resolver must be non-nil")
	}
	if repo == nil {
		return nil, errors.New("check coverage: repository must be non-nil")
	}

	zip := strings.TrimSpace(req.Zip)
	prefix, _ := geo.Prefix(zip)

	location, ok := resolver.Resolve(zip)
	if !ok {
		return &domain.CoverageResult{
			Zip:     zip,
			Prefix:  prefix,
			Centers: []domain.CenterDistance{},
		}, nil
	}

	key := CoverageCacheKey(prefix, req.RadiusMiles)
	if cache != nil {
		cached, hit, cerr := cache.Get(ctx, key)
		if cerr != nil {
			log.Printf("coverage cache get failed: key=%s err=%v", key, cerr)
		} else if hit {
			cached.Zip = zip
			return cached, nil
		}
	}

	centers, err := repo.ListServiceCenters(ctx)
	if err != nil {
		return nil, fmt.Errorf("check coverage: list service centers: %w", err)
	}

	result := EvaluateCoverage(zip, location, centers, req.RadiusMiles)

	if cache != nil {
		if cerr := cache.Put(ctx, key, result); cerr != nil {
			log.Printf("coverage cache put failed: key=%s err=%v", key, cerr)
		}
	}

	return result, nil
}

// EvaluateCoverage measures location against every center and orders the
// centers nearest first, ties broken by CenterID. A radius override > 0
// replaces each center's own radius.
func EvaluateCoverage(
	zip string,
	location domain.Coordinates,
	centers []*domain.ServiceCenter,
	radiusOverride float64,
) *domain.CoverageResult {
	prefix, _ := geo.Prefix(zip)

	result := &domain.CoverageResult{
		Zip:      zip,
		Prefix:   prefix,
		Resolved: true,
		Location: location,
		Centers:  make([]domain.CenterDistance, 0, len(centers)),
	}

	for _, c := range centers {
		if c == nil {
			continue
		}

		radius := c.RadiusMiles
		if radiusOverride > 0 {
			radius = radiusOverride
		}

		result.Centers = append(result.Centers, domain.CenterDistance{
			Center:        *c,
			DistanceMiles: geo.DistanceMiles(location, c.Location),
			InRange:       geo.IsWithinServiceArea(location, c.Location, radius),
		})
	}

	slices.SortFunc(result.Centers, func(a, b domain.CenterDistance) int {
		if n := cmp.Compare(a.DistanceMiles, b.DistanceMiles); n != 0 {
			return n
		}
		return cmp.Compare(a.Center.CenterID, b.Center.CenterID)
	})

	for i := range result.Centers {
		if result.Centers[i].InRange {
			result.Covered = true
			break
		}
	}

	if len(result.Centers) > 0 {
		nearest := result.Centers[0]
		result.Nearest = &nearest
	}

	return result
}

// DistanceBetweenZips returns the straight-line distance in miles between the
// approximate centers of two ZIP codes. An unmapped ZIP yields geo.ErrZipNotFound.
func DistanceBetweenZips(resolver ports.CoordinateResolver, from, to string) (float64, error) {
	if resolver == nil {
		return 0, errors.New("distance between zips: resolver must be non-nil")
	}

	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)

	a, ok := resolver.Resolve(from)
	if !ok {
		return 0, fmt.Errorf("distance between zips: from %q: %w", from, geo.ErrZipNotFound)
	}

	b, ok := resolver.Resolve(to)
	if !ok {
		return 0, fmt.Errorf("distance between zips: to %q: %w", to, geo.ErrZipNotFound)
	}

	return geo.DistanceMiles(a, b), nil
}
