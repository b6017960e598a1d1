package geo

import (
	"math"
	"service-area-api/internal/domain"
	"testing"

	"github.com/umahmood/haversine"
)

var (
	losAngeles = domain.Coordinates{Lat: 34.05, Lon: -118.25}
	sanDiego   = domain.Coordinates{Lat: 32.72, Lon: -117.16}
	newYork    = domain.Coordinates{Lat: 40.71, Lon: -74.01}
	chicago    = domain.Coordinates{Lat: 41.88, Lon: -87.63}
	honolulu   = domain.Coordinates{Lat: 21.31, Lon: -157.86}
)

var samplePoints = []domain.Coordinates{
	losAngeles,
	sanDiego,
	newYork,
	chicago,
	honolulu,
	{Lat: 0, Lon: 0},
	{Lat: -33.87, Lon: 151.21},
	{Lat: 89.9, Lon: 179.9},
}

func TestDistanceIdentity(t *testing.T) {
	for _, p := range samplePoints {
		if d := DistanceMiles(p, p); d != 0 {
			t.Fatalf("DistanceMiles(%+v, itself) = %v, want 0", p, d)
		}
	}
}

func TestDistanceSymmetry(t *testing.T) {
	for _, a := range samplePoints {
		for _, b := range samplePoints {
			ab := DistanceMiles(a, b)
			ba := DistanceMiles(b, a)
			if ab != ba {
				t.Fatalf("DistanceMiles(%+v, %+v) = %v, reverse = %v", a, b, ab, ba)
			}
		}
	}
}

func TestDistanceTriangleInequality(t *testing.T) {
	const eps = 1e-6
	for _, a := range samplePoints {
		for _, b := range samplePoints {
			for _, c := range samplePoints {
				direct := DistanceMiles(a, c)
				via := DistanceMiles(a, b) + DistanceMiles(b, c)
				if direct > via+eps {
					t.Fatalf("d(a,c)=%v > d(a,b)+d(b,c)=%v for a=%+v b=%+v c=%+v", direct, via, a, b, c)
				}
			}
		}
	}
}

func TestDistanceKnownCities(t *testing.T) {
	tests := []struct {
		name     string
		a, b     domain.Coordinates
		min, max float64
	}{
		{name: "los angeles to san diego", a: losAngeles, b: sanDiego, min: 111, max: 113},
		{name: "new york to los angeles", a: newYork, b: losAngeles, min: 2400, max: 2500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DistanceMiles(tt.a, tt.b)
			if d < tt.min || d > tt.max {
				t.Fatalf("distance = %.2f, want between %v and %v", d, tt.min, tt.max)
			}
		})
	}
}

func TestDistanceAgreesWithReferenceHaversine(t *testing.T) {
	// The reference package uses a 3958 mile radius; allow for the one-mile difference.
	const relTol = 1e-3
	for _, a := range samplePoints {
		for _, b := range samplePoints {
			got := DistanceMiles(a, b)
			want, _ := haversine.Distance(
				haversine.Coord{Lat: a.Lat, Lon: a.Lon},
				haversine.Coord{Lat: b.Lat, Lon: b.Lon},
			)
			if want == 0 {
				if got > 1e-9 {
					t.Fatalf("DistanceMiles(%+v, %+v) = %v, want 0", a, b, got)
				}
				continue
			}
			if math.Abs(got-want)/want > relTol {
				t.Fatalf("DistanceMiles(%+v, %+v) = %v, reference = %v", a, b, got, want)
			}
		}
	}
}
