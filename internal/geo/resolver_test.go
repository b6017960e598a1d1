package geo

import (
	"service-area-api/internal/domain"
	"testing"
)

func TestResolveKnownPrefixes(t *testing.T) {
	tests := []struct {
		zip  string
		want domain.Coordinates
	}{
		{zip: "90210", want: domain.Coordinates{Lat: 34.05, Lon: -118.25}},
		{zip: "92101", want: domain.Coordinates{Lat: 32.72, Lon: -117.16}},
		{zip: "10001", want: domain.Coordinates{Lat: 40.71, Lon: -74.01}},
		{zip: "60601", want: domain.Coordinates{Lat: 41.88, Lon: -87.63}},
	}

	for _, tt := range tests {
		got, ok := Resolve(tt.zip)
		if !ok {
			t.Fatalf("Resolve(%q) not found", tt.zip)
		}
		if got != tt.want {
			t.Fatalf("Resolve(%q) = %+v, want %+v", tt.zip, got, tt.want)
		}
	}
}

func TestResolveDependsOnlyOnPrefix(t *testing.T) {
	base, ok := Resolve("90210")
	if !ok {
		t.Fatal("Resolve(90210) not found")
	}

	for _, zip := range []string{"90299", "902", "90210-1234", "902xx"} {
		got, ok := Resolve(zip)
		if !ok {
			t.Fatalf("Resolve(%q) not found", zip)
		}
		if got != base {
			t.Fatalf("Resolve(%q) = %+v, want %+v", zip, got, base)
		}
	}
}

func TestResolveNotFound(t *testing.T) {
	for _, zip := range []string{"", "1", "12", "99999", "abcde", " 902"} {
		got, ok := Resolve(zip)
		if ok {
			t.Fatalf("Resolve(%q) = %+v, want not found", zip, got)
		}
		if got != (domain.Coordinates{}) {
			t.Fatalf("Resolve(%q) returned non-zero coordinates %+v", zip, got)
		}
	}
}

func TestChicagoAreaPrefixesResolve(t *testing.T) {
	for _, zip := range []string{"60001", "60101", "60201", "60301", "60401", "60501", "60601", "60701", "60801"} {
		if _, ok := Resolve(zip); !ok {
			t.Fatalf("Resolve(%q) not found", zip)
		}
	}
}

func TestPrefixResolverMatchesResolve(t *testing.T) {
	r := NewPrefixResolver()
	for _, zip := range []string{"90210", "10001", "99999", ""} {
		got, gotOK := r.Resolve(zip)
		want, wantOK := Resolve(zip)
		if got != want || gotOK != wantOK {
			t.Fatalf("PrefixResolver.Resolve(%q) = (%+v, %v), want (%+v, %v)", zip, got, gotOK, want, wantOK)
		}
	}
}

func TestTableInvariants(t *testing.T) {
	if KnownPrefixes() == 0 {
		t.Fatal("prefix table is empty")
	}

	for key, c := range zipPrefixTable {
		if len(key) != PrefixLen {
			t.Fatalf("key %q has length %d, want %d", key, len(key), PrefixLen)
		}
		for i := 0; i < len(key); i++ {
			if key[i] < '0' || key[i] > '9' {
				t.Fatalf("key %q contains non-digit %q", key, key[i])
			}
		}
		if c.Lat < -90 || c.Lat > 90 {
			t.Fatalf("key %q latitude %v out of range", key, c.Lat)
		}
		if c.Lon < -180 || c.Lon > 180 {
			t.Fatalf("key %q longitude %v out of range", key, c.Lon)
		}
	}
}
