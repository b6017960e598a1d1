package geo

import (
	"errors"
	"service-area-api/internal/domain"
)

// PrefixLen is the number of leading ZIP characters used as the lookup key.
const PrefixLen = 3

// ErrZipNotFound reports a ZIP whose prefix has no entry in the table.
// Resolve itself signals this with its boolean; the error exists for callers
// that need to carry it through an error chain.
var ErrZipNotFound = errors.New("zip prefix not found")

// Prefix returns the lookup key for zip, or false when zip is too short.
func Prefix(zip string) (string, bool) {
	if len(zip) < PrefixLen {
		return "", false
	}
	return zip[:PrefixLen], true
}

// Resolve returns the approximate coordinates for zip by its first three
// characters. Anything after the prefix is ignored, so "90210", "90299" and
// "90210-1234" all resolve to the same point.
func Resolve(zip string) (domain.Coordinates, bool) {
	prefix, ok := Prefix(zip)
	if !ok {
		return domain.Coordinates{}, false
	}

	c, ok := zipPrefixTable[prefix]
	return c, ok
}

// PrefixResolver adapts the static prefix table to ports.CoordinateResolver.
// The zero value is ready to use and safe for concurrent use.
type PrefixResolver struct{}

func NewPrefixResolver() PrefixResolver { return PrefixResolver{} }

func (PrefixResolver) Resolve(zip string) (domain.Coordinates, bool) { return Resolve(zip) }

// KnownPrefixes reports how many prefixes the table covers.
func KnownPrefixes() int { return len(zipPrefixTable) }
