package domain

// Represents a shop or mobile-technician base that customers can be served from.
// RadiusMiles is the distance the business is willing to travel from Location.
type ServiceCenter struct {
	CenterID    int
	Name        string
	ZipCode     string
	Location    Coordinates
	RadiusMiles float64
}
