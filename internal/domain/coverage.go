package domain

// Distance from a customer location to one service center.
type CenterDistance struct {
	Center        ServiceCenter
	DistanceMiles float64
	InRange       bool
}

// Represents the answer to "do we cover this ZIP code?".
// When Resolved is false the ZIP prefix is unknown, Location is zero and no
// centers were evaluated; callers should ask the customer to call instead.
type CoverageResult struct {
	Zip      string
	Prefix   string
	Resolved bool
	Location Coordinates
	Covered  bool
	Nearest  *CenterDistance
	Centers  []CenterDistance
}
