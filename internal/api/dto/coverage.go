package dto

type CoverageRequest struct {
	Zip         string  `json:"zip"`
	RadiusMiles float64 `json:"radius_miles"`
}

type CenterDistanceResponse struct {
	ServiceCenter ServiceCenterResponse `json:"service_center"`
	DistanceMiles float64               `json:"distance_miles"`
	InRange       bool                  `json:"in_range"`
}

type CoverageResponse struct {
	Zip      string                   `json:"zip"`
	Prefix   string                   `json:"prefix,omitempty"`
	Resolved bool                     `json:"resolved"`
	Lat      *float64                 `json:"lat,omitempty"`
	Lon      *float64                 `json:"lon,omitempty"`
	Covered  bool                     `json:"covered"`
	Message  string                   `json:"message"`
	Nearest  *CenterDistanceResponse  `json:"nearest,omitempty"`
	Centers  []CenterDistanceResponse `json:"centers"`
}
