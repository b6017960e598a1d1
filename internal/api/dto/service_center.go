package dto

type ServiceCenterResponse struct {
	CenterID    int     `json:"center_id"`
	Name        string  `json:"name"`
	ZipCode     string  `json:"zip_code"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	RadiusMiles float64 `json:"radius_miles"`
}

type ListServiceCentersResponse struct {
	ServiceCenters []ServiceCenterResponse `json:"service_centers"`
}
