package dto

type ZipResponse struct {
	Zip    string  `json:"zip"`
	Prefix string  `json:"prefix"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
}

type DistanceResponse struct {
	From          string  `json:"from"`
	To            string  `json:"to"`
	DistanceMiles float64 `json:"distance_miles"`
}
