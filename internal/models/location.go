package models

// CandidateLocation is a point eligible for risk scoring — a named campus
// location or a grid cell center.
type CandidateLocation struct {
	ID   string  `json:"id" db:"id"`
	Name string  `json:"name" db:"name"`
	Lat  float64 `json:"lat" db:"lat"`
	Lon  float64 `json:"lon" db:"lon"`
	Zone string  `json:"zone,omitempty" db:"zone"`
}
