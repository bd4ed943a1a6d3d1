package spatial

import (
	"math"

	"github.com/golang/geo/s2"
)

// Constants
const (
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters
	MetersPerMile     = 1609.344
	FeetPerMeter      = 3.28084
)

// HaversineDistance calculates the great-circle distance between two points in meters
// using the Haversine formula
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// EquirectangularDistance approximates the distance between two points in meters
// using a flat-earth projection. At campus scale (sub-kilometer spans) the error
// versus the great-circle distance is well under a meter, which keeps the
// scoring hot loop cheap.
func EquirectangularDistance(lat1, lon1, lat2, lon2 float64) float64 {
	latRad1 := lat1 * math.Pi / 180
	latRad2 := lat2 * math.Pi / 180
	x := (lon2 - lon1) * math.Pi / 180 * math.Cos((latRad1+latRad2)/2)
	y := latRad2 - latRad1
	return math.Sqrt(x*x+y*y) * EarthRadiusMeters
}

// MetersToFeet converts meters to feet.
func MetersToFeet(m float64) float64 {
	return m * FeetPerMeter
}

// MilesToMeters converts statute miles to meters.
func MilesToMeters(mi float64) float64 {
	return mi * MetersPerMile
}
