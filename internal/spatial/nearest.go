package spatial

import "math"

// Point represents a 2D point with latitude and longitude
type Point struct {
	Name string
	Lat  float64
	Lon  float64
}

// Nearest returns the closest point to (lat, lon) and its distance in meters.
// Returns ok=false for an empty set.
func Nearest(lat, lon float64, points []Point) (Point, float64, bool) {
	if len(points) == 0 {
		return Point{}, 0, false
	}

	best := points[0]
	bestDist := math.Inf(1)
	for _, p := range points {
		d := HaversineDistance(lat, lon, p.Lat, p.Lon)
		if d < bestDist {
			bestDist = d
			best = p
		}
	}
	return best, bestDist, true
}

// WithinRadius returns all points within radiusM meters of (lat, lon),
// with a cheap bounding-box pass before the exact distance check.
func WithinRadius(lat, lon, radiusM float64, points []Point) []Point {
	dLat := radiusM / EarthRadiusMeters * 180 / math.Pi
	dLon := dLat / math.Cos(lat*math.Pi/180)

	var result []Point
	for _, p := range points {
		if math.Abs(p.Lat-lat) > dLat || math.Abs(p.Lon-lon) > dLon {
			continue
		}
		if HaversineDistance(lat, lon, p.Lat, p.Lon) <= radiusM {
			result = append(result, p)
		}
	}
	return result
}
