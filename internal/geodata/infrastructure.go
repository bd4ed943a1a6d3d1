package geodata

import (
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/models"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/spatial"
)

// Infrastructure point kinds as stored in the infrastructure table.
const (
	KindLightPole = "light_pole"
	KindCallBox   = "call_box"
	KindCorridor  = "corridor"
)

// InfrastructureTable holds the known pole, call box, and high-traffic
// corridor coordinates. Read-only during a scan.
type InfrastructureTable struct {
	Poles     []spatial.Point
	CallBoxes []spatial.Point
	Corridors []spatial.Point
}

// NearestPole returns the closest light pole with its distance in feet.
func (t *InfrastructureTable) NearestPole(lat, lon float64) (models.NearestPoint, bool) {
	return nearestOf(lat, lon, t.Poles)
}

// NearestCallBox returns the closest emergency call box.
func (t *InfrastructureTable) NearestCallBox(lat, lon float64) (models.NearestPoint, bool) {
	return nearestOf(lat, lon, t.CallBoxes)
}

// NearestCorridor returns the closest high-traffic corridor.
func (t *InfrastructureTable) NearestCorridor(lat, lon float64) (models.NearestPoint, bool) {
	return nearestOf(lat, lon, t.Corridors)
}

func nearestOf(lat, lon float64, points []spatial.Point) (models.NearestPoint, bool) {
	p, dist, ok := spatial.Nearest(lat, lon, points)
	if !ok {
		return models.NearestPoint{}, false
	}
	return models.NearestPoint{
		Found:      true,
		Name:       p.Name,
		DistanceFt: spatial.MetersToFeet(dist),
	}, true
}
