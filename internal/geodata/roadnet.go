package geodata

import (
	"sort"

	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/models"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/spatial"
)

// RoadNetwork answers segment queries around a coordinate. The network owns
// geometry only; the profiler owns the class-code interpretation.
type RoadNetwork interface {
	SegmentsWithin(lat, lon, radiusM float64) ([]models.RoadSegment, error)
}

// RoadPoint is one road segment, represented by its midpoint.
type RoadPoint struct {
	Name      string  `json:"name"`
	ClassCode string  `json:"class_code"` // MTFCC, e.g. S1400
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
}

// RoadIndex is an in-memory road network loaded once per scan lifetime.
type RoadIndex struct {
	roads []RoadPoint
}

// NewRoadIndex builds the index from loaded segments.
func NewRoadIndex(roads []RoadPoint) *RoadIndex {
	return &RoadIndex{roads: roads}
}

// SegmentsWithin returns all segments within radiusM meters, nearest first.
func (idx *RoadIndex) SegmentsWithin(lat, lon, radiusM float64) ([]models.RoadSegment, error) {
	var segments []models.RoadSegment
	for _, r := range idx.roads {
		d := spatial.HaversineDistance(lat, lon, r.Lat, r.Lon)
		if d > radiusM {
			continue
		}
		segments = append(segments, models.RoadSegment{
			Name:      r.Name,
			ClassCode: r.ClassCode,
			DistanceM: d,
		})
	}
	sort.Slice(segments, func(i, j int) bool {
		if segments[i].DistanceM != segments[j].DistanceM {
			return segments[i].DistanceM < segments[j].DistanceM
		}
		return segments[i].Name < segments[j].Name
	})
	return segments, nil
}
