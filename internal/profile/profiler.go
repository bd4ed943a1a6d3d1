package profile

import (
	"context"
	"fmt"
	"log"

	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/config"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/geodata"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/models"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/spatial"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/stats"
)

// roadClass maps an MTFCC code to a human label and a passive surveillance
// sub-score on the 1-10 scale. Primary and secondary roads carry steady eyes
// on the street; alleys, stairways and parking access roads do not.
type roadClass struct {
	Label        string
	Surveillance float64
}

var roadClasses = map[string]roadClass{
	"S1100": {"Primary Road", 9},
	"S1200": {"Secondary Road", 8},
	"S1400": {"Local Road", 6},
	"S1500": {"Vehicular Trail", 3},
	"S1630": {"Ramp", 4},
	"S1640": {"Service Drive", 3},
	"S1710": {"Pedestrian Walkway", 5},
	"S1720": {"Stairway", 2},
	"S1730": {"Alley", 2},
	"S1740": {"Private Road", 3},
	"S1780": {"Parking Lot Road", 3},
	"S1820": {"Bike Path", 4},
	"S1830": {"Bridle Path", 2},
}

var defaultRoadClass = roadClass{"Unknown Road", 4}

// concealmentCodes are road classes whose presence creates hiding spots and
// low-visibility approaches next to a hotspot.
var concealmentCodes = map[string]bool{
	"S1730": true, // alley
	"S1780": true, // parking lot road
	"S1640": true, // service drive
}

// Surveillance score when no road segment exists within the search radius.
// An unroaded pocket of campus is treated as isolated, not neutral.
const noRoadsScore = 2.0

// Profiler fuses luminance, road sightlines, and infrastructure proximity
// into one environmental profile per hotspot. All three collaborators are
// read-only; the profiler never mutates shared state.
type Profiler struct {
	geo        *geodata.Context
	thresholds config.ThresholdConfig
}

func NewProfiler(geo *geodata.Context, thresholds config.ThresholdConfig) *Profiler {
	return &Profiler{geo: geo, thresholds: thresholds}
}

// Profile builds the environmental profile for one scored location. The
// temporal breakdown and dominant crime are carried over from the risk score
// so downstream classification sees one consistent record.
func (p *Profiler) Profile(ctx context.Context, loc models.CandidateLocation, risk models.RiskScore) (models.EnvironmentalProfile, error) {
	sampler, err := p.geo.Luminance(ctx)
	if err != nil {
		return models.EnvironmentalProfile{}, fmt.Errorf("failed to load luminance data: %w", err)
	}
	roads, err := p.geo.Roads(ctx)
	if err != nil {
		return models.EnvironmentalProfile{}, fmt.Errorf("failed to load road network: %w", err)
	}
	infra, err := p.geo.Infrastructure(ctx)
	if err != nil {
		return models.EnvironmentalProfile{}, fmt.Errorf("failed to load infrastructure: %w", err)
	}

	reading, err := sampler.Sample(loc.Lat, loc.Lon)
	if err != nil {
		return models.EnvironmentalProfile{}, fmt.Errorf("failed to sample luminance at %s: %w", loc.ID, err)
	}

	radiusM := p.thresholds.RoadRadiusFt / spatial.FeetPerMeter
	segments, err := roads.SegmentsWithin(loc.Lat, loc.Lon, radiusM)
	if err != nil {
		return models.EnvironmentalProfile{}, fmt.Errorf("failed to query road segments at %s: %w", loc.ID, err)
	}
	sightline := buildSightline(segments)

	prof := models.EnvironmentalProfile{
		LocationID:    loc.ID,
		Luminance:     reading,
		Sightline:     sightline,
		Temporal:      risk.Temporal,
		DominantCrime: risk.DominantCrime,
	}
	// A kind with no points at all leaves Found false; the classifier treats
	// that as a coverage gap rather than a point at zero distance.
	prof.NearestPole, _ = infra.NearestPole(loc.Lat, loc.Lon)
	prof.NearestCallBox, _ = infra.NearestCallBox(loc.Lat, loc.Lon)
	prof.NearestCorridor, _ = infra.NearestCorridor(loc.Lat, loc.Lon)

	log.Printf("[Profiler] %s: luminance %.2f (%s), surveillance %.1f [%s], %d roads",
		loc.ID, reading.Value, reading.Provenance, sightline.SurveillanceScore, sightline.Label, sightline.RoadCount)
	return prof, nil
}

// buildSightline averages the surveillance sub-scores of every segment in
// range. The dominant road type is the one providing the strongest
// surveillance; ties break toward the segment nearest the hotspot, which is
// the order SegmentsWithin returns.
func buildSightline(segments []models.RoadSegment) models.Sightline {
	if len(segments) == 0 {
		return models.Sightline{
			SurveillanceScore: noRoadsScore,
			Label:             surveillanceLabel(noRoadsScore),
			DominantRoadType:  "No roads detected",
		}
	}

	scores := make([]float64, 0, len(segments))
	concealment := false
	best := defaultRoadClass
	bestScore := -1.0
	for _, seg := range segments {
		cls, ok := roadClasses[seg.ClassCode]
		if !ok {
			cls = defaultRoadClass
		}
		scores = append(scores, cls.Surveillance)
		if concealmentCodes[seg.ClassCode] {
			concealment = true
		}
		if cls.Surveillance > bestScore {
			bestScore = cls.Surveillance
			best = cls
		}
	}

	mean := stats.Mean(scores)
	return models.Sightline{
		SurveillanceScore: mean,
		Label:             surveillanceLabel(mean),
		RoadCount:         len(segments),
		DominantRoadType:  best.Label,
		Concealment:       concealment,
	}
}

func surveillanceLabel(score float64) string {
	switch {
	case score >= 7:
		return "Good"
	case score >= 5:
		return "Moderate"
	case score >= 3:
		return "Poor"
	default:
		return "Very Poor"
	}
}
