package models

// Luminance reading provenance. Every reading states whether it came from the
// measured raster grid or the estimate fallback table — never mixed silently.
const (
	ProvenanceMeasured  = "measured"
	ProvenanceEstimated = "estimated"
)

// LuminanceReading is a nighttime light intensity sample in nW/cm²/sr.
type LuminanceReading struct {
	Value      float64 `json:"value"`
	Label      string  `json:"label"` // Very Dark / Dim / Adequate / Well-Lit / Bright
	Provenance string  `json:"provenance"`
}

// RoadSegment is one road-network segment returned by the sightline service.
// The service owns geometry; the profiler owns the class-code lookup.
type RoadSegment struct {
	Name      string  `json:"name"`
	ClassCode string  `json:"class_code"` // MTFCC, e.g. S1400
	DistanceM float64 `json:"distance_m"`
}

// Sightline summarizes the road network around a hotspot.
type Sightline struct {
	SurveillanceScore float64 `json:"surveillance_score"` // 1-10, mean of sub-scores
	Label             string  `json:"label"`              // Good / Moderate / Poor / Very Poor
	RoadCount         int     `json:"road_count"`
	DominantRoadType  string  `json:"dominant_road_type"`
	Concealment       bool    `json:"concealment"` // alley/service drive/parking access nearby
}

// NearestPoint is the closest infrastructure point of one kind. Found is
// false when no point of that kind exists in the inventory at all, so a
// missing kind is never mistaken for a point at zero distance.
type NearestPoint struct {
	Found      bool    `json:"found"`
	Name       string  `json:"name,omitempty"`
	DistanceFt float64 `json:"distance_ft"`
}

// EnvironmentalProfile fuses luminance, sightline, and infrastructure
// proximity for one hotspot. Created once per hotspot per scan.
type EnvironmentalProfile struct {
	LocationID      string            `json:"location_id"`
	Luminance       LuminanceReading  `json:"luminance"`
	Sightline       Sightline         `json:"sightline"`
	NearestPole     NearestPoint      `json:"nearest_pole"`
	NearestCallBox  NearestPoint      `json:"nearest_call_box"`
	NearestCorridor NearestPoint      `json:"nearest_corridor"`
	Temporal        TemporalBreakdown `json:"temporal"`
	DominantCrime   string            `json:"dominant_crime"`
}
