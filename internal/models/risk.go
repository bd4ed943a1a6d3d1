package models

// Risk level labels derived from the 0-10 score.
const (
	RiskLevelHigh   = "High"
	RiskLevelMedium = "Medium"
	RiskLevelLow    = "Low"
)

// TemporalBreakdown summarizes when a location's contributing incidents occur.
// Computed once by the scorer and passed through to the profiler so both
// stages describe the same incident subset.
type TemporalBreakdown struct {
	NightRatio   float64 `json:"night_ratio"`   // fraction of incidents at 22:00-05:59
	WeekendRatio float64 `json:"weekend_ratio"` // fraction on Friday-Sunday
}

// RiskScore is the scored result for one candidate location.
// Computed fresh per scan; never persisted.
type RiskScore struct {
	LocationID    string            `json:"location_id"`
	Score         float64           `json:"score"` // always in [0,10]
	Level         string            `json:"level"`
	IncidentCount int               `json:"incident_count"`
	Contributing  []Incident        `json:"-"`
	DominantCrime string            `json:"dominant_crime"`
	Temporal      TemporalBreakdown `json:"temporal"`
	SkippedRows   int               `json:"skipped_rows,omitempty"` // rows without coordinates
}

// LevelForScore maps a 0-10 risk score to its label.
// Thresholds follow the campus standard: High >= 7, Medium >= 4.
func LevelForScore(score float64) string {
	switch {
	case score >= 7.0:
		return RiskLevelHigh
	case score >= 4.0:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}
