package models

import "time"

// Diagnostics counts the non-fatal data-quality conditions observed during a
// scan. All of these degrade gracefully; only configuration errors abort.
type Diagnostics struct {
	SkippedIncidentRows int `json:"skipped_incident_rows"` // missing coordinates
	EstimatedLuminance  int `json:"estimated_luminance"`   // fallback readings used
	UnaddressedGaps     int `json:"unaddressed_gaps"`      // deficiencies without catalog match
}

// RiskLevelCounts buckets all scanned locations by risk level.
type RiskLevelCounts struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// TemporalHeatmap is the hour-of-day x day-of-week incident histogram over
// the campus area.
type TemporalHeatmap struct {
	ByHour    map[int]int    `json:"by_hour"`
	ByDay     map[string]int `json:"by_day"`
	PeakHours []int          `json:"peak_hours"` // top 3 hours by count
	PeakDays  []string       `json:"peak_days"`  // top 3 days by count
	NightPct  float64        `json:"night_pct"`
	Total     int            `json:"total"`
}

// Benchmarks compares the campus incident rate against peer institutions.
type Benchmarks struct {
	RatePer10k          float64 `json:"rate_per_10k"`
	PeerAveragePer10k   float64 `json:"peer_average_per_10k"`
	TopQuartilePer10k   float64 `json:"top_quartile_per_10k"`
	NationalAvgPer10k   float64 `json:"national_average_per_10k"`
	Ranking             string  `json:"ranking"`
	ProjectedRatePer10k float64 `json:"projected_rate_per_10k"`
	TotalIncidents      int     `json:"total_incidents"`
}

// ScoredLocation is the compact per-location entry for the full scan listing.
type ScoredLocation struct {
	Location      CandidateLocation `json:"location"`
	Score         float64           `json:"score"`
	Level         string            `json:"level"`
	IncidentCount int               `json:"incident_count"`
}

// CampusReport is the finalized output of one scan: ranked hotspots plus the
// campus-wide rollup. Downstream exporters serialize it however they like.
type CampusReport struct {
	ScanID           string           `json:"scan_id"`
	GeneratedAt      time.Time        `json:"generated_at"`
	ScanHour         int              `json:"scan_hour"` // -1 when no hour given
	LocationsScanned int              `json:"locations_scanned"`
	CampusRiskIndex  float64          `json:"campus_risk_index"`
	RiskLevels       RiskLevelCounts  `json:"risk_levels"`
	Hotspots         []Hotspot        `json:"hotspots"`
	AllLocations     []ScoredLocation `json:"all_locations"`
	ROISummary       CampusROISummary `json:"roi_summary"`
	Temporal         TemporalHeatmap  `json:"temporal"`
	Benchmarks       Benchmarks       `json:"benchmarks"`
	Diagnostics      Diagnostics      `json:"diagnostics"`
}
