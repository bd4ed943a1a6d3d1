package models

// Deficiency kinds
const (
	DeficiencyLightingGap          = "lighting-gap"
	DeficiencyPoleDistanceGap      = "pole-distance-gap"
	DeficiencyCallBoxDistanceGap   = "callbox-distance-gap"
	DeficiencyLowSurveillance      = "low-surveillance"
	DeficiencyConcealmentFeature   = "concealment-feature"
	DeficiencyNightConcentration   = "night-concentration"
	DeficiencyWeekendConcentration = "weekend-concentration"
	DeficiencyCategorySpecific     = "category-specific"
)

// Deficiency severity tags
const (
	SeverityCritical = "critical"
	SeverityMajor    = "major"
	SeverityMinor    = "minor"
)

// Evidence carries the measured value and the threshold it violated,
// so every flagged deficiency is auditable.
type Evidence struct {
	Measured  float64 `json:"measured"`
	Threshold float64 `json:"threshold"`
	Unit      string  `json:"unit"`
}

// Deficiency is a single environmental shortfall flagged against a
// named threshold.
type Deficiency struct {
	Kind     string   `json:"kind"`
	Severity string   `json:"severity"`
	Detail   string   `json:"detail,omitempty"`
	Evidence Evidence `json:"evidence"`
}
