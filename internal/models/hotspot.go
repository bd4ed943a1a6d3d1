package models

// Priority tiers, in rank order. TierNone means the hotspot is reported but
// not intervention-prioritized.
const (
	TierCritical = "Critical"
	TierHigh     = "High"
	TierMedium   = "Medium"
	TierNone     = ""
)

// TierRank orders tiers for sorting: Critical > High > Medium > none.
func TierRank(tier string) int {
	switch tier {
	case TierCritical:
		return 3
	case TierHigh:
		return 2
	case TierMedium:
		return 1
	default:
		return 0
	}
}

// Hotspot is the fully populated analysis unit for one selected location.
// Created at scan start, complete by pipeline end, discarded after the scan.
type Hotspot struct {
	Rank             int                  `json:"rank"`
	Location         CandidateLocation    `json:"location"`
	Risk             RiskScore            `json:"risk"`
	Profile          EnvironmentalProfile `json:"profile"`
	Deficiencies     []Deficiency         `json:"deficiencies"`
	Priority         string               `json:"priority"`
	ROI              ROIReport            `json:"roi"`
	PolicyAnnotation string               `json:"policy_annotation,omitempty"` // opaque, never affects numbers
}
