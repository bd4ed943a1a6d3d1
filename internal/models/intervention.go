package models

// Intervention types
const (
	InterventionLEDPole           = "led-pole"
	InterventionLEDPoleMotion     = "led-pole-motion"
	InterventionCallBox           = "callbox"
	InterventionVegetationTrim    = "vegetation-trim"
	InterventionVegetationRemoval = "vegetation-removal"
	InterventionCCTV              = "cctv"
	InterventionSignage           = "signage"
	InterventionPathwayMarking    = "pathway-marking"
	InterventionMirror            = "mirror"
)

// Citation references the study backing a catalog entry's reduction range.
type Citation struct {
	Authors string `json:"authors"`
	Year    int    `json:"year"`
	Title   string `json:"title"`
	Finding string `json:"finding"`
}

// ReductionRange is the expected incident-reduction percentage band
// reported by the cited research.
type ReductionRange struct {
	Low    float64 `json:"low"`
	Median float64 `json:"median"`
	High   float64 `json:"high"`
}

// CatalogEntry is one intervention type in the static catalog.
type CatalogEntry struct {
	Type         string         `json:"type" mapstructure:"type"`
	Name         string         `json:"name" mapstructure:"name"`
	UnitCost     float64        `json:"unit_cost" mapstructure:"unit_cost"`
	ApplicableTo []string       `json:"applicable_to" mapstructure:"applicable_to"` // deficiency kinds
	Reduction    ReductionRange `json:"reduction" mapstructure:"reduction"`
	Citation     Citation       `json:"citation" mapstructure:"citation"`
}
