package models

// SelectedIntervention is one costed intervention in an ROI report.
type SelectedIntervention struct {
	Type               string         `json:"type"`
	Name               string         `json:"name"`
	Cost               float64        `json:"cost"`
	Addresses          []string       `json:"addresses"` // deficiency kinds it covers here
	Reduction          ReductionRange `json:"reduction"`
	IncidentsPrevented float64        `json:"incidents_prevented"` // per year
	AnnualSavings      float64        `json:"annual_savings"`
	Citation           Citation       `json:"citation"`
}

// ROIReport is the cost/benefit projection for one hotspot.
// Cost and savings are always non-negative.
type ROIReport struct {
	LocationID         string                 `json:"location_id"`
	BaselineIncidents  int                    `json:"baseline_annual_incidents"`
	CostPerIncident    float64                `json:"cost_per_incident"`
	Interventions      []SelectedIntervention `json:"interventions"`
	Unaddressed        []string               `json:"unaddressed,omitempty"` // deficiency kinds with no catalog match
	TotalCost          float64                `json:"total_cost"`
	IncidentsPrevented float64                `json:"incidents_prevented"`
	AnnualSavings      float64                `json:"annual_savings"`
	ROIPct             float64                `json:"roi_pct"`
	PaybackDays        float64                `json:"payback_days"`
	PaybackLabel       string                 `json:"payback_label"`
	FiveYearNet        float64                `json:"five_year_net"`
}

// CampusROISummary is the cross-hotspot rollup. The blended payback period is
// recomputed from summed totals, never averaged from per-hotspot values.
type CampusROISummary struct {
	HotspotCount       int     `json:"hotspot_count"`
	TotalCost          float64 `json:"total_cost"`
	IncidentsPrevented float64 `json:"incidents_prevented"`
	AnnualSavings      float64 `json:"annual_savings"`
	OverallROIPct      float64 `json:"overall_roi_pct"`
	BlendedPaybackDays float64 `json:"blended_payback_days"`
	PaybackLabel       string  `json:"payback_label"`
	FiveYearNet        float64 `json:"five_year_net"`
	UnaddressedCount   int     `json:"unaddressed_count"`
}
