// Package roi turns a hotspot's deficiency list into a costed, cited
// intervention plan with return-on-investment projections.
package roi

import (
	"fmt"
	"math"
	"sort"

	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/models"
)

// Calculator prices interventions against a static catalog. Read-only after
// construction, so one instance serves all hotspot workers.
type Calculator struct {
	catalog         []models.CatalogEntry
	costPerIncident float64
}

// NewCalculator creates a calculator over the given catalog and national
// per-incident cost benchmark.
func NewCalculator(catalog []models.CatalogEntry, costPerIncident float64) *Calculator {
	return &Calculator{catalog: catalog, costPerIncident: costPerIncident}
}

// FromDeficiencies selects the lowest-cost applicable intervention for each
// flagged deficiency and prices the resulting plan. An intervention covering
// several deficiencies is counted once. Deficiencies with no catalog match
// are reported as unaddressed, never dropped.
func (c *Calculator) FromDeficiencies(locationID string, deficiencies []models.Deficiency, baselineIncidents int) models.ROIReport {
	if baselineIncidents < 0 {
		baselineIncidents = 0
	}

	selected := make(map[string]*models.SelectedIntervention)
	var unaddressed []string

	for _, d := range deficiencies {
		entry, ok := c.cheapestFor(d.Kind)
		if !ok {
			unaddressed = append(unaddressed, d.Kind)
			continue
		}
		if iv, exists := selected[entry.Type]; exists {
			iv.Addresses = append(iv.Addresses, d.Kind)
			continue
		}
		prevented := float64(baselineIncidents) * entry.Reduction.Median / 100.0
		selected[entry.Type] = &models.SelectedIntervention{
			Type:               entry.Type,
			Name:               entry.Name,
			Cost:               entry.UnitCost,
			Addresses:          []string{d.Kind},
			Reduction:          entry.Reduction,
			IncidentsPrevented: prevented,
			AnnualSavings:      prevented * c.costPerIncident,
			Citation:           entry.Citation,
		}
	}

	report := models.ROIReport{
		LocationID:        locationID,
		BaselineIncidents: baselineIncidents,
		CostPerIncident:   c.costPerIncident,
		Unaddressed:       unaddressed,
	}

	// Stable intervention order for reproducible reports.
	types := make([]string, 0, len(selected))
	for t := range selected {
		types = append(types, t)
	}
	sort.Strings(types)

	for _, t := range types {
		iv := selected[t]
		report.Interventions = append(report.Interventions, *iv)
		report.TotalCost += iv.Cost
		report.IncidentsPrevented += iv.IncidentsPrevented
		report.AnnualSavings += iv.AnnualSavings
	}

	report.ROIPct = roiPct(report.AnnualSavings, report.TotalCost)
	report.PaybackDays = paybackDays(report.TotalCost, report.AnnualSavings)
	report.PaybackLabel = PaybackLabel(report.PaybackDays)
	report.FiveYearNet = 5*report.AnnualSavings - report.TotalCost
	return report
}

// Aggregate rolls per-hotspot reports into campus totals. The blended payback
// period is recomputed from the summed cost and savings; averaging the
// per-hotspot payback periods would be mathematically invalid.
func (c *Calculator) Aggregate(reports []models.ROIReport) models.CampusROISummary {
	var summary models.CampusROISummary
	summary.HotspotCount = len(reports)
	for _, r := range reports {
		summary.TotalCost += r.TotalCost
		summary.IncidentsPrevented += r.IncidentsPrevented
		summary.AnnualSavings += r.AnnualSavings
		summary.UnaddressedCount += len(r.Unaddressed)
	}
	summary.OverallROIPct = roiPct(summary.AnnualSavings, summary.TotalCost)
	summary.BlendedPaybackDays = paybackDays(summary.TotalCost, summary.AnnualSavings)
	summary.PaybackLabel = PaybackLabel(summary.BlendedPaybackDays)
	summary.FiveYearNet = 5*summary.AnnualSavings - summary.TotalCost
	return summary
}

// cheapestFor finds the lowest-cost catalog entry applicable to a deficiency
// kind, ties broken by type name so selection is deterministic.
func (c *Calculator) cheapestFor(kind string) (models.CatalogEntry, bool) {
	var best models.CatalogEntry
	found := false
	for _, entry := range c.catalog {
		if !applies(entry, kind) {
			continue
		}
		if !found || entry.UnitCost < best.UnitCost ||
			(entry.UnitCost == best.UnitCost && entry.Type < best.Type) {
			best = entry
			found = true
		}
	}
	return best, found
}

func applies(entry models.CatalogEntry, kind string) bool {
	for _, k := range entry.ApplicableTo {
		if k == kind {
			return true
		}
	}
	return false
}

func roiPct(savings, cost float64) float64 {
	if cost <= 0 {
		return 0
	}
	return (savings - cost) / cost * 100.0
}

func paybackDays(cost, savings float64) float64 {
	if savings <= 0 || cost <= 0 {
		return 0
	}
	return cost / (savings / 365.0)
}

// PaybackLabel renders a payback period in days, months, or years.
func PaybackLabel(days float64) string {
	switch {
	case days <= 0:
		return "n/a"
	case days <= 30:
		return fmt.Sprintf("%d days", int(math.Round(days)))
	case days <= 365:
		return fmt.Sprintf("%d months", int(math.Round(days/30)))
	default:
		return fmt.Sprintf("%.1f years", days/365)
	}
}
