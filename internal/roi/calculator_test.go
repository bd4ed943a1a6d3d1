package roi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/models"
)

const testCostPerIncident = 8500.0

func deficiency(kind string) models.Deficiency {
	return models.Deficiency{Kind: kind, Severity: models.SeverityMajor}
}

func TestFromDeficienciesSelectsCheapest(t *testing.T) {
	c := NewCalculator(DefaultCatalog(), testCostPerIncident)

	// Concealment matches vegetation trim (450), removal (1200) and mirror
	// (250); the mirror wins on cost.
	report := c.FromDeficiencies("greek-town", []models.Deficiency{
		deficiency(models.DeficiencyConcealmentFeature),
	}, 10)

	require.Len(t, report.Interventions, 1)
	assert.Equal(t, models.InterventionMirror, report.Interventions[0].Type)
	assert.InDelta(t, 250, report.TotalCost, 1e-9)
	assert.NotEmpty(t, report.Interventions[0].Citation.Authors)
}

func TestFromDeficienciesDeduplicates(t *testing.T) {
	c := NewCalculator(DefaultCatalog(), testCostPerIncident)

	// Lighting gap and pole distance gap both resolve to the LED pole; it is
	// costed once and covers both.
	report := c.FromDeficiencies("parking-lot-c2", []models.Deficiency{
		deficiency(models.DeficiencyLightingGap),
		deficiency(models.DeficiencyPoleDistanceGap),
	}, 10)

	require.Len(t, report.Interventions, 1)
	iv := report.Interventions[0]
	assert.Equal(t, models.InterventionLEDPole, iv.Type)
	assert.ElementsMatch(t,
		[]string{models.DeficiencyLightingGap, models.DeficiencyPoleDistanceGap},
		iv.Addresses)
	assert.InDelta(t, 7500, report.TotalCost, 1e-9)
}

func TestFromDeficienciesMath(t *testing.T) {
	c := NewCalculator(DefaultCatalog(), testCostPerIncident)

	// LED pole: median 29% of 20 baseline incidents = 5.8 prevented/year.
	report := c.FromDeficiencies("west-campus-connector", []models.Deficiency{
		deficiency(models.DeficiencyLightingGap),
	}, 20)

	require.Len(t, report.Interventions, 1)
	assert.InDelta(t, 5.8, report.IncidentsPrevented, 1e-9)
	assert.InDelta(t, 5.8*testCostPerIncident, report.AnnualSavings, 1e-6)
	assert.InDelta(t, (report.AnnualSavings-7500)/7500*100, report.ROIPct, 1e-6)
	assert.InDelta(t, 7500/(report.AnnualSavings/365), report.PaybackDays, 1e-6)
	assert.InDelta(t, 5*report.AnnualSavings-7500, report.FiveYearNet, 1e-6)
	assert.NotEqual(t, "n/a", report.PaybackLabel)
}

func TestFromDeficienciesUnaddressed(t *testing.T) {
	catalog := []models.CatalogEntry{
		{
			Type:         models.InterventionCCTV,
			Name:         "Security Camera (CCTV)",
			UnitCost:     6000,
			ApplicableTo: []string{models.DeficiencyLowSurveillance},
			Reduction:    models.ReductionRange{Low: 16, Median: 28, High: 51},
		},
	}
	c := NewCalculator(catalog, testCostPerIncident)

	report := c.FromDeficiencies("south-campus-path", []models.Deficiency{
		deficiency(models.DeficiencyLowSurveillance),
		deficiency(models.DeficiencyCallBoxDistanceGap),
	}, 5)

	require.Len(t, report.Interventions, 1)
	assert.Equal(t, []string{models.DeficiencyCallBoxDistanceGap}, report.Unaddressed)
}

func TestFromDeficienciesEmptyAndZeroBaseline(t *testing.T) {
	c := NewCalculator(DefaultCatalog(), testCostPerIncident)

	t.Run("no deficiencies", func(t *testing.T) {
		report := c.FromDeficiencies("jesse-hall", nil, 10)
		assert.Empty(t, report.Interventions)
		assert.Zero(t, report.TotalCost)
		assert.Zero(t, report.ROIPct)
		assert.Equal(t, "n/a", report.PaybackLabel)
	})

	t.Run("zero baseline prevents nothing", func(t *testing.T) {
		report := c.FromDeficiencies("jesse-hall", []models.Deficiency{
			deficiency(models.DeficiencyLightingGap),
		}, 0)
		assert.Zero(t, report.IncidentsPrevented)
		assert.Zero(t, report.AnnualSavings)
		assert.Zero(t, report.PaybackDays)
	})

	t.Run("negative baseline clamped", func(t *testing.T) {
		report := c.FromDeficiencies("jesse-hall", nil, -3)
		assert.Zero(t, report.BaselineIncidents)
	})
}

func TestFromDeficienciesDeterministicOrder(t *testing.T) {
	c := NewCalculator(DefaultCatalog(), testCostPerIncident)

	input := []models.Deficiency{
		deficiency(models.DeficiencyLowSurveillance),
		deficiency(models.DeficiencyLightingGap),
		deficiency(models.DeficiencyCallBoxDistanceGap),
	}
	first := c.FromDeficiencies("hitt-street-corridor", input, 12)
	second := c.FromDeficiencies("hitt-street-corridor", input, 12)
	assert.Equal(t, first, second)

	for i := 1; i < len(first.Interventions); i++ {
		assert.Less(t, first.Interventions[i-1].Type, first.Interventions[i].Type)
	}
}

func TestAggregateBlendedPayback(t *testing.T) {
	c := NewCalculator(DefaultCatalog(), testCostPerIncident)

	a := c.FromDeficiencies("a", []models.Deficiency{deficiency(models.DeficiencyLightingGap)}, 20)
	b := c.FromDeficiencies("b", []models.Deficiency{deficiency(models.DeficiencyCallBoxDistanceGap)}, 4)

	summary := c.Aggregate([]models.ROIReport{a, b})
	assert.Equal(t, 2, summary.HotspotCount)
	assert.InDelta(t, a.TotalCost+b.TotalCost, summary.TotalCost, 1e-9)
	assert.InDelta(t, a.AnnualSavings+b.AnnualSavings, summary.AnnualSavings, 1e-6)

	// Blended payback comes from the summed totals, not the mean of the
	// per-hotspot payback periods.
	expected := summary.TotalCost / (summary.AnnualSavings / 365.0)
	assert.InDelta(t, expected, summary.BlendedPaybackDays, 1e-6)
	naive := (a.PaybackDays + b.PaybackDays) / 2
	assert.Greater(t, math.Abs(naive-summary.BlendedPaybackDays), 0.5)
}

func TestAggregateEmpty(t *testing.T) {
	c := NewCalculator(DefaultCatalog(), testCostPerIncident)

	summary := c.Aggregate(nil)
	assert.Zero(t, summary.HotspotCount)
	assert.Zero(t, summary.TotalCost)
	assert.Zero(t, summary.BlendedPaybackDays)
	assert.Equal(t, "n/a", summary.PaybackLabel)
}

func TestPaybackLabel(t *testing.T) {
	assert.Equal(t, "n/a", PaybackLabel(0))
	assert.Equal(t, "14 days", PaybackLabel(14))
	assert.Equal(t, "3 months", PaybackLabel(90))
	assert.Equal(t, "2.0 years", PaybackLabel(730))
}
