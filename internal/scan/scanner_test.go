package scan

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/config"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/geodata"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/models"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/policy"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/roi"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/spatial"
)

// emptySource forces the geodata context onto the built-in defaults.
type emptySource struct{}

func (emptySource) LuminanceCells(context.Context) ([]geodata.LuminanceCell, error) { return nil, nil }
func (emptySource) EstimateZones(context.Context) ([]geodata.EstimateZone, error)   { return nil, nil }
func (emptySource) RoadPoints(context.Context) ([]geodata.RoadPoint, error) {
	return []geodata.RoadPoint{
		{Name: "Conley Ave", ClassCode: "S1200", Lat: 38.9381, Lon: -92.3251},
		{Name: "Lot C2 Access", ClassCode: "S1780", Lat: 38.9380, Lon: -92.3351},
	}, nil
}
func (emptySource) InfrastructurePoints(context.Context) (poles, callBoxes, corridors []spatial.Point, err error) {
	return nil, nil, nil, nil
}

func testBenchmarkConfig() config.BenchmarkConfig {
	return config.BenchmarkConfig{
		Enrollment:        30000,
		PeerRatePer10k:    52,
		TopQuartilePer10k: 31,
		NationalPer10k:    68,
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Scan: config.ScanConfig{TopN: 5, MinRisk: 0.5, Hour: -1, Workers: 4},
		Scoring: config.ScoringConfig{
			SearchRadiusMiles: 0.15,
			DecayShape:        "linear",
			TimeWindowHours:   2,
			TimeBoost:         1.5,
			NightBoost:        1.5,
			SaturationK:       0.25,
		},
		Thresholds: config.ThresholdConfig{
			LuminanceMin:         2.0,
			PoleMaxFt:            200,
			CallBoxMaxFt:         500,
			SurveillanceMin:      5,
			NightConcentration:   0.5,
			WeekendConcentration: 0.5,
			CorridorIsolationFt:  400,
			RoadRadiusFt:         300,
		},
		ROI:        config.ROIConfig{CostPerIncident: 8500, Catalog: roi.DefaultCatalog()},
		Benchmarks: testBenchmarkConfig(),
	}
}

func testIncidents() []models.Incident {
	friday := time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC)
	cluster := func(lat, lon float64, n int, category string) []models.Incident {
		var out []models.Incident
		for i := 0; i < n; i++ {
			out = append(out, models.Incident{
				ID: category + string(rune('a'+i)), Date: friday, Hour: 23,
				Lat: lat, Lon: lon, Category: category, Severity: 4,
			})
		}
		return out
	}

	// Heavy cluster at Lot C2, lighter one at Conley Ave, one row with no
	// coordinates.
	incidents := cluster(38.9380, -92.3350, 6, models.CategoryTheft)
	incidents = append(incidents, cluster(38.9380, -92.3250, 2, models.CategoryAssault)...)
	incidents = append(incidents, models.Incident{ID: "nocoord", Date: friday, Hour: 23, Severity: 5, Category: models.CategoryTheft})
	return incidents
}

func newTestScanner(consultant policy.Consultant) *Scanner {
	return NewScanner(testConfig(), geodata.NewContext(emptySource{}), consultant)
}

func TestScannerRun(t *testing.T) {
	s := newTestScanner(nil)

	report, err := s.Run(context.Background(), Input{Incidents: testIncidents(), Hour: 23})
	require.NoError(t, err)

	assert.NotEmpty(t, report.ScanID)
	assert.Equal(t, 23, report.ScanHour)
	assert.Equal(t, len(DefaultCampusLocations()), report.LocationsScanned)
	assert.Len(t, report.AllLocations, report.LocationsScanned)
	require.NotEmpty(t, report.Hotspots)
	assert.LessOrEqual(t, len(report.Hotspots), 5)

	// Lot C2 carries the heaviest cluster and must surface as a hotspot.
	ids := make([]string, 0, len(report.Hotspots))
	for _, h := range report.Hotspots {
		ids = append(ids, h.Location.ID)
	}
	assert.Contains(t, ids, "parking-lot-c2")

	// Ranks are 1-based, contiguous, and tier-ordered.
	for i, h := range report.Hotspots {
		assert.Equal(t, i+1, h.Rank)
		if i > 0 {
			assert.GreaterOrEqual(t,
				models.TierRank(report.Hotspots[i-1].Priority),
				models.TierRank(h.Priority))
		}
	}

	// Every hotspot has a complete profile and an ROI report.
	for _, h := range report.Hotspots {
		assert.Equal(t, h.Location.ID, h.Profile.LocationID)
		assert.NotEmpty(t, h.Profile.Luminance.Provenance)
		assert.Equal(t, h.Location.ID, h.ROI.LocationID)
	}

	assert.Equal(t, 1, report.Diagnostics.SkippedIncidentRows)
	assert.Greater(t, report.CampusRiskIndex, 0.0)
	assert.Equal(t, len(testIncidents()), report.Temporal.Total)
	assert.Equal(t, len(report.Hotspots), report.ROISummary.HotspotCount)
}

func TestScannerIdempotent(t *testing.T) {
	s := newTestScanner(nil)
	in := Input{Incidents: testIncidents(), Hour: 23}

	first, err := s.Run(context.Background(), in)
	require.NoError(t, err)
	second, err := s.Run(context.Background(), in)
	require.NoError(t, err)

	// Scan ID and timestamp differ; everything else must not.
	second.ScanID = first.ScanID
	second.GeneratedAt = first.GeneratedAt
	assert.Equal(t, first, second)
}

type failingConsultant struct{}

func (failingConsultant) Annotate(context.Context, models.Hotspot) (string, error) {
	return "", errors.New("advisory service unavailable")
}

type fixedConsultant struct{}

func (fixedConsultant) Annotate(_ context.Context, h models.Hotspot) (string, error) {
	return "note for " + h.Location.ID, nil
}

func TestScannerPolicyIndependence(t *testing.T) {
	in := Input{Incidents: testIncidents(), Hour: 23}

	without, err := newTestScanner(nil).Run(context.Background(), in)
	require.NoError(t, err)
	with, err := newTestScanner(fixedConsultant{}).Run(context.Background(), in)
	require.NoError(t, err)
	failing, err := newTestScanner(failingConsultant{}).Run(context.Background(), in)
	require.NoError(t, err)

	require.Equal(t, len(without.Hotspots), len(with.Hotspots))
	for i := range with.Hotspots {
		assert.NotEmpty(t, with.Hotspots[i].PolicyAnnotation)
		// Annotation is the only difference.
		annotated := with.Hotspots[i]
		annotated.PolicyAnnotation = ""
		assert.Equal(t, without.Hotspots[i], annotated)
	}
	for _, h := range failing.Hotspots {
		assert.Empty(t, h.PolicyAnnotation)
	}
	assert.Equal(t, without.ROISummary, failing.ROISummary)
}

func TestScannerNoIncidents(t *testing.T) {
	s := newTestScanner(nil)

	report, err := s.Run(context.Background(), Input{Hour: -1})
	require.NoError(t, err)

	assert.Empty(t, report.Hotspots)
	assert.Zero(t, report.CampusRiskIndex)
	assert.Equal(t, len(DefaultCampusLocations()), report.RiskLevels.Low)
	assert.Zero(t, report.ROISummary.TotalCost)
}

func TestScannerExplicitLocations(t *testing.T) {
	s := newTestScanner(nil)

	locs := []models.CandidateLocation{
		{ID: "custom-1", Name: "Custom Spot", Lat: 38.9380, Lon: -92.3350},
	}
	report, err := s.Run(context.Background(), Input{Locations: locs, Incidents: testIncidents(), Hour: 23})
	require.NoError(t, err)

	assert.Equal(t, 1, report.LocationsScanned)
	require.Len(t, report.Hotspots, 1)
	assert.Equal(t, "custom-1", report.Hotspots[0].Location.ID)
}

func TestRankHotspotsTieBreaks(t *testing.T) {
	hotspots := []models.Hotspot{
		{Location: models.CandidateLocation{ID: "a"}, Priority: models.TierHigh, Risk: models.RiskScore{Score: 6.0, IncidentCount: 1}},
		{Location: models.CandidateLocation{ID: "b"}, Priority: models.TierHigh, Risk: models.RiskScore{Score: 6.0, IncidentCount: 9}},
		{Location: models.CandidateLocation{ID: "c"}, Priority: models.TierCritical, Risk: models.RiskScore{Score: 5.0, IncidentCount: 1}},
		{Location: models.CandidateLocation{ID: "d"}, Priority: models.TierHigh, Risk: models.RiskScore{Score: 6.0, IncidentCount: 9}},
	}
	rankHotspots(hotspots)

	// Tier first, then score, then incident count, then ID.
	ids := make([]string, len(hotspots))
	for i, h := range hotspots {
		ids[i] = h.Location.ID
		assert.Equal(t, i+1, h.Rank)
	}
	assert.Equal(t, []string{"c", "b", "d", "a"}, ids)
}
