package scan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/models"
)

func TestBuildHeatmap(t *testing.T) {
	friday := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	incidents := []models.Incident{
		{Date: friday, Hour: 23},
		{Date: friday, Hour: 23},
		{Date: friday, Hour: 14},
		{Date: monday, Hour: -1}, // no recorded hour
	}

	hm := BuildHeatmap(incidents)

	assert.Equal(t, 4, hm.Total)
	assert.Equal(t, 2, hm.ByHour[23])
	assert.Equal(t, 1, hm.ByHour[14])
	assert.NotContains(t, hm.ByHour, -1)
	assert.Equal(t, 3, hm.ByDay["Friday"])
	assert.Equal(t, 1, hm.ByDay["Monday"])

	// Night share counts only incidents with a recorded hour: 2 of 3.
	assert.InDelta(t, 2.0/3.0, hm.NightPct, 1e-9)

	require.NotEmpty(t, hm.PeakHours)
	assert.Equal(t, 23, hm.PeakHours[0])
	require.NotEmpty(t, hm.PeakDays)
	assert.Equal(t, "Friday", hm.PeakDays[0])
}

func TestBuildHeatmapEmpty(t *testing.T) {
	hm := BuildHeatmap(nil)
	assert.Zero(t, hm.Total)
	assert.Zero(t, hm.NightPct)
	assert.Empty(t, hm.PeakHours)
	assert.Empty(t, hm.PeakDays)
}

func TestComputeBenchmarksRanking(t *testing.T) {
	cfg := testBenchmarkConfig()

	t.Run("rate math", func(t *testing.T) {
		b := ComputeBenchmarks(120, 30, cfg)
		assert.InDelta(t, 40.0, b.RatePer10k, 1e-9)
		assert.InDelta(t, 30.0, b.ProjectedRatePer10k, 1e-9)
		assert.Equal(t, 120, b.TotalIncidents)
	})

	t.Run("labels", func(t *testing.T) {
		assert.Equal(t, "top quartile", ComputeBenchmarks(90, 0, cfg).Ranking)
		assert.Equal(t, "better than peer average", ComputeBenchmarks(150, 0, cfg).Ranking)
		assert.Equal(t, "below national average", ComputeBenchmarks(195, 0, cfg).Ranking)
		assert.Equal(t, "above national average", ComputeBenchmarks(300, 0, cfg).Ranking)
	})

	t.Run("projection floors at zero", func(t *testing.T) {
		b := ComputeBenchmarks(5, 50, cfg)
		assert.Zero(t, b.ProjectedRatePer10k)
	})

	t.Run("zero enrollment yields no rates", func(t *testing.T) {
		zero := cfg
		zero.Enrollment = 0
		b := ComputeBenchmarks(120, 0, zero)
		assert.Zero(t, b.RatePer10k)
		assert.Empty(t, b.Ranking)
	})
}
