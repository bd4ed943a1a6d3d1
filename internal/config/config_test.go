package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/models"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/roi"
)

func validConfig() *Config {
	return &Config{
		Server:   ServerConfig{Port: ":8080", RateLimit: 100, RateWindowSeconds: 60},
		Database: DatabaseConfig{Path: "./data/campus.db"},
		Scan:     ScanConfig{TopN: 5, MinRisk: 0.5, Hour: -1, Workers: 4},
		Scoring: ScoringConfig{
			SearchRadiusMiles: 0.15,
			DecayShape:        "linear",
			TimeWindowHours:   2,
			TimeBoost:         1.5,
			NightBoost:        1.5,
			SaturationK:       0.25,
		},
		Thresholds: ThresholdConfig{
			LuminanceMin:         2.0,
			PoleMaxFt:            200,
			CallBoxMaxFt:         500,
			SurveillanceMin:      5,
			NightConcentration:   0.5,
			WeekendConcentration: 0.5,
			CorridorIsolationFt:  400,
			RoadRadiusFt:         300,
		},
		ROI:        ROIConfig{CostPerIncident: 8500, Catalog: roi.DefaultCatalog()},
		Benchmarks: BenchmarkConfig{Enrollment: 30000, PeerRatePer10k: 52, TopQuartilePer10k: 31, NationalPer10k: 68},
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero radius", func(c *Config) { c.Scoring.SearchRadiusMiles = 0 }},
		{"unknown decay shape", func(c *Config) { c.Scoring.DecayShape = "gaussian" }},
		{"zero saturation", func(c *Config) { c.Scoring.SaturationK = 0 }},
		{"oversize time window", func(c *Config) { c.Scoring.TimeWindowHours = 13 }},
		{"negative top n", func(c *Config) { c.Scan.TopN = -1 }},
		{"min risk out of range", func(c *Config) { c.Scan.MinRisk = 11 }},
		{"bad hour", func(c *Config) { c.Scan.Hour = 24 }},
		{"no workers", func(c *Config) { c.Scan.Workers = 0 }},
		{"negative threshold", func(c *Config) { c.Thresholds.PoleMaxFt = -1 }},
		{"zero road radius", func(c *Config) { c.Thresholds.RoadRadiusFt = 0 }},
		{"negative incident cost", func(c *Config) { c.ROI.CostPerIncident = -1 }},
		{"empty catalog", func(c *Config) { c.ROI.Catalog = nil }},
		{"catalog entry with negative cost", func(c *Config) {
			c.ROI.Catalog = []models.CatalogEntry{{Type: "x", UnitCost: -5, ApplicableTo: []string{"lighting-gap"}}}
		}},
		{"catalog entry applying to nothing", func(c *Config) {
			c.ROI.Catalog = []models.CatalogEntry{{Type: "x", UnitCost: 100}}
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Scan.TopN)
	assert.Equal(t, -1, cfg.Scan.Hour)
	assert.InDelta(t, 0.15, cfg.Scoring.SearchRadiusMiles, 1e-9)
	assert.Equal(t, "linear", cfg.Scoring.DecayShape)
	assert.InDelta(t, 2.0, cfg.Thresholds.LuminanceMin, 1e-9)
	assert.NotEmpty(t, cfg.ROI.Catalog)
	assert.Equal(t, 30000, cfg.Benchmarks.Enrollment)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CAMPUS_SCAN_SCAN_TOP_N", "8")
	t.Setenv("CAMPUS_SCAN_SCORING_DECAY_SHAPE", "inverse")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Scan.TopN)
	assert.Equal(t, "inverse", cfg.Scoring.DecayShape)
}
