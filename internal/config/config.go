package config

import (
	"fmt"

	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/models"
)

// Config holds the full application configuration. Every scan parameter and
// threshold is named here and overridable; nothing in the pipeline reads
// ambient state.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Scan       ScanConfig       `mapstructure:"scan"`
	Scoring    ScoringConfig    `mapstructure:"scoring"`
	Thresholds ThresholdConfig  `mapstructure:"thresholds"`
	ROI        ROIConfig        `mapstructure:"roi"`
	Benchmarks BenchmarkConfig  `mapstructure:"benchmarks"`
}

type ServerConfig struct {
	Port              string `mapstructure:"port"`
	RateLimit         int    `mapstructure:"rate_limit"`          // requests per window
	RateWindowSeconds int    `mapstructure:"rate_window_seconds"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// ScanConfig holds the per-scan defaults.
type ScanConfig struct {
	TopN    int     `mapstructure:"top_n"`
	MinRisk float64 `mapstructure:"min_risk"`
	Hour    int     `mapstructure:"hour"` // -1 = no simulated hour, use generic night boost
	Workers int     `mapstructure:"workers"`
}

// ScoringConfig tunes the risk score formula.
type ScoringConfig struct {
	SearchRadiusMiles float64 `mapstructure:"search_radius_miles"`
	DecayShape        string  `mapstructure:"decay_shape"` // "linear" or "inverse"
	TimeWindowHours   int     `mapstructure:"time_window_hours"`
	TimeBoost         float64 `mapstructure:"time_boost"`
	NightBoost        float64 `mapstructure:"night_boost"`
	SaturationK       float64 `mapstructure:"saturation_k"`
}

// ThresholdConfig names every deficiency trigger. Units match the evidence
// each deficiency reports.
type ThresholdConfig struct {
	LuminanceMin         float64 `mapstructure:"luminance_min"`          // nW/cm²/sr
	PoleMaxFt            float64 `mapstructure:"pole_max_ft"`
	CallBoxMaxFt         float64 `mapstructure:"callbox_max_ft"`
	SurveillanceMin      float64 `mapstructure:"surveillance_min"`       // 1-10 scale
	NightConcentration   float64 `mapstructure:"night_concentration"`    // ratio
	WeekendConcentration float64 `mapstructure:"weekend_concentration"`  // ratio
	CorridorIsolationFt  float64 `mapstructure:"corridor_isolation_ft"`
	RoadRadiusFt         float64 `mapstructure:"road_radius_ft"`
}

// ROIConfig holds the cost model inputs. An empty catalog is filled with the
// built-in research-backed defaults at load time.
type ROIConfig struct {
	CostPerIncident float64               `mapstructure:"cost_per_incident"`
	Catalog         []models.CatalogEntry `mapstructure:"catalog"`
}

type BenchmarkConfig struct {
	Enrollment        int     `mapstructure:"enrollment"`
	PeerRatePer10k    float64 `mapstructure:"peer_rate_per_10k"`
	TopQuartilePer10k float64 `mapstructure:"top_quartile_per_10k"`
	NationalPer10k    float64 `mapstructure:"national_per_10k"`
}

// Validate rejects configurations that would make a scan meaningless.
// These are the only fatal errors in the pipeline; everything downstream
// degrades gracefully.
func (c *Config) Validate() error {
	if c.Scoring.SearchRadiusMiles <= 0 {
		return fmt.Errorf("invalid config: search_radius_miles must be positive, got %v", c.Scoring.SearchRadiusMiles)
	}
	if c.Scoring.DecayShape != "linear" && c.Scoring.DecayShape != "inverse" {
		return fmt.Errorf("invalid config: unknown decay_shape %q", c.Scoring.DecayShape)
	}
	if c.Scoring.SaturationK <= 0 {
		return fmt.Errorf("invalid config: saturation_k must be positive, got %v", c.Scoring.SaturationK)
	}
	if c.Scoring.TimeWindowHours < 0 || c.Scoring.TimeWindowHours > 12 {
		return fmt.Errorf("invalid config: time_window_hours must be in [0,12], got %d", c.Scoring.TimeWindowHours)
	}
	if c.Scan.TopN < 0 {
		return fmt.Errorf("invalid config: top_n must be non-negative, got %d", c.Scan.TopN)
	}
	if c.Scan.MinRisk < 0 || c.Scan.MinRisk > 10 {
		return fmt.Errorf("invalid config: min_risk must be in [0,10], got %v", c.Scan.MinRisk)
	}
	if c.Scan.Hour < -1 || c.Scan.Hour > 23 {
		return fmt.Errorf("invalid config: hour must be -1 or in [0,23], got %d", c.Scan.Hour)
	}
	if c.Scan.Workers < 1 {
		return fmt.Errorf("invalid config: workers must be at least 1, got %d", c.Scan.Workers)
	}
	if c.Thresholds.LuminanceMin < 0 || c.Thresholds.PoleMaxFt < 0 ||
		c.Thresholds.CallBoxMaxFt < 0 || c.Thresholds.CorridorIsolationFt < 0 {
		return fmt.Errorf("invalid config: thresholds must be non-negative")
	}
	if c.Thresholds.RoadRadiusFt <= 0 {
		return fmt.Errorf("invalid config: road_radius_ft must be positive, got %v", c.Thresholds.RoadRadiusFt)
	}
	if c.ROI.CostPerIncident < 0 {
		return fmt.Errorf("invalid config: cost_per_incident must be non-negative, got %v", c.ROI.CostPerIncident)
	}
	if len(c.ROI.Catalog) == 0 {
		return fmt.Errorf("invalid config: intervention catalog is empty")
	}
	for _, entry := range c.ROI.Catalog {
		if entry.UnitCost < 0 {
			return fmt.Errorf("invalid config: catalog entry %q has negative cost", entry.Type)
		}
		if len(entry.ApplicableTo) == 0 {
			return fmt.Errorf("invalid config: catalog entry %q applies to nothing", entry.Type)
		}
	}
	return nil
}
