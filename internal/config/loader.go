package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/roi"
)

// Load reads configuration from config.yaml (if present) and CAMPUS_SCAN_*
// environment variables on top of the built-in defaults.
func Load() (*Config, error) {
	v := viper.New()

	// Server
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.rate_limit", 100)
	v.SetDefault("server.rate_window_seconds", 60)

	// Database
	v.SetDefault("database.path", "./data/campus.db")

	// Scan defaults
	v.SetDefault("scan.top_n", 5)
	v.SetDefault("scan.min_risk", 0.5)
	v.SetDefault("scan.hour", -1)
	v.SetDefault("scan.workers", 4)

	// Scoring
	v.SetDefault("scoring.search_radius_miles", 0.15)
	v.SetDefault("scoring.decay_shape", "linear")
	v.SetDefault("scoring.time_window_hours", 2)
	v.SetDefault("scoring.time_boost", 1.5)
	v.SetDefault("scoring.night_boost", 1.5)
	v.SetDefault("scoring.saturation_k", 0.25)

	// Deficiency thresholds
	v.SetDefault("thresholds.luminance_min", 2.0)
	v.SetDefault("thresholds.pole_max_ft", 200.0)
	v.SetDefault("thresholds.callbox_max_ft", 500.0)
	v.SetDefault("thresholds.surveillance_min", 5.0)
	v.SetDefault("thresholds.night_concentration", 0.5)
	v.SetDefault("thresholds.weekend_concentration", 0.5)
	v.SetDefault("thresholds.corridor_isolation_ft", 400.0)
	v.SetDefault("thresholds.road_radius_ft", 300.0)

	// ROI + benchmarks
	v.SetDefault("roi.cost_per_incident", 8500.0)
	v.SetDefault("benchmarks.enrollment", 30000)
	v.SetDefault("benchmarks.peer_rate_per_10k", 52.0)
	v.SetDefault("benchmarks.top_quartile_per_10k", 31.0)
	v.SetDefault("benchmarks.national_per_10k", 68.0)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("CAMPUS_SCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// The catalog is large; only override it when the config file provides one.
	if len(cfg.ROI.Catalog) == 0 {
		cfg.ROI.Catalog = roi.DefaultCatalog()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
