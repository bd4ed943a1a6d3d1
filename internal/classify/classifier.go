// Package classify flags environmental deficiencies against the named
// threshold table and assigns the intervention priority tier.
package classify

import (
	"fmt"

	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/config"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/models"
)

// Luminance band below which a lighting gap is considered critical rather
// than major (the "very dark" band of the VIIRS scale).
const veryDarkLuminance = 0.5

// Classifier evaluates one profile against the threshold table. Stateless
// apart from read-only thresholds; the tier is a pure function of its inputs.
type Classifier struct {
	cfg config.ThresholdConfig
}

// NewClassifier creates a classifier from validated thresholds.
func NewClassifier(cfg config.ThresholdConfig) *Classifier {
	return &Classifier{cfg: cfg}
}

// Classify returns the flagged deficiencies and the priority tier for a
// profile and its risk score. Every deficiency carries the measured value
// and the threshold it violated.
func (c *Classifier) Classify(profile models.EnvironmentalProfile, riskScore float64) ([]models.Deficiency, string) {
	var deficiencies []models.Deficiency
	add := func(d models.Deficiency) { deficiencies = append(deficiencies, d) }

	if profile.Luminance.Value < c.cfg.LuminanceMin {
		severity := models.SeverityMajor
		if profile.Luminance.Value < veryDarkLuminance {
			severity = models.SeverityCritical
		}
		add(models.Deficiency{
			Kind:     models.DeficiencyLightingGap,
			Severity: severity,
			Detail: fmt.Sprintf("luminance %.2f nW/cm²/sr (%s) below safe pedestrian threshold",
				profile.Luminance.Value, profile.Luminance.Provenance),
			Evidence: models.Evidence{Measured: profile.Luminance.Value, Threshold: c.cfg.LuminanceMin, Unit: "nW/cm²/sr"},
		})
	}

	if !profile.NearestPole.Found {
		add(models.Deficiency{
			Kind:     models.DeficiencyPoleDistanceGap,
			Severity: models.SeverityMajor,
			Detail:   "no light pole on record near this location",
			Evidence: models.Evidence{Measured: -1, Threshold: c.cfg.PoleMaxFt, Unit: "ft"},
		})
	} else if profile.NearestPole.DistanceFt > c.cfg.PoleMaxFt {
		add(models.Deficiency{
			Kind:     models.DeficiencyPoleDistanceGap,
			Severity: models.SeverityMajor,
			Detail:   fmt.Sprintf("nearest light pole %s exceeds spacing standard", profile.NearestPole.Name),
			Evidence: models.Evidence{Measured: profile.NearestPole.DistanceFt, Threshold: c.cfg.PoleMaxFt, Unit: "ft"},
		})
	}

	if !profile.NearestCallBox.Found {
		add(models.Deficiency{
			Kind:     models.DeficiencyCallBoxDistanceGap,
			Severity: models.SeverityMajor,
			Detail:   "no emergency call box on record near this location",
			Evidence: models.Evidence{Measured: -1, Threshold: c.cfg.CallBoxMaxFt, Unit: "ft"},
		})
	} else if profile.NearestCallBox.DistanceFt > c.cfg.CallBoxMaxFt {
		add(models.Deficiency{
			Kind:     models.DeficiencyCallBoxDistanceGap,
			Severity: models.SeverityMajor,
			Detail:   fmt.Sprintf("call box coverage gap, nearest is %s", profile.NearestCallBox.Name),
			Evidence: models.Evidence{Measured: profile.NearestCallBox.DistanceFt, Threshold: c.cfg.CallBoxMaxFt, Unit: "ft"},
		})
	}

	if profile.Sightline.SurveillanceScore < c.cfg.SurveillanceMin {
		add(models.Deficiency{
			Kind:     models.DeficiencyLowSurveillance,
			Severity: models.SeverityMajor,
			Detail:   fmt.Sprintf("limited natural surveillance, dominant road type %s", profile.Sightline.DominantRoadType),
			Evidence: models.Evidence{Measured: profile.Sightline.SurveillanceScore, Threshold: c.cfg.SurveillanceMin, Unit: "score"},
		})
	}

	if profile.Sightline.Concealment {
		add(models.Deficiency{
			Kind:     models.DeficiencyConcealmentFeature,
			Severity: models.SeverityMinor,
			Detail:   "alleys, service drives, or parking access roads create concealment opportunities",
			Evidence: models.Evidence{Measured: 1, Threshold: 1, Unit: "flag"},
		})
	}

	if profile.Temporal.NightRatio >= c.cfg.NightConcentration {
		add(models.Deficiency{
			Kind:     models.DeficiencyNightConcentration,
			Severity: models.SeverityMajor,
			Detail:   fmt.Sprintf("%.0f%% of incidents at night", profile.Temporal.NightRatio*100),
			Evidence: models.Evidence{Measured: profile.Temporal.NightRatio, Threshold: c.cfg.NightConcentration, Unit: "ratio"},
		})
	}

	if profile.Temporal.WeekendRatio >= c.cfg.WeekendConcentration {
		add(models.Deficiency{
			Kind:     models.DeficiencyWeekendConcentration,
			Severity: models.SeverityMinor,
			Detail:   fmt.Sprintf("%.0f%% of incidents Friday-Sunday", profile.Temporal.WeekendRatio*100),
			Evidence: models.Evidence{Measured: profile.Temporal.WeekendRatio, Threshold: c.cfg.WeekendConcentration, Unit: "ratio"},
		})
	}

	switch profile.DominantCrime {
	case models.CategoryTheft:
		add(models.Deficiency{
			Kind:     models.DeficiencyCategorySpecific,
			Severity: models.SeverityMinor,
			Detail:   "theft-dominant: concealment emphasis (vegetation, blind corners)",
			Evidence: models.Evidence{Measured: profile.Sightline.SurveillanceScore, Threshold: c.cfg.SurveillanceMin, Unit: "score"},
		})
	case models.CategoryAssault:
		add(models.Deficiency{
			Kind:     models.DeficiencyCategorySpecific,
			Severity: models.SeverityMajor,
			Detail:   "assault-dominant: isolation emphasis (distance to traffic corridors)",
			Evidence: models.Evidence{Measured: profile.NearestCorridor.DistanceFt, Threshold: c.cfg.CorridorIsolationFt, Unit: "ft"},
		})
	}

	return deficiencies, c.tier(deficiencies, riskScore)
}

// Kinds whose remediation is vegetation or signage work; a deficiency set
// containing only these qualifies for the Medium tier.
var vegetationSignageKinds = map[string]bool{
	models.DeficiencyConcealmentFeature:   true,
	models.DeficiencyCategorySpecific:     true,
	models.DeficiencyWeekendConcentration: true,
}

// tier applies the precedence rules in order; first match wins.
// Rule 2's score band is half-open [5,8) so no score between High and
// Critical falls through unprioritized.
func (c *Classifier) tier(deficiencies []models.Deficiency, riskScore float64) string {
	has := func(kind string) bool {
		for _, d := range deficiencies {
			if d.Kind == kind {
				return true
			}
		}
		return false
	}

	if riskScore >= 8 && has(models.DeficiencyLightingGap) && has(models.DeficiencyCallBoxDistanceGap) {
		return models.TierCritical
	}
	if riskScore >= 5 && riskScore < 8 && has(models.DeficiencyLightingGap) {
		return models.TierHigh
	}
	if len(deficiencies) > 0 {
		allSoft := true
		for _, d := range deficiencies {
			if !vegetationSignageKinds[d.Kind] {
				allSoft = false
				break
			}
		}
		if allSoft {
			return models.TierMedium
		}
	}
	return models.TierNone
}
