// Package risk scores candidate locations on a 0-10 scale from the incident
// history around them.
//
// The formula is a saturated sum of per-incident contributions:
//
//	contribution = severity × distance_decay(d) × time_weight
//	score        = 10 × (1 − e^(−k·Σ))
//
// so a single severe nearby incident moves the score noticeably while no
// number of distant minor incidents can push past 10.
package risk

import (
	"math"
	"sort"

	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/config"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/models"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/spatial"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/stats"
)

// NoHour disables hour matching; incidents in the night window (22:00-05:59)
// get the generic night boost instead.
const NoHour = -1

// Scorer computes risk scores. Safe for concurrent use: it holds only
// read-only configuration.
type Scorer struct {
	cfg     config.ScoringConfig
	radiusM float64
}

// NewScorer creates a scorer from validated scoring configuration.
func NewScorer(cfg config.ScoringConfig) *Scorer {
	return &Scorer{
		cfg:     cfg,
		radiusM: spatial.MilesToMeters(cfg.SearchRadiusMiles),
	}
}

// Score computes the risk score for one candidate location at the given hour
// (NoHour for an hourless scan). Incidents without coordinates are excluded
// and counted, never fatal. An empty neighborhood scores 0.
func (s *Scorer) Score(loc models.CandidateLocation, incidents []models.Incident, hour int) models.RiskScore {
	var (
		sum          float64
		contributing []models.Incident
		skipped      int
		night        int
		weekend      int
	)
	categoryCounts := make(map[string]int)

	for _, inc := range incidents {
		if !inc.HasCoordinates() {
			skipped++
			continue
		}

		// Flat-earth approximation: fine at campus scale, see spatial package.
		d := spatial.EquirectangularDistance(loc.Lat, loc.Lon, inc.Lat, inc.Lon)
		if d > s.radiusM {
			continue
		}

		sum += s.severityWeight(inc) * s.distanceDecay(d) * s.timeWeight(inc, hour)

		contributing = append(contributing, inc)
		categoryCounts[inc.Category]++
		if inc.IsNight() {
			night++
		}
		if inc.IsWeekend() {
			weekend++
		}
	}

	score := 10.0 * (1.0 - math.Exp(-s.cfg.SaturationK*sum))
	score = stats.Clamp(score, 0, 10)

	return models.RiskScore{
		LocationID:    loc.ID,
		Score:         score,
		Level:         models.LevelForScore(score),
		IncidentCount: len(contributing),
		Contributing:  contributing,
		DominantCrime: dominantCategory(categoryCounts),
		Temporal: models.TemporalBreakdown{
			NightRatio:   stats.Ratio(night, len(contributing)),
			WeekendRatio: stats.Ratio(weekend, len(contributing)),
		},
		SkippedRows: skipped,
	}
}

// severityWeight maps the 1-5 severity integer to a contribution weight.
// Out-of-range rows are clamped rather than dropped.
func (s *Scorer) severityWeight(inc models.Incident) float64 {
	return stats.Clamp(float64(inc.Severity), 1, 5)
}

// distanceDecay is monotonically decreasing in distance and zero at the
// search radius. Shape is configurable; both curves are bounded to [0,1].
func (s *Scorer) distanceDecay(d float64) float64 {
	switch s.cfg.DecayShape {
	case "inverse":
		// 1 at d=0, falls off hyperbolically, forced to 0 at the radius edge.
		if d >= s.radiusM {
			return 0
		}
		return 1.0 / (1.0 + 4.0*d/s.radiusM)
	default: // linear
		return stats.Clamp(1.0-d/s.radiusM, 0, 1)
	}
}

// timeWeight boosts incidents whose historical hour is within the configured
// window of the query hour. With no query hour, night incidents get the
// generic night boost.
func (s *Scorer) timeWeight(inc models.Incident, hour int) float64 {
	if hour == NoHour {
		if inc.IsNight() {
			return s.cfg.NightBoost
		}
		return 1.0
	}
	if inc.Hour < 0 {
		return 1.0
	}
	if hourDistance(inc.Hour, hour) <= s.cfg.TimeWindowHours {
		return s.cfg.TimeBoost
	}
	return 1.0
}

// hourDistance is the circular distance between two hours of day.
func hourDistance(a, b int) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	if d > 12 {
		d = 24 - d
	}
	return d
}

// dominantCategory returns the most frequent category, ties broken
// alphabetically so repeated scans are deterministic.
func dominantCategory(counts map[string]int) string {
	if len(counts) == 0 {
		return ""
	}
	categories := make([]string, 0, len(counts))
	for c := range counts {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	best := categories[0]
	for _, c := range categories[1:] {
		if counts[c] > counts[best] {
			best = c
		}
	}
	return best
}
