package scan

import (
	"sort"

	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/models"
)

// Detector selects the hotspot set from a full slate of scored locations.
type Detector struct {
	TopN    int
	MinRisk float64
}

// Detect returns the top-N scores at or above the risk floor, ordered by
// score descending. Ties break by incident count descending, then location
// ID ascending, so identical inputs always yield the identical selection.
func (d Detector) Detect(scores []models.RiskScore) []models.RiskScore {
	eligible := make([]models.RiskScore, 0, len(scores))
	for _, s := range scores {
		if s.Score >= d.MinRisk {
			eligible = append(eligible, s)
		}
	}

	sort.Slice(eligible, func(i, j int) bool {
		if eligible[i].Score != eligible[j].Score {
			return eligible[i].Score > eligible[j].Score
		}
		if eligible[i].IncidentCount != eligible[j].IncidentCount {
			return eligible[i].IncidentCount > eligible[j].IncidentCount
		}
		return eligible[i].LocationID < eligible[j].LocationID
	})

	if d.TopN > 0 && len(eligible) > d.TopN {
		eligible = eligible[:d.TopN]
	}
	return eligible
}
