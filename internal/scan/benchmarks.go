package scan

import (
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/config"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/models"
)

// ComputeBenchmarks normalizes the campus incident total to a rate per 10k
// enrolled and positions it against peer institutions. preventedIncidents is
// the ROI summary's expected annual reduction; the projected rate shows where
// the campus would land if every recommended intervention were built.
func ComputeBenchmarks(totalIncidents int, preventedIncidents float64, cfg config.BenchmarkConfig) models.Benchmarks {
	b := models.Benchmarks{
		PeerAveragePer10k: cfg.PeerRatePer10k,
		TopQuartilePer10k: cfg.TopQuartilePer10k,
		NationalAvgPer10k: cfg.NationalPer10k,
		TotalIncidents:    totalIncidents,
	}
	if cfg.Enrollment <= 0 {
		return b
	}

	per10k := 10000.0 / float64(cfg.Enrollment)
	b.RatePer10k = float64(totalIncidents) * per10k

	projected := float64(totalIncidents) - preventedIncidents
	if projected < 0 {
		projected = 0
	}
	b.ProjectedRatePer10k = projected * per10k

	switch {
	case b.RatePer10k <= cfg.TopQuartilePer10k:
		b.Ranking = "top quartile"
	case b.RatePer10k <= cfg.PeerRatePer10k:
		b.Ranking = "better than peer average"
	case b.RatePer10k <= cfg.NationalPer10k:
		b.Ranking = "below national average"
	default:
		b.Ranking = "above national average"
	}
	return b
}
